package parser

import (
	"cflat/ast"
	"cflat/token"
	"cflat/value"
)

// expression is the grammar's entry point into the precedence chain,
// bottoming out at assignment (the loosest-binding form, §4.2).
func (p *Parser) expression() ast.Expression {
	return p.assignment()
}

// compoundBase maps a compound-assignment lexeme to the binary operator
// it desugars against, e.g. "+=" -> "+". Only the operators the grammar
// actually admits at assignment position are listed; anything else
// (==, !=, <=, >=, &&, ||, and so on) is left for the ordinary binary
// chain to consume instead.
var compoundBase = map[string]string{
	"+=":   "+",
	"-=":   "-",
	"*=":   "*",
	"/=":   "/",
	"%=":   "%",
	"&=":   "&",
	"|=":   "|",
	"^=":   "^",
	"<<=":  "<<",
	">>=":  ">>",
	">>>=": ">>>",
}

// assignment parses the right-associative `target = value` and compound
// forms. A bare Variable target desugars a compound op into
// `name = name ⊙ value` (an ast.Assignment wrapping a synthesized
// Binary); an Index target only accepts "=" and "+=" and produces an
// AssignAt, per §4.2's narrower rule for indexed assignment.
func (p *Parser) assignment() ast.Expression {
	left := p.ternary()

	if !p.checkAssignOp() {
		return left
	}
	op := p.advance()

	switch target := left.(type) {
	case *ast.Variable:
		right := p.assignment()
		if op.Lexeme != "=" {
			base, ok := compoundBase[op.Lexeme]
			if !ok {
				p.fail(op, "invalid assignment operator %q", op.Lexeme)
			}
			baseTok := op
			baseTok.Lexeme = base
			right = ast.NewBinary(p.id(), ast.NewVariable(p.id(), target.Name), baseTok, right)
		}
		return ast.NewAssignment(p.id(), target.Name, right)

	case *ast.Index:
		if op.Lexeme != "=" && op.Lexeme != "+=" {
			p.fail(op, "indexed assignment only supports '=' and '+=', got %q", op.Lexeme)
		}
		key := indexKey(target)
		if key == nil {
			p.fail(op, "indexed assignment needs a single index, not a slice")
		}
		right := p.assignment()
		return ast.NewAssignAt(p.id(), target.Name, target.Array, op.Lexeme, key, right)

	default:
		p.fail(op, "invalid assignment target")
		return left
	}
}

// indexKey recovers the single-index expression an Index node was built
// from; assignment through a slice (`a[1:2] = x`) is not part of the
// grammar, so AssignAt only ever carries a plain index.
func indexKey(idx *ast.Index) ast.Expression {
	if idx.HasColon {
		return nil
	}
	return idx.Start
}

// checkAssignOp reports whether the current token is "=" or one of the
// compound-assignment lexemes — never a comparison like "==" or "!=",
// which the equality level below consumes instead.
func (p *Parser) checkAssignOp() bool {
	if p.cur().Type != token.OPERATOR {
		return false
	}
	lx := p.cur().Lexeme
	if lx == "=" {
		return true
	}
	_, ok := compoundBase[lx]
	return ok
}

// ternary is `cond ? then : else`, right-associative.
func (p *Parser) ternary() ast.Expression {
	cond := p.or()
	if q, ok := p.matchOp("?"); ok {
		then := p.assignment()
		p.expect(token.COLON, "expected ':' in ternary expression")
		els := p.ternary()
		return ast.NewTernary(p.id(), q, cond, then, els)
	}
	return cond
}

func (p *Parser) or() ast.Expression {
	left := p.and()
	for {
		op, ok := p.matchOp("||")
		if !ok {
			return left
		}
		left = ast.NewBinary(p.id(), left, op, p.and())
	}
}

func (p *Parser) and() ast.Expression {
	left := p.bitOr()
	for {
		op, ok := p.matchOp("&&")
		if !ok {
			return left
		}
		left = ast.NewBinary(p.id(), left, op, p.bitOr())
	}
}

func (p *Parser) bitOr() ast.Expression {
	left := p.bitXor()
	for {
		op, ok := p.matchOp("|")
		if !ok {
			return left
		}
		left = ast.NewBinary(p.id(), left, op, p.bitXor())
	}
}

func (p *Parser) bitXor() ast.Expression {
	left := p.bitAnd()
	for {
		op, ok := p.matchOp("^")
		if !ok {
			return left
		}
		left = ast.NewBinary(p.id(), left, op, p.bitAnd())
	}
}

func (p *Parser) bitAnd() ast.Expression {
	left := p.equality()
	for {
		op, ok := p.matchOp("&")
		if !ok {
			return left
		}
		left = ast.NewBinary(p.id(), left, op, p.equality())
	}
}

func (p *Parser) equality() ast.Expression {
	left := p.relational()
	for {
		op, ok := p.matchOp("==", "!=")
		if !ok {
			return left
		}
		left = ast.NewBinary(p.id(), left, op, p.relational())
	}
}

func (p *Parser) relational() ast.Expression {
	left := p.shift()
	for {
		op, ok := p.matchOp("<", ">", "<=", ">=")
		if !ok {
			return left
		}
		left = ast.NewBinary(p.id(), left, op, p.shift())
	}
}

func (p *Parser) shift() ast.Expression {
	left := p.additive()
	for {
		op, ok := p.matchOp("<<", ">>", ">>>")
		if !ok {
			return left
		}
		left = ast.NewBinary(p.id(), left, op, p.additive())
	}
}

func (p *Parser) additive() ast.Expression {
	left := p.multiplicative()
	for {
		op, ok := p.matchOp("+", "-")
		if !ok {
			return left
		}
		left = ast.NewBinary(p.id(), left, op, p.multiplicative())
	}
}

func (p *Parser) multiplicative() ast.Expression {
	left := p.unary()
	for {
		op, ok := p.matchOp("*", "/", "%")
		if !ok {
			return left
		}
		left = ast.NewBinary(p.id(), left, op, p.unary())
	}
}

// unary is the prefix form: + - ! ~, binding tighter than any binary
// operator and looser than postfix/call/primary (§4.2's precedence
// list).
func (p *Parser) unary() ast.Expression {
	if op, ok := p.matchOp("+", "-", "!", "~"); ok {
		return ast.NewUnary(p.id(), op, p.unary())
	}
	return p.postfix()
}

// postfix applies a single trailing ++/-- to whatever call/index chain
// precedes it; legality of the target (must be a bare Variable) is
// enforced by the evaluator, not here, matching how §4.2
// describes it as a property of the grammar position rather than the
// node shape.
func (p *Parser) postfix() ast.Expression {
	expr := p.call()
	if op, ok := p.matchOp("++", "--"); ok {
		return ast.NewPostfix(p.id(), expr, op)
	}
	return expr
}

// call parses `identifier(args...)` and the index/slice suffix chain
// `expr[ ... ]`. A call may only apply to a bare identifier (§4.2); a
// parenthesized or indexed expression can still be indexed afterward,
// since indexing isn't restricted to identifiers the way calls are.
func (p *Parser) call() ast.Expression {
	expr := p.primary()

	if v, ok := expr.(*ast.Variable); ok && p.check(token.LPAREN) {
		expr = p.finishCall(v)
	}

	for p.check(token.LBRACKET) {
		expr = p.indexSuffix(expr)
	}
	return expr
}

func (p *Parser) finishCall(callee *ast.Variable) ast.Expression {
	paren := p.advance() // '('
	var args []ast.Expression
	if !p.check(token.RPAREN) {
		args = append(args, p.expression())
		for {
			if _, ok := p.match(token.COMMA); !ok {
				break
			}
			args = append(args, p.expression())
		}
	}
	p.expect(token.RPAREN, "expected ')' after argument list")
	if len(args) > 63 {
		p.fail(callee.Name, "call to %q passes more than 63 arguments", callee.Name.Lexeme)
	}
	return ast.NewCall(p.id(), callee.Name, paren, args)
}

// indexSuffix parses one `[ start? (":" end?)? ]` suffix. name is
// threaded through from the root variable of the chain so AssignAt can
// later splice a string back into the variable it came from (§4.4's
// string-index-assign semantics).
func (p *Parser) indexSuffix(base ast.Expression) ast.Expression {
	lb := p.advance() // '['
	var start, end ast.Expression
	hasColon := false
	if !p.check(token.COLON) && !p.check(token.RBRACKET) {
		start = p.expression()
	}
	if _, ok := p.match(token.COLON); ok {
		hasColon = true
		if !p.check(token.RBRACKET) {
			end = p.expression()
		}
	}
	p.expect(token.RBRACKET, "expected ']' after index expression")
	return ast.NewIndex(p.id(), rootName(base), base, lb, start, hasColon, end)
}

func rootName(e ast.Expression) token.Token {
	switch n := e.(type) {
	case *ast.Variable:
		return n.Name
	case *ast.Index:
		return n.Name
	default:
		return e.Pos()
	}
}

// primary parses the atoms of the grammar: literals, bare identifiers,
// and the two parenthesized forms — a type cast when the one token of
// lookahead past '(' is a cast keyword immediately followed by ')', a
// grouping otherwise (§4.2).
func (p *Parser) primary() ast.Expression {
	switch {
	case p.check(token.INT):
		tok := p.advance()
		return ast.NewLiteral(p.id(), tok, value.NewInt(p.parseIntLiteral(tok)))

	case p.check(token.FLOAT):
		tok := p.advance()
		return ast.NewLiteral(p.id(), tok, value.NewFloat(p.parseFloatLiteral(tok)))

	case p.check(token.STRING):
		tok := p.advance()
		return ast.NewLiteral(p.id(), tok, value.NewString(tok.Str))

	case p.check(token.KW_TRUE):
		tok := p.advance()
		return ast.NewLiteral(p.id(), tok, value.NewBool(true))

	case p.check(token.KW_FALSE):
		tok := p.advance()
		return ast.NewLiteral(p.id(), tok, value.NewBool(false))

	case p.check(token.KW_NULL):
		tok := p.advance()
		return ast.NewLiteral(p.id(), tok, value.NewNull())

	case p.check(token.IDENTIFIER):
		return ast.NewVariable(p.id(), p.advance())

	case p.check(token.LPAREN):
		return p.groupingOrCast()

	default:
		p.fail(p.cur(), "expected an expression")
		return nil
	}
}

var castKeywords = map[string]bool{"bln": true, "int": true, "flt": true, "str": true}

// groupingOrCast disambiguates `(bln) expr` from `(expr)` using exactly
// one token of lookahead past the '(': a cast keyword immediately
// followed by ')' is a TypeCast prefix, anything else is an ordinary
// grouped expression (§4.2's "(IDENT ')' )" special case note).
func (p *Parser) groupingOrCast() ast.Expression {
	lp := p.advance() // '('
	if p.check(token.IDENTIFIER) && castKeywords[p.cur().Lexeme] && p.peekAt(1).Type == token.RPAREN {
		typeTok := p.advance()
		p.advance() // ')'
		return ast.NewTypeCast(p.id(), typeTok, p.unary())
	}
	inner := p.expression()
	p.expect(token.RPAREN, "expected ')' to close grouped expression")
	return ast.NewGrouping(p.id(), lp, inner)
}
