package eval

import (
	"fmt"

	"cflat/token"
)

// RuntimeError is any failure raised while executing an already-parsed,
// already-resolved program: an undefined name, a bad arity, a division
// by zero, an out-of-range index. It carries the offending token so the
// message can point at a source position the way the teacher's
// CreateError does.
type RuntimeError struct {
	Tok token.Token
	Msg string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[%s ln %d] Runtime: %s", e.Tok.File, e.Tok.Line, e.Msg)
}

// runtimeErrf builds a *RuntimeError positioned at tok, formatting Msg
// the same way fmt.Errorf does.
func runtimeErrf(tok token.Token, format string, args ...any) *RuntimeError {
	return &RuntimeError{Tok: tok, Msg: fmt.Sprintf(format, args...)}
}
