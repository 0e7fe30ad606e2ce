// Command cflatrepl is the interactive counterpart to cmd/cflat,
// carrying the teacher's REPL-by-default ergonomics (banner, readline
// history, colored diagnostics) that §6's strict file-mode contract has
// no room for.
package main

import (
	"os"

	"cflat/repl"
)

const banner = `
   _  __ _       _
  ___/ _| |  __ _| |_
 / __| |_| | / _` + "`" + ` | __|
| (__|  _| || (_| | |_
 \___|_| |_| \__,_|\__|
`

func main() {
	r := repl.New(banner, "v0.1.0", "cflat contributors", "----------------------------------------------------------------", "MIT", "cflat >>> ")
	r.Start(os.Stdin, os.Stdout)
}
