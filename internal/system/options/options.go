// Released under an MIT license. See LICENSE.

// Package options parses blc's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	expression  string
	input       string
	interactive bool
	program     string
	raw         bool
	steps       int
	showTerm    bool
	verbose     bool
	version     bool
	usage       = `blc - binary lambda calculus

Usage:
  blc [options] PROGRAM [INPUT]
  blc [options] -e BITS [INPUT]
  blc [options] -i
  blc -h
  blc -v

Arguments:
  PROGRAM  Path to a blc program. Files ending in .blc are read as ASCII
           '0'/'1' characters; anything else is read as the compact
           (bit-packed) form.
  INPUT    Path to the input applied to the program, or - for stdin.
           With no INPUT the program is reduced bare.

Options:
  -e, --expression=BITS  Use BITS ('0'/'1' characters) as the program.
  -r, --raw              Read PROGRAM as ASCII bits regardless of name.
  -s, --steps=N          Give up after N beta reductions. [default: 0]
  -t, --term             Print the resulting term, not decoded bytes.
  -i, --interactive      Start the interactive prompt.
  -V, --verbose          Log reduction statistics.
  -h, --help             Display this help.
  -v, --version          Print blc version.

With no PROGRAM or BITS, and a stdin that is a TTY, blc starts the
interactive prompt.
`
)

func Expression() string {
	return expression
}

func Input() string {
	return input
}

func Interactive() bool {
	return interactive
}

func Parse() {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	expression, _ = opts.String("--expression")
	program, _ = opts.String("PROGRAM")
	input, _ = opts.String("INPUT")

	raw, _ = opts.Bool("--raw")
	showTerm, _ = opts.Bool("--term")
	verbose, _ = opts.Bool("--verbose")

	steps, _ = opts.Int("--steps")

	version, _ = opts.Bool("--version")

	interactive, _ = opts.Bool("--interactive")
	if program == "" && expression == "" && isatty.IsTerminal(os.Stdin.Fd()) {
		interactive = true
	}
}

func Program() string {
	return program
}

func Raw() bool {
	return raw
}

func ShowTerm() bool {
	return showTerm
}

func Steps() int {
	return steps
}

func Verbose() bool {
	return verbose
}

func Version() bool {
	return version
}
