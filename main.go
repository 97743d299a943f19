// Released under an MIT license. See LICENSE.

/*
Blc runs binary lambda calculus programs.

A program is a bit-encoded lambda term. Blc parses it, applies it to
its input (a byte sequence encoded as a Church list of bytes), reduces
the application in normal order, and decodes what comes out:

    blc program.Blc input.txt
    blc -e '0010' input.txt
    echo -n hurr | blc program.Blc -

When the result is not byte-list-shaped, or when -t is given, the term
itself is printed instead. With no program and a terminal on stdin, blc
starts an interactive prompt.
*/
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/blc/internal/blc"
	"github.com/michaelmacinnis/blc/internal/engine"
	"github.com/michaelmacinnis/blc/internal/reduce"
	"github.com/michaelmacinnis/blc/internal/system/options"
	"github.com/michaelmacinnis/blc/internal/term"
	"github.com/michaelmacinnis/blc/internal/ui"
	"github.com/sirupsen/logrus"
)

const version = "0.2.0"

// session ties the engine to the interactive prompt.
type session struct {
	e *engine.T
}

func main() {
	options.Parse()

	if options.Version() {
		fmt.Println("blc " + version)

		return
	}

	if options.Verbose() {
		logrus.SetLevel(logrus.DebugLevel)
	}

	e := engine.New(options.Steps())

	if options.Interactive() {
		ui.Run(&session{e: e})

		return
	}

	program, err := loadProgram()
	if err != nil {
		logrus.Fatal(err)
	}

	var r *engine.Result

	if options.Input() == "" {
		r, err = e.Run(program)
	} else {
		var input []byte

		input, err = loadInput()
		if err != nil {
			logrus.Fatal(err)
		}

		r, err = e.RunBytes(program, input)
	}

	if err != nil {
		// The partial result is still worth reporting before
		// exiting non-zero.
		report(r)

		logrus.Fatal(err)
	}

	report(r)
}

// report writes the result of a run to stdout.
func report(r *engine.Result) {
	if r.Decoded && !options.ShowTerm() {
		os.Stdout.Write(r.Output)

		return
	}

	if r.Stuck {
		logrus.Warn("stuck: unbound variable at head")
	}

	if len(r.Output) > 0 && !options.ShowTerm() {
		logrus.WithField("prefix", strconv.Quote(string(r.Output))).
			Info("output stopped matching a byte list")
	}

	if r.Term != nil {
		fmt.Println(r.Term)
	}
}

// loadProgram reads and parses the program named on the command line.
func loadProgram() (term.T, error) {
	bits := []byte(options.Expression())

	if len(bits) == 0 {
		name := options.Program()

		data, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}

		if options.Raw() || strings.HasSuffix(name, ".blc") {
			bits = data
		} else {
			bits = blc.Decompress(data)
		}
	}

	program, rest, err := blc.Parse(bits)
	if err != nil {
		return nil, err
	}

	logrus.WithField("unconsumed", len(rest)).Debug("parsed program")

	return program, nil
}

// loadInput reads the input named on the command line. A - means stdin.
func loadInput() ([]byte, error) {
	if options.Input() == "-" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(options.Input())
}

// Evaluate runs one line from the prompt: a program as '0'/'1' bits,
// optionally followed by a double-quoted input string.
func (s *session) Evaluate(line string) (string, error) {
	bits, input, hasInput, err := splitLine(line)
	if err != nil {
		return "", err
	}

	program, _, err := blc.Parse([]byte(bits))
	if err != nil {
		return "", err
	}

	var r *engine.Result

	if hasInput {
		r, err = s.e.RunBytes(program, input)
	} else {
		r, err = s.e.Run(program)
	}

	if err != nil {
		if r != nil && errors.Is(err, reduce.ErrBudget) {
			return "", fmt.Errorf("%w after %d steps", err, r.Steps)
		}

		return "", err
	}

	if r.Decoded {
		return strconv.Quote(string(r.Output)), nil
	}

	if r.Stuck {
		return r.Term.String() + " (stuck)", nil
	}

	return r.Term.String(), nil
}

// splitLine separates a prompt line into program bits and an optional
// quoted input.
func splitLine(line string) (string, []byte, bool, error) {
	i := strings.IndexByte(line, '"')
	if i < 0 {
		return line, nil, false, nil
	}

	input, err := strconv.Unquote(strings.TrimSpace(line[i:]))
	if err != nil {
		return "", nil, false, fmt.Errorf("bad input string: %w", err)
	}

	return line[:i], []byte(input), true, nil
}
