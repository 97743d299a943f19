// Released under an MIT license. See LICENSE.

// Package engine is a facade in front of the machinery for running blc
// programs: it applies a program to its (Church-encoded) input, reduces
// the result, and decodes it back to bytes when it has that shape.
package engine

import (
	"errors"

	"github.com/michaelmacinnis/blc/internal/church"
	"github.com/michaelmacinnis/blc/internal/reduce"
	"github.com/michaelmacinnis/blc/internal/term"
	"github.com/sirupsen/logrus"
)

// T (engine) holds the reduction policy shared by runs.
type T struct {
	budget int
	log    logrus.FieldLogger
}

type engine = T

// Result is the outcome of running a program.
//
// Not every valid program produces byte-list-shaped output. When it
// does, Decoded is true and Output holds the bytes. Otherwise Term
// holds the normal form (or, on a budget error, the partially reduced
// term) and Output holds whatever prefix decoded before the shape
// stopped matching.
type Result struct {
	Output  []byte
	Term    term.T
	Decoded bool
	Stuck   bool
	Steps   int
}

// New creates a new engine. A budget of 0 or less means reduction is
// unbounded; otherwise each run is cut off, with reduce.ErrBudget,
// after budget beta steps.
func New(budget int) *T {
	return &engine{budget: budget, log: logrus.StandardLogger()}
}

// Run reduces the program by itself, with no input applied.
func (e *engine) Run(program term.T) (*Result, error) {
	return e.run(program)
}

// RunBytes applies the program to the encoded input and reduces the
// result. An empty input is applied as nil, the empty list; it is not
// the same as no input.
func (e *engine) RunBytes(program term.T, input []byte) (*Result, error) {
	return e.run(term.App(program, church.Encode(input)))
}

func (e *engine) run(t term.T) (*Result, error) {
	m := reduce.New(e.budget)
	r := &Result{}

	// Decoding drives reduction: each byte is resolved by reducing
	// just enough of the term, so programs with unbounded output
	// still stream. The term is rewritten in place under t.
	output, err := church.Decode(&t, m)
	r.Output = output
	r.Steps = m.Steps()

	switch {
	case err == nil:
		r.Term = t
		r.Decoded = true

		e.log.WithField("steps", r.Steps).Debug("run decoded")

		return r, nil
	case errors.Is(err, church.ErrNotAByteList):
		// Not an error: surface the normal form instead.
		nf, err := m.Normalize(t)

		r.Term = nf
		r.Steps = m.Steps()

		if err != nil {
			e.log.WithField("steps", r.Steps).Debug("run out of budget")

			return r, err
		}

		r.Stuck = stuck(nf)

		e.log.WithFields(logrus.Fields{
			"steps": r.Steps,
			"stuck": r.Stuck,
		}).Debug("run left a term")

		return r, nil
	default:
		// Budget exhausted mid-decode.
		r.Term = t
		r.Steps = m.Steps()

		e.log.WithField("steps", r.Steps).Debug("run out of budget")

		return r, err
	}
}

// stuck reports whether the head of the term t, in normal form, is a
// variable that is unbound at the top level. Such a term is neither an
// error nor a value: reduction has nothing left to do with it, but only
// because nothing is known about its head.
func stuck(t term.T) bool {
	binders := 0

	for {
		switch n := t.(type) {
		case *term.Abstraction:
			binders++
			t = n.Body
		case *term.Application:
			t = n.Fun
		case *term.Variable:
			return n.Index >= binders
		}
	}
}
