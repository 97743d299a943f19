// Released under an MIT license. See LICENSE.

// Package reduce provides normal-order beta reduction for blc terms.
//
// Reduction always contracts the leftmost-outermost redex first. This
// is the strategy that reaches a normal form whenever one exists, which
// matters for blc programs: their Church-encoded control structures
// routinely discard arguments that would diverge under eager
// evaluation.
//
// Non-termination is intrinsic to the calculus. The machine imposes no
// bound of its own; callers that want one set a step budget, which is
// checked between beta steps and reported as ErrBudget.
//
// The machine walks terms with explicit stacks of rewrite slots rather
// than recursing, so Go stack usage does not grow with the depth of the
// terms a program happens to build.
package reduce

import (
	"errors"

	"github.com/michaelmacinnis/blc/internal/term"
)

// ErrBudget is returned when a machine exhausts its step budget. It is
// a policy signal, not a property of the term: the partially reduced
// term is still valid and reduction can be resumed with a fresh budget.
var ErrBudget = errors.New("step budget exhausted")

// T (machine) performs normal-order beta reduction. Terms passed to a
// machine are rewritten in place; the machine takes ownership.
type T struct {
	budget int
	steps  int
}

type machine = T

// New creates a new machine. A budget of 0 or less means no limit;
// otherwise the machine stops with ErrBudget after budget beta steps.
func New(budget int) *T {
	return &machine{budget: budget}
}

// Steps returns the number of beta steps taken so far.
func (m *machine) Steps() int {
	return m.steps
}

// Normalize reduces t to beta-normal form and returns it. On ErrBudget
// the partially reduced term is returned with the error.
func (m *machine) Normalize(t term.T) (term.T, error) {
	work := []*term.T{&t}

	for len(work) > 0 {
		slot := work[len(work)-1]
		work = work[:len(work)-1]

		if err := m.whnf(slot); err != nil {
			return t, err
		}

		switch n := (*slot).(type) {
		case *term.Abstraction:
			work = append(work, &n.Body)
		case *term.Application:
			// The head is a variable, so the spine cannot
			// be contracted further. Normalize the
			// arguments, leftmost first.
			work = append(work, &n.Arg, &n.Fun)
		}
	}

	return t, nil
}

// Spine describes a term in head normal form: Binders abstractions
// wrapping a head variable applied, left to right, to Args.
type Spine struct {
	Binders int
	Head    int
	Args    []term.T
}

// Spine reduces *slot to head normal form and describes the result.
// Arguments in the spine are left unreduced; this is what lets byte
// list decoding stream without forcing a global normal form.
func (m *machine) Spine(slot *term.T) (Spine, error) {
	var s Spine

	for {
		if err := m.whnf(slot); err != nil {
			return s, err
		}

		abs, ok := (*slot).(*term.Abstraction)
		if !ok {
			break
		}

		s.Binders++
		slot = &abs.Body
	}

	t := *slot
	for {
		app, ok := t.(*term.Application)
		if !ok {
			break
		}

		s.Args = append(s.Args, app.Arg)
		t = app.Fun
	}

	// After whnf a head that is not an abstraction is a variable.
	s.Head = t.(*term.Variable).Index

	for i, j := 0, len(s.Args)-1; i < j; i, j = i+1, j-1 {
		s.Args[i], s.Args[j] = s.Args[j], s.Args[i]
	}

	return s, nil
}

// whnf reduces *slot to weak head normal form: it contracts head
// redexes until the head is an abstraction with no pending argument or
// a variable. The spine stack holds the slot for each application node
// passed on the way down to the head.
func (m *machine) whnf(slot *term.T) error {
	spine := []*term.T{slot}

	for {
		switch t := (*spine[len(spine)-1]).(type) {
		case *term.Application:
			spine = append(spine, &t.Fun)
		case *term.Abstraction:
			if len(spine) == 1 {
				return nil
			}

			if err := m.step(); err != nil {
				return err
			}

			app := spine[len(spine)-2]
			arg := (*app).(*term.Application).Arg

			body := t.Body
			subst(&body, 0, arg)

			*app = body

			spine = spine[:len(spine)-1]
		default:
			// A variable at the head: weak head normal,
			// whether or not arguments are pending.
			return nil
		}
	}
}

// step accounts for one beta step and enforces the budget.
func (m *machine) step() error {
	m.steps++

	if m.budget > 0 && m.steps > m.budget {
		return ErrBudget
	}

	return nil
}

// Step contracts the leftmost-outermost redex of t, if any, and reports
// whether it did. It is the one-step state-transition form of the
// machine: a driver that wants to own the iteration outright can call
// it until it returns false.
//
// Step rewrites t in place but returns it as well, since contracting a
// redex at the root replaces the root.
func Step(t term.T) (term.T, bool) {
	work := []*term.T{&t}

	for len(work) > 0 {
		slot := work[len(work)-1]
		work = work[:len(work)-1]

		switch n := (*slot).(type) {
		case *term.Abstraction:
			work = append(work, &n.Body)
		case *term.Application:
			if abs, ok := n.Fun.(*term.Abstraction); ok {
				body := abs.Body
				subst(&body, 0, n.Arg)

				*slot = body

				return t, true
			}

			work = append(work, &n.Arg, &n.Fun)
		}
	}

	return t, false
}
