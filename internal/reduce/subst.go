// Released under an MIT license. See LICENSE.

package reduce

import "github.com/michaelmacinnis/blc/internal/term"

// shift and subst are the only places indices are renumbered. Both walk
// the term with an explicit stack of slots and rewrite it in place, so
// the caller must own the term.

// shift adds amount to every variable in *slot with an index of at
// least cutoff. The cutoff increases under each binder so that bound
// variables are left alone.
func shift(slot *term.T, cutoff, amount int) {
	type frame struct {
		slot   *term.T
		cutoff int
	}

	work := []frame{{slot, cutoff}}

	for len(work) > 0 {
		f := work[len(work)-1]
		work = work[:len(work)-1]

		switch t := (*f.slot).(type) {
		case *term.Variable:
			if t.Index >= f.cutoff {
				t.Index += amount
			}
		case *term.Abstraction:
			work = append(work, frame{&t.Body, f.cutoff + 1})
		case *term.Application:
			work = append(work, frame{&t.Fun, f.cutoff}, frame{&t.Arg, f.cutoff})
		}
	}
}

// subst replaces the variable bound at depth in *slot with replacement,
// removing the binder from the index space: variables at depth are
// replaced, variables above depth are decremented, and variables below
// depth are untouched.
//
// Each occurrence receives its own copy of replacement, with its free
// variables shifted up by the number of binders the copy now sits
// under. This shift-then-substitute step is what beta reduction hangs
// on; it has its own unit tests.
func subst(slot *term.T, depth int, replacement term.T) {
	type frame struct {
		slot  *term.T
		depth int
	}

	work := []frame{{slot, depth}}

	for len(work) > 0 {
		f := work[len(work)-1]
		work = work[:len(work)-1]

		switch t := (*f.slot).(type) {
		case *term.Variable:
			if t.Index == f.depth {
				r := term.Copy(replacement)
				shift(&r, 0, f.depth)

				*f.slot = r
			} else if t.Index > f.depth {
				t.Index--
			}
		case *term.Abstraction:
			work = append(work, frame{&t.Body, f.depth + 1})
		case *term.Application:
			work = append(work, frame{&t.Fun, f.depth}, frame{&t.Arg, f.depth})
		}
	}
}
