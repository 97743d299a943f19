// Released under an MIT license. See LICENSE.

package reduce

import (
	"testing"

	"github.com/michaelmacinnis/blc/internal/term"
)

func TestShift(t *testing.T) {
	for _, c := range []struct {
		label  string
		give   term.T
		cutoff int
		amount int
		want   term.T
	}{
		{
			"free variable moves",
			term.Var(0), 0, 2,
			term.Var(2),
		},
		{
			"variable below the cutoff stays",
			term.Var(0), 1, 2,
			term.Var(0),
		},
		{
			"cutoff tracks binders",
			term.Abs(term.App(term.Var(0), term.Var(1))), 0, 3,
			term.Abs(term.App(term.Var(0), term.Var(4))),
		},
		{
			"application shifts both sides",
			term.App(term.Var(1), term.Var(2)), 2, 1,
			term.App(term.Var(1), term.Var(3)),
		},
	} {
		give := c.give
		shift(&give, c.cutoff, c.amount)

		if !give.Equal(c.want) {
			t.Errorf("%s: got %v, want %v", c.label, give, c.want)
		}
	}
}

func TestSubst(t *testing.T) {
	k := term.Abs(term.Abs(term.Var(1)))

	for _, c := range []struct {
		label       string
		give        term.T
		depth       int
		replacement term.T
		want        term.T
	}{
		{
			// The binder is removed, so the free variable
			// above the substitution depth steps down.
			"substitute and renumber",
			term.App(term.Var(0), term.Var(1)), 0, k,
			term.App(k, term.Var(0)),
		},
		{
			"variable below the depth is untouched",
			term.Abs(term.App(term.Var(0), term.Var(1))), 0, k,
			term.Abs(term.App(term.Var(0), k)),
		},
		{
			// A replacement with free variables is shifted
			// by the binders it moves under.
			"free variables shift under binders",
			term.Abs(term.Var(1)), 0, term.Var(3),
			term.Abs(term.Var(4)),
		},
		{
			"replacement bound variables stay put",
			term.Abs(term.Var(1)), 0, term.Abs(term.Var(0)),
			term.Abs(term.Abs(term.Var(0))),
		},
	} {
		give := c.give
		subst(&give, c.depth, c.replacement)

		if !give.Equal(c.want) {
			t.Errorf("%s: got %v, want %v", c.label, give, c.want)
		}
	}
}

func TestSubstCopiesReplacement(t *testing.T) {
	replacement := term.Abs(term.Var(0))

	give := term.T(term.App(term.Var(0), term.Var(0)))
	subst(&give, 0, replacement)

	app := give.(*term.Application)
	if app.Fun == app.Arg {
		t.Fatal("occurrences share the replacement")
	}

	// Rewriting one occurrence must not touch the other, or the
	// original.
	app.Fun.(*term.Abstraction).Body.(*term.Variable).Index = 9

	if app.Arg.(*term.Abstraction).Body.(*term.Variable).Index != 0 {
		t.Error("rewriting one occurrence changed another")
	}

	if !replacement.Equal(term.Abs(term.Var(0))) {
		t.Error("substitution changed the replacement term")
	}
}
