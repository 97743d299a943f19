// Released under an MIT license. See LICENSE.

// Package term defines the lambda term types used by blc.
//
// A term is a strict tree: a variable, an abstraction, or an application.
// Variables are de Bruijn indices. Index 0 refers to the innermost
// enclosing abstraction; an index greater than or equal to the number of
// enclosing abstractions is a free reference.
package term

import "strconv"

// T is the interface for all blc term types.
type T interface {
	Equal(t T) bool
	Name() string
	String() string
}

// Variable is a de Bruijn index.
type Variable struct {
	Index int
}

// Abstraction introduces exactly one binder around its body.
type Abstraction struct {
	Body T
}

// Application is the juxtaposition of a function and an argument.
type Application struct {
	Fun T
	Arg T
}

// Var creates a new variable with index i.
func Var(i int) T {
	if i < 0 {
		panic("variable index must be non-negative")
	}

	return &Variable{Index: i}
}

// Abs creates a new abstraction with the body b.
func Abs(b T) T {
	return &Abstraction{Body: b}
}

// App creates a new application of fun to arg.
func App(fun, arg T) T {
	return &Application{Fun: fun, Arg: arg}
}

// Equal returns true if c is a variable with the same index as v.
func (v *Variable) Equal(c T) bool {
	w, ok := c.(*Variable)

	return ok && v.Index == w.Index
}

// Name returns the name for the variable type.
func (v *Variable) Name() string {
	return "variable"
}

// String returns the text representation of the variable v.
//
// Indices are printed 1-based, the convention used in writing on the
// binary lambda calculus: the innermost binder is 1, so the boolean
// true (select-first) prints as λλ2.
func (v *Variable) String() string {
	return strconv.Itoa(v.Index + 1)
}

// Equal returns true if c is an abstraction whose body is equal to a's.
func (a *Abstraction) Equal(c T) bool {
	b, ok := c.(*Abstraction)

	return ok && a.Body.Equal(b.Body)
}

// Name returns the name for the abstraction type.
func (a *Abstraction) Name() string {
	return "abstraction"
}

// String returns the text representation of the abstraction a.
func (a *Abstraction) String() string {
	return "λ" + a.Body.String()
}

// Equal returns true if c is an application with members equal to a's.
func (a *Application) Equal(c T) bool {
	b, ok := c.(*Application)

	return ok && a.Fun.Equal(b.Fun) && a.Arg.Equal(b.Arg)
}

// Name returns the name for the application type.
func (a *Application) Name() string {
	return "application"
}

// String returns the text representation of the application a.
//
// Applications associate to the left and their members are separated by
// a space. An abstraction in function position, and anything but a
// variable in argument position, is parenthesized.
func (a *Application) String() string {
	fun := a.Fun.String()
	if _, ok := a.Fun.(*Abstraction); ok {
		fun = "(" + fun + ")"
	}

	arg := a.Arg.String()
	if _, ok := a.Arg.(*Variable); !ok {
		arg = "(" + arg + ")"
	}

	return fun + " " + arg
}

// Copy returns a deep copy of the term t.
//
// Reduction rewrites terms in place so any term that is used more than
// once must be copied. The walk uses an explicit stack of destination
// slots to keep Go stack usage independent of term depth.
func Copy(t T) T {
	c := t

	work := []*T{&c}

	for len(work) > 0 {
		slot := work[len(work)-1]
		work = work[:len(work)-1]

		switch t := (*slot).(type) {
		case *Variable:
			*slot = &Variable{Index: t.Index}
		case *Abstraction:
			n := &Abstraction{Body: t.Body}
			*slot = n

			work = append(work, &n.Body)
		case *Application:
			n := &Application{Fun: t.Fun, Arg: t.Arg}
			*slot = n

			work = append(work, &n.Fun, &n.Arg)
		}
	}

	return c
}
