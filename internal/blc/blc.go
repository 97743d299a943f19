// Released under an MIT license. See LICENSE.

// Package blc reads and writes the binary lambda calculus wire format.
//
// The format is a prefix-free bit grammar:
//
//	00 <term>        abstraction
//	01 <term> <term> application
//	1...1 0          variable (a tally of ones, then a terminating zero)
//
// The tally for the variable with de Bruijn index i is i+1 ones, so the
// innermost variable is 10, and the boolean true (λλ2) is 0000110.
//
// Bits are handled as ASCII '0' and '1' bytes. Whitespace is skipped on
// input. The grammar has no length prefix; parsing consumes exactly one
// term and reports the unconsumed remainder, so trailing pad bits are
// the caller's to ignore.
package blc

import (
	"errors"

	"github.com/michaelmacinnis/blc/internal/term"
)

// ErrMalformedTerm is returned when the bit sequence ends before the
// grammar completes a term.
var ErrMalformedTerm = errors.New("malformed term")

// Parse reads one term from bits and returns it along with the
// unconsumed remainder. Whitespace bytes in bits are ignored.
//
// The grammar is unambiguous and prefix-free so this is a single
// top-down pass with no backtracking. An explicit stack of unfilled
// term slots replaces recursion.
func Parse(bits []byte) (term.T, []byte, error) {
	p := &parser{bits: strip(bits)}

	var t term.T

	work := []*term.T{&t}

	for len(work) > 0 {
		slot := work[len(work)-1]
		work = work[:len(work)-1]

		b, err := p.take()
		if err != nil {
			return nil, nil, err
		}

		if b == '1' {
			n, err := p.tally()
			if err != nil {
				return nil, nil, err
			}

			*slot = term.Var(n)

			continue
		}

		b, err = p.take()
		if err != nil {
			return nil, nil, err
		}

		if b == '0' {
			a := &term.Abstraction{}
			*slot = a

			work = append(work, &a.Body)
		} else {
			a := &term.Application{}
			*slot = a

			// The function's bits come first. Slots are
			// filled in LIFO order so the argument's slot
			// is pushed below the function's.
			work = append(work, &a.Arg, &a.Fun)
		}
	}

	return t, p.rest(), nil
}

// Serialize is the structural inverse of Parse. It returns the bits,
// as ASCII '0' and '1' bytes, for the term t.
func Serialize(t term.T) []byte {
	var bits []byte

	work := []term.T{t}

	for len(work) > 0 {
		t := work[len(work)-1]
		work = work[:len(work)-1]

		switch t := t.(type) {
		case *term.Variable:
			for i := 0; i <= t.Index; i++ {
				bits = append(bits, '1')
			}

			bits = append(bits, '0')
		case *term.Abstraction:
			bits = append(bits, '0', '0')

			work = append(work, t.Body)
		case *term.Application:
			bits = append(bits, '0', '1')

			work = append(work, t.Arg, t.Fun)
		}
	}

	return bits
}

// parser tracks a position in a bit buffer.
type parser struct {
	bits  []byte
	index int
}

// take consumes and returns the next bit.
func (p *parser) take() (byte, error) {
	if p.index >= len(p.bits) {
		return 0, ErrMalformedTerm
	}

	b := p.bits[p.index]
	if b != '0' && b != '1' {
		return 0, ErrMalformedTerm
	}

	p.index++

	return b, nil
}

// tally consumes the rest of a variable encoding. The leading one has
// already been consumed; the index is the count of further ones before
// the terminating zero.
func (p *parser) tally() (int, error) {
	n := 0

	for {
		b, err := p.take()
		if err != nil {
			return 0, err
		}

		if b == '0' {
			return n, nil
		}

		n++
	}
}

// rest returns the unconsumed remainder of the bit buffer.
func (p *parser) rest() []byte {
	return p.bits[p.index:]
}

func strip(bits []byte) []byte {
	stripped := make([]byte, 0, len(bits))

	for _, b := range bits {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}

		stripped = append(stripped, b)
	}

	return stripped
}
