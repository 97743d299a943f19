// Released under an MIT license. See LICENSE.

// Package church converts byte sequences to and from their Church
// encoding, the bridge between ordinary bytes and the lambda world.
//
// A byte sequence is a right-nested list, cons(b0, cons(b1, ... nil)),
// where cons(h, t) = λ(1 h t) and nil = λλ1. Each byte is itself a list
// of eight bits, most significant first, and each bit is a Church
// boolean: 0 is λλ2 (select first) and 1 is λλ1 (select second), so
// programs can branch on a bit by applying it.
package church

import (
	"errors"
	"io"

	"github.com/michaelmacinnis/blc/internal/reduce"
	"github.com/michaelmacinnis/blc/internal/term"
)

// ErrNotAByteList is returned when a term does not reduce to the
// cons/nil/boolean shapes of an encoded byte sequence.
var ErrNotAByteList = errors.New("not a byte list")

// Encode returns the term for the byte sequence data. The empty
// sequence encodes as nil.
//
// Every call builds a fresh tree. Encoded terms are handed to a machine
// that rewrites them in place, so no structure can be shared.
func Encode(data []byte) term.T {
	t := nilT()

	for i := len(data) - 1; i >= 0; i-- {
		t = cons(byteT(data[i]), t)
	}

	return t
}

// Decoder incrementally decodes a term as a byte sequence, reducing
// only as much of it as each byte requires. Output that is unboundedly
// long, or that precedes a diverging tail, can still be consumed.
type Decoder struct {
	m    *reduce.T
	tail *term.T
	done bool
}

// NewDecoder creates a decoder that reads the term in *slot, reducing
// it with the machine m. The term is rewritten in place as it is
// probed, so *slot always holds the current, partially reduced form.
func NewDecoder(slot *term.T, m *reduce.T) *Decoder {
	return &Decoder{m: m, tail: slot}
}

// Next reduces the term far enough to resolve one more byte and
// returns it. At the end of the list it returns io.EOF. A term that
// does not match the expected shape is reported as ErrNotAByteList;
// exceeding the machine's budget is reported as reduce.ErrBudget.
func (d *Decoder) Next() (byte, error) {
	if d.done {
		return 0, io.EOF
	}

	s, err := d.m.Spine(d.tail)
	if err != nil {
		return 0, err
	}

	if isNil(s) {
		d.done = true

		return 0, io.EOF
	}

	head, tail, ok := unCons(s)
	if !ok {
		return 0, ErrNotAByteList
	}

	b, err := d.byteOf(head)
	if err != nil {
		return 0, err
	}

	d.tail = tail

	return b, nil
}

// Decode reduces the term in *slot completely and returns the bytes it
// encodes. It is Next driven to the end of the list.
func Decode(slot *term.T, m *reduce.T) ([]byte, error) {
	d := NewDecoder(slot, m)

	var data []byte

	for {
		b, err := d.Next()
		if err == io.EOF {
			return data, nil
		}

		if err != nil {
			return data, err
		}

		data = append(data, b)
	}
}

// byteOf decodes a term that should be a list of exactly eight bits.
func (d *Decoder) byteOf(slot *term.T) (byte, error) {
	var b byte

	for n := 0; ; n++ {
		s, err := d.m.Spine(slot)
		if err != nil {
			return 0, err
		}

		if isNil(s) {
			if n != 8 {
				return 0, ErrNotAByteList
			}

			return b, nil
		}

		head, tail, ok := unCons(s)
		if !ok || n == 8 {
			return 0, ErrNotAByteList
		}

		bit, err := d.bitOf(head)
		if err != nil {
			return 0, err
		}

		b = b<<1 | bit

		slot = tail
	}
}

// bitOf decodes a term that should be a Church boolean.
func (d *Decoder) bitOf(slot *term.T) (byte, error) {
	s, err := d.m.Spine(slot)
	if err != nil {
		return 0, err
	}

	if s.Binders != 2 || len(s.Args) != 0 {
		return 0, ErrNotAByteList
	}

	switch s.Head {
	case 1: // λλ2 selects its first argument: bit 0.
		return 0, nil
	case 0: // λλ1 selects its second argument: bit 1.
		return 1, nil
	}

	return 0, ErrNotAByteList
}

// isNil reports whether the spine s is the empty list, λλ1.
func isNil(s reduce.Spine) bool {
	return s.Binders == 2 && s.Head == 0 && len(s.Args) == 0
}

// unCons matches the spine s against cons, λ(1 h t), and returns slots
// for the head and tail.
func unCons(s reduce.Spine) (head, tail *term.T, ok bool) {
	if s.Binders != 1 || s.Head != 0 || len(s.Args) != 2 {
		return nil, nil, false
	}

	return &s.Args[0], &s.Args[1], true
}

func cons(head, tail term.T) term.T {
	// head and tail are closed terms here so no index shifting is
	// needed to move them under the binder.
	return term.Abs(term.App(term.App(term.Var(0), head), tail))
}

func nilT() term.T {
	return term.Abs(term.Abs(term.Var(0)))
}

func bitT(bit byte) term.T {
	index := 1 // λλ2, bit 0
	if bit != 0 {
		index = 0 // λλ1, bit 1
	}

	return term.Abs(term.Abs(term.Var(index)))
}

func byteT(b byte) term.T {
	t := nilT()

	for i := 0; i < 8; i++ {
		t = cons(bitT(b>>i&1), t)
	}

	return t
}
