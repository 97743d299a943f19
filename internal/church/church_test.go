// Released under an MIT license. See LICENSE.

package church_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/michaelmacinnis/blc/internal/blc"
	"github.com/michaelmacinnis/blc/internal/church"
	"github.com/michaelmacinnis/blc/internal/reduce"
	"github.com/michaelmacinnis/blc/internal/term"
)

func decode(t *testing.T, enc term.T) []byte {
	t.Helper()

	m := reduce.New(1 << 20)

	data, err := church.Decode(&enc, m)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	return data
}

func TestEncodeDecode(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}

	for _, data := range [][]byte{
		nil,
		{},
		{0x00},
		{0xff},
		[]byte("a"),
		[]byte("hurr"),
		[]byte("herp derp"),
		all,
	} {
		enc := church.Encode(data)

		if got := decode(t, enc); !bytes.Equal(got, data) {
			t.Errorf("decode(encode(%q)) = %q", data, got)
		}
	}
}

func TestEncodeEmptyIsNil(t *testing.T) {
	// The empty sequence is the designated empty-list sentinel λλ1.
	if got := church.Encode(nil); !got.Equal(term.Abs(term.Abs(term.Var(0)))) {
		t.Errorf("Encode(nil) = %v, want λλ1", got)
	}
}

func TestEncodeBits(t *testing.T) {
	// The byte 0b01100001 ('a'), as a one byte sequence, packs to a
	// documented dump.
	want := []byte{
		0x16, 0x16, 0x0c, 0x2c, 0x10, 0xb0, 0x42, 0xc1, 0x85,
		0x83, 0x0b, 0x06, 0x16, 0x0c, 0x2c, 0x10, 0x41, 0x00,
	}

	bits := blc.Serialize(church.Encode([]byte{0b01100001}))
	if got := blc.Compress(bits); !bytes.Equal(got, want) {
		t.Errorf("packed encoding = %x, want %x", got, want)
	}
}

func TestEncodeDoesNotShare(t *testing.T) {
	enc := church.Encode([]byte("aa")).(*term.Abstraction)

	spine := enc.Body.(*term.Application)
	head := spine.Fun.(*term.Application).Arg
	tail := spine.Arg.(*term.Abstraction).Body.(*term.Application)

	if head == tail.Fun.(*term.Application).Arg {
		t.Fatal("byte terms are shared between list cells")
	}
}

func TestDecodeNotAByteList(t *testing.T) {
	nl := term.Abs(term.Abs(term.Var(0)))
	consOfI := term.Abs(term.App(
		term.App(term.Var(0), term.Abs(term.Var(0))),
		term.Copy(nl),
	))

	for _, c := range []struct {
		label string
		give  term.T
	}{
		{"identity", term.Abs(term.Var(0))},
		{"free variable", term.Var(0)},
		{"cons of non-byte", consOfI},
		{"seven bit byte", shortByte()},
	} {
		give := c.give
		m := reduce.New(1 << 20)

		_, err := church.Decode(&give, m)
		if !errors.Is(err, church.ErrNotAByteList) {
			t.Errorf("%s: err = %v, want ErrNotAByteList", c.label, err)
		}
	}

	// λλ1 is indistinguishable from nil: it decodes as the empty
	// sequence, not an error.
	give := term.T(term.Abs(term.Abs(term.Var(0))))

	got, err := church.Decode(&give, reduce.New(1<<20))
	if err != nil || len(got) != 0 {
		t.Errorf("Decode(λλ1) = %q, %v; want empty", got, err)
	}
}

// shortByte is a list of a single seven bit "byte".
func shortByte() term.T {
	nl := func() term.T { return term.Abs(term.Abs(term.Var(0))) }

	cons := func(h, t term.T) term.T {
		return term.Abs(term.App(term.App(term.Var(0), h), t))
	}

	b := nl()
	for i := 0; i < 7; i++ {
		b = cons(term.Abs(term.Abs(term.Var(1))), b)
	}

	return cons(b, nl())
}

// TestDecoderStreams decodes the first bytes of a program with
// unboundedly long output: fix (λr. cons('a', r)).
func TestDecoderStreams(t *testing.T) {
	bits := "01000100011100110100001110011010000001011000010110000011000010110" +
		"0000100001011000001000010110000011000010110000011000010110000011000" +
		"010110000011000010110000010000010110"

	program, _, err := blc.Parse([]byte(bits))
	if err != nil {
		t.Fatal(err)
	}

	m := reduce.New(1 << 20)
	d := church.NewDecoder(&program, m)

	for i := 0; i < 3; i++ {
		b, err := d.Next()
		if err != nil {
			t.Fatal(err)
		}

		if b != 'a' {
			t.Fatalf("byte %d = %q, want 'a'", i, b)
		}
	}
}

func TestDecoderNext(t *testing.T) {
	enc := church.Encode([]byte("ok"))

	m := reduce.New(1 << 20)
	d := church.NewDecoder(&enc, m)

	for _, want := range []byte("ok") {
		got, err := d.Next()
		if err != nil {
			t.Fatal(err)
		}

		if got != want {
			t.Errorf("Next = %q, want %q", got, want)
		}
	}

	if _, err := d.Next(); err != io.EOF {
		t.Errorf("err = %v, want io.EOF", err)
	}

	// Next keeps returning io.EOF once the list ends.
	if _, err := d.Next(); err != io.EOF {
		t.Errorf("err = %v, want io.EOF", err)
	}
}

func TestDecodeBudget(t *testing.T) {
	omega := term.App(
		term.Abs(term.App(term.Var(0), term.Var(0))),
		term.Abs(term.App(term.Var(0), term.Var(0))),
	)

	m := reduce.New(100)

	_, err := church.Decode(&omega, m)
	if !errors.Is(err, reduce.ErrBudget) {
		t.Errorf("err = %v, want ErrBudget", err)
	}
}
