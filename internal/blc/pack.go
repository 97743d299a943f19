// Released under an MIT license. See LICENSE.

package blc

// Compress packs the bits, given as ASCII '0' and '1' bytes, into
// bytes, most significant bit first. The final byte is padded with
// zeros. Whitespace and anything else that is not a bit is skipped.
//
// The packing is a transport convenience only. Decompress recovers the
// original bits followed by up to seven pad bits, which Parse ignores.
func Compress(bits []byte) []byte {
	packed := make([]byte, 0, (len(bits)+7)/8)

	var b byte

	n := 0

	for _, bit := range bits {
		if bit != '0' && bit != '1' {
			continue
		}

		b = b<<1 | (bit - '0')

		n++
		if n == 8 {
			packed = append(packed, b)

			b = 0
			n = 0
		}
	}

	if n > 0 {
		packed = append(packed, b<<(8-n))
	}

	return packed
}

// Decompress unpacks bytes into bits as ASCII '0' and '1' bytes, most
// significant bit first.
func Decompress(packed []byte) []byte {
	bits := make([]byte, 0, len(packed)*8)

	for _, b := range packed {
		for i := 7; i >= 0; i-- {
			bits = append(bits, '0'+(b>>i)&1)
		}
	}

	return bits
}
