package base64x

// Copyright © 2026 The CryptoXR Authors. Licensed under the Apache-2.0 license.
// Ascii85 mapping: each big-endian 4-byte group becomes five digits base 85
// over '!'..'u'. A trailing group of n bytes is zero-extended and encoded as
// its first n+1 digits; decoding pads the short group with 'u' and keeps the
// first n bytes, which inverts the encoder exactly. The 'z' shorthand for
// zero groups is neither emitted nor accepted.

const (
	b85First = '!'
	b85Last  = 'u'
)

func encode85(src []byte) []byte {
	out := make([]byte, 0, len(src)/4*5+5)
	var digits [5]byte
	for len(src) > 0 {
		n := len(src)
		if n > 4 {
			n = 4
		}
		var v uint32
		for i := 0; i < 4; i++ {
			v <<= 8
			if i < n {
				v |= uint32(src[i])
			}
		}
		for i := 4; i >= 0; i-- {
			digits[i] = byte(v%85) + b85First
			v /= 85
		}
		out = append(out, digits[:n+1]...)
		src = src[n:]
	}
	return out
}

func decode85(s string) ([]byte, error) {
	out := make([]byte, 0, len(s)/5*4+4)
	var group [5]byte
	n := 0
	flush := func(end int64) error {
		if n == 1 {
			// A single digit cannot carry a byte.
			return CorruptInputError(end)
		}
		keep := n - 1
		for i := n; i < 5; i++ {
			group[i] = b85Last
		}
		var v uint64
		for i := 0; i < 5; i++ {
			v = v*85 + uint64(group[i]-b85First)
		}
		if v > 0xFFFFFFFF {
			return CorruptInputError(end)
		}
		for i := 0; i < keep; i++ {
			out = append(out, byte(v>>(24-8*i)))
		}
		n = 0
		return nil
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\n' || c == '\r' {
			continue
		}
		if c < b85First || c > b85Last {
			return nil, CorruptInputError(int64(i))
		}
		group[n] = c
		n++
		if n == 5 {
			if err := flush(int64(i)); err != nil {
				return nil, err
			}
		}
	}
	if n > 0 {
		if err := flush(int64(len(s))); err != nil {
			return nil, err
		}
	}
	return out, nil
}
