// Package base64x renders binary data as text in one of three modes:
// standard Base64, Ascii85-style Base85, and an obfuscated Base64 whose
// alphabet is permuted, either with the built-in reversed permutation or one
// derived from a key. Each Encoding value carries its own mode and alphabet;
// there is no process-wide mode switch.
package base64x

// Copyright © 2026 The CryptoXR Authors. Licensed under the Apache-2.0 license.

import "strconv"

// Mode selects the wire format of an Encoding.
type Mode int

const (
	// Standard is RFC 4648 Base64 with '=' padding.
	Standard Mode = iota
	// Base85 is the Ascii85 alphabet and value mapping, 4 bytes to 5 chars,
	// without the 'z' zero-group shorthand.
	Base85
	// Obfuscated is Base64 over a permuted alphabet.
	Obfuscated
)

const (
	stdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	// The built-in obfuscation permutation reverses the letter and digit
	// runs of the standard alphabet.
	obfAlphabet = "ZYXWVUTSRQPONMLKJIHGFEDCBAzyxwvutsrqponmlkjihgfedcba9876543210+/"

	// Wrapped output column widths: 76 matches MIME Base64, 75 is five
	// base85 groups.
	wrapBase64 = 76
	wrapBase85 = 75
)

// CorruptInputError reports the byte offset of the first undecodable input.
type CorruptInputError int64

func (e CorruptInputError) Error() string {
	return "base64x: illegal data at input byte " + strconv.FormatInt(int64(e), 10)
}

// Encoding is an immutable codec configuration. The zero value is not
// usable; construct via NewEncoding, NewKeyedEncoding, or the package
// variables.
type Encoding struct {
	mode     Mode
	alphabet [64]byte
	decode   [256]byte
	wrap     int
}

// StdEncoding is plain Base64.
var StdEncoding = newBase64(Standard, stdAlphabet)

// B85Encoding is the Base85 codec.
var B85Encoding = &Encoding{mode: Base85}

// ObfEncoding is the obfuscated codec with the built-in permutation.
var ObfEncoding = newBase64(Obfuscated, obfAlphabet)

// NewEncoding returns the stock codec for a mode.
func NewEncoding(m Mode) *Encoding {
	switch m {
	case Base85:
		return B85Encoding
	case Obfuscated:
		return ObfEncoding
	default:
		return StdEncoding
	}
}

func newBase64(m Mode, alphabet string) *Encoding {
	e := &Encoding{mode: m}
	copy(e.alphabet[:], alphabet)
	for i := range e.decode {
		e.decode[i] = 0xFF
	}
	for i, c := range e.alphabet {
		e.decode[c] = byte(i)
	}
	return e
}

// WithLineBreaks returns a copy of e that wraps encoded output at the
// conventional column width for its mode. Decoding always accepts wrapped
// input.
func (e *Encoding) WithLineBreaks() *Encoding {
	out := *e
	if e.mode == Base85 {
		out.wrap = wrapBase85
	} else {
		out.wrap = wrapBase64
	}
	return &out
}

// Mode reports the wire format of e.
func (e *Encoding) Mode() Mode { return e.mode }

// EncodedLen returns the encoded length of n input bytes, excluding line
// breaks.
func (e *Encoding) EncodedLen(n int) int {
	if e.mode == Base85 {
		full := n / 4 * 5
		if rem := n % 4; rem > 0 {
			full += rem + 1
		}
		return full
	}
	return (n + 2) / 3 * 4
}

// EncodeToString encodes src in e's mode.
func (e *Encoding) EncodeToString(src []byte) string {
	var raw []byte
	if e.mode == Base85 {
		raw = encode85(src)
	} else {
		raw = e.encode64(src)
	}
	if e.wrap == 0 || len(raw) == 0 {
		return string(raw)
	}
	wrapped := make([]byte, 0, len(raw)+len(raw)/e.wrap)
	for off := 0; off < len(raw); off += e.wrap {
		end := off + e.wrap
		if end > len(raw) {
			end = len(raw)
		}
		if off > 0 {
			wrapped = append(wrapped, '\n')
		}
		wrapped = append(wrapped, raw[off:end]...)
	}
	return string(wrapped)
}

// DecodeString decodes s, skipping line breaks, and reports the first
// illegal byte as a CorruptInputError.
func (e *Encoding) DecodeString(s string) ([]byte, error) {
	if e.mode == Base85 {
		return decode85(s)
	}
	return e.decode64(s)
}

func (e *Encoding) encode64(src []byte) []byte {
	out := make([]byte, 0, e.EncodedLen(len(src)))
	for len(src) >= 3 {
		v := uint32(src[0])<<16 | uint32(src[1])<<8 | uint32(src[2])
		out = append(out,
			e.alphabet[v>>18&0x3F], e.alphabet[v>>12&0x3F],
			e.alphabet[v>>6&0x3F], e.alphabet[v&0x3F])
		src = src[3:]
	}
	switch len(src) {
	case 1:
		v := uint32(src[0]) << 16
		out = append(out, e.alphabet[v>>18&0x3F], e.alphabet[v>>12&0x3F], '=', '=')
	case 2:
		v := uint32(src[0])<<16 | uint32(src[1])<<8
		out = append(out, e.alphabet[v>>18&0x3F], e.alphabet[v>>12&0x3F], e.alphabet[v>>6&0x3F], '=')
	}
	return out
}

func (e *Encoding) decode64(s string) ([]byte, error) {
	out := make([]byte, 0, len(s)/4*3)
	var quad [4]byte
	var pos [4]int64
	n := 0
	seenPad := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\n' || c == '\r' {
			continue
		}
		if c == '=' {
			if n < 2 {
				return nil, CorruptInputError(i)
			}
			seenPad++
			quad[n] = 0
			pos[n] = int64(i)
			n++
		} else {
			if seenPad > 0 {
				// Data after padding.
				return nil, CorruptInputError(i)
			}
			v := e.decode[c]
			if v == 0xFF {
				return nil, CorruptInputError(i)
			}
			quad[n] = v
			pos[n] = int64(i)
			n++
		}
		if n == 4 {
			v := uint32(quad[0])<<18 | uint32(quad[1])<<12 | uint32(quad[2])<<6 | uint32(quad[3])
			switch seenPad {
			case 0:
				out = append(out, byte(v>>16), byte(v>>8), byte(v))
			case 1:
				out = append(out, byte(v>>16), byte(v>>8))
			case 2:
				out = append(out, byte(v>>16))
			default:
				return nil, CorruptInputError(pos[1])
			}
			n = 0
		}
	}
	if n != 0 {
		// Truncated final quantum.
		return nil, CorruptInputError(int64(len(s)))
	}
	return out, nil
}
