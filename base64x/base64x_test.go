package base64x

// Copyright © 2026 The CryptoXR Authors. Licensed under the Apache-2.0 license.

import (
	"bytes"
	"encoding/ascii85"
	"encoding/base64"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomCorpus(seed int64, sizes []int) [][]byte {
	rnd := rand.New(rand.NewSource(seed))
	out := make([][]byte, 0, len(sizes))
	for _, n := range sizes {
		m := make([]byte, n)
		rnd.Read(m)
		out = append(out, m)
	}
	return out
}

func TestStandardMatchesStdlib(t *testing.T) {
	for _, msg := range randomCorpus(1, []int{0, 1, 2, 3, 4, 31, 32, 33, 300}) {
		want := base64.StdEncoding.EncodeToString(msg)
		require.Equal(t, want, StdEncoding.EncodeToString(msg))

		got, err := StdEncoding.DecodeString(want)
		require.NoError(t, err)
		require.Equal(t, msg, got)
	}
}

func TestStandardDecodesWrapped(t *testing.T) {
	msg := bytes.Repeat([]byte{0xDE, 0xAD, 0xBE}, 60)
	wrapped := StdEncoding.WithLineBreaks().EncodeToString(msg)
	require.Contains(t, wrapped, "\n")
	for _, line := range strings.Split(wrapped, "\n") {
		require.LessOrEqual(t, len(line), wrapBase64)
	}
	got, err := StdEncoding.DecodeString(wrapped)
	require.NoError(t, err)
	require.Equal(t, msg, got)
}

func TestObfuscatedRoundTrip(t *testing.T) {
	for _, msg := range randomCorpus(2, []int{0, 1, 2, 3, 17, 256}) {
		enc := ObfEncoding.EncodeToString(msg)
		got, err := ObfEncoding.DecodeString(enc)
		require.NoError(t, err)
		require.Equal(t, msg, got)
	}
}

func TestObfuscatedDiffersFromStandard(t *testing.T) {
	msg := []byte("attack at dawn")
	require.NotEqual(t, StdEncoding.EncodeToString(msg), ObfEncoding.EncodeToString(msg))
	// Same length though: it is still Base64.
	require.Len(t, ObfEncoding.EncodeToString(msg), len(StdEncoding.EncodeToString(msg)))
}

func TestObfuscatedDefaultAlphabet(t *testing.T) {
	// Value 0 renders as 'Z', value 63 as '/': the letter and digit runs
	// are reversed, the symbols stay put.
	require.Equal(t, "ZW//", ObfEncoding.EncodeToString([]byte{0x00, 0xFF, 0xFF}))
	require.Equal(t, byte('Z'), ObfEncoding.alphabet[0])
	require.Equal(t, byte('/'), ObfEncoding.alphabet[63])
}

func TestKeyedEncoding(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, KeySize)
	e1, err := NewKeyedEncoding(key)
	require.NoError(t, err)
	e2, err := NewKeyedEncoding(key)
	require.NoError(t, err)

	// Deterministic per key.
	msg := []byte("the magic words are squeamish ossifrage")
	require.Equal(t, e1.EncodeToString(msg), e2.EncodeToString(msg))

	// The alphabet is a permutation of the standard one.
	seen := map[byte]bool{}
	for _, c := range e1.alphabet {
		require.False(t, seen[c])
		seen[c] = true
		require.Contains(t, stdAlphabet, string(c))
	}

	got, err := e1.DecodeString(e1.EncodeToString(msg))
	require.NoError(t, err)
	require.Equal(t, msg, got)

	// A different key yields a different rendering.
	other, err := NewKeyedEncoding(bytes.Repeat([]byte{0x43}, KeySize))
	require.NoError(t, err)
	require.NotEqual(t, e1.EncodeToString(msg), other.EncodeToString(msg))

	_, err = NewKeyedEncoding([]byte("short"))
	require.Error(t, err)
}

func TestBase85MatchesAscii85(t *testing.T) {
	for _, msg := range randomCorpus(3, []int{1, 2, 3, 4, 5, 16, 99}) {
		// encoding/ascii85 folds all-zero groups to 'z'; keep the
		// comparison corpus free of them.
		for i := range msg {
			msg[i] |= 0x01
		}
		dst := make([]byte, ascii85.MaxEncodedLen(len(msg)))
		n := ascii85.Encode(dst, msg)
		require.Equal(t, string(dst[:n]), B85Encoding.EncodeToString(msg))

		got, err := B85Encoding.DecodeString(string(dst[:n]))
		require.NoError(t, err)
		require.Equal(t, msg, got)
	}
}

func TestBase85RoundTripWithZeros(t *testing.T) {
	for _, msg := range [][]byte{
		make([]byte, 4),
		make([]byte, 9),
		{0, 0, 0, 0, 1},
		bytes.Repeat([]byte{0}, 100),
	} {
		enc := B85Encoding.EncodeToString(msg)
		require.NotContains(t, enc, "z")
		got, err := B85Encoding.DecodeString(enc)
		require.NoError(t, err)
		require.Equal(t, msg, got)
	}
}

func TestBase85PartialGroupLengths(t *testing.T) {
	// n trailing bytes must render as n+1 digits.
	for n := 1; n <= 4; n++ {
		msg := bytes.Repeat([]byte{0x7F}, n)
		require.Len(t, B85Encoding.EncodeToString(msg), n+1)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		enc *Encoding
		in  string
		off int64
	}{
		{StdEncoding, "ab!d", 2},
		{StdEncoding, "abc", 3},     // truncated quantum
		{StdEncoding, "=abc", 0},    // padding first
		{StdEncoding, "ab==cd", 4},  // data after padding
		{B85Encoding, "ab\x00cd", 2},
		{B85Encoding, "uuuuu", 4},   // group value overflows 32 bits
		{B85Encoding, "!", 1},       // lone digit
	}
	for _, c := range cases {
		_, err := c.enc.DecodeString(c.in)
		require.Error(t, err, c.in)
		var corrupt CorruptInputError
		require.ErrorAs(t, err, &corrupt, c.in)
		require.Equal(t, c.off, int64(corrupt), c.in)
	}
}

func TestEncodedLen(t *testing.T) {
	for n := 0; n < 40; n++ {
		msg := make([]byte, n)
		require.Len(t, StdEncoding.EncodeToString(msg), StdEncoding.EncodedLen(n), "base64 n=%d", n)
		require.Len(t, B85Encoding.EncodeToString(msg), B85Encoding.EncodedLen(n), "base85 n=%d", n)
	}
}
