package aesxr

// Copyright © 2026 The CryptoXR Authors. Licensed under the Apache-2.0 license.

import (
	"crypto/cipher"
	"encoding/hex"
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// Vectors computed with a reference engine validated against the FIPS-197
// examples at standard round counts, then run at the extended counts.
func TestKnownAnswers(t *testing.T) {
	pt, _ := hex.DecodeString("00112233445566778899aabbccddeeff")
	cases := []struct {
		key    string
		rounds int
		ct     string
	}{
		{"000102030405060708090a0b0c0d0e0f", 20,
			"0e09bdfbcd72e70d062adc602ca8db54"},
		{"000102030405060708090a0b0c0d0e0f1011121314151617", 24,
			"ced1fb7cacae6f6b160bcd939127be89"},
		{"000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f", 28,
			"135fe63a2eefcd883ffa0f1b156e0d55"},
	}
	for _, k := range cases {
		key, _ := hex.DecodeString(k.key)
		c, err := NewCipher(key)
		require.NoError(t, err)
		require.Equal(t, k.rounds, c.Rounds())

		ct := make([]byte, BlockSize)
		c.Encrypt(ct, pt)
		require.Equal(t, k.ct, hex.EncodeToString(ct))

		got := make([]byte, BlockSize)
		c.Decrypt(got, ct)
		require.Equal(t, pt, got)
	}
}

func TestDiffersFromStandardAES(t *testing.T) {
	// FIPS-197 C.1: the 10-round ciphertext. Ten extra rounds must not
	// reproduce it.
	key, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	pt, _ := hex.DecodeString("00112233445566778899aabbccddeeff")
	c, err := NewCipher(key)
	require.NoError(t, err)
	ct := make([]byte, BlockSize)
	c.Encrypt(ct, pt)
	require.NotEqual(t, "69c4e0d86a7b0430d8cdb78070b4c55a", hex.EncodeToString(ct))
}

func TestRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, kl := range []int{16, 24, 32} {
		key := make([]byte, kl)
		rnd.Read(key)
		c, err := NewCipher(key)
		require.NoError(t, err)
		for trial := 0; trial < 20; trial++ {
			pt := make([]byte, BlockSize)
			rnd.Read(pt)
			ct := make([]byte, BlockSize)
			c.Encrypt(ct, pt)
			require.NotEqual(t, pt, ct)
			got := make([]byte, BlockSize)
			c.Decrypt(got, ct)
			require.Equal(t, pt, got)
		}
	}
}

func TestAvalanche(t *testing.T) {
	key := make([]byte, 16)
	pt := make([]byte, BlockSize)
	rnd := rand.New(rand.NewSource(2))
	rnd.Read(key)
	rnd.Read(pt)
	c, err := NewCipher(key)
	require.NoError(t, err)

	base := make([]byte, BlockSize)
	c.Encrypt(base, pt)

	var flipped, total int
	for bit := 0; bit < 128; bit++ {
		pt[bit/8] ^= 1 << (bit % 8)
		ct := make([]byte, BlockSize)
		c.Encrypt(ct, pt)
		pt[bit/8] ^= 1 << (bit % 8)
		for i := range ct {
			flipped += bits.OnesCount8(ct[i] ^ base[i])
		}
		total += BlockSize * 8
	}
	require.InDelta(t, 0.5, float64(flipped)/float64(total), 0.05)
}

func TestKeySizeErrors(t *testing.T) {
	for _, n := range []int{0, 8, 15, 17, 33, 56} {
		_, err := NewCipher(make([]byte, n))
		var kerr KeySizeError
		require.ErrorAs(t, err, &kerr)
		require.Equal(t, n, int(kerr))
	}
}

func TestSatisfiesCipherBlock(t *testing.T) {
	c, err := NewCipher(make([]byte, 32))
	require.NoError(t, err)
	var blk cipher.Block = c
	require.Equal(t, BlockSize, blk.BlockSize())

	iv := make([]byte, BlockSize)
	stream := cipher.NewCTR(blk, iv)
	msg := []byte("counter mode over aes-xr blocks!")
	ct := make([]byte, len(msg))
	stream.XORKeyStream(ct, msg)

	dec := cipher.NewCTR(blk, iv)
	got := make([]byte, len(ct))
	dec.XORKeyStream(got, ct)
	require.Equal(t, msg, got)
}
