package blowfishxr

// Copyright © 2026 The CryptoXR Authors. Licensed under the Apache-2.0 license.

import (
	"crypto/cipher"
	"encoding/hex"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blowfish"
)

func TestStandardKnownAnswers(t *testing.T) {
	// Schneier's published vectors.
	cases := []struct{ key, pt, ct string }{
		{"0000000000000000", "0000000000000000", "4ef997456198dd78"},
		{"0123456789abcdef", "1111111111111111", "61f9c3802281b096"},
	}
	for _, k := range cases {
		key, _ := hex.DecodeString(k.key)
		pt, _ := hex.DecodeString(k.pt)
		c, err := NewCipher(key)
		require.NoError(t, err)
		ct := make([]byte, BlockSize)
		c.Encrypt(ct, pt)
		require.Equal(t, k.ct, hex.EncodeToString(ct))
	}
}

func TestStandardMatchesXCrypto(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for trial := 0; trial < 50; trial++ {
		key := make([]byte, 1+rnd.Intn(56))
		rnd.Read(key)
		mine, err := NewCipher(key)
		require.NoError(t, err)
		ref, err := blowfish.NewCipher(key)
		require.NoError(t, err)

		pt := make([]byte, BlockSize)
		rnd.Read(pt)
		a := make([]byte, BlockSize)
		b := make([]byte, BlockSize)
		mine.Encrypt(a, pt)
		ref.Encrypt(b, pt)
		require.Equal(t, b, a, "key length %d", len(key))

		mine.Decrypt(a, a)
		require.Equal(t, pt, a)
	}
}

func TestXRKnownAnswers(t *testing.T) {
	key := make([]byte, 24)
	for i := range key {
		key[i] = byte(i + 1)
	}
	c, err := NewCipherXR(key)
	require.NoError(t, err)
	pt, _ := hex.DecodeString("0123456789abcdef")
	ct := make([]byte, BlockSize)
	c.Encrypt(ct, pt)
	require.Equal(t, "1f1e23a864c17ad9", hex.EncodeToString(ct))

	z, err := NewCipherXR(make([]byte, 8))
	require.NoError(t, err)
	z.Encrypt(ct, make([]byte, BlockSize))
	require.Equal(t, "8e33a8e18dab2202", hex.EncodeToString(ct))
}

func TestXRRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for trial := 0; trial < 50; trial++ {
		key := make([]byte, 1+rnd.Intn(56))
		rnd.Read(key)
		c, err := NewCipherXR(key)
		require.NoError(t, err)

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

func TestXRDiffersFromStandard(t *testing.T) {
	key := []byte("extended rounds")
	std, err := NewCipher(key)
	require.NoError(t, err)
	xr, err := NewCipherXR(key)
	require.NoError(t, err)

	pt := []byte("8bytes!!")
	a := make([]byte, BlockSize)
	b := make([]byte, BlockSize)
	std.Encrypt(a, pt)
	xr.Encrypt(b, pt)
	require.NotEqual(t, a, b)
}

func TestKeySizeErrors(t *testing.T) {
	for _, key := range [][]byte{nil, make([]byte, 57)} {
		_, err := NewCipher(key)
		require.Error(t, err)
		_, err = NewCipherXR(key)
		require.Error(t, err)
		var kerr KeySizeError
		require.ErrorAs(t, err, &kerr)
		require.Equal(t, len(key), int(kerr))
	}
}

func TestSatisfiesCipherBlock(t *testing.T) {
	c, err := NewCipherXR([]byte("some key"))
	require.NoError(t, err)
	var blk cipher.Block = c
	require.Equal(t, BlockSize, blk.BlockSize())

	// Usable under a stdlib block mode.
	iv := make([]byte, BlockSize)
	enc := cipher.NewCBCEncrypter(blk, iv)
	dec := cipher.NewCBCDecrypter(blk, iv)
	msg := []byte("sixteen byte msg")
	ct := make([]byte, len(msg))
	enc.CryptBlocks(ct, msg)
	got := make([]byte, len(msg))
	dec.CryptBlocks(got, ct)
	require.Equal(t, msg, got)
}
