package base64x

// Copyright © 2026 The CryptoXR Authors. Licensed under the Apache-2.0 license.

import (
	"github.com/aead/chacha20/chacha"
	"github.com/pkg/errors"
)

// KeySize is the key length NewKeyedEncoding accepts.
const KeySize = chacha.KeySize

// NewKeyedEncoding returns an Obfuscated codec whose alphabet permutation is
// derived from key: a ChaCha20 keystream drives a Fisher-Yates shuffle of
// the standard alphabet. The same key always yields the same permutation.
// This hides the rendering from casual inspection; it is obfuscation, not
// encryption.
func NewKeyedEncoding(key []byte) (*Encoding, error) {
	if len(key) != KeySize {
		return nil, errors.Errorf("base64x: keyed encoding needs a %d-byte key, got %d", KeySize, len(key))
	}
	var nonce [chacha.NonceSize]byte
	stream := make([]byte, 64)
	chacha.XORKeyStream(stream, stream, nonce[:], key, 20)

	e := newBase64(Obfuscated, stdAlphabet)
	for i := 63; i > 0; i-- {
		j := int(stream[i]) % (i + 1)
		e.alphabet[i], e.alphabet[j] = e.alphabet[j], e.alphabet[i]
	}
	for i := range e.decode {
		e.decode[i] = 0xFF
	}
	for i, c := range e.alphabet {
		e.decode[c] = byte(i)
	}
	return e, nil
}
