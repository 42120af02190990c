// Package blowfishxr implements Blowfish and its extended-round variant
// Blowfish-XR, which runs 32 Feistel rounds over a 34-entry P-array. The
// extra P entries continue the pi-digit stream the standard tables come
// from, so the 16-round cipher is exactly classic Blowfish and the 32-round
// cipher degrades nothing but speed. Both satisfy crypto/cipher.Block.
package blowfishxr

// Copyright © 2026 The CryptoXR Authors. Licensed under the Apache-2.0 license.

import (
	"encoding/binary"
	"strconv"
)

// BlockSize is the Blowfish block size in bytes.
const BlockSize = 8

// KeySizeError reports a key length outside 1..56 bytes.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "blowfishxr: invalid key size " + strconv.Itoa(int(k))
}

// Cipher is classic 16-round Blowfish.
type Cipher struct {
	p [18]uint32
	s [4][256]uint32
}

// CipherXR is the 32-round variant.
type CipherXR struct {
	p [34]uint32
	s [4][256]uint32
}

// NewCipher expands key (1 to 56 bytes) into a 16-round cipher.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) < 1 || len(key) > 56 {
		return nil, KeySizeError(len(key))
	}
	c := &Cipher{p: initP, s: initS}
	expandKey(key, c.p[:], &c.s)
	return c, nil
}

// NewCipherXR expands key (1 to 56 bytes) into a 32-round cipher.
func NewCipherXR(key []byte) (*CipherXR, error) {
	if len(key) < 1 || len(key) > 56 {
		return nil, KeySizeError(len(key))
	}
	c := &CipherXR{s: initS}
	copy(c.p[:18], initP[:])
	copy(c.p[18:], initPExtra[:])
	expandKey(key, c.p[:], &c.s)
	return c, nil
}

func (c *Cipher) BlockSize() int   { return BlockSize }
func (c *CipherXR) BlockSize() int { return BlockSize }

// Encrypt encrypts the 8-byte block src into dst.
func (c *Cipher) Encrypt(dst, src []byte) {
	l, r := getBlock(src)
	l, r = encryptBlock(c.p[:], &c.s, l, r)
	putBlock(dst, l, r)
}

// Decrypt decrypts the 8-byte block src into dst.
func (c *Cipher) Decrypt(dst, src []byte) {
	l, r := getBlock(src)
	l, r = decryptBlock(c.p[:], &c.s, l, r)
	putBlock(dst, l, r)
}

// Encrypt encrypts the 8-byte block src into dst.
func (c *CipherXR) Encrypt(dst, src []byte) {
	l, r := getBlock(src)
	l, r = encryptBlock(c.p[:], &c.s, l, r)
	putBlock(dst, l, r)
}

// Decrypt decrypts the 8-byte block src into dst.
func (c *CipherXR) Decrypt(dst, src []byte) {
	l, r := getBlock(src)
	l, r = decryptBlock(c.p[:], &c.s, l, r)
	putBlock(dst, l, r)
}

func getBlock(b []byte) (uint32, uint32) {
	return binary.BigEndian.Uint32(b), binary.BigEndian.Uint32(b[4:])
}

func putBlock(b []byte, l, r uint32) {
	binary.BigEndian.PutUint32(b, l)
	binary.BigEndian.PutUint32(b[4:], r)
}

func feistel(s *[4][256]uint32, x uint32) uint32 {
	return ((s[0][x>>24] + s[1][x>>16&0xFF]) ^ s[2][x>>8&0xFF]) + s[3][x&0xFF]
}

// encryptBlock runs len(p)-2 rounds.
func encryptBlock(p []uint32, s *[4][256]uint32, l, r uint32) (uint32, uint32) {
	n := len(p) - 2
	for i := 0; i < n; i++ {
		l ^= p[i]
		r ^= feistel(s, l)
		l, r = r, l
	}
	l, r = r, l
	r ^= p[n]
	l ^= p[n+1]
	return l, r
}

func decryptBlock(p []uint32, s *[4][256]uint32, l, r uint32) (uint32, uint32) {
	n := len(p) - 2
	for i := n + 1; i > 1; i-- {
		l ^= p[i]
		r ^= feistel(s, l)
		l, r = r, l
	}
	l, r = r, l
	r ^= p[1]
	l ^= p[0]
	return l, r
}

// expandKey folds the key into p, then replaces every entry of p and the
// S-boxes with successive encryptions of a running zero block.
func expandKey(key []byte, p []uint32, s *[4][256]uint32) {
	j := 0
	for i := range p {
		var d uint32
		for k := 0; k < 4; k++ {
			d = d<<8 | uint32(key[j])
			j++
			if j >= len(key) {
				j = 0
			}
		}
		p[i] ^= d
	}
	var l, r uint32
	for i := 0; i < len(p); i += 2 {
		l, r = encryptBlock(p, s, l, r)
		p[i], p[i+1] = l, r
	}
	for b := range s {
		for i := 0; i < 256; i += 2 {
			l, r = encryptBlock(p, s, l, r)
			s[b][i], s[b][i+1] = l, r
		}
	}
}
