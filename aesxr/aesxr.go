// Package aesxr implements AES-XR, an AES variant with doubled round
// counts: 20, 24, or 28 rounds for 128-, 192- or 256-bit keys. The key
// schedule is the FIPS-197 recurrence continued to the longer schedule, with
// the Rcon sequence extended by further doubling in GF(2^8).
//
// The implementation uses table lookups and is not constant-time; treat it
// as an accelerated primitive, not a hardened one.
package aesxr

// Copyright © 2026 The CryptoXR Authors. Licensed under the Apache-2.0 license.

import "strconv"

// BlockSize is the AES block size in bytes.
const BlockSize = 16

// KeySizeError reports a key length other than 16, 24 or 32 bytes.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "aesxr: invalid key size " + strconv.Itoa(int(k))
}

// Cipher is an expanded AES-XR key. It satisfies crypto/cipher.Block.
type Cipher struct {
	rounds int
	// round keys, 16 bytes per round plus the initial whitening key
	rk []byte
}

// Rounds reports the round count selected by the key length.
func (c *Cipher) Rounds() int { return c.rounds }

// BlockSize returns 16.
func (c *Cipher) BlockSize() int { return BlockSize }

// NewCipher expands a 16-, 24- or 32-byte key into a 20-, 24- or 28-round
// cipher.
func NewCipher(key []byte) (*Cipher, error) {
	var rounds int
	switch len(key) {
	case 16:
		rounds = 20
	case 24:
		rounds = 24
	case 32:
		rounds = 28
	default:
		return nil, KeySizeError(len(key))
	}
	c := &Cipher{rounds: rounds, rk: expandKey(key, rounds)}
	return c, nil
}

func xtime(a byte) byte {
	if a&0x80 != 0 {
		return a<<1 ^ 0x1B
	}
	return a << 1
}

func gmul(a, b byte) byte {
	var r byte
	for b != 0 {
		if b&1 != 0 {
			r ^= a
		}
		a = xtime(a)
		b >>= 1
	}
	return r
}

// expandKey runs the standard recurrence out to 4*(rounds+1) words. Rcon
// passes 0x80 on long schedules and wraps through the reduction polynomial,
// which is exactly what continued xtime doubling produces.
func expandKey(key []byte, rounds int) []byte {
	nk := len(key) / 4
	total := 4 * (rounds + 1)
	w := make([]byte, total*4)
	copy(w, key)

	rcon := byte(1)
	for i := nk; i < total; i++ {
		var t [4]byte
		copy(t[:], w[(i-1)*4:i*4])
		if i%nk == 0 {
			t[0], t[1], t[2], t[3] = sbox[t[1]]^rcon, sbox[t[2]], sbox[t[3]], sbox[t[0]]
			rcon = xtime(rcon)
		} else if nk > 6 && i%nk == 4 {
			t[0], t[1], t[2], t[3] = sbox[t[0]], sbox[t[1]], sbox[t[2]], sbox[t[3]]
		}
		for j := 0; j < 4; j++ {
			w[i*4+j] = w[(i-nk)*4+j] ^ t[j]
		}
	}
	return w
}

// The state is column-major: state[4*c+r] holds row r of column c, matching
// the byte order of the input block.

func addRoundKey(st *[16]byte, rk []byte) {
	for i := range st {
		st[i] ^= rk[i]
	}
}

func subBytes(st *[16]byte, box *[256]byte) {
	for i := range st {
		st[i] = box[st[i]]
	}
}

func shiftRows(st *[16]byte) {
	var out [16]byte
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[4*c+r] = st[4*((c+r)%4)+r]
		}
	}
	*st = out
}

func invShiftRows(st *[16]byte) {
	var out [16]byte
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[4*((c+r)%4)+r] = st[4*c+r]
		}
	}
	*st = out
}

func mixColumns(st *[16]byte) {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := st[4*c], st[4*c+1], st[4*c+2], st[4*c+3]
		st[4*c] = gmul(a0, 2) ^ gmul(a1, 3) ^ a2 ^ a3
		st[4*c+1] = a0 ^ gmul(a1, 2) ^ gmul(a2, 3) ^ a3
		st[4*c+2] = a0 ^ a1 ^ gmul(a2, 2) ^ gmul(a3, 3)
		st[4*c+3] = gmul(a0, 3) ^ a1 ^ a2 ^ gmul(a3, 2)
	}
}

func invMixColumns(st *[16]byte) {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := st[4*c], st[4*c+1], st[4*c+2], st[4*c+3]
		st[4*c] = gmul(a0, 14) ^ gmul(a1, 11) ^ gmul(a2, 13) ^ gmul(a3, 9)
		st[4*c+1] = gmul(a0, 9) ^ gmul(a1, 14) ^ gmul(a2, 11) ^ gmul(a3, 13)
		st[4*c+2] = gmul(a0, 13) ^ gmul(a1, 9) ^ gmul(a2, 14) ^ gmul(a3, 11)
		st[4*c+3] = gmul(a0, 11) ^ gmul(a1, 13) ^ gmul(a2, 9) ^ gmul(a3, 14)
	}
}

// Encrypt encrypts the 16-byte block src into dst.
func (c *Cipher) Encrypt(dst, src []byte) {
	var st [16]byte
	copy(st[:], src)
	addRoundKey(&st, c.rk[:16])
	for rnd := 1; rnd < c.rounds; rnd++ {
		subBytes(&st, &sbox)
		shiftRows(&st)
		mixColumns(&st)
		addRoundKey(&st, c.rk[rnd*16:rnd*16+16])
	}
	subBytes(&st, &sbox)
	shiftRows(&st)
	addRoundKey(&st, c.rk[c.rounds*16:c.rounds*16+16])
	copy(dst, st[:])
}

// Decrypt decrypts the 16-byte block src into dst.
func (c *Cipher) Decrypt(dst, src []byte) {
	var st [16]byte
	copy(st[:], src)
	addRoundKey(&st, c.rk[c.rounds*16:c.rounds*16+16])
	for rnd := c.rounds - 1; rnd > 0; rnd-- {
		invShiftRows(&st)
		subBytes(&st, &invSbox)
		addRoundKey(&st, c.rk[rnd*16:rnd*16+16])
		invMixColumns(&st)
	}
	invShiftRows(&st)
	subBytes(&st, &invSbox)
	addRoundKey(&st, c.rk[:16])
	copy(dst, st[:])
}
