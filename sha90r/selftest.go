package sha90r

// Copyright © 2026 The CryptoXR Authors. Licensed under the Apache-2.0 license.

import (
	"crypto/subtle"
	"encoding/hex"

	"github.com/pkg/errors"
)

// selfTestVector is the digest of "abc".
const selfTestVector = "d2946a449bd98c1c6ba9534c7d440d14e0fae19e55c8ed8cb0f2ef753f87420b"

// SelfTest recomputes a known-answer digest on every available backend and
// fails if any disagrees with the pinned value.
func SelfTest() error {
	want, err := hex.DecodeString(selfTestVector)
	if err != nil {
		return errors.Wrap(err, "sha90r: self-test vector")
	}
	for _, b := range Backends() {
		got := SumWithBackend(b, Secure, []byte("abc"))
		if subtle.ConstantTimeCompare(got[:], want) != 1 {
			return errors.Errorf("sha90r: self-test failed on backend %s: got %x", b, got)
		}
	}
	return nil
}
