package sha90r

// Copyright © 2026 The CryptoXR Authors. Licensed under the Apache-2.0 license.

import (
	"encoding/hex"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBatchPreservesOrder(t *testing.T) {
	msgs := [][]byte{
		[]byte("abc"),
		{},
		[]byte("foobar"),
		make([]byte, 300),
	}
	got := Batch(msgs)
	require.Len(t, got, len(msgs))
	for i, m := range msgs {
		require.Equal(t, Sum90R(m), got[i], "index %d", i)
	}
}

func TestBatchParallelMatchesSequential(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	msgs := make([][]byte, 64)
	for i := range msgs {
		msgs[i] = make([]byte, rnd.Intn(2048))
		rnd.Read(msgs[i])
	}
	want := Batch(msgs)
	got, err := BatchParallel(msgs)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestTreeSumSmallEqualsSum(t *testing.T) {
	msg := make([]byte, TreeChunkSize)
	rand.New(rand.NewSource(6)).Read(msg)
	require.Equal(t, Sum90R(msg), TreeSum(msg, 0))
}

func TestTreeSumKnownAnswer(t *testing.T) {
	msg := make([]byte, 200000)
	for i := range msg {
		msg[i] = byte(i*31 + 7)
	}
	got := TreeSum(msg, 0)
	require.Equal(t,
		"3180aea8edc72cb0edb5eb9ab847265c34730aa0a5d19a843cefcdbc0c0033af",
		hex.EncodeToString(got[:]))
	// The tree digest is its own function of the message, not a faster Sum90R.
	require.NotEqual(t, Sum90R(msg), got)
}

func TestTreeSumOddLeafDuplicated(t *testing.T) {
	// Three chunks: the merge pairs (0,1) and (2,2).
	msg := make([]byte, 3*128)
	rand.New(rand.NewSource(8)).Read(msg)

	l0 := Sum90R(msg[0:128])
	l1 := Sum90R(msg[128:256])
	l2 := Sum90R(msg[256:384])
	m01 := Sum90R(append(append([]byte{}, l0[:]...), l1[:]...))
	m22 := Sum90R(append(append([]byte{}, l2[:]...), l2[:]...))
	want := Sum90R(append(append([]byte{}, m01[:]...), m22[:]...))

	require.Equal(t, want, TreeSum(msg, 128))
}
