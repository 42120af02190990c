package sha90r

// Copyright © 2026 The CryptoXR Authors. Licensed under the Apache-2.0 license.

import (
	"runtime"
	"sync"

	"github.com/panjf2000/ants"
	"github.com/pkg/errors"
)

// TreeChunkSize is the default leaf size of TreeSum.
const TreeChunkSize = 64 << 10

// Batch hashes each message independently and returns the digests in input
// order.
func Batch(msgs [][]byte) [][Size]byte {
	out := make([][Size]byte, len(msgs))
	for i, m := range msgs {
		out[i] = Sum90R(m)
	}
	return out
}

// BatchParallel is Batch over a worker pool. Digests land at the index of
// their message regardless of completion order, so the result is identical
// to Batch.
func BatchParallel(msgs [][]byte) ([][Size]byte, error) {
	out := make([][Size]byte, len(msgs))
	pool, err := ants.NewPool(runtime.NumCPU())
	if err != nil {
		return nil, errors.Wrap(err, "sha90r: batch pool")
	}
	defer pool.Release()

	wg := sync.WaitGroup{}
	for i := range msgs {
		i := i
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			out[i] = Sum90R(msgs[i])
		}); err != nil {
			// Pool refused the task; do it here rather than drop it.
			out[i] = Sum90R(msgs[i])
			wg.Done()
		}
	}
	wg.Wait()
	return out, nil
}

// TreeSum hashes msg as a tree: leaves are digests of chunkSize-byte spans,
// merged pairwise until one digest remains, with an odd trailing leaf paired
// with itself. Messages of at most one chunk hash identically to Sum90R;
// beyond that the tree digest is a different function of the message and is
// never a drop-in substitute for Sum90R. chunkSize <= 0 selects
// TreeChunkSize.
func TreeSum(msg []byte, chunkSize int) [Size]byte {
	if chunkSize <= 0 {
		chunkSize = TreeChunkSize
	}
	if len(msg) <= chunkSize {
		return Sum90R(msg)
	}

	chunks := make([][]byte, 0, (len(msg)+chunkSize-1)/chunkSize)
	for off := 0; off < len(msg); off += chunkSize {
		end := off + chunkSize
		if end > len(msg) {
			end = len(msg)
		}
		chunks = append(chunks, msg[off:end])
	}
	leaves, err := BatchParallel(chunks)
	if err != nil {
		leaves = Batch(chunks)
	}

	for len(leaves) > 1 {
		next := make([][Size]byte, 0, (len(leaves)+1)/2)
		var pair [2 * Size]byte
		for i := 0; i < len(leaves); i += 2 {
			a := leaves[i]
			b := a
			if i+1 < len(leaves) {
				b = leaves[i+1]
			}
			copy(pair[:Size], a[:])
			copy(pair[Size:], b[:])
			next = append(next, Sum90R(pair[:]))
		}
		leaves = next
	}
	return leaves[0]
}
