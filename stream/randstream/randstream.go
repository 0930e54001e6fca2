package randstream

import (
	"io"
	"math/rand/v2"

	"github.com/MorganMcmillan/FusedReader/stream"
)

// Deterministic pseudo random streams.
// Used for testing and benchmarking fused readers without fixture files.

// New returns an in-memory stream of size pseudo random bytes derived
// from seed. Two streams built with the same seed and size hold
// identical contents.
func New(seed string, size int64) (s stream.Stream) {
	return stream.FromBytes(Bytes(seed, size))
}

// Bytes returns the contents a stream built from seed and size would
// yield, for asserting against in tests.
func Bytes(seed string, size int64) (data []byte) {
	var key [32]byte
	copy(key[:], seed)

	data = make([]byte, size)
	io.ReadFull(rand.NewChaCha8(key), data)
	return data
}
