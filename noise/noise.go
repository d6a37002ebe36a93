// Package noise injects deterministic bit errors into a coded stream, the
// validation step for the channel coder.
package noise

import (
	"math/rand"

	"github.com/harlequix/bitpipe/internal/bits"
)

// Inject flips one bit every interval bits and returns a fresh stream; the
// input is never touched. An empty stream or a non-positive interval is a
// no-op copy.
//
// The start offset is the first rand.Intn(interval) draw of a math/rand
// source seeded with seed (0 when interval is 1), so identical arguments
// always yield identical streams. The generator is created per call, runs
// never share it.
func Inject(stream *bits.Stream, interval int, seed int64) *bits.Stream {
	out := stream.Clone()
	if out.Len() == 0 || interval <= 0 {
		return out
	}

	start := 0
	if interval > 1 {
		rng := rand.New(rand.NewSource(seed))
		start = rng.Intn(interval)
	}
	for i := start; i < out.Len(); i += interval {
		out.Flip(i)
	}
	return out
}
