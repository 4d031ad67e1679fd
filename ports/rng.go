package ports

import (
	"context"
	"math/rand"
)

// RNGPort provides seeded random number generation for deterministic
// resampling. Every bootstrap stream is derived from (variable, seed) so the
// same configuration reproduces the same intervals regardless of scheduling.
type RNGPort interface {
	// SeededStream creates a deterministic random number generator for a named operation
	SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error)

	// Stream creates a deterministic RNG stream for one worker chunk of a
	// named operation. Chunked streams let resampling run in parallel while
	// keeping the overall result byte-identical.
	Stream(ctx context.Context, name string, chunk int, baseSeed int64) (*rand.Rand, error)
}
