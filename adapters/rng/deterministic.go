// Package rng implements the RNG port with plain math/rand streams derived
// deterministically from a base seed and a stream name.
package rng

import (
	"context"
	"hash/fnv"
	"math/rand"

	"hypotest/ports"
)

// Deterministic derives independent rand streams from (name, seed) pairs.
type Deterministic struct{}

// New creates a deterministic RNG adapter.
func New() *Deterministic {
	return &Deterministic{}
}

// SeededStream returns a generator for a named operation.
func (d *Deterministic) SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return rand.New(rand.NewSource(mix(name, 0, seed))), nil
}

// Stream returns a generator for one worker chunk of a named operation.
func (d *Deterministic) Stream(ctx context.Context, name string, chunk int, baseSeed int64) (*rand.Rand, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return rand.New(rand.NewSource(mix(name, chunk, baseSeed))), nil
}

// mix folds the stream identity into the seed so distinct names and chunks
// never share a stream even with small seeds.
func mix(name string, chunk int, seed int64) int64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	h.Write([]byte{byte(chunk), byte(chunk >> 8), byte(chunk >> 16), byte(chunk >> 24)})
	return seed ^ int64(h.Sum64())
}

var _ ports.RNGPort = (*Deterministic)(nil)
