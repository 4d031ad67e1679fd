// Package testkit generates deterministic synthetic samples for tests.
// Shapes are built from distribution quantiles plus a small seeded jitter,
// so distributional properties (normality verdicts, group separation) are
// stable across runs instead of depending on sampling luck.
package testkit

import (
	"math"
	"math/rand"

	"hypotest/adapters/stats/dist"
	"hypotest/domain/core"
	"hypotest/domain/sample"
)

// NormalValues returns n observations tracking N(mean, sd^2) closely: the
// evenly-spaced normal quantiles with 1% jitter from the seed.
func NormalValues(n int, mean, sd float64, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		q := dist.NormalQuantile((float64(i) + 0.5) / float64(n))
		values[i] = mean + sd*q + 0.01*sd*rng.NormFloat64()
	}
	rng.Shuffle(n, func(i, j int) { values[i], values[j] = values[j], values[i] })
	return values
}

// SkewedValues returns n strongly right-skewed observations (lognormal
// quantiles with jitter) that any normality test should reject at n >= 20.
func SkewedValues(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		q := dist.NormalQuantile((float64(i) + 0.5) / float64(n))
		values[i] = math.Exp(1.5*q) + 0.01*rng.Float64()
	}
	rng.Shuffle(n, func(i, j int) { values[i], values[j] = values[j], values[i] })
	return values
}

// NormalGroup wraps NormalValues in a GroupSample, panicking on invalid
// construction since test fixtures are static.
func NormalGroup(label string, n int, mean, sd float64, seed int64) sample.GroupSample {
	g, err := sample.NewGroupSample(core.GroupLabel(label), NormalValues(n, mean, sd, seed))
	if err != nil {
		panic(err)
	}
	return g
}

// SkewedGroup wraps SkewedValues in a GroupSample.
func SkewedGroup(label string, n int, seed int64) sample.GroupSample {
	g, err := sample.NewGroupSample(core.GroupLabel(label), SkewedValues(n, seed))
	if err != nil {
		panic(err)
	}
	return g
}

// Group builds a GroupSample from literal values.
func Group(label string, values ...float64) sample.GroupSample {
	g, err := sample.NewGroupSample(core.GroupLabel(label), values)
	if err != nil {
		panic(err)
	}
	return g
}
