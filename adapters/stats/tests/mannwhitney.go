package tests

import (
	"math"

	"hypotest/adapters/stats/dist"
)

// MannWhitneyResult carries the U statistic (the smaller of U1, U2) and the
// two-sided p-value from the tie-corrected normal approximation with
// continuity correction.
type MannWhitneyResult struct {
	U      float64
	U1     float64
	U2     float64
	PValue float64
}

// MannWhitneyU runs the Mann-Whitney U test on two independent samples.
func MannWhitneyU(group1, group2 []float64) MannWhitneyResult {
	n1, n2 := len(group1), len(group2)
	pooled := make([]float64, 0, n1+n2)
	pooled = append(pooled, group1...)
	pooled = append(pooled, group2...)

	ranks, tieSizes := midRanks(pooled)

	r1 := 0.0
	for i := 0; i < n1; i++ {
		r1 += ranks[i]
	}

	fn1, fn2 := float64(n1), float64(n2)
	u1 := r1 - fn1*(fn1+1)/2
	u2 := fn1*fn2 - u1
	u := math.Min(u1, u2)

	// Normal approximation with tie correction.
	n := fn1 + fn2
	meanU := fn1 * fn2 / 2
	tieTerm := tieCorrectionSum(tieSizes) / (n * (n - 1))
	sigma := math.Sqrt(fn1 * fn2 / 12 * ((n + 1) - tieTerm))

	result := MannWhitneyResult{U: u, U1: u1, U2: u2}
	if sigma == 0 {
		// Every pooled value tied; the samples are indistinguishable.
		result.PValue = 1
		return result
	}

	// Continuity correction pulls the statistic toward the null mean.
	z := (u - meanU + 0.5) / sigma
	result.PValue = dist.NormalTwoSidedPValue(z)
	return result
}
