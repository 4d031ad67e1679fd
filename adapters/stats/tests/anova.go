package tests

import (
	"math"

	"hypotest/adapters/stats/dist"
)

// ANOVAResult carries the omnibus F test outcome plus the sum-of-squares
// decomposition the effect-size engine reuses.
type ANOVAResult struct {
	F         float64
	DF1       float64
	DF2       float64
	PValue    float64
	SSBetween float64
	SSWithin  float64
	SSTotal   float64
}

// OneWayANOVA runs the classical equal-variance one-way analysis of
// variance across k groups.
func OneWayANOVA(groups [][]float64) ANOVAResult {
	k := len(groups)
	totalN := 0
	grandSum := 0.0
	for _, g := range groups {
		totalN += len(g)
		for _, v := range g {
			grandSum += v
		}
	}
	grandMean := grandSum / float64(totalN)

	ssb, ssw := 0.0, 0.0
	for _, g := range groups {
		mean, _ := meanVariance(g)
		d := mean - grandMean
		ssb += float64(len(g)) * d * d
		for _, v := range g {
			e := v - mean
			ssw += e * e
		}
	}

	df1 := float64(k - 1)
	df2 := float64(totalN - k)
	result := ANOVAResult{
		DF1:       df1,
		DF2:       df2,
		SSBetween: ssb,
		SSWithin:  ssw,
		SSTotal:   ssb + ssw,
	}
	if ssw == 0 {
		result.PValue = 0
		result.F = math.Inf(1)
		return result
	}
	result.F = (ssb / df1) / (ssw / df2)
	result.PValue = dist.FTestPValue(result.F, df1, df2)
	return result
}

// WelchANOVA runs Welch's heteroscedastic one-way ANOVA: groups are
// weighted by the precision of their means, and the denominator degrees of
// freedom follow Satterthwaite.
func WelchANOVA(groups [][]float64) ANOVAResult {
	k := len(groups)
	fk := float64(k)

	weights := make([]float64, k)
	means := make([]float64, k)
	sumW := 0.0
	for i, g := range groups {
		mean, variance := meanVariance(g)
		means[i] = mean
		weights[i] = float64(len(g)) / variance
		sumW += weights[i]
	}

	weightedMean := 0.0
	for i := range groups {
		weightedMean += weights[i] * means[i]
	}
	weightedMean /= sumW

	numerator := 0.0
	for i := range groups {
		d := means[i] - weightedMean
		numerator += weights[i] * d * d
	}
	numerator /= fk - 1

	lambda := 0.0
	for i, g := range groups {
		t := 1 - weights[i]/sumW
		lambda += t * t / float64(len(g)-1)
	}

	f := numerator / (1 + 2*(fk-2)/(fk*fk-1)*lambda)
	df1 := fk - 1
	df2 := (fk*fk - 1) / (3 * lambda)

	return ANOVAResult{
		F:      f,
		DF1:    df1,
		DF2:    df2,
		PValue: dist.FTestPValue(f, df1, df2),
	}
}
