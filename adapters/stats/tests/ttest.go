package tests

import (
	"math"

	"hypotest/adapters/stats/dist"
)

// TwoSampleResult carries a two-group test outcome.
type TwoSampleResult struct {
	Statistic        float64
	DegreesOfFreedom float64
	PValue           float64
}

// StudentT runs the independent two-sample t-test with pooled variance.
func StudentT(group1, group2 []float64) TwoSampleResult {
	n1, n2 := float64(len(group1)), float64(len(group2))
	mean1, var1 := meanVariance(group1)
	mean2, var2 := meanVariance(group2)

	df := n1 + n2 - 2
	pooledVar := ((n1-1)*var1 + (n2-1)*var2) / df
	se := math.Sqrt(pooledVar * (1/n1 + 1/n2))
	if se == 0 {
		return TwoSampleResult{DegreesOfFreedom: df, PValue: 1}
	}
	t := (mean1 - mean2) / se
	return TwoSampleResult{
		Statistic:        t,
		DegreesOfFreedom: df,
		PValue:           dist.TTestPValue(t, df),
	}
}

// WelchT runs the unequal-variance t-test with Welch-Satterthwaite degrees
// of freedom.
func WelchT(group1, group2 []float64) TwoSampleResult {
	n1, n2 := float64(len(group1)), float64(len(group2))
	mean1, var1 := meanVariance(group1)
	mean2, var2 := meanVariance(group2)

	se2 := var1/n1 + var2/n2
	if se2 == 0 {
		return TwoSampleResult{DegreesOfFreedom: n1 + n2 - 2, PValue: 1}
	}
	t := (mean1 - mean2) / math.Sqrt(se2)
	df := se2 * se2 / (math.Pow(var1/n1, 2)/(n1-1) + math.Pow(var2/n2, 2)/(n2-1))
	return TwoSampleResult{
		Statistic:        t,
		DegreesOfFreedom: df,
		PValue:           dist.TTestPValue(t, df),
	}
}

func meanVariance(data []float64) (mean, variance float64) {
	n := float64(len(data))
	for _, v := range data {
		mean += v
	}
	mean /= n
	for _, v := range data {
		d := v - mean
		variance += d * d
	}
	if n > 1 {
		variance /= n - 1
	}
	return mean, variance
}
