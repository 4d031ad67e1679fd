package assume

import (
	"math"

	"github.com/montanaflynn/stats"

	"hypotest/adapters/stats/dist"
)

// Bartlett computes Bartlett's test of variance homogeneity. It assumes
// every group is normal; the checker only runs it on that path.
func Bartlett(groups [][]float64) (statistic, pValue float64) {
	k := len(groups)
	totalN := 0
	pooledSS := 0.0
	logSum := 0.0
	invSum := 0.0

	for _, g := range groups {
		n := float64(len(g))
		v := sampleVariance(g)
		totalN += len(g)
		pooledSS += (n - 1) * v
		logSum += (n - 1) * math.Log(v)
		invSum += 1 / (n - 1)
	}

	nk := float64(totalN - k)
	pooledVar := pooledSS / nk
	statistic = (nk*math.Log(pooledVar) - logSum) /
		(1 + (invSum-1/nk)/(3*float64(k-1)))
	pValue = dist.ChiSquarePValue(statistic, float64(k-1))
	return statistic, pValue
}

// Levene computes the Brown-Forsythe variant of Levene's test: absolute
// deviations from the group medians, which keeps the test robust under
// non-normality.
func Levene(groups [][]float64) (statistic, pValue float64) {
	k := len(groups)
	totalN := 0

	z := make([][]float64, k)
	groupMeans := make([]float64, k)
	grandSum := 0.0
	for i, g := range groups {
		med, _ := stats.Median(g)
		z[i] = make([]float64, len(g))
		sum := 0.0
		for j, v := range g {
			z[i][j] = math.Abs(v - med)
			sum += z[i][j]
		}
		groupMeans[i] = sum / float64(len(g))
		grandSum += sum
		totalN += len(g)
	}
	grandMean := grandSum / float64(totalN)

	between := 0.0
	within := 0.0
	for i := range z {
		n := float64(len(z[i]))
		d := groupMeans[i] - grandMean
		between += n * d * d
		for _, v := range z[i] {
			e := v - groupMeans[i]
			within += e * e
		}
	}

	df1 := float64(k - 1)
	df2 := float64(totalN - k)
	if within == 0 {
		// All deviations identical within groups; no evidence against
		// homogeneity is expressible.
		return 0, 1
	}
	statistic = (df2 / df1) * (between / within)
	pValue = dist.FTestPValue(statistic, df1, df2)
	return statistic, pValue
}

func sampleVariance(data []float64) float64 {
	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))
	sumSq := 0.0
	for _, v := range data {
		d := v - mean
		sumSq += d * d
	}
	return sumSq / float64(len(data)-1)
}
