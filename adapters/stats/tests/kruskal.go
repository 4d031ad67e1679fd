package tests

import (
	"hypotest/adapters/stats/dist"
)

// KruskalResult carries the tie-corrected H statistic and the chi-square
// approximation p-value, plus the rank bookkeeping Dunn's test reuses.
type KruskalResult struct {
	H         float64
	DF        float64
	PValue    float64
	MeanRanks []float64
	TieSum    float64 // sum of t^3 - t over tie groups
	TotalN    int
}

// KruskalWallis runs the Kruskal-Wallis rank test across k groups.
func KruskalWallis(groups [][]float64) KruskalResult {
	k := len(groups)
	totalN := 0
	for _, g := range groups {
		totalN += len(g)
	}

	pooled := make([]float64, 0, totalN)
	for _, g := range groups {
		pooled = append(pooled, g...)
	}
	ranks, tieSizes := midRanks(pooled)

	n := float64(totalN)
	meanRanks := make([]float64, k)
	h := 0.0
	offset := 0
	for i, g := range groups {
		sum := 0.0
		for j := range g {
			sum += ranks[offset+j]
		}
		offset += len(g)
		meanRanks[i] = sum / float64(len(g))
		h += sum * sum / float64(len(g))
	}
	h = 12/(n*(n+1))*h - 3*(n+1)

	// Tie correction divides H by 1 - sum(t^3-t)/(N^3-N).
	tieSum := tieCorrectionSum(tieSizes)
	correction := 1 - tieSum/(n*n*n-n)

	result := KruskalResult{
		DF:        float64(k - 1),
		MeanRanks: meanRanks,
		TieSum:    tieSum,
		TotalN:    totalN,
	}
	if correction == 0 {
		// Every observation identical across all groups.
		result.PValue = 1
		return result
	}
	result.H = h / correction
	result.PValue = dist.ChiSquarePValue(result.H, result.DF)
	return result
}
