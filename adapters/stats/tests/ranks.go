package tests

import (
	"sort"
)

// midRanks assigns 1-based ranks to the pooled values, averaging ranks
// across ties. Returns the ranks in input order and the tie group sizes.
func midRanks(values []float64) (ranks []float64, tieSizes []int) {
	n := len(values)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return values[idx[a]] < values[idx[b]] })

	ranks = make([]float64, n)
	i := 0
	for i < n {
		j := i
		for j < n && values[idx[j]] == values[idx[i]] {
			j++
		}
		// Tied block spans sorted positions i..j-1.
		avg := (float64(i+1) + float64(j)) / 2
		for k := i; k < j; k++ {
			ranks[idx[k]] = avg
		}
		if j-i > 1 {
			tieSizes = append(tieSizes, j-i)
		}
		i = j
	}
	return ranks, tieSizes
}

// tieCorrectionSum is sum over tie groups of t^3 - t.
func tieCorrectionSum(tieSizes []int) float64 {
	sum := 0.0
	for _, t := range tieSizes {
		ft := float64(t)
		sum += ft*ft*ft - ft
	}
	return sum
}
