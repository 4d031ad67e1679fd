package tests

import (
	"math"

	"hypotest/adapters/stats/dist"
	"hypotest/domain/core"
	"hypotest/domain/inference"
)

// TukeyHSD runs Tukey's honestly-significant-difference pairwise
// comparisons after a significant one-way ANOVA, using the Tukey-Kramer
// standard error for unequal group sizes.
func TukeyHSD(groups [][]float64, labels []core.GroupLabel, alpha float64) []inference.PairwiseComparison {
	k := len(groups)
	totalN := 0
	ssw := 0.0
	for _, g := range groups {
		mean, _ := meanVariance(g)
		for _, v := range g {
			e := v - mean
			ssw += e * e
		}
		totalN += len(g)
	}
	df := float64(totalN - k)
	msw := ssw / df

	var comparisons []inference.PairwiseComparison
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			meanI, _ := meanVariance(groups[i])
			meanJ, _ := meanVariance(groups[j])
			ni, nj := float64(len(groups[i])), float64(len(groups[j]))
			se := math.Sqrt(msw / 2 * (1/ni + 1/nj))
			q := math.Abs(meanI-meanJ) / se
			p := dist.StudentizedRangePValue(q, k, df)
			comparisons = append(comparisons, inference.PairwiseComparison{
				GroupA:      labels[i],
				GroupB:      labels[j],
				Statistic:   q,
				PValue:      p,
				Adjustment:  "studentized range",
				Significant: p < alpha,
			})
		}
	}
	return comparisons
}

// GamesHowell runs the Games-Howell pairwise procedure after a significant
// Welch ANOVA: per-pair Welch degrees of freedom under the studentized
// range distribution, so homogeneity is never assumed.
func GamesHowell(groups [][]float64, labels []core.GroupLabel, alpha float64) []inference.PairwiseComparison {
	k := len(groups)

	var comparisons []inference.PairwiseComparison
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			meanI, varI := meanVariance(groups[i])
			meanJ, varJ := meanVariance(groups[j])
			ni, nj := float64(len(groups[i])), float64(len(groups[j]))

			se2 := varI/ni + varJ/nj
			q := math.Abs(meanI-meanJ) / math.Sqrt(se2/2)
			df := se2 * se2 / (math.Pow(varI/ni, 2)/(ni-1) + math.Pow(varJ/nj, 2)/(nj-1))
			p := dist.StudentizedRangePValue(q, k, df)
			comparisons = append(comparisons, inference.PairwiseComparison{
				GroupA:      labels[i],
				GroupB:      labels[j],
				Statistic:   q,
				PValue:      p,
				Adjustment:  "studentized range",
				Significant: p < alpha,
			})
		}
	}
	return comparisons
}

// Dunn runs Dunn's rank-based pairwise z tests after a significant
// Kruskal-Wallis result, with Bonferroni correction across all pairs. The
// correction method is recorded on every comparison.
func Dunn(kw KruskalResult, groups [][]float64, labels []core.GroupLabel, alpha float64) []inference.PairwiseComparison {
	k := len(groups)
	n := float64(kw.TotalN)
	pairs := k * (k - 1) / 2

	// Shared variance term with tie correction.
	varTerm := n*(n+1)/12 - kw.TieSum/(12*(n-1))

	var comparisons []inference.PairwiseComparison
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			ni, nj := float64(len(groups[i])), float64(len(groups[j]))
			se := math.Sqrt(varTerm * (1/ni + 1/nj))
			if se == 0 {
				continue
			}
			z := (kw.MeanRanks[i] - kw.MeanRanks[j]) / se
			p := dist.NormalTwoSidedPValue(z) * float64(pairs)
			if p > 1 {
				p = 1
			}
			comparisons = append(comparisons, inference.PairwiseComparison{
				GroupA:      labels[i],
				GroupB:      labels[j],
				Statistic:   z,
				PValue:      p,
				Adjustment:  "bonferroni",
				Significant: p < alpha,
			})
		}
	}
	return comparisons
}
