// Package extra holds the optional add-on analyses enabled by the
// run_extra_analyses configuration flag: Pearson correlation between two
// groups, and a chi-square independence test on median-binarized
// observations with an odds ratio for the 2x2 case. These are outside the
// core selection pipeline and never influence the TestDecision.
package extra

import (
	"math"

	"github.com/montanaflynn/stats"

	"hypotest/adapters/stats/dist"
	"hypotest/domain/inference"
	"hypotest/domain/sample"
)

// PearsonCorrelation correlates two groups' observations pairwise,
// truncating to the shorter group. Needs at least 3 pairs.
func PearsonCorrelation(group1, group2 sample.GroupSample, alpha float64) *inference.CorrelationResult {
	x, y := group1.Values(), group2.Values()
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	if n < 3 {
		return nil
	}
	x, y = x[:n], y[:n]

	fn := float64(n)
	sumX, sumY, sumXY, sumX2, sumY2 := 0.0, 0.0, 0.0, 0.0, 0.0
	for i := 0; i < n; i++ {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumX2 += x[i] * x[i]
		sumY2 += y[i] * y[i]
	}
	denominator := math.Sqrt((fn*sumX2 - sumX*sumX) * (fn*sumY2 - sumY*sumY))
	if denominator == 0 {
		return nil
	}
	r := (fn*sumXY - sumX*sumY) / denominator

	p := 1.0
	if r*r < 1 {
		t := r * math.Sqrt((fn-2)/(1-r*r))
		p = dist.TTestPValue(t, fn-2)
	} else {
		p = 0
	}

	return &inference.CorrelationResult{
		R:           r,
		PValue:      p,
		Significant: p < alpha,
		PairedN:     n,
	}
}

// ChiSquare binarizes each group at its own median (at or above = 1) and
// tests independence of group membership and the binary outcome. The odds
// ratio is reported for the 2x2 case when every cell margin allows it.
func ChiSquare(groups []sample.GroupSample, alpha float64) *inference.ChiSquareResult {
	k := len(groups)
	if k < 2 {
		return nil
	}

	observed := make([][]float64, k)
	for i, g := range groups {
		values := g.Values()
		med, err := stats.Median(values)
		if err != nil {
			return nil
		}
		row := make([]float64, 2)
		for _, v := range values {
			if v >= med {
				row[1]++
			} else {
				row[0]++
			}
		}
		observed[i] = row
	}

	rowTotals := make([]float64, k)
	colTotals := make([]float64, 2)
	total := 0.0
	for i, row := range observed {
		for j, c := range row {
			rowTotals[i] += c
			colTotals[j] += c
			total += c
		}
	}
	if colTotals[0] == 0 || colTotals[1] == 0 {
		// Binarization collapsed to one category; independence is untestable.
		return nil
	}

	chi2 := 0.0
	for i := range observed {
		for j := range observed[i] {
			expected := rowTotals[i] * colTotals[j] / total
			d := observed[i][j] - expected
			chi2 += d * d / expected
		}
	}
	df := k - 1 // (k-1) * (2-1)
	p := dist.ChiSquarePValue(chi2, float64(df))

	result := &inference.ChiSquareResult{
		Statistic:        chi2,
		DegreesOfFreedom: df,
		PValue:           p,
		Significant:      p < alpha,
		Contingency:      observed,
	}
	if k == 2 {
		a, b := observed[0][0], observed[0][1]
		c, d := observed[1][0], observed[1][1]
		if b*c != 0 {
			result.OddsRatio = a * d / (b * c)
			result.HasOddsRatio = true
		}
	}
	return result
}
