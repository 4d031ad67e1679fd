// Package dist provides unified access to the reference distributions the
// engine needs for exact p-values and quantiles. Everything gonum's distuv
// carries is used directly; the studentized range, which it does not carry,
// is integrated numerically in tukey.go.
package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// TTestPValue computes the two-sided p-value for a t statistic.
func TTestPValue(tStatistic, degreesOfFreedom float64) float64 {
	if degreesOfFreedom <= 0 {
		return 1.0
	}
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: degreesOfFreedom}
	return clampP(2 * (1 - tDist.CDF(math.Abs(tStatistic))))
}

// FTestPValue computes the upper-tail p-value for an F statistic.
func FTestPValue(fStatistic float64, df1, df2 float64) float64 {
	if df1 <= 0 || df2 <= 0 {
		return 1.0
	}
	if fStatistic <= 0 {
		return 1.0
	}
	fDist := distuv.F{D1: df1, D2: df2}
	return clampP(1 - fDist.CDF(fStatistic))
}

// FQuantile returns the 1-p upper critical value of the F distribution.
func FQuantile(p float64, df1, df2 float64) float64 {
	fDist := distuv.F{D1: df1, D2: df2}
	return fDist.Quantile(p)
}

// FCDF evaluates the F distribution function.
func FCDF(x float64, df1, df2 float64) float64 {
	fDist := distuv.F{D1: df1, D2: df2}
	return fDist.CDF(x)
}

// ChiSquarePValue computes the upper-tail p-value for a chi-square statistic.
func ChiSquarePValue(chiSquare float64, degreesOfFreedom float64) float64 {
	if degreesOfFreedom <= 0 {
		return 1.0
	}
	if chiSquare <= 0 {
		return 1.0
	}
	chiDist := distuv.ChiSquared{K: degreesOfFreedom}
	return clampP(1 - chiDist.CDF(chiSquare))
}

// NormalCDF computes the standard normal distribution function.
func NormalCDF(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

// NormalQuantile computes the standard normal inverse distribution function.
func NormalQuantile(p float64) float64 {
	return distuv.UnitNormal.Quantile(p)
}

// NormalTwoSidedPValue converts a z score to a two-sided p-value.
func NormalTwoSidedPValue(z float64) float64 {
	return clampP(2 * (1 - NormalCDF(math.Abs(z))))
}

func clampP(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
