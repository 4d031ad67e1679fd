package dist

import (
	"math"
)

// The studentized range distribution is not available in gonum/distuv, so
// its CDF is computed by direct numerical integration: the range probability
// for k standard normals, mixed over the chi distribution of the error
// degrees of freedom. Simpson's rule at this resolution is accurate to well
// below 1e-6, which is far inside what post-hoc p-values need.

const simpsonSteps = 512 // even

// rangeCDF is P(range of k iid standard normals <= q), integrating over the
// position of the maximum.
func rangeCDF(q float64, k int) float64 {
	if q <= 0 {
		return 0
	}
	if k < 2 {
		return 1
	}

	lo, hi := -8.0, 8.0
	h := (hi - lo) / simpsonSteps
	sum := 0.0
	for i := 0; i <= simpsonSteps; i++ {
		u := lo + float64(i)*h
		f := normalPDF(u) * math.Pow(NormalCDF(u)-NormalCDF(u-q), float64(k-1))
		switch {
		case i == 0 || i == simpsonSteps:
			sum += f
		case i%2 == 1:
			sum += 4 * f
		default:
			sum += 2 * f
		}
	}
	p := float64(k) * sum * h / 3
	return clampP(p)
}

// StudentizedRangeCDF is P(Q <= q) for the studentized range with k groups
// and df error degrees of freedom.
func StudentizedRangeCDF(q float64, k int, df float64) float64 {
	if q <= 0 {
		return 0
	}
	if df > 120 {
		// The scale factor S converges to 1; skip the outer integral.
		return rangeCDF(q, k)
	}

	// Mix over S = chi_df / sqrt(df). Density mass is inside (0, 4] for
	// every df >= 1.
	lo, hi := 1e-9, 4.0
	h := (hi - lo) / simpsonSteps
	sum := 0.0
	for i := 0; i <= simpsonSteps; i++ {
		s := lo + float64(i)*h
		f := rangeCDF(q*s, k) * scaledChiPDF(s, df)
		switch {
		case i == 0 || i == simpsonSteps:
			sum += f
		case i%2 == 1:
			sum += 4 * f
		default:
			sum += 2 * f
		}
	}
	return clampP(sum * h / 3)
}

// StudentizedRangePValue is the upper-tail probability used by Tukey HSD and
// Games-Howell.
func StudentizedRangePValue(q float64, k int, df float64) float64 {
	return clampP(1 - StudentizedRangeCDF(q, k, df))
}

func normalPDF(x float64) float64 {
	return math.Exp(-x*x/2) / math.Sqrt(2*math.Pi)
}

// scaledChiPDF is the density of chi_df/sqrt(df).
func scaledChiPDF(s, df float64) float64 {
	if s <= 0 {
		return 0
	}
	lg, _ := math.Lgamma(df / 2)
	logPDF := (df/2)*math.Log(df) - (df/2-1)*math.Ln2 - lg +
		(df-1)*math.Log(s) - df*s*s/2
	return math.Exp(logPDF)
}
