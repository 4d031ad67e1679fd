package assume

import (
	"math"
	"sort"

	"hypotest/adapters/stats/dist"
)

// ShapiroWilk computes the Shapiro-Wilk W statistic and its p-value using
// Royston's AS R94 approximation (valid for 3 <= n <= 5000). The caller is
// responsible for rejecting n < 3; values above 5000 degrade gracefully.
func ShapiroWilk(values []float64) (w, pValue float64) {
	n := len(values)
	if n < 3 {
		return 0, 1
	}

	x := make([]float64, n)
	copy(x, values)
	sort.Float64s(x)

	// Expected values of standard normal order statistics, Blom offsets.
	m := make([]float64, n)
	ssq := 0.0
	for i := 0; i < n; i++ {
		m[i] = dist.NormalQuantile((float64(i+1) - 0.375) / (float64(n) + 0.25))
		ssq += m[i] * m[i]
	}

	a := make([]float64, n)
	rsn := 1 / math.Sqrt(float64(n))
	if n == 3 {
		a[0] = -math.Sqrt(0.5)
		a[2] = math.Sqrt(0.5)
	} else {
		// Polynomial-corrected weights for the extreme order statistics.
		an := poly([]float64{0, 0.221157, -0.147981, -2.071190, 4.434685, -2.706056}, rsn) + m[n-1]/math.Sqrt(ssq)
		var phi float64
		if n > 5 {
			an1 := poly([]float64{0, 0.042981, -0.293762, -1.752461, 5.682633, -3.582633}, rsn) + m[n-2]/math.Sqrt(ssq)
			phi = (ssq - 2*m[n-1]*m[n-1] - 2*m[n-2]*m[n-2]) / (1 - 2*an*an - 2*an1*an1)
			a[n-1], a[0] = an, -an
			a[n-2], a[1] = an1, -an1
			for i := 2; i < n-2; i++ {
				a[i] = m[i] / math.Sqrt(phi)
			}
		} else {
			phi = (ssq - 2*m[n-1]*m[n-1]) / (1 - 2*an*an)
			a[n-1], a[0] = an, -an
			for i := 1; i < n-1; i++ {
				a[i] = m[i] / math.Sqrt(phi)
			}
		}
	}

	mean := 0.0
	for _, v := range x {
		mean += v
	}
	mean /= float64(n)

	num, den := 0.0, 0.0
	for i, v := range x {
		num += a[i] * v
		den += (v - mean) * (v - mean)
	}
	if den == 0 {
		// Degenerate sample; callers detect this before normality testing.
		return 1, 1
	}
	w = num * num / den
	if w > 1 {
		w = 1
	}

	return w, shapiroPValue(w, n)
}

// shapiroPValue applies Royston's normalizing transformation of 1-W.
func shapiroPValue(w float64, n int) float64 {
	switch {
	case n == 3:
		// Exact small-sample distribution.
		p := 6 / math.Pi * (math.Asin(math.Sqrt(w)) - math.Asin(math.Sqrt(0.75)))
		if p < 0 {
			return 0
		}
		if p > 1 {
			return 1
		}
		return p
	case n <= 11:
		fn := float64(n)
		g := -2.273 + 0.459*fn
		mu := 0.5440 - 0.39978*fn + 0.025054*fn*fn - 0.0006714*fn*fn*fn
		sigma := math.Exp(1.3822 - 0.77857*fn + 0.062767*fn*fn - 0.0020322*fn*fn*fn)
		if g-math.Log(1-w) <= 0 {
			return 0
		}
		z := (-math.Log(g-math.Log(1-w)) - mu) / sigma
		return 1 - dist.NormalCDF(z)
	default:
		ln := math.Log(float64(n))
		mu := -1.5861 - 0.31082*ln - 0.083751*ln*ln + 0.0038915*ln*ln*ln
		sigma := math.Exp(-0.4803 - 0.082676*ln + 0.0030302*ln*ln)
		z := (math.Log(1-w) - mu) / sigma
		return 1 - dist.NormalCDF(z)
	}
}

// poly evaluates c[0] + c[1]x + c[2]x^2 + ...
func poly(c []float64, x float64) float64 {
	sum := 0.0
	pow := 1.0
	for _, coeff := range c {
		sum += coeff * pow
		pow *= x
	}
	return sum
}
