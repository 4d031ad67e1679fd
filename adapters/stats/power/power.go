// Package power computes achieved statistical power and required sample
// sizes. gonum's distuv carries no noncentral distributions, so the t
// family uses the normal approximation to the noncentral t and the ANOVA
// family uses Patnaik's central-F approximation; rank-based families are
// mapped to their parametric analogue with the asymptotic relative
// efficiency deflation, recorded as an approximation caveat.
package power

import (
	"math"

	"hypotest/adapters/stats/dist"
	"hypotest/domain/inference"
)

// mannWhitneyARE is the asymptotic relative efficiency of the rank tests
// against their normal-theory analogues.
const mannWhitneyARE = 0.955

// maxSearchN caps the required-sample-size search; beyond this the target
// is reported as not achievable.
const maxSearchN = 1_000_000

// Analyzer computes power diagnostics for a test family.
type Analyzer struct{}

// NewAnalyzer creates a power analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// TwoSample computes achieved power for a standardized mean difference d at
// the observed group sizes, plus the minimum equal per-group n reaching
// targetPower. Rank-based families pass nonParametric=true and get the
// ARE-deflated analogue.
func (a *Analyzer) TwoSample(d float64, n1, n2 int, alpha, targetPower float64, nonParametric bool) inference.PowerResult {
	effect := math.Abs(d)
	approximation := "normal approximation to the noncentral t"
	if nonParametric {
		effect *= mannWhitneyARE
		approximation = "t-test analogue with ARE 0.955; exact rank-test power has no closed form"
	}

	result := inference.PowerResult{
		TargetPower:   targetPower,
		Alpha:         alpha,
		EffectSize:    effect,
		Approximation: approximation,
	}
	result.AchievedPower = twoSamplePower(effect, float64(n1), float64(n2), alpha)
	if effect == 0 {
		result.RequiredSampleSize = inference.SampleSizeNotAchievable
		return result
	}
	result.RequiredSampleSize = requiredN(targetPower, func(n int) float64 {
		return twoSamplePower(effect, float64(n), float64(n), alpha)
	}, closedFormN(effect, alpha, targetPower))
	return result
}

// ANOVA computes achieved power from eta-squared at the observed group
// sizes, plus the minimum equal per-group n reaching targetPower with k
// groups. Kruskal-Wallis callers pass nonParametric=true.
func (a *Analyzer) ANOVA(etaSquared float64, groupSizes []int, alpha, targetPower float64, nonParametric bool) inference.PowerResult {
	k := len(groupSizes)
	totalN := 0
	for _, n := range groupSizes {
		totalN += n
	}

	// Cohen's f from the variance decomposition.
	f := 0.0
	if etaSquared > 0 && etaSquared < 1 {
		f = math.Sqrt(etaSquared / (1 - etaSquared))
	}
	approximation := "Patnaik central-F approximation to the noncentral F"
	if nonParametric {
		f *= mannWhitneyARE
		approximation = "ANOVA analogue with ARE 0.955; exact rank-test power has no closed form"
	}

	result := inference.PowerResult{
		TargetPower:   targetPower,
		Alpha:         alpha,
		EffectSize:    f,
		Approximation: approximation,
	}
	result.AchievedPower = anovaPower(f, k, totalN, alpha)
	if f == 0 {
		result.RequiredSampleSize = inference.SampleSizeNotAchievable
		return result
	}
	result.RequiredSampleSize = requiredN(targetPower, func(n int) float64 {
		return anovaPower(f, k, n*k, alpha)
	}, 2)
	return result
}

// twoSamplePower is the normal approximation to two-sided two-sample
// power: ncp = d*sqrt(n1*n2/(n1+n2)).
func twoSamplePower(d, n1, n2 float64, alpha float64) float64 {
	if d == 0 {
		return alpha // power at the null is the size of the test
	}
	ncp := d * math.Sqrt(n1*n2/(n1+n2))
	zCrit := dist.NormalQuantile(1 - alpha/2)
	power := 1 - dist.NormalCDF(zCrit-ncp) + dist.NormalCDF(-zCrit-ncp)
	return clamp01(power)
}

// anovaPower approximates noncentral-F power via Patnaik: the noncentral
// chi-square with df1 and lambda is matched by c times a central chi-square
// with h degrees of freedom.
func anovaPower(f float64, k, totalN int, alpha float64) float64 {
	df1 := float64(k - 1)
	df2 := float64(totalN - k)
	if df1 <= 0 || df2 <= 0 {
		return 0
	}
	if f == 0 {
		return alpha
	}
	lambda := f * f * float64(totalN)
	fCrit := dist.FQuantile(1-alpha, df1, df2)

	h := (df1 + lambda) * (df1 + lambda) / (df1 + 2*lambda)
	c := (df1 + 2*lambda) / (df1 + lambda)
	power := 1 - dist.FCDF(fCrit*df1/(c*h), h, df2)
	return clamp01(power)
}

// requiredN finds the smallest per-group n with power >= target. powerAt
// must be nondecreasing in n; the search doubles an upper bound from the
// hint, then bisects. Returns the SampleSizeNotAchievable sentinel when
// even maxSearchN falls short.
func requiredN(target float64, powerAt func(n int) float64, hint int) int {
	if hint < 2 {
		hint = 2
	}
	if hint > maxSearchN {
		hint = maxSearchN
	}

	hi := hint
	for powerAt(hi) < target {
		if hi >= maxSearchN {
			return inference.SampleSizeNotAchievable
		}
		hi *= 2
		if hi > maxSearchN {
			hi = maxSearchN
		}
	}

	lo := 2
	for lo < hi {
		mid := (lo + hi) / 2
		if powerAt(mid) >= target {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return hi
}

// closedFormN is the classical starting point n = 2((z_a + z_b)/d)^2 per
// group for the two-sample case.
func closedFormN(d, alpha, targetPower float64) int {
	if d == 0 {
		return maxSearchN + 1
	}
	zA := dist.NormalQuantile(1 - alpha/2)
	zB := dist.NormalQuantile(targetPower)
	n := 2 * math.Pow((zA+zB)/d, 2)
	return int(math.Ceil(n))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
