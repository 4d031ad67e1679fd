// Package effect computes the standardized effect size matching the
// selected test family and assigns the qualitative magnitude bucket from
// configurable literature thresholds.
package effect

import (
	"fmt"
	"math"

	"hypotest/adapters/stats/tests"
	"hypotest/domain/inference"
	"hypotest/domain/sample"
	"hypotest/internal/config"
)

// Engine maps (decision, samples) to an EffectSize.
type Engine struct {
	cfg config.Config
}

// NewEngine creates an effect-size engine with the given thresholds.
func NewEngine(cfg config.Config) *Engine {
	return &Engine{cfg: cfg}
}

// Compute derives the effect size for the test family the decision names.
func (e *Engine) Compute(decision inference.TestDecision, groups []sample.GroupSample) (inference.EffectSize, error) {
	raw := make([][]float64, len(groups))
	for i, g := range groups {
		raw[i] = g.Values()
	}

	switch decision.Test {
	case inference.TestStudentT:
		d := CohenDPooled(raw[0], raw[1])
		return e.bucket(inference.EffectCohenD, d, e.cfg.CohenDThresholds), nil

	case inference.TestWelchT:
		d := CohenDUnpooled(raw[0], raw[1])
		return e.bucket(inference.EffectCohenD, d, e.cfg.CohenDThresholds), nil

	case inference.TestMannWhitneyU:
		r := RankBiserial(raw[0], raw[1])
		return e.bucket(inference.EffectRankBiserial, r, e.cfg.RankBiserialThresholds), nil

	case inference.TestOneWayANOVA, inference.TestWelchANOVA:
		eta := EtaSquared(raw)
		return e.bucket(inference.EffectEtaSquared, eta, e.cfg.EtaSquaredThresholds), nil

	case inference.TestKruskalWallis:
		eps := EpsilonSquared(raw)
		return e.bucket(inference.EffectEpsilonSq, eps, e.cfg.EtaSquaredThresholds), nil

	default:
		return inference.EffectSize{}, fmt.Errorf("unknown test %q", decision.Test)
	}
}

func (e *Engine) bucket(metric inference.EffectMetric, value float64, th config.EffectThresholds) inference.EffectSize {
	abs := math.Abs(value)
	magnitude := inference.MagnitudeNegligible
	switch {
	case abs >= th.Large:
		magnitude = inference.MagnitudeLarge
	case abs >= th.Medium:
		magnitude = inference.MagnitudeMedium
	case abs >= th.Small:
		magnitude = inference.MagnitudeSmall
	}
	return inference.EffectSize{Metric: metric, Value: value, Magnitude: magnitude}
}

// CohenDPooled is the classical standardized mean difference with the
// equal-weighted pooled standard deviation, matching the Student t path.
func CohenDPooled(group1, group2 []float64) float64 {
	n1, n2 := float64(len(group1)), float64(len(group2))
	mean1, var1 := meanVariance(group1)
	mean2, var2 := meanVariance(group2)
	pooled := math.Sqrt(((n1-1)*var1 + (n2-1)*var2) / (n1 + n2 - 2))
	if pooled == 0 {
		return 0
	}
	return (mean1 - mean2) / pooled
}

// CohenDUnpooled standardizes by the root mean of the two sample variances,
// the denominator matching the Welch path where pooling is not justified.
func CohenDUnpooled(group1, group2 []float64) float64 {
	mean1, var1 := meanVariance(group1)
	mean2, var2 := meanVariance(group2)
	denom := math.Sqrt((var1 + var2) / 2)
	if denom == 0 {
		return 0
	}
	return (mean1 - mean2) / denom
}

// RankBiserial derives the rank-biserial correlation from the Mann-Whitney
// U1 statistic: r = 1 - 2*U1/(n1*n2), in [-1, 1].
func RankBiserial(group1, group2 []float64) float64 {
	r := tests.MannWhitneyU(group1, group2)
	n1n2 := float64(len(group1)) * float64(len(group2))
	return 1 - 2*r.U1/n1n2
}

// EtaSquared is SS_between / SS_total from the one-way ANOVA decomposition.
func EtaSquared(groups [][]float64) float64 {
	r := tests.OneWayANOVA(groups)
	if r.SSTotal == 0 {
		return 0
	}
	return r.SSBetween / r.SSTotal
}

// EpsilonSquared is the Kruskal-Wallis rank analogue of eta-squared,
// H / (N - 1).
func EpsilonSquared(groups [][]float64) float64 {
	r := tests.KruskalWallis(groups)
	if r.TotalN < 2 {
		return 0
	}
	return r.H / float64(r.TotalN-1)
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
