// Package assume implements the per-group normality and cross-group
// variance-homogeneity diagnostics that drive test selection. Which
// homogeneity test runs is itself conditional on the normality outcome:
// Bartlett when every group is assumed normal, Levene otherwise.
package assume

import (
	"hypotest/domain/core"
	"hypotest/domain/inference"
	"hypotest/domain/sample"
)

// minNormalityN is the smallest sample Shapiro-Wilk accepts; smaller groups
// get an indeterminate verdict instead of failing the pipeline.
const minNormalityN = 3

// Checker produces AssumptionResults for one outcome variable.
type Checker struct {
	alpha float64
}

// NewChecker creates an assumption checker at the configured alpha.
func NewChecker(alpha float64) *Checker {
	return &Checker{alpha: alpha}
}

// Check runs normality per group, then the normality-conditional
// homogeneity test across groups. A zero-variance group aborts with
// ErrDegenerateSample since homogeneity statistics are undefined on it.
func (c *Checker) Check(groups []sample.GroupSample) (inference.AssumptionResult, error) {
	if len(groups) < 2 {
		return inference.AssumptionResult{}, core.ErrTooFewGroups
	}

	for _, g := range groups {
		if g.IsDegenerate() {
			return inference.AssumptionResult{}, core.NewDegenerateSampleError(g.Label())
		}
	}

	normality := make([]inference.GroupNormality, 0, len(groups))
	allNormal := true
	for _, g := range groups {
		entry := inference.GroupNormality{Group: g.Label()}
		if g.Size() < minNormalityN {
			entry.Outcome = inference.NormalityIndeterminate
			entry.PValue = 1
			allNormal = false
		} else {
			w, p := ShapiroWilk(g.Values())
			entry.Statistic = w
			entry.PValue = p
			if p >= c.alpha {
				entry.Outcome = inference.NormalityNormal
			} else {
				entry.Outcome = inference.NormalityNotNormal
				allNormal = false
			}
		}
		normality = append(normality, entry)
	}

	raw := make([][]float64, len(groups))
	for i, g := range groups {
		raw[i] = g.Values()
	}

	result := inference.AssumptionResult{
		Normality: normality,
		Alpha:     c.alpha,
	}
	if allNormal {
		result.Homogeneity = inference.HomogeneityBartlett
		result.HomStatistic, result.HomPValue = Bartlett(raw)
	} else {
		result.Homogeneity = inference.HomogeneityLevene
		result.HomStatistic, result.HomPValue = Levene(raw)
	}
	result.EqualVariances = result.HomPValue >= c.alpha

	return result, nil
}
