package tests

import (
	"fmt"

	"hypotest/domain/core"
	"hypotest/domain/inference"
	"hypotest/domain/sample"
)

// Run executes the selected test against the raw samples and returns the
// immutable TestResult. Post-hoc comparisons are attached only when the
// omnibus p-value is below alpha; otherwise the decision's post-hoc
// identifier is cleared and the rationale records why.
func Run(decision inference.TestDecision, groups []sample.GroupSample, alpha float64) (inference.TestResult, error) {
	raw := make([][]float64, len(groups))
	labels := make([]core.GroupLabel, len(groups))
	for i, g := range groups {
		raw[i] = g.Values()
		labels[i] = g.Label()
	}

	result := inference.TestResult{Decision: decision}

	switch decision.Test {
	case inference.TestStudentT:
		r := StudentT(raw[0], raw[1])
		result.Statistic = r.Statistic
		result.DegreesOfFreedom = r.DegreesOfFreedom
		result.PValue = r.PValue

	case inference.TestWelchT:
		r := WelchT(raw[0], raw[1])
		result.Statistic = r.Statistic
		result.DegreesOfFreedom = r.DegreesOfFreedom
		result.PValue = r.PValue

	case inference.TestMannWhitneyU:
		r := MannWhitneyU(raw[0], raw[1])
		result.Statistic = r.U
		result.PValue = r.PValue

	case inference.TestOneWayANOVA:
		r := OneWayANOVA(raw)
		result.Statistic = r.F
		result.DegreesOfFreedom = r.DF1
		result.DF2 = r.DF2
		result.PValue = r.PValue

	case inference.TestWelchANOVA:
		r := WelchANOVA(raw)
		result.Statistic = r.F
		result.DegreesOfFreedom = r.DF1
		result.DF2 = r.DF2
		result.PValue = r.PValue

	case inference.TestKruskalWallis:
		r := KruskalWallis(raw)
		result.Statistic = r.H
		result.DegreesOfFreedom = r.DF
		result.PValue = r.PValue

	default:
		return inference.TestResult{}, fmt.Errorf("unknown test %q", decision.Test)
	}

	result.Significant = result.PValue < alpha

	if decision.PostHoc != inference.PostHocNone {
		if !result.Significant {
			result.Decision.PostHoc = inference.PostHocNone
			result.Decision.Rationale += "; no post-hoc, omnibus not significant"
			return result, nil
		}
		switch decision.PostHoc {
		case inference.PostHocTukeyHSD:
			result.PostHoc = TukeyHSD(raw, labels, alpha)
		case inference.PostHocGamesHowell:
			result.PostHoc = GamesHowell(raw, labels, alpha)
		case inference.PostHocDunn:
			kw := KruskalWallis(raw)
			result.PostHoc = Dunn(kw, raw, labels, alpha)
		}
	}

	return result, nil
}
