// Package tests implements the test-selection decision tree, the selected
// hypothesis tests themselves, and the post-hoc pairwise procedures.
package tests

import (
	"fmt"

	"hypotest/domain/core"
	"hypotest/domain/inference"
)

// Select maps (group count, assumption outcomes) to a test identity. It is
// a pure function: identical inputs always yield the identical decision.
// Indeterminate normality counts as not normal, preferring the
// non-parametric path. The post-hoc identifier names the procedure that
// WILL run if the omnibus test is significant; attachment to the result is
// gated on the omnibus p-value at execution time.
func Select(groupCount int, assumptions inference.AssumptionResult) (inference.TestDecision, error) {
	if groupCount < 2 {
		return inference.TestDecision{}, core.ErrTooFewGroups
	}

	allNormal := assumptions.AllNormal()
	equalVar := assumptions.EqualVariances

	if groupCount == 2 {
		switch {
		case allNormal && equalVar:
			return inference.TestDecision{
				Test:      inference.TestStudentT,
				Rationale: rationale(assumptions, "all groups normal, variances homogeneous"),
			}, nil
		case allNormal:
			return inference.TestDecision{
				Test:      inference.TestWelchT,
				Rationale: rationale(assumptions, "all groups normal, variances heterogeneous"),
			}, nil
		default:
			return inference.TestDecision{
				Test:      inference.TestMannWhitneyU,
				Rationale: rationale(assumptions, "normality rejected or indeterminate for at least one group"),
			}, nil
		}
	}

	switch {
	case allNormal && equalVar:
		return inference.TestDecision{
			Test:      inference.TestOneWayANOVA,
			PostHoc:   inference.PostHocTukeyHSD,
			Rationale: rationale(assumptions, "all groups normal, variances homogeneous"),
		}, nil
	case allNormal:
		return inference.TestDecision{
			Test:      inference.TestWelchANOVA,
			PostHoc:   inference.PostHocGamesHowell,
			Rationale: rationale(assumptions, "all groups normal, variances heterogeneous"),
		}, nil
	default:
		return inference.TestDecision{
			Test:      inference.TestKruskalWallis,
			PostHoc:   inference.PostHocDunn,
			Rationale: rationale(assumptions, "normality rejected or indeterminate for at least one group"),
		}, nil
	}
}

func rationale(a inference.AssumptionResult, summary string) string {
	return fmt.Sprintf("%s (%s p=%.4g vs alpha=%.3g)", summary, a.Homogeneity, a.HomPValue, a.Alpha)
}
