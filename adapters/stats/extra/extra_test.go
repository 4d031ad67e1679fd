package extra

import (
	"math"
	"testing"

	"hypotest/domain/sample"
	"hypotest/internal/testkit"
)

func TestPearsonCorrelationPerfectLine(t *testing.T) {
	x := testkit.Group("x", 1, 2, 3, 4, 5)
	y := testkit.Group("y", 2, 4, 6, 8, 10)

	r := PearsonCorrelation(x, y, 0.05)
	if r == nil {
		t.Fatal("expected a correlation result")
	}
	if math.Abs(r.R-1) > 1e-12 {
		t.Errorf("perfect linear relation should give r = 1, got %f", r.R)
	}
	if r.PValue != 0 || !r.Significant {
		t.Errorf("perfect correlation should be decisive, p=%f", r.PValue)
	}
	if r.PairedN != 5 {
		t.Errorf("paired n should be 5, got %d", r.PairedN)
	}
}

func TestPearsonCorrelationTruncatesToShorter(t *testing.T) {
	x := testkit.Group("x", 1, 2, 3, 4, 5, 6, 7)
	y := testkit.Group("y", 3, 1, 4, 1, 5)

	r := PearsonCorrelation(x, y, 0.05)
	if r == nil {
		t.Fatal("expected a correlation result")
	}
	if r.PairedN != 5 {
		t.Errorf("pairs must truncate to the shorter group, got %d", r.PairedN)
	}
}

func TestPearsonCorrelationDegenerateCases(t *testing.T) {
	short := testkit.Group("s", 1, 2)
	if r := PearsonCorrelation(short, short, 0.05); r != nil {
		t.Error("fewer than 3 pairs must give no result")
	}
	flat := testkit.Group("flat", 5, 5, 5, 5)
	vary := testkit.Group("vary", 1, 2, 3, 4)
	if r := PearsonCorrelation(flat, vary, 0.05); r != nil {
		t.Error("a zero-variance side must give no result")
	}
}

func TestChiSquareTwoGroups(t *testing.T) {
	groups := []sample.GroupSample{
		testkit.NormalGroup("a", 40, 0, 1, 90),
		testkit.NormalGroup("b", 40, 0, 1, 91),
	}
	r := ChiSquare(groups, 0.05)
	if r == nil {
		t.Fatal("expected a chi-square result")
	}
	if r.DegreesOfFreedom != 1 {
		t.Errorf("two groups give 1 df, got %d", r.DegreesOfFreedom)
	}
	if len(r.Contingency) != 2 || len(r.Contingency[0]) != 2 {
		t.Errorf("contingency table must be 2x2, got %v", r.Contingency)
	}
	// Each group is split at its own median, so both rows are near-even and
	// independence holds.
	if r.Significant {
		t.Errorf("per-group median splits should not reject, p=%f", r.PValue)
	}
	total := 0.0
	for _, row := range r.Contingency {
		for _, c := range row {
			total += c
		}
	}
	if total != 80 {
		t.Errorf("contingency counts must cover every observation, got %f", total)
	}
}

func TestChiSquareOddsRatio(t *testing.T) {
	groups := []sample.GroupSample{
		testkit.NormalGroup("a", 30, 0, 1, 92),
		testkit.NormalGroup("b", 30, 5, 1, 93),
	}
	r := ChiSquare(groups, 0.05)
	if r == nil {
		t.Fatal("expected a chi-square result")
	}
	if r.HasOddsRatio && r.OddsRatio <= 0 {
		t.Errorf("a reported odds ratio must be positive, got %f", r.OddsRatio)
	}
}

func TestChiSquareThreeGroupsDF(t *testing.T) {
	groups := []sample.GroupSample{
		testkit.NormalGroup("a", 30, 0, 1, 94),
		testkit.NormalGroup("b", 30, 0, 1, 95),
		testkit.NormalGroup("c", 30, 0, 1, 96),
	}
	r := ChiSquare(groups, 0.05)
	if r == nil {
		t.Fatal("expected a chi-square result")
	}
	if r.DegreesOfFreedom != 2 {
		t.Errorf("three groups give 2 df, got %d", r.DegreesOfFreedom)
	}
	if r.HasOddsRatio {
		t.Error("odds ratio is a 2x2 quantity only")
	}
}
