package tests

import (
	"strings"
	"testing"

	"hypotest/domain/core"
	"hypotest/domain/inference"
	"hypotest/domain/sample"
	"hypotest/internal/testkit"
)

func labels(names ...string) []core.GroupLabel {
	out := make([]core.GroupLabel, len(names))
	for i, n := range names {
		out[i] = core.GroupLabel(n)
	}
	return out
}

func TestTukeyHSDSeparatedGroups(t *testing.T) {
	groups := [][]float64{
		testkit.NormalValues(30, 0, 1, 20),
		testkit.NormalValues(30, 0.1, 1, 21),
		testkit.NormalValues(30, 5, 1, 22),
	}
	comparisons := TukeyHSD(groups, labels("a", "b", "c"), 0.05)

	if len(comparisons) != 3 {
		t.Fatalf("3 groups should give 3 pairs, got %d", len(comparisons))
	}
	byPair := map[string]inference.PairwiseComparison{}
	for _, c := range comparisons {
		if c.PValue < 0 || c.PValue > 1 {
			t.Errorf("pair %s-%s p out of range: %f", c.GroupA, c.GroupB, c.PValue)
		}
		byPair[c.GroupA.String()+c.GroupB.String()] = c
	}

	if byPair["ab"].Significant {
		t.Errorf("a vs b are nearly identical, p=%f should not reject", byPair["ab"].PValue)
	}
	if !byPair["ac"].Significant || !byPair["bc"].Significant {
		t.Error("c is 5 sigma away and should differ from both a and b")
	}
}

func TestGamesHowellSeparatedGroups(t *testing.T) {
	groups := [][]float64{
		testkit.NormalValues(30, 0, 1, 23),
		testkit.NormalValues(30, 0, 6, 24),
		testkit.NormalValues(30, 8, 2, 25),
	}
	comparisons := GamesHowell(groups, labels("a", "b", "c"), 0.05)

	if len(comparisons) != 3 {
		t.Fatalf("expected 3 pairs, got %d", len(comparisons))
	}
	for _, c := range comparisons {
		if c.GroupA == "a" && c.GroupB == "c" && !c.Significant {
			t.Errorf("a vs c should be significant, p=%f", c.PValue)
		}
		if c.GroupA == "a" && c.GroupB == "b" && c.Significant {
			t.Errorf("a vs b share a mean, p=%f should not reject", c.PValue)
		}
	}
}

func TestDunnBonferroniAdjustment(t *testing.T) {
	groups := [][]float64{
		testkit.SkewedValues(25, 26),
		testkit.SkewedValues(25, 27),
		shift(testkit.SkewedValues(25, 28), 50),
	}
	kw := KruskalWallis(groups)
	comparisons := Dunn(kw, groups, labels("a", "b", "c"), 0.05)

	if len(comparisons) != 3 {
		t.Fatalf("expected 3 pairs, got %d", len(comparisons))
	}
	for _, c := range comparisons {
		if c.Adjustment != "bonferroni" {
			t.Errorf("correction method must be recorded, got %q", c.Adjustment)
		}
		if c.PValue < 0 || c.PValue > 1 {
			t.Errorf("adjusted p out of range: %f", c.PValue)
		}
		separated := c.GroupB == "c"
		if separated && !c.Significant {
			t.Errorf("%s vs %s fully separated, p=%f", c.GroupA, c.GroupB, c.PValue)
		}
		if !separated && c.Significant {
			t.Errorf("%s vs %s same distribution, p=%f", c.GroupA, c.GroupB, c.PValue)
		}
	}
}

func TestRunGatesPostHocOnOmnibus(t *testing.T) {
	// Three samples of the same distribution: omnibus should not reject,
	// so the post-hoc must be dropped and the rationale updated.
	groups := []sample.GroupSample{
		testkit.NormalGroup("a", 20, 0, 1, 30),
		testkit.NormalGroup("b", 20, 0, 1, 31),
		testkit.NormalGroup("c", 20, 0, 1, 32),
	}
	decision := inference.TestDecision{
		Test:      inference.TestOneWayANOVA,
		PostHoc:   inference.PostHocTukeyHSD,
		Rationale: "all groups normal, variances homogeneous",
	}

	result, err := Run(decision, groups, 0.05)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Significant {
		t.Fatalf("identical distributions should not reject, p=%f", result.PValue)
	}
	if len(result.PostHoc) != 0 {
		t.Error("post-hoc must not run without a significant omnibus")
	}
	if result.Decision.PostHoc != inference.PostHocNone {
		t.Error("decision must record that no post-hoc ran")
	}
	if !strings.Contains(result.Decision.Rationale, "omnibus not significant") {
		t.Errorf("rationale should explain the gate, got %q", result.Decision.Rationale)
	}
}

func TestRunAttachesPostHocWhenSignificant(t *testing.T) {
	groups := []sample.GroupSample{
		testkit.NormalGroup("a", 30, 0, 1, 33),
		testkit.NormalGroup("b", 30, 2, 1, 34),
		testkit.NormalGroup("c", 30, 4, 1, 35),
	}
	decision := inference.TestDecision{
		Test:    inference.TestOneWayANOVA,
		PostHoc: inference.PostHocTukeyHSD,
	}

	result, err := Run(decision, groups, 0.05)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Significant {
		t.Fatalf("separated groups should reject, p=%f", result.PValue)
	}
	if len(result.PostHoc) != 3 {
		t.Fatalf("expected 3 pairwise comparisons, got %d", len(result.PostHoc))
	}
	if result.Decision.PostHoc != inference.PostHocTukeyHSD {
		t.Error("decision must keep the executed post-hoc identifier")
	}
}
