package effect

import (
	"math"
	"testing"

	"hypotest/domain/inference"
	"hypotest/domain/sample"
	"hypotest/internal/config"
	"hypotest/internal/testkit"
)

func TestCohenDPooledKnownValue(t *testing.T) {
	// Means 10 and 12, both variances 4, so d = -2/2 = -1 exactly.
	g1 := []float64{8, 10, 12}
	g2 := []float64{10, 12, 14}

	d := CohenDPooled(g1, g2)
	if math.Abs(d+1) > 1e-12 {
		t.Errorf("expected d = -1, got %f", d)
	}
	if rev := CohenDPooled(g2, g1); math.Abs(rev-1) > 1e-12 {
		t.Errorf("swapping groups should flip the sign, got %f", rev)
	}
}

func TestCohenDUnpooledEqualVariances(t *testing.T) {
	// With equal variances the unpooled denominator collapses to the same sd.
	g1 := []float64{8, 10, 12}
	g2 := []float64{10, 12, 14}

	if d := CohenDUnpooled(g1, g2); math.Abs(d+1) > 1e-12 {
		t.Errorf("expected d = -1, got %f", d)
	}
}

func TestCohenDDegenerateDenominator(t *testing.T) {
	g := []float64{5, 5, 5}
	if d := CohenDPooled(g, g); d != 0 {
		t.Errorf("zero spread must give d = 0, got %f", d)
	}
	if d := CohenDUnpooled(g, g); d != 0 {
		t.Errorf("zero spread must give d = 0, got %f", d)
	}
}

func TestRankBiserialBounds(t *testing.T) {
	low := []float64{1, 2, 3, 4, 5}
	high := []float64{10, 11, 12, 13, 14}

	// Complete separation pins U1 to an extreme, so |r| = 1.
	if r := RankBiserial(high, low); math.Abs(r+1) > 1e-12 {
		t.Errorf("group1 dominating should give r = -1, got %f", r)
	}
	if r := RankBiserial(low, high); math.Abs(r-1) > 1e-12 {
		t.Errorf("group2 dominating should give r = 1, got %f", r)
	}
	if r := RankBiserial(low, low); math.Abs(r) > 1e-12 {
		t.Errorf("identical groups should give r = 0, got %f", r)
	}
}

func TestEtaSquaredDecomposition(t *testing.T) {
	groups := [][]float64{
		testkit.NormalValues(20, 0, 1, 40),
		testkit.NormalValues(20, 0, 1, 41),
		testkit.NormalValues(20, 0, 1, 42),
	}
	eta := EtaSquared(groups)
	if eta < 0 || eta > 1 {
		t.Fatalf("eta-squared out of [0,1]: %f", eta)
	}
	if eta > 0.05 {
		t.Errorf("same-mean groups should show near-zero eta-squared, got %f", eta)
	}

	separated := [][]float64{
		testkit.NormalValues(20, 0, 1, 43),
		testkit.NormalValues(20, 5, 1, 44),
		testkit.NormalValues(20, 10, 1, 45),
	}
	if eta := EtaSquared(separated); eta < 0.8 {
		t.Errorf("widely separated means should dominate variance, got %f", eta)
	}
}

func TestEpsilonSquaredRange(t *testing.T) {
	groups := [][]float64{
		testkit.SkewedValues(20, 46),
		testkit.SkewedValues(20, 47),
	}
	eps := EpsilonSquared(groups)
	if eps < 0 || eps > 1 {
		t.Fatalf("epsilon-squared out of [0,1]: %f", eps)
	}
	if eps > 0.1 {
		t.Errorf("same-distribution groups should show small epsilon-squared, got %f", eps)
	}
}

func TestComputeBuckets(t *testing.T) {
	engine := NewEngine(config.Default())

	cases := []struct {
		name  string
		d     float64
		wants inference.Magnitude
	}{
		{"negligible", 0.1, inference.MagnitudeNegligible},
		{"small", 0.3, inference.MagnitudeSmall},
		{"medium", 0.6, inference.MagnitudeMedium},
		{"large", 1.2, inference.MagnitudeLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Shift one group by d standard deviations; the fixture sd is 1.
			groups := []sample.GroupSample{
				testkit.NormalGroup("a", 400, 0, 1, 48),
				testkit.NormalGroup("b", 400, tc.d, 1, 48),
			}
			es, err := engine.Compute(inference.TestDecision{Test: inference.TestStudentT}, groups)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if es.Metric != inference.EffectCohenD {
				t.Errorf("t family should report cohen_d, got %q", es.Metric)
			}
			if es.Magnitude != tc.wants {
				t.Errorf("d=%f bucketed as %q, want %q (value %f)", tc.d, es.Magnitude, tc.wants, es.Value)
			}
		})
	}
}

func TestComputeMetricPerFamily(t *testing.T) {
	engine := NewEngine(config.Default())
	two := []sample.GroupSample{
		testkit.NormalGroup("a", 20, 0, 1, 49),
		testkit.NormalGroup("b", 20, 1, 1, 50),
	}
	three := append(two, testkit.NormalGroup("c", 20, 2, 1, 51))

	cases := []struct {
		test   inference.TestID
		groups []sample.GroupSample
		metric inference.EffectMetric
	}{
		{inference.TestStudentT, two, inference.EffectCohenD},
		{inference.TestWelchT, two, inference.EffectCohenD},
		{inference.TestMannWhitneyU, two, inference.EffectRankBiserial},
		{inference.TestOneWayANOVA, three, inference.EffectEtaSquared},
		{inference.TestWelchANOVA, three, inference.EffectEtaSquared},
		{inference.TestKruskalWallis, three, inference.EffectEpsilonSq},
	}
	for _, tc := range cases {
		t.Run(string(tc.test), func(t *testing.T) {
			es, err := engine.Compute(inference.TestDecision{Test: tc.test}, tc.groups)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if es.Metric != tc.metric {
				t.Errorf("test %q reported metric %q, want %q", tc.test, es.Metric, tc.metric)
			}
		})
	}
}
