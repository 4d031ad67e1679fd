// Package inference defines the immutable result types the engine produces
// for one outcome variable: assumption diagnostics, the selected test and
// its outcome, effect size, bootstrap interval, and power diagnostics.
// Collaborators (visualizer, reporter) consume these as read-only data.
package inference

import (
	"hypotest/domain/core"
)

// TestID identifies a hypothesis test procedure.
type TestID string

const (
	TestStudentT      TestID = "student_t"
	TestWelchT        TestID = "welch_t"
	TestMannWhitneyU  TestID = "mann_whitney_u"
	TestOneWayANOVA   TestID = "one_way_anova"
	TestWelchANOVA    TestID = "welch_anova"
	TestKruskalWallis TestID = "kruskal_wallis"
)

// PostHocID identifies a pairwise follow-up procedure.
type PostHocID string

const (
	PostHocNone        PostHocID = ""
	PostHocTukeyHSD    PostHocID = "tukey_hsd"
	PostHocGamesHowell PostHocID = "games_howell"
	PostHocDunn        PostHocID = "dunn"
)

// Family distinguishes parametric from rank-based procedures.
type Family string

const (
	FamilyParametric    Family = "parametric"
	FamilyNonParametric Family = "non_parametric"
)

// Family returns the test family for a test identifier.
func (t TestID) Family() Family {
	switch t {
	case TestMannWhitneyU, TestKruskalWallis:
		return FamilyNonParametric
	default:
		return FamilyParametric
	}
}

// NormalityOutcome is the per-group normality verdict. Indeterminate means
// the group was too small to test; selection treats it as not normal.
type NormalityOutcome string

const (
	NormalityNormal        NormalityOutcome = "normal"
	NormalityNotNormal     NormalityOutcome = "not_normal"
	NormalityIndeterminate NormalityOutcome = "indeterminate"
)

// GroupNormality holds one group's Shapiro-Wilk result.
type GroupNormality struct {
	Group     core.GroupLabel  `json:"group"`
	Statistic float64          `json:"statistic"`
	PValue    float64          `json:"p_value"`
	Outcome   NormalityOutcome `json:"outcome"`
}

// HomogeneityTest names the variance-homogeneity procedure that was run.
type HomogeneityTest string

const (
	HomogeneityBartlett HomogeneityTest = "bartlett"
	HomogeneityLevene   HomogeneityTest = "levene"
)

// AssumptionResult carries the distributional diagnostics that drive test
// selection. Immutable once computed.
type AssumptionResult struct {
	Normality      []GroupNormality `json:"normality"`
	Homogeneity    HomogeneityTest  `json:"homogeneity_test"`
	HomStatistic   float64          `json:"homogeneity_statistic"`
	HomPValue      float64          `json:"homogeneity_p_value"`
	EqualVariances bool             `json:"equal_variances"`
	Alpha          float64          `json:"alpha"`
}

// AllNormal reports whether every group was affirmatively assumed normal.
// Indeterminate groups count as not normal.
func (a AssumptionResult) AllNormal() bool {
	for _, g := range a.Normality {
		if g.Outcome != NormalityNormal {
			return false
		}
	}
	return len(a.Normality) > 0
}

// TestDecision records which test was chosen and why. The rationale lists
// the assumption thresholds that triggered the choice so the decision is
// auditable rather than buried in branching.
type TestDecision struct {
	Test      TestID    `json:"test"`
	PostHoc   PostHocID `json:"post_hoc,omitempty"`
	Rationale string    `json:"rationale"`
}

// PairwiseComparison is one post-hoc pair result.
type PairwiseComparison struct {
	GroupA      core.GroupLabel `json:"group_a"`
	GroupB      core.GroupLabel `json:"group_b"`
	Statistic   float64         `json:"statistic"`
	PValue      float64         `json:"p_value"`
	Adjustment  string          `json:"adjustment,omitempty"`
	Significant bool            `json:"significant"`
}

// TestResult is the outcome of the selected test. DegreesOfFreedom is zero
// when the test has none (Mann-Whitney U). Never mutated after creation.
type TestResult struct {
	Decision         TestDecision         `json:"decision"`
	Statistic        float64              `json:"statistic"`
	DegreesOfFreedom float64              `json:"degrees_of_freedom,omitempty"`
	DF2              float64              `json:"df2,omitempty"`
	PValue           float64              `json:"p_value"`
	Significant      bool                 `json:"significant"`
	PostHoc          []PairwiseComparison `json:"post_hoc,omitempty"`
}

// EffectMetric names a standardized effect-size measure.
type EffectMetric string

const (
	EffectCohenD       EffectMetric = "cohen_d"
	EffectRankBiserial EffectMetric = "rank_biserial"
	EffectEtaSquared   EffectMetric = "eta_squared"
	EffectEpsilonSq    EffectMetric = "epsilon_squared"
)

// Magnitude is the qualitative effect-size bucket per literature thresholds.
type Magnitude string

const (
	MagnitudeNegligible Magnitude = "negligible"
	MagnitudeSmall      Magnitude = "small"
	MagnitudeMedium     Magnitude = "medium"
	MagnitudeLarge      Magnitude = "large"
)

// EffectSize is a scale-free magnitude measure matched to the test family.
type EffectSize struct {
	Metric    EffectMetric `json:"metric"`
	Value     float64      `json:"value"`
	Magnitude Magnitude    `json:"magnitude"`
}

// BootstrapResult is a percentile-method confidence interval for a
// group-comparison statistic. Seed is always recorded so any run can be
// reproduced, including seedless runs where the seed was drawn fresh.
type BootstrapResult struct {
	Statistic       string  `json:"statistic"`
	PointEstimate   float64 `json:"point_estimate"`
	Lower           float64 `json:"lower"`
	Upper           float64 `json:"upper"`
	ConfidenceLevel float64 `json:"confidence_level"`
	Resamples       int     `json:"resamples"`
	Seed            int64   `json:"seed"`
}

// SampleSizeNotAchievable is the sentinel required-sample-size for a zero
// effect: no finite sample reaches the target power. A valid analytic
// outcome, not an error.
const SampleSizeNotAchievable = -1

// PowerResult holds achieved power at the observed effect and the minimum
// per-group n for the target power. Approximation documents any parametric
// analogue used for rank-based families.
type PowerResult struct {
	AchievedPower      float64 `json:"achieved_power"`
	TargetPower        float64 `json:"target_power"`
	RequiredSampleSize int     `json:"required_sample_size"`
	Alpha              float64 `json:"alpha"`
	EffectSize         float64 `json:"effect_size"`
	Approximation      string  `json:"approximation,omitempty"`
}

// ExtraResults are the optional add-on analyses enabled by configuration.
// Out of the core contract; any of the fields may be nil.
type ExtraResults struct {
	Correlation *CorrelationResult `json:"correlation,omitempty"`
	ChiSquare   *ChiSquareResult   `json:"chi_square,omitempty"`
}

// CorrelationResult is the Pearson correlation between two groups' paired
// observations, truncated to the shorter group.
type CorrelationResult struct {
	R           float64 `json:"r"`
	PValue      float64 `json:"p_value"`
	Significant bool    `json:"significant"`
	PairedN     int     `json:"paired_n"`
}

// ChiSquareResult is an independence test on median-binarized observations.
// OddsRatio is populated only for the 2x2 case and may be NaN-free zero
// when a margin cell is empty.
type ChiSquareResult struct {
	Statistic        float64     `json:"statistic"`
	DegreesOfFreedom int         `json:"degrees_of_freedom"`
	PValue           float64     `json:"p_value"`
	Significant      bool        `json:"significant"`
	Contingency      [][]float64 `json:"contingency"`
	OddsRatio        float64     `json:"odds_ratio,omitempty"`
	HasOddsRatio     bool        `json:"has_odds_ratio"`
}

// AnalysisResult aggregates every diagnostic for one outcome variable.
// Created fresh per (dataset, variable, configuration) triple and never
// updated in place.
type AnalysisResult struct {
	RunID       core.RunID       `json:"run_id"`
	Variable    core.VariableKey `json:"variable"`
	GroupSizes  map[string]int   `json:"group_sizes"`
	Assumptions AssumptionResult `json:"assumptions"`
	Test        TestResult       `json:"test"`
	Effect      EffectSize       `json:"effect"`
	Bootstrap   BootstrapResult  `json:"bootstrap"`
	Power       PowerResult      `json:"power"`
	Extra       *ExtraResults    `json:"extra,omitempty"`
	CreatedAt   core.Timestamp   `json:"created_at"`
}
