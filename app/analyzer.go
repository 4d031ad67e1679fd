// Package app sequences the statistical components into one immutable
// AnalysisResult per outcome variable: assumptions drive selection, the
// selected test runs, then effect size, bootstrap interval, and power
// diagnostics are derived from the same samples.
package app

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"hypotest/adapters/stats/assume"
	"hypotest/adapters/stats/bootstrap"
	"hypotest/adapters/stats/effect"
	"hypotest/adapters/stats/extra"
	"hypotest/adapters/stats/power"
	"hypotest/adapters/stats/tests"
	"hypotest/domain/core"
	"hypotest/domain/inference"
	"hypotest/domain/sample"
	"hypotest/internal"
	"hypotest/internal/config"
	"hypotest/ports"
)

// Analyzer is the result aggregator. It owns no mutable state between
// runs; every result is a pure function of (dataset, variable,
// configuration).
type Analyzer struct {
	cfg     config.Config
	log     *internal.Logger
	checker *assume.Checker
	effects *effect.Engine
	boot    *bootstrap.Engine
	power   *power.Analyzer
}

// NewAnalyzer validates the configuration and wires the pipeline. A bad
// configuration is rejected here, before any pipeline entry.
func NewAnalyzer(cfg config.Config, logger *internal.Logger, rng ports.RNGPort) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Analyzer{
		cfg:     cfg,
		log:     logger.WithPrefix("analyzer"),
		checker: assume.NewChecker(cfg.Alpha),
		effects: effect.NewEngine(cfg),
		boot:    bootstrap.NewEngine(rng),
		power:   power.NewAnalyzer(),
	}, nil
}

// AnalyzeDataset runs one independent pipeline per outcome variable,
// in parallel, and merges results by variable name. The first failing
// variable aborts the whole call; inputs are deterministic, so the failure
// is not transient and no retry happens.
func (a *Analyzer) AnalyzeDataset(ctx context.Context, ds *sample.Dataset) (map[core.VariableKey]*inference.AnalysisResult, error) {
	variables := ds.Variables()
	results := make(map[core.VariableKey]*inference.AnalysisResult, len(variables))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, key := range variables {
		key := key
		g.Go(func() error {
			groups, err := ds.Groups(key)
			if err != nil {
				return err
			}
			result, err := a.AnalyzeVariable(gctx, key, groups)
			if err != nil {
				return err
			}
			mu.Lock()
			results[key] = result
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// AnalyzeVariable runs the full pipeline for one outcome variable. Sample
// errors (degenerate or insufficient groups) short-circuit the run: no
// partial result is ever returned.
func (a *Analyzer) AnalyzeVariable(ctx context.Context, key core.VariableKey, groups []sample.GroupSample) (*inference.AnalysisResult, error) {
	if len(groups) < 2 {
		return nil, core.ErrTooFewGroups
	}

	assumptions, err := a.checker.Check(groups)
	if err != nil {
		return nil, err
	}

	decision, err := tests.Select(len(groups), assumptions)
	if err != nil {
		return nil, err
	}
	a.log.Debug("variable %s: selected %s (%s)", key, decision.Test, decision.Rationale)

	testResult, err := tests.Run(decision, groups, a.cfg.Alpha)
	if err != nil {
		return nil, err
	}

	effectSize, err := a.effects.Compute(decision, groups)
	if err != nil {
		return nil, err
	}

	bootResult, err := a.boot.Run(ctx, groups, bootstrapStatistic(decision, len(groups)), a.cfg, "bootstrap/"+key.String())
	if err != nil {
		return nil, err
	}

	powerResult := a.analyzePower(decision, effectSize, groups)

	result := &inference.AnalysisResult{
		RunID:       core.RunID(core.NewID()),
		Variable:    key,
		GroupSizes:  groupSizes(groups),
		Assumptions: assumptions,
		Test:        testResult,
		Effect:      effectSize,
		Bootstrap:   bootResult,
		Power:       powerResult,
		CreatedAt:   core.Now(),
	}
	if a.cfg.RunExtraAnalyses {
		result.Extra = a.runExtras(groups)
	}

	a.log.Info("variable %s: %s p=%.4g, %s=%.3f (%s), power=%.3f",
		key, testResult.Decision.Test, testResult.PValue,
		effectSize.Metric, effectSize.Value, effectSize.Magnitude,
		powerResult.AchievedPower)
	return result, nil
}

// bootstrapStatistic picks the comparison statistic matching the test
// family: mean-based on the parametric path, median-based on the
// rank-based path, range-of-centers beyond two groups.
func bootstrapStatistic(decision inference.TestDecision, groupCount int) bootstrap.Statistic {
	parametric := decision.Test.Family() == inference.FamilyParametric
	if groupCount == 2 {
		if parametric {
			return bootstrap.MeanDifference()
		}
		return bootstrap.MedianDifference()
	}
	if parametric {
		return bootstrap.MeanRange()
	}
	return bootstrap.MedianRange()
}

// analyzePower feeds the power analyzer the parametric-analogue effect for
// the decision's family. Rank-based families get the documented
// ARE-deflated approximation.
func (a *Analyzer) analyzePower(decision inference.TestDecision, effectSize inference.EffectSize, groups []sample.GroupSample) inference.PowerResult {
	raw := make([][]float64, len(groups))
	sizes := make([]int, len(groups))
	for i, g := range groups {
		raw[i] = g.Values()
		sizes[i] = g.Size()
	}

	switch decision.Test {
	case inference.TestStudentT, inference.TestWelchT:
		return a.power.TwoSample(effectSize.Value, sizes[0], sizes[1], a.cfg.Alpha, a.cfg.TargetPower, false)
	case inference.TestMannWhitneyU:
		d := effect.CohenDPooled(raw[0], raw[1])
		return a.power.TwoSample(d, sizes[0], sizes[1], a.cfg.Alpha, a.cfg.TargetPower, true)
	case inference.TestKruskalWallis:
		eta := effect.EtaSquared(raw)
		return a.power.ANOVA(eta, sizes, a.cfg.Alpha, a.cfg.TargetPower, true)
	default:
		eta := effectSize.Value
		if effectSize.Metric != inference.EffectEtaSquared {
			eta = effect.EtaSquared(raw)
		}
		return a.power.ANOVA(eta, sizes, a.cfg.Alpha, a.cfg.TargetPower, false)
	}
}

// runExtras attaches the optional add-on analyses. Failures here degrade
// to absent fields; the core result is already complete.
func (a *Analyzer) runExtras(groups []sample.GroupSample) *inference.ExtraResults {
	extras := &inference.ExtraResults{
		ChiSquare: extra.ChiSquare(groups, a.cfg.Alpha),
	}
	if len(groups) == 2 {
		extras.Correlation = extra.PearsonCorrelation(groups[0], groups[1], a.cfg.Alpha)
	}
	if extras.ChiSquare == nil && extras.Correlation == nil {
		return nil
	}
	return extras
}

func groupSizes(groups []sample.GroupSample) map[string]int {
	sizes := make(map[string]int, len(groups))
	for _, g := range groups {
		sizes[g.Label().String()] = g.Size()
	}
	return sizes
}
