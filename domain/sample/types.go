// Package sample holds the validated in-memory data model the inference
// engine consumes: labeled groups of numeric observations, keyed by
// outcome variable. Parsing and validation of raw files happen upstream;
// these types only enforce the structural invariants the engine relies on.
package sample

import (
	"sort"

	"hypotest/domain/core"
)

// MinGroupSize is the structural minimum per group. Thirty or more
// observations per group are recommended but not enforced.
const MinGroupSize = 2

// GroupSample is one group's ordered observations for a single outcome
// variable. Immutable after construction.
type GroupSample struct {
	label  core.GroupLabel
	values []float64
}

// NewGroupSample validates and builds a GroupSample. The observations are
// copied, so the caller keeps ownership of its slice.
func NewGroupSample(label core.GroupLabel, values []float64) (GroupSample, error) {
	if label == "" {
		return GroupSample{}, core.NewConfigurationError("group label", "must not be empty")
	}
	if len(values) < MinGroupSize {
		return GroupSample{}, core.NewInsufficientSampleError(label, len(values), MinGroupSize)
	}
	copied := make([]float64, len(values))
	copy(copied, values)
	return GroupSample{label: label, values: copied}, nil
}

// Label returns the group label.
func (g GroupSample) Label() core.GroupLabel { return g.label }

// Size returns the number of observations.
func (g GroupSample) Size() int { return len(g.values) }

// Values returns a defensive copy of the observations.
func (g GroupSample) Values() []float64 {
	copied := make([]float64, len(g.values))
	copy(copied, g.values)
	return copied
}

// Mean returns the sample mean.
func (g GroupSample) Mean() float64 {
	sum := 0.0
	for _, v := range g.values {
		sum += v
	}
	return sum / float64(len(g.values))
}

// Variance returns the unbiased sample variance.
func (g GroupSample) Variance() float64 {
	mean := g.Mean()
	sumSq := 0.0
	for _, v := range g.values {
		d := v - mean
		sumSq += d * d
	}
	return sumSq / float64(len(g.values)-1)
}

// IsDegenerate reports whether every observation is identical, which makes
// variance-based statistics undefined.
func (g GroupSample) IsDegenerate() bool {
	first := g.values[0]
	for _, v := range g.values[1:] {
		if v != first {
			return false
		}
	}
	return true
}

// Dataset maps outcome-variable names to the group samples compared under
// that variable. Every entry shares the same set of group labels.
type Dataset struct {
	variables map[core.VariableKey][]GroupSample
}

// NewDataset builds a dataset from per-variable group samples. Each
// variable needs at least two distinct groups.
func NewDataset(variables map[core.VariableKey][]GroupSample) (*Dataset, error) {
	if len(variables) == 0 {
		return nil, core.NewConfigurationError("dataset", "must contain at least one outcome variable")
	}
	for key, groups := range variables {
		if len(groups) < 2 {
			return nil, core.ErrTooFewGroups
		}
		seen := make(map[core.GroupLabel]bool, len(groups))
		for _, g := range groups {
			if seen[g.Label()] {
				return nil, core.NewConfigurationError("dataset", "duplicate group label "+g.Label().String()+" for variable "+key.String())
			}
			seen[g.Label()] = true
		}
	}
	copied := make(map[core.VariableKey][]GroupSample, len(variables))
	for key, groups := range variables {
		copied[key] = append([]GroupSample(nil), groups...)
	}
	return &Dataset{variables: copied}, nil
}

// Variables returns the outcome-variable keys in deterministic order.
func (d *Dataset) Variables() []core.VariableKey {
	keys := make([]core.VariableKey, 0, len(d.variables))
	for key := range d.variables {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Groups returns the group samples for one outcome variable.
func (d *Dataset) Groups(key core.VariableKey) ([]GroupSample, error) {
	groups, ok := d.variables[key]
	if !ok {
		return nil, core.ErrVariableNotFound
	}
	return append([]GroupSample(nil), groups...), nil
}
