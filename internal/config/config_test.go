package config

import (
	"testing"

	"hypotest/domain/core"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default configuration must validate: %v", err)
	}
	if cfg.Alpha != 0.05 || cfg.BootstrapIterations != 1000 || cfg.ConfidenceLevel != 0.95 || cfg.TargetPower != 0.8 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.BootstrapSeed != nil {
		t.Error("default configuration must not pin a seed")
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"alpha zero", func(c *Config) { c.Alpha = 0 }},
		{"alpha one", func(c *Config) { c.Alpha = 1 }},
		{"iterations below floor", func(c *Config) { c.BootstrapIterations = 99 }},
		{"confidence level out of range", func(c *Config) { c.ConfidenceLevel = 1.5 }},
		{"target power negative", func(c *Config) { c.TargetPower = -0.1 }},
		{"thresholds not ascending", func(c *Config) { c.CohenDThresholds = EffectThresholds{Small: 0.5, Medium: 0.2, Large: 0.8} }},
		{"thresholds not positive", func(c *Config) { c.EtaSquaredThresholds.Small = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !core.IsConfigurationError(err) {
				t.Errorf("validation failures must be configuration errors, got %v", err)
			}
		})
	}
}

func TestWithSeedCopies(t *testing.T) {
	base := Default()
	seeded := base.WithSeed(42)

	if base.BootstrapSeed != nil {
		t.Error("WithSeed must not mutate the receiver")
	}
	if seeded.BootstrapSeed == nil || *seeded.BootstrapSeed != 42 {
		t.Error("WithSeed must pin the given seed")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ANALYSIS_ALPHA", "0.01")
	t.Setenv("BOOTSTRAP_ITERATIONS", "500")
	t.Setenv("BOOTSTRAP_SEED", "1234")
	t.Setenv("RUN_EXTRA_ANALYSES", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Alpha != 0.01 || cfg.BootstrapIterations != 500 || !cfg.RunExtraAnalyses {
		t.Errorf("environment not applied: %+v", cfg)
	}
	if cfg.BootstrapSeed == nil || *cfg.BootstrapSeed != 1234 {
		t.Error("BOOTSTRAP_SEED not applied")
	}
	// Untouched options keep their defaults.
	if cfg.ConfidenceLevel != DefaultConfidenceLevel {
		t.Errorf("confidence level should default, got %f", cfg.ConfidenceLevel)
	}
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("ANALYSIS_ALPHA", "not-a-number")
	if _, err := Load(); err == nil {
		t.Fatal("malformed ANALYSIS_ALPHA must fail")
	}
}

func TestLoadValidatesResult(t *testing.T) {
	t.Setenv("ANALYSIS_ALPHA", "2.0")
	_, err := Load()
	if !core.IsConfigurationError(err) {
		t.Fatalf("out-of-range ANALYSIS_ALPHA must fail validation, got %v", err)
	}
}
