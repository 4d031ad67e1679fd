package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"hypotest/domain/core"
	"hypotest/internal/errors"
)

// Defaults for the recognized analysis options.
const (
	DefaultAlpha               = 0.05
	DefaultBootstrapIterations = 1000
	MinBootstrapIterations     = 100
	DefaultConfidenceLevel     = 0.95
	DefaultTargetPower         = 0.8
)

// EffectThresholds are the magnitude cut points for one effect metric,
// in ascending order: below Small is negligible, then small/medium/large.
type EffectThresholds struct {
	Small  float64
	Medium float64
	Large  float64
}

// Config is the immutable analysis configuration passed explicitly into
// every component call. It is never held as ambient state so results stay
// a pure function of (dataset, variable, configuration).
type Config struct {
	Alpha               float64
	BootstrapIterations int
	// BootstrapSeed, when non-nil, makes bootstrap intervals exactly
	// reproducible. When nil each run draws and records a fresh seed.
	BootstrapSeed    *int64
	ConfidenceLevel  float64
	TargetPower      float64
	RunExtraAnalyses bool

	// Magnitude bucket thresholds per effect metric, defaulting to the
	// standard literature values.
	CohenDThresholds       EffectThresholds
	EtaSquaredThresholds   EffectThresholds
	RankBiserialThresholds EffectThresholds
}

// Default returns the documented default configuration.
func Default() Config {
	return Config{
		Alpha:                  DefaultAlpha,
		BootstrapIterations:    DefaultBootstrapIterations,
		ConfidenceLevel:        DefaultConfidenceLevel,
		TargetPower:            DefaultTargetPower,
		CohenDThresholds:       EffectThresholds{Small: 0.2, Medium: 0.5, Large: 0.8},
		EtaSquaredThresholds:   EffectThresholds{Small: 0.01, Medium: 0.06, Large: 0.14},
		RankBiserialThresholds: EffectThresholds{Small: 0.1, Medium: 0.3, Large: 0.5},
	}
}

// WithSeed returns a copy of the configuration with a fixed bootstrap seed.
func (c Config) WithSeed(seed int64) Config {
	c.BootstrapSeed = &seed
	return c
}

// Validate rejects configurations before pipeline entry.
func (c Config) Validate() error {
	if c.Alpha <= 0 || c.Alpha >= 1 {
		return core.NewConfigurationError("alpha", "must be in (0, 1)")
	}
	if c.BootstrapIterations < MinBootstrapIterations {
		return core.NewConfigurationError("bootstrap_iterations", "must be at least 100, percentile estimates are unstable below this")
	}
	if c.ConfidenceLevel <= 0 || c.ConfidenceLevel >= 1 {
		return core.NewConfigurationError("confidence_level", "must be in (0, 1)")
	}
	if c.TargetPower <= 0 || c.TargetPower >= 1 {
		return core.NewConfigurationError("target_power", "must be in (0, 1)")
	}
	for _, th := range []EffectThresholds{c.CohenDThresholds, c.EtaSquaredThresholds, c.RankBiserialThresholds} {
		if !(th.Small > 0 && th.Small < th.Medium && th.Medium < th.Large) {
			return core.NewConfigurationError("effect thresholds", "must be positive and ascending")
		}
	}
	return nil
}

// Load reads configuration from environment variables, starting from the
// defaults. A .env file is honored when present, matching how the rest of
// the environment is provisioned.
func Load() (Config, error) {
	_ = godotenv.Load() // .env is optional

	cfg := Default()

	if v := os.Getenv("ANALYSIS_ALPHA"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, errors.Wrap(err, "invalid ANALYSIS_ALPHA")
		}
		cfg.Alpha = f
	}
	if v := os.Getenv("BOOTSTRAP_ITERATIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, errors.Wrap(err, "invalid BOOTSTRAP_ITERATIONS")
		}
		cfg.BootstrapIterations = n
	}
	if v := os.Getenv("BOOTSTRAP_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, errors.Wrap(err, "invalid BOOTSTRAP_SEED")
		}
		cfg.BootstrapSeed = &seed
	}
	if v := os.Getenv("CONFIDENCE_LEVEL"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, errors.Wrap(err, "invalid CONFIDENCE_LEVEL")
		}
		cfg.ConfidenceLevel = f
	}
	if v := os.Getenv("TARGET_POWER"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, errors.Wrap(err, "invalid TARGET_POWER")
		}
		cfg.TargetPower = f
	}
	if v := os.Getenv("RUN_EXTRA_ANALYSES"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, errors.Wrap(err, "invalid RUN_EXTRA_ANALYSES")
		}
		cfg.RunExtraAnalyses = b
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
