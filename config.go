package kinfraglib

import (
	"fmt"

	"github.com/sonjaleo/kinfraglib/types"
)

// Config is the configuration for the Sieve.
//
// The cutoff criteria names the REJECT condition relative to the cutoff
// value; see the package documentation and types.Criteria for the polarity
// rules. The zero value of CutoffValue is a legitimate threshold (it is the
// original filter's default), so SetDefaults only fills in the criteria.
type Config struct {
	// CutoffValue is the numeric threshold each row's value is compared
	// against. Default: 0.
	CutoffValue float64 `yaml:"cutoffValue"`

	// CutoffCriteria is the comparison operator naming the reject condition
	// ("<", ">", "<=", ">=", "==", "!="). Default: "<".
	CutoffCriteria types.Criteria `yaml:"cutoffCriteria"`
}

// DefaultConfig returns the configuration the original filter defaults to:
// reject rows whose value is below zero.
func DefaultConfig() Config {
	return Config{
		CutoffValue:    0,
		CutoffCriteria: types.CriteriaLess,
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.CutoffCriteria == "" {
		cfg.CutoffCriteria = defaults.CutoffCriteria
	}
	// Note: CutoffValue 0 is a valid threshold, so no default is applied
}

// Validate checks the configuration for correctness.
//
// Returns:
//   - error: ErrInvalidConfig (wrapping the specific problem) or nil
func (cfg *Config) Validate() error {
	if !cfg.CutoffCriteria.Valid() {
		return fmt.Errorf("%w: %w: %q", types.ErrInvalidConfig,
			types.ErrInvalidCriteria, string(cfg.CutoffCriteria))
	}

	return nil
}

// Cutoff returns the accept/reject boundary described by the configuration.
func (cfg *Config) Cutoff() types.Cutoff {
	return types.Cutoff{
		Value:    cfg.CutoffValue,
		Criteria: cfg.CutoffCriteria,
	}
}

// TestConfig returns a configuration suitable for tests: a mid-range cutoff
// with the default reject-below polarity.
func TestConfig() Config {
	return Config{
		CutoffValue:    5,
		CutoffCriteria: types.CriteriaLess,
	}
}
