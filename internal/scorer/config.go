package scorer

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/patrik-drean/dealflow-cli/internal/config"
)

// DefaultConfig returns a config.ScorerConfig with the standard
// $160/sqft ARV rule and the action_now score floor of 5.
func DefaultConfig() config.ScorerConfig {
	return config.ScorerConfig{
		ARVPerSqft:     160,
		MinActionScore: 5,
	}
}

// ValidateConfig checks that a ScorerConfig is internally consistent.
func ValidateConfig(c config.ScorerConfig) error {
	var errs []string

	if c.ARVPerSqft <= 0 {
		errs = append(errs, fmt.Sprintf("arv_per_sqft must be > 0 (got %g)", c.ARVPerSqft))
	}
	if c.MinActionScore < 0 || c.MinActionScore > 10 {
		errs = append(errs, fmt.Sprintf("min_action_score must be between 0 and 10 (got %d)", c.MinActionScore))
	}

	if len(errs) > 0 {
		return eris.Errorf("scorer: config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
