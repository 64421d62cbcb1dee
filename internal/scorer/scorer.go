// Package scorer converts raw listing economics into 1-10 deal-quality
// scores. Score 0 means "insufficient data to score", not "worst deal".
package scorer

import (
	"github.com/patrik-drean/dealflow-cli/internal/config"
	"github.com/patrik-drean/dealflow-cli/internal/model"
)

// ratioBands maps price-to-ARV ratio to a deal score, evaluated from the
// highest ratio down with inclusive lower bounds. A higher ratio means the
// asking price eats more of the after-repair value, so the score drops.
// Score 10 is reserved for ratios below 0.55.
var ratioBands = []struct {
	min   float64
	score int
}{
	{0.95, 1},
	{0.90, 2},
	{0.85, 3},
	{0.80, 4},
	{0.75, 5},
	{0.70, 6},
	{0.65, 7},
	{0.60, 8},
	{0.55, 9},
}

// spreadBands maps the percentage spread between list price and maximum
// allowable offer to a score, evaluated by ascending inclusive upper
// bounds. Lower spread means a better deal.
var spreadBands = []struct {
	max   float64
	score int
}{
	{10, 10},
	{15, 9},
	{20, 8},
	{25, 7},
	{30, 6},
	{40, 5},
	{50, 4},
	{60, 3},
	{75, 2},
}

// Scorer computes deal scores using a configured ARV rule of thumb.
type Scorer struct {
	cfg config.ScorerConfig
}

// New creates a Scorer with the given config.
func New(cfg config.ScorerConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

// MinActionScore returns the effective-score floor for the action_now queue.
func (s *Scorer) MinActionScore() int {
	return s.cfg.MinActionScore
}

// Score converts a listing price and square footage into a 1-10 deal
// score. Missing or non-positive square footage returns 0 (unscored).
// Negative listing prices are passed through the arithmetic unvalidated;
// callers own input validation.
func (s *Scorer) Score(listingPrice float64, squareFootage *float64) int {
	if squareFootage == nil || *squareFootage <= 0 {
		return 0
	}
	arvGuess := s.cfg.ARVPerSqft * *squareFootage
	ratio := listingPrice / arvGuess
	for _, b := range ratioBands {
		if ratio >= b.min {
			return b.score
		}
	}
	return 10
}

// EffectiveScore resolves a lead's score: the backend-provided LeadScore
// when present, otherwise computed from price and square footage. Every
// caller (queue filtering, sorting, display) goes through this resolver
// so the two scoring paths cannot drift.
func (s *Scorer) EffectiveScore(lead model.Lead) int {
	if lead.LeadScore != nil {
		return *lead.LeadScore
	}
	return s.Score(lead.ListingPrice, lead.SquareFootage)
}

// ScoreFromSpread converts a precomputed list-price-to-MAO spread
// percentage into a 1-10 score. A nil spread returns 5 (neutral default,
// intentionally distinct from Score's 0 sentinel); a negative spread
// means the listing is already below the maximum allowable offer and
// returns 10. The result is a non-increasing step function of spread.
func ScoreFromSpread(spreadPercent *float64) int {
	if spreadPercent == nil {
		return 5
	}
	spread := *spreadPercent
	if spread < 0 {
		return 10
	}
	for _, b := range spreadBands {
		if spread <= b.max {
			return b.score
		}
	}
	return 1
}
