package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patrik-drean/dealflow-cli/internal/config"
	"github.com/patrik-drean/dealflow-cli/internal/model"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestScore_UnscoredSentinel(t *testing.T) {
	t.Parallel()
	sc := New(DefaultConfig())

	t.Run("nil square footage", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 0, sc.Score(250_000, nil))
	})

	t.Run("zero square footage", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 0, sc.Score(250_000, floatPtr(0)))
	})

	t.Run("negative square footage", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 0, sc.Score(250_000, floatPtr(-1200)))
	})
}

func TestScore_RatioBands(t *testing.T) {
	t.Parallel()
	sc := New(DefaultConfig())

	// With sqft=1000 the ARV guess is $160,000, so price = ratio * 160000.
	sqft := floatPtr(1000)
	tests := []struct {
		name  string
		price float64
		want  int
	}{
		{"ratio above 1", 200_000, 1},
		{"ratio 0.95 boundary", 152_000, 1},
		{"ratio 0.90 boundary takes lower score", 144_000, 2},
		{"ratio just under 0.90", 143_984, 3}, // 0.8999
		{"ratio 0.85", 136_000, 3},
		{"ratio 0.80", 128_000, 4},
		{"ratio 0.75", 120_000, 5},
		{"ratio 0.70", 112_000, 6},
		{"ratio 0.65", 104_000, 7},
		{"ratio 0.60", 96_000, 8},
		{"ratio 0.55 boundary", 88_000, 9},
		{"ratio below 0.55", 87_000, 10},
		{"deep discount", 40_000, 10},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sc.Score(tt.price, sqft))
		})
	}
}

func TestScore_Deterministic(t *testing.T) {
	t.Parallel()
	sc := New(DefaultConfig())
	first := sc.Score(137_500, floatPtr(987))
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, sc.Score(137_500, floatPtr(987)))
	}
}

func TestScore_ConfigurableARV(t *testing.T) {
	t.Parallel()
	// $200/sqft moves the same listing into a better band.
	sc := New(config.ScorerConfig{ARVPerSqft: 200, MinActionScore: 5})
	// 144000 / (200*1000) = 0.72 -> score 6.
	assert.Equal(t, 6, sc.Score(144_000, floatPtr(1000)))
}

func TestEffectiveScore(t *testing.T) {
	t.Parallel()
	sc := New(DefaultConfig())

	t.Run("backend score is authoritative", func(t *testing.T) {
		t.Parallel()
		lead := model.Lead{
			ListingPrice:  152_000,
			SquareFootage: floatPtr(1000), // would compute to 1
			LeadScore:     intPtr(8),
		}
		assert.Equal(t, 8, sc.EffectiveScore(lead))
	})

	t.Run("falls back to computed score", func(t *testing.T) {
		t.Parallel()
		lead := model.Lead{
			ListingPrice:  88_000,
			SquareFootage: floatPtr(1000),
		}
		assert.Equal(t, 9, sc.EffectiveScore(lead))
	})

	t.Run("no data at all scores 0", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 0, sc.EffectiveScore(model.Lead{ListingPrice: 88_000}))
	})
}

func TestScoreFromSpread(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		spread *float64
		want   int
	}{
		{"nil spread is neutral 5", nil, 5},
		{"negative spread is best", floatPtr(-1), 10},
		{"spread 0", floatPtr(0), 10},
		{"spread 10 boundary", floatPtr(10), 10},
		{"spread 11", floatPtr(11), 9},
		{"spread 15 boundary", floatPtr(15), 9},
		{"spread 20", floatPtr(20), 8},
		{"spread 25", floatPtr(25), 7},
		{"spread 30", floatPtr(30), 6},
		{"spread 40", floatPtr(40), 5},
		{"spread 50", floatPtr(50), 4},
		{"spread 60", floatPtr(60), 3},
		{"spread 75 boundary", floatPtr(75), 2},
		{"spread 76", floatPtr(76), 1},
		{"huge spread", floatPtr(500), 1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ScoreFromSpread(tt.spread))
		})
	}
}

func TestScoreFromSpread_Monotonic(t *testing.T) {
	t.Parallel()
	prev := ScoreFromSpread(floatPtr(-5))
	for spread := -4.0; spread <= 100; spread += 0.5 {
		cur := ScoreFromSpread(&spread)
		require.LessOrEqual(t, cur, prev, "score must not increase as spread grows (spread=%v)", spread)
		prev = cur
	}
}

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults are valid", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, ValidateConfig(DefaultConfig()))
	})

	t.Run("rejects zero arv", func(t *testing.T) {
		t.Parallel()
		err := ValidateConfig(config.ScorerConfig{ARVPerSqft: 0, MinActionScore: 5})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "arv_per_sqft")
	})

	t.Run("rejects out-of-range action floor", func(t *testing.T) {
		t.Parallel()
		err := ValidateConfig(config.ScorerConfig{ARVPerSqft: 160, MinActionScore: 11})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "min_action_score")
	})
}
