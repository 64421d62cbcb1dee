package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	t.Parallel()

	t.Run("accepts the closed set", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{"New", "Contacted", "Responding", "Negotiating", "UnderContract", "Converted", "Archived"} {
			st, err := ParseStatus(s)
			require.NoError(t, err)
			assert.Equal(t, Status(s), st)
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		t.Parallel()
		_, err := ParseStatus("Closed")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown status")
	})

	t.Run("rejects lowercase variants", func(t *testing.T) {
		t.Parallel()
		_, err := ParseStatus("new")
		assert.Error(t, err)
	})
}

func TestPriorityRank(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, PriorityUrgent.Rank())
	assert.Equal(t, 1, PriorityHigh.Rank())
	assert.Equal(t, 2, PriorityMedium.Rank())
	assert.Equal(t, 3, PriorityNormal.Rank())

	t.Run("unknown tier sorts last", func(t *testing.T) {
		t.Parallel()
		assert.Greater(t, Priority("whatever").Rank(), PriorityNormal.Rank())
	})
}

func TestParsePriority(t *testing.T) {
	t.Parallel()

	t.Run("empty defaults to normal", func(t *testing.T) {
		t.Parallel()
		p, err := ParsePriority("")
		require.NoError(t, err)
		assert.Equal(t, PriorityNormal, p)
	})

	t.Run("rejects unknown tier", func(t *testing.T) {
		t.Parallel()
		_, err := ParsePriority("critical")
		assert.Error(t, err)
	})
}

func TestParseQueueID(t *testing.T) {
	t.Parallel()

	for _, q := range []string{"action_now", "follow_up", "negotiating", "all"} {
		id, err := ParseQueueID(q)
		require.NoError(t, err)
		assert.Equal(t, QueueID(q), id)
	}

	t.Run("rejects unknown queue", func(t *testing.T) {
		t.Parallel()
		_, err := ParseQueueID("inbox")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown queue")
	})
}
