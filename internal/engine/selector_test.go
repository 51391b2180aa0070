package engine

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"duty-assignment-backend/internal/apperrors"
	"duty-assignment-backend/internal/database/models"
)

// sequenceRNG replays a fixed list of draws.
type sequenceRNG struct {
	values []float64
	i      int
}

func (s *sequenceRNG) Float64() float64 {
	v := s.values[s.i%len(s.values)]
	s.i++
	return v
}

func weightedRule(weights map[int64]int) *models.AssignmentRule {
	rule := &models.AssignmentRule{BaseModel: models.BaseModel{ID: uuid.New()}}
	for userID, pct := range weights {
		rule.Distributions = append(rule.Distributions, models.RuleDistribution{
			RuleID:     rule.ID,
			UserID:     userID,
			Percentage: pct,
		})
	}
	return rule
}

func onDutySet(ids ...int64) map[int64]bool {
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func TestSelectOwner_NoEligibleUsers(t *testing.T) {
	rule := weightedRule(map[int64]int{10: 60, 20: 40})

	_, err := SelectOwner(rule, onDutySet(30, 40), &sequenceRNG{values: []float64{0.5}})
	require.Error(t, err)
	assert.True(t, apperrors.IsNoEligibleUsers(err))

	_, err = SelectOwner(rule, onDutySet(), &sequenceRNG{values: []float64{0.5}})
	require.Error(t, err)
	assert.True(t, apperrors.IsNoEligibleUsers(err))
}

func TestSelectOwner_DeterministicThresholds(t *testing.T) {
	// Users sort ascending by id, so the cumulative bands over a total of 100
	// are 10:(0,60] and 20:(60,100].
	rule := weightedRule(map[int64]int{10: 60, 20: 40})
	duty := onDutySet(10, 20)

	tests := []struct {
		draw float64
		want int64
	}{
		{0.0, 10},
		{0.599, 10},
		{0.6, 20},
		{0.999, 20},
	}
	for _, tt := range tests {
		got, err := SelectOwner(rule, duty, &sequenceRNG{values: []float64{tt.draw}})
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "draw %v", tt.draw)
	}
}

func TestSelectOwner_SubsetRescalesWeights(t *testing.T) {
	// With only two of five 20% users on duty, the draw is 50/50 over the
	// remaining total of 40.
	rule := weightedRule(map[int64]int{1: 20, 2: 20, 3: 20, 4: 20, 5: 20})
	duty := onDutySet(2, 4)

	got, err := SelectOwner(rule, duty, &sequenceRNG{values: []float64{0.49}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), got)

	got, err = SelectOwner(rule, duty, &sequenceRNG{values: []float64{0.51}})
	require.NoError(t, err)
	assert.Equal(t, int64(4), got)
}

func TestSelectOwner_FrequenciesConverge(t *testing.T) {
	rule := weightedRule(map[int64]int{10: 50, 20: 30, 30: 20})
	duty := onDutySet(10, 20, 30)
	rng := NewLockedRNG(1)

	const draws = 100000
	counts := make(map[int64]int)
	for i := 0; i < draws; i++ {
		owner, err := SelectOwner(rule, duty, rng)
		require.NoError(t, err)
		counts[owner]++
	}

	assert.InDelta(t, 0.50, float64(counts[10])/draws, 0.01)
	assert.InDelta(t, 0.30, float64(counts[20])/draws, 0.01)
	assert.InDelta(t, 0.20, float64(counts[30])/draws, 0.01)
}

func TestSelectOwner_SeededRNGIsReproducible(t *testing.T) {
	rule := weightedRule(map[int64]int{10: 50, 20: 50})
	duty := onDutySet(10, 20)

	draw := func() []int64 {
		rng := NewLockedRNG(7)
		out := make([]int64, 0, 20)
		for i := 0; i < 20; i++ {
			owner, err := SelectOwner(rule, duty, rng)
			require.NoError(t, err)
			out = append(out, owner)
		}
		return out
	}

	assert.Equal(t, draw(), draw())
}

func TestSelectOwner_ZeroWeightNeverDrawn(t *testing.T) {
	rule := weightedRule(map[int64]int{10: 100, 20: 0})
	duty := onDutySet(10, 20)
	rng := NewLockedRNG(3)

	for i := 0; i < 1000; i++ {
		owner, err := SelectOwner(rule, duty, rng)
		require.NoError(t, err)
		assert.Equal(t, int64(10), owner)
	}
}
