package engine

import (
	"math/rand"
	"sort"
	"sync"

	"duty-assignment-backend/internal/apperrors"
	"duty-assignment-backend/internal/database/models"
)

// RNG is the randomness source for weighted selection. Tests inject a seeded
// implementation to make draws reproducible.
type RNG interface {
	Float64() float64
}

type lockedRNG struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewLockedRNG returns an RNG safe for concurrent use by run workers.
func NewLockedRNG(seed int64) RNG {
	return &lockedRNG{rng: rand.New(rand.NewSource(seed))}
}

func (l *lockedRNG) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()
}

// SelectOwner draws one owner from the rule's weighted distribution, restricted
// to users currently on duty. When only a subset of the configured users is on
// duty, their weights are effectively rescaled: a 40/40/20 rule with one 40-user
// off duty becomes a 40/20 draw over the remaining two. Returns
// NoEligibleUsersError when no configured user is on duty.
func SelectOwner(rule *models.AssignmentRule, onDuty map[int64]bool, rng RNG) (int64, error) {
	type entry struct {
		userID     int64
		percentage int
	}
	eligible := make([]entry, 0, len(rule.Distributions))
	for _, d := range rule.Distributions {
		if onDuty[d.UserID] && d.Percentage > 0 {
			eligible = append(eligible, entry{userID: d.UserID, percentage: d.Percentage})
		}
	}
	if len(eligible) == 0 {
		return 0, &apperrors.NoEligibleUsersError{RuleID: rule.ID.String()}
	}

	// Deterministic draw order so an equal random value always lands on the
	// same user.
	sort.Slice(eligible, func(i, j int) bool {
		return eligible[i].userID < eligible[j].userID
	})

	total := 0
	for _, e := range eligible {
		total += e.percentage
	}

	threshold := rng.Float64() * float64(total)
	cumulative := 0
	for _, e := range eligible {
		cumulative += e.percentage
		if float64(cumulative) > threshold {
			return e.userID, nil
		}
	}
	return eligible[len(eligible)-1].userID, nil
}
