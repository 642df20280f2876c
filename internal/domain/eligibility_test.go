package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckEligibility(t *testing.T) {
	t0 := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	prior := Review{
		ID:        "r1",
		LeaderID:  "gov1",
		UserID:    "u1",
		Ratings:   map[string]int{"a": 3},
		CreatedAt: t0,
	}

	tests := []struct {
		name         string
		reviews      []Review
		now          time.Time
		expected     EligibilityState
		nextEligible time.Time
		canSubmit    bool
	}{
		{
			name:      "no prior review",
			reviews:   nil,
			now:       t0,
			expected:  EligibilityUnreviewed,
			canSubmit: true,
		},
		{
			name:      "other users and leaders do not count",
			reviews:   []Review{{LeaderID: "gov1", UserID: "someone", CreatedAt: t0}, {LeaderID: "other", UserID: "u1", CreatedAt: t0}},
			now:       t0,
			expected:  EligibilityUnreviewed,
			canSubmit: true,
		},
		{
			name:         "two months in the cooldown is active",
			reviews:      []Review{prior},
			now:          t0.AddDate(0, 2, 0),
			expected:     EligibilityCooldownActive,
			nextEligible: t0.AddDate(0, 3, 0),
			canSubmit:    false,
		},
		{
			name:         "exactly three months the cooldown has expired",
			reviews:      []Review{prior},
			now:          t0.AddDate(0, 3, 0),
			expected:     EligibilityCooldownExpired,
			nextEligible: t0.AddDate(0, 3, 0),
			canSubmit:    true,
		},
		{
			name:         "three months and a day is eligible",
			reviews:      []Review{prior},
			now:          t0.AddDate(0, 3, 1),
			expected:     EligibilityCooldownExpired,
			nextEligible: t0.AddDate(0, 3, 0),
			canSubmit:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := CheckEligibility(tt.reviews, "gov1", "u1", tt.now)

			assert.Equal(t, tt.expected, e.State)
			assert.Equal(t, tt.canSubmit, e.CanSubmit())
			if tt.expected == EligibilityUnreviewed {
				assert.Nil(t, e.Existing)
				assert.True(t, e.NextEligible.IsZero())
			} else {
				require.NotNil(t, e.Existing)
				assert.Equal(t, tt.nextEligible, e.NextEligible)
			}
		})
	}
}

// TestCheckEligibility_LatestReviewGoverns covers the defensive case
// where the backend's uniqueness guarantee failed and the pair has
// several reviews on record.
func TestCheckEligibility_LatestReviewGoverns(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	t1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	reviews := []Review{
		{ID: "old", LeaderID: "gov1", UserID: "u1", CreatedAt: t0},
		{ID: "new", LeaderID: "gov1", UserID: "u1", CreatedAt: t1},
	}

	e := CheckEligibility(reviews, "gov1", "u1", t1.AddDate(0, 1, 0))
	require.NotNil(t, e.Existing)
	assert.Equal(t, "new", e.Existing.ID)
	assert.Equal(t, EligibilityCooldownActive, e.State)
	assert.Equal(t, t1.AddDate(0, 3, 0), e.NextEligible)
}

// TestCheckEligibility_CopiesGoverningReview verifies the returned
// review is detached from the caller's slice.
func TestCheckEligibility_CopiesGoverningReview(t *testing.T) {
	t0 := time.Now()
	reviews := []Review{{ID: "r1", LeaderID: "gov1", UserID: "u1", CreatedAt: t0}}

	e := CheckEligibility(reviews, "gov1", "u1", t0)
	require.NotNil(t, e.Existing)

	reviews[0].ID = "mutated"
	assert.Equal(t, "r1", e.Existing.ID)
}
