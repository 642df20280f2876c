package domain

import "time"

// ReviewCooldownMonths is the mandatory waiting period, in calendar
// months, between successive reviews by the same user for the same
// leader.
const ReviewCooldownMonths = 3

// EligibilityState describes where a (user, leader) pair sits in the
// review lifecycle.
type EligibilityState string

const (
	// EligibilityUnreviewed means no prior review exists for the pair;
	// a submission may be attempted.
	EligibilityUnreviewed EligibilityState = "unreviewed"

	// EligibilityCooldownActive means a prior review exists and the
	// cooldown window has not elapsed; the backend will reject a new
	// submission.
	EligibilityCooldownActive EligibilityState = "cooldown_active"

	// EligibilityCooldownExpired means the cooldown window has elapsed.
	// The pair is logically eligible again, but only a successful
	// backend submission confirms it; the client never flips state
	// unilaterally.
	EligibilityCooldownExpired EligibilityState = "cooldown_expired"
)

// Eligibility is the derived review state for one (user, leader) pair.
type Eligibility struct {
	State EligibilityState

	// Existing is the governing prior review, nil when State is
	// EligibilityUnreviewed.
	Existing *Review

	// NextEligible is the earliest instant a new submission can
	// succeed. Zero when State is EligibilityUnreviewed.
	NextEligible time.Time
}

// CanSubmit reports whether a submission attempt is worth sending to
// the backend. The backend's accept/reject response stays authoritative
// either way.
func (e Eligibility) CanSubmit() bool {
	return e.State != EligibilityCooldownActive
}

// CheckEligibility derives the review state for the pair from the
// supplied review set and clock. Callers must pass a freshly fetched
// set on every leader view: the governing review may have been created
// in a different session, so cached state is never trusted. When the
// pair somehow has several reviews, the most recent one governs.
func CheckEligibility(reviews []Review, leaderID, userID string, now time.Time) Eligibility {
	var latest *Review
	for i := range reviews {
		r := &reviews[i]
		if r.LeaderID != leaderID || r.UserID != userID {
			continue
		}
		if latest == nil || r.CreatedAt.After(latest.CreatedAt) {
			latest = r
		}
	}

	if latest == nil {
		return Eligibility{State: EligibilityUnreviewed}
	}

	existing := *latest
	next := existing.CreatedAt.AddDate(0, ReviewCooldownMonths, 0)
	state := EligibilityCooldownExpired
	if now.Before(next) {
		state = EligibilityCooldownActive
	}

	return Eligibility{
		State:        state,
		Existing:     &existing,
		NextEligible: next,
	}
}
