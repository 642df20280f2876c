package application

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/uongozi/uongozi/internal/domain"
	"github.com/uongozi/uongozi/internal/ports"
)

// SubmitOutcome is the result of a review submission attempt. Exactly
// one of Review or CooldownActive is meaningful: an accepted submission
// carries the stored review, a cooldown rejection carries the
// next-eligible date. A rejection is informational, not an error, and
// never mutates displayed state.
type SubmitOutcome struct {
	// Review is the stored review on acceptance, nil otherwise.
	Review *domain.Review

	// CooldownActive reports a rejection inside the re-review window.
	CooldownActive bool

	// NextEligible is the earliest date a new submission can succeed,
	// set when CooldownActive is true.
	NextEligible time.Time
}

// SubmitReview attempts to rate a leader. The pair's reviews are
// refetched first so the local eligibility check sees submissions made
// from other sessions, but the backend's verdict stays authoritative
// either way: a backend cooldown rejection is surfaced the same as a
// local one, and only an explicit acceptance updates the store.
func (a *App) SubmitReview(ctx context.Context, leaderID string, ratings map[string]int) (*SubmitOutcome, error) {
	user, err := a.requireSession()
	if err != nil {
		return nil, err
	}

	fresh, err := a.reviews.ListLeaderReviews(ctx, leaderID)
	if err != nil {
		return nil, err
	}

	eligibility := domain.CheckEligibility(fresh, leaderID, user.ID, a.clock.Now())
	if !eligibility.CanSubmit() {
		a.logger.Info("submission blocked by cooldown",
			zap.String("leader_id", leaderID),
			zap.Time("next_eligible", eligibility.NextEligible))
		return &SubmitOutcome{CooldownActive: true, NextEligible: eligibility.NextEligible}, nil
	}

	submission := domain.ReviewSubmission{
		LeaderID: leaderID,
		UserID:   user.ID,
		Ratings:  ratings,
	}
	review, err := a.reviews.SubmitReview(ctx, submission)
	if err != nil {
		var rejection ports.CooldownRejection
		if errors.As(err, &rejection) {
			a.logger.Info("backend rejected submission inside cooldown",
				zap.String("leader_id", leaderID),
				zap.Time("next_eligible", rejection.NextEligibleAt()))
			return &SubmitOutcome{CooldownActive: true, NextEligible: rejection.NextEligibleAt()}, nil
		}
		return nil, err
	}

	a.store.AppendReview(review)
	a.logger.Info("review accepted",
		zap.String("leader_id", leaderID),
		zap.String("review_id", review.ID))
	return &SubmitOutcome{Review: &review}, nil
}
