package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uongozi/uongozi/internal/domain"
)

func TestApp_SubmitReview_Accepted(t *testing.T) {
	f := newTestFixture(testNow)
	user := f.signIn(domain.RoleCitizen)

	f.reviews.submitted = domain.Review{
		ID:        "r-new",
		LeaderID:  "gov-nakuru",
		UserID:    user.ID,
		Ratings:   map[string]int{"Water Access": 4},
		CreatedAt: testNow,
	}

	outcome, err := f.app.SubmitReview(context.Background(), "gov-nakuru", map[string]int{"Water Access": 4})

	require.NoError(t, err, "submission should succeed")
	require.NotNil(t, outcome.Review, "accepted submission carries the review")
	assert.False(t, outcome.CooldownActive)
	assert.Equal(t, user.ID, f.reviews.lastSubmission.UserID,
		"submission should carry the signed-in user")
	assert.Len(t, f.store.Reviews(), 1, "accepted review lands in the store")
}

func TestApp_SubmitReview_LocalCooldownShortCircuits(t *testing.T) {
	f := newTestFixture(testNow)
	user := f.signIn(domain.RoleCitizen)

	// A one-month-old review exists for the pair.
	f.reviews.byLeader["gov-nakuru"] = []domain.Review{
		{ID: "r1", LeaderID: "gov-nakuru", UserID: user.ID,
			Ratings:   map[string]int{"Water Access": 3},
			CreatedAt: testNow.AddDate(0, -1, 0)},
	}

	outcome, err := f.app.SubmitReview(context.Background(), "gov-nakuru", map[string]int{"Water Access": 4})

	require.NoError(t, err, "a cooldown block is informational, not an error")
	assert.True(t, outcome.CooldownActive)
	assert.Equal(t, testNow.AddDate(0, 2, 0), outcome.NextEligible,
		"next-eligible is three months after the prior review")
	assert.Equal(t, 0, f.reviews.submitCalls, "backend should not be contacted")
	assert.Empty(t, f.store.Reviews(), "displayed state stays unchanged")
}

func TestApp_SubmitReview_BackendCooldownRejection(t *testing.T) {
	// The local check passes (no cached review) but the backend knows
	// better and rejects. Its verdict is authoritative.
	f := newTestFixture(testNow)
	f.signIn(domain.RoleCitizen)

	next := testNow.AddDate(0, 2, 12)
	f.reviews.submitErr = &cooldownRejectionErr{next: next}

	outcome, err := f.app.SubmitReview(context.Background(), "gov-nakuru", map[string]int{"Water Access": 4})

	require.NoError(t, err, "a backend cooldown rejection is informational")
	assert.True(t, outcome.CooldownActive)
	assert.Equal(t, next, outcome.NextEligible, "should carry the backend's date")
	assert.Empty(t, f.store.Reviews(), "displayed state stays unchanged")
}

func TestApp_SubmitReview_BackendFailure(t *testing.T) {
	f := newTestFixture(testNow)
	f.signIn(domain.RoleCitizen)
	f.reviews.submitErr = errors.New("backend down")

	_, err := f.app.SubmitReview(context.Background(), "gov-nakuru", map[string]int{"Water Access": 4})

	require.Error(t, err, "other failures propagate")
	assert.Empty(t, f.store.Reviews(), "no review should be appended")
}

func TestApp_SubmitReview_RequiresSession(t *testing.T) {
	f := newTestFixture(testNow)

	_, err := f.app.SubmitReview(context.Background(), "gov-nakuru", map[string]int{"Water Access": 4})

	require.ErrorIs(t, err, domain.ErrNotSignedIn)
}
