// Package ports defines the core interfaces that form the contract between
// the domain/application layers and the infrastructure layer.
// These interfaces enable dependency inversion and make the system testable.
package ports

import (
	"context"

	"github.com/uongozi/uongozi/internal/domain"
)

// AuthService is the authentication backend consumed by the client.
// Implementations handle wire format, token transport and error
// normalization; callers only see domain types.
type AuthService interface {
	// Register creates a new account and returns its session identity.
	// Validation failures surface as a *domain.ValidationError or a
	// structured backend error, never as a panic.
	Register(ctx context.Context, reg domain.Registration) (domain.Session, error)

	// Login authenticates the credentials and returns the session
	// identity with its role.
	Login(ctx context.Context, creds domain.Credentials) (domain.Session, error)
}

// LeaderService is the leader persistence backend consumed by the
// client. Collections are returned in backend order, which selection
// and ranking treat as significant.
type LeaderService interface {
	// ListLeaders fetches every leader record the session may see.
	ListLeaders(ctx context.Context) ([]domain.Leader, error)

	// ListPerformance fetches the global leader listing with rating
	// fields populated, used by the home dashboard.
	ListPerformance(ctx context.Context) ([]domain.Leader, error)

	// CreateLeader creates a leader record. A leader that already
	// exists for the same region and position fails with a conflict
	// the caller can detect.
	CreateLeader(ctx context.Context, leader domain.NewLeader) (domain.Leader, error)

	// UpdateLeader applies a partial update to one leader.
	UpdateLeader(ctx context.Context, id string, patch domain.LeaderPatch) (domain.Leader, error)

	// DeleteLeader removes a leader record.
	DeleteLeader(ctx context.Context, id string) error
}

// ReviewService is the review persistence backend consumed by the
// client.
type ReviewService interface {
	// ListReviews fetches every review on record.
	ListReviews(ctx context.Context) ([]domain.Review, error)

	// ListLeaderReviews fetches the reviews for one leader. Callers
	// re-fetch on every leader view; eligibility is never derived from
	// a cached set.
	ListLeaderReviews(ctx context.Context, leaderID string) ([]domain.Review, error)

	// SubmitReview submits a new review. When the re-review cooldown
	// is still active the backend rejects the submission with a
	// distinguished error carrying the earliest next-eligible date;
	// the client surfaces that date and leaves its displayed state
	// unchanged.
	SubmitReview(ctx context.Context, sub domain.ReviewSubmission) (domain.Review, error)
}
