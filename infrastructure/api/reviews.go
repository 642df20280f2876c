package api

import (
	"context"
	"net/http"

	"github.com/uongozi/uongozi/internal/domain"
)

// submitReviewPayload mirrors the backend's review submission contract.
type submitReviewPayload struct {
	LeaderID string         `json:"leaderId"`
	UserID   string         `json:"userId"`
	Ratings  map[string]int `json:"ratings"`
}

// ListReviews implements ports.ReviewService.
func (c *Client) ListReviews(ctx context.Context) ([]domain.Review, error) {
	var dtos []reviewDTO
	if err := c.get(ctx, "/reviews/allReviews", &dtos); err != nil {
		return nil, err
	}
	return reviewsToDomain(dtos)
}

// ListLeaderReviews implements ports.ReviewService. The backend
// populates the user reference on this endpoint; the DTO layer accepts
// either encoding.
func (c *Client) ListLeaderReviews(ctx context.Context, leaderID string) ([]domain.Review, error) {
	var dtos []reviewDTO
	if err := c.get(ctx, "/reviews/"+leaderID, &dtos); err != nil {
		return nil, err
	}
	return reviewsToDomain(dtos)
}

// SubmitReview implements ports.ReviewService. A submission inside the
// re-review cooldown returns a *CooldownError carrying the backend's
// next-eligible date; the caller surfaces the date and leaves displayed
// state unchanged.
func (c *Client) SubmitReview(ctx context.Context, sub domain.ReviewSubmission) (domain.Review, error) {
	if err := sub.Validate(); err != nil {
		return domain.Review{}, err
	}

	payload := submitReviewPayload{
		LeaderID: sub.LeaderID,
		UserID:   sub.UserID,
		Ratings:  sub.Ratings,
	}

	var dto reviewDTO
	if err := c.send(ctx, http.MethodPost, "/reviews", payload, &dto); err != nil {
		return domain.Review{}, err
	}
	if err := checkDTO("review", dto); err != nil {
		return domain.Review{}, err
	}
	return dto.toDomain(), nil
}
