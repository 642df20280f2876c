package domain

import "time"

// Rating scale bounds. The platform rates on a 4-point scale: the
// sentiment map, the percentage math and the band boundaries are all
// defined on 1-4. Values outside this range are discarded during
// aggregation and rejected at submission.
const (
	RatingMin = 1
	RatingMax = 4
)

// Sentiment returns the label for a rating value, or an empty string
// for values outside the 1-4 scale.
func Sentiment(rating int) string {
	switch rating {
	case 1:
		return "Poor"
	case 2:
		return "Average"
	case 3:
		return "Good"
	case 4:
		return "Excellent"
	}
	return ""
}

// Review is one user's periodic rating of one leader, keyed by
// manifesto topic title. The backend guarantees at most one active
// review per (user, leader) pair; the client only reflects that.
type Review struct {
	ID       string `json:"id"`
	LeaderID string `json:"leader_id"`
	UserID   string `json:"user_id"`

	// Ratings maps a manifesto topic title to a value in [1,4].
	// Topics the user skipped are simply absent.
	Ratings map[string]int `json:"ratings"`

	// CreatedAt is the server-assigned creation timestamp. It anchors
	// the re-review cooldown window.
	CreatedAt time.Time `json:"created_at"`
}

// RatingFor returns the review's rating for the exact topic title and
// whether a value within the valid scale is present.
func (r Review) RatingFor(topic string) (int, bool) {
	v, ok := r.Ratings[topic]
	if !ok || v < RatingMin || v > RatingMax {
		return 0, false
	}
	return v, true
}

// ReviewSubmission is the payload for submitting a new review.
type ReviewSubmission struct {
	LeaderID string         `json:"leader_id"`
	UserID   string         `json:"user_id"`
	Ratings  map[string]int `json:"ratings"`
}

// Validate checks the submission before it is sent to the backend:
// both identifiers present, at least one rating, every value on the
// 1-4 scale and every topic title non-empty.
func (s ReviewSubmission) Validate() error {
	v := NewValidationError("review")

	if s.LeaderID == "" {
		v.AddError("leader id is required")
	}
	if s.UserID == "" {
		v.AddError("user id is required")
	}
	if len(s.Ratings) == 0 {
		v.AddError("at least one rating is required")
	}
	for topic, rating := range s.Ratings {
		if topic == "" {
			v.AddError("rating with empty topic title")
			continue
		}
		if rating < RatingMin || rating > RatingMax {
			v.AddError("rating for " + topic + " is outside the 1-4 scale")
		}
	}

	if v.HasErrors() {
		return v
	}
	return nil
}
