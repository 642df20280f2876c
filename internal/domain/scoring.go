package domain

import (
	"math"
	"sort"
)

// Band is the qualitative color band a topic percentage falls into.
type Band string

// Percentage bands. Boundaries are inclusive on the lower edge and
// exclusive on the upper: [0,25) Poor, [25,50) Average, [50,75) Good,
// [75,100] Excellent.
const (
	BandPoor      Band = "Poor"
	BandAverage   Band = "Average"
	BandGood      Band = "Good"
	BandExcellent Band = "Excellent"
)

// BandFor classifies a percentage into its band.
func BandFor(percentage float64) Band {
	switch {
	case percentage >= 75:
		return BandExcellent
	case percentage >= 50:
		return BandGood
	case percentage >= 25:
		return BandAverage
	}
	return BandPoor
}

// TopicScore is the aggregated rating of one manifesto topic.
type TopicScore struct {
	// Title is the manifesto topic this score belongs to.
	Title string `json:"title"`

	// Average is the arithmetic mean of collected ratings on the 1-4
	// scale, rounded to 1 decimal. Zero when no ratings exist.
	Average float64 `json:"average"`

	// Percentage is (average/4)*100, rounded to 1 decimal.
	Percentage float64 `json:"percentage"`

	// Band classifies Percentage for color coding.
	Band Band `json:"band"`

	// Ratings counts the values that went into Average.
	Ratings int `json:"ratings"`
}

// Scoreboard is the full aggregated view of one leader's performance.
// It is recomputed on every render from the current review set and
// never persisted.
type Scoreboard struct {
	LeaderID string `json:"leader_id"`

	// Topics holds one score per catalog topic for the leader's level,
	// in catalog order.
	Topics []TopicScore `json:"topics"`

	// Overall is the mean of the per-topic raw averages on the 1-4
	// scale, rounded to 2 decimals. It is computed directly from the
	// same raw averages that back Topics, never re-derived through the
	// percentage values, so rounding error does not compound.
	Overall float64 `json:"overall"`
}

// ScoreLeader aggregates the leader's reviews into per-topic averages,
// percentages and bands plus one overall scalar. Topics are taken from
// the catalog for the leader's level, in catalog order. Entries missing
// from a review or outside the valid scale are discarded. A topic with
// zero collected ratings scores 0 and still participates in the overall
// mean. The function is pure and safe to re-invoke any number of times.
func ScoreLeader(leader Leader, reviews []Review) Scoreboard {
	topics := ManifestoTopics(leader.Level)
	board := Scoreboard{
		LeaderID: leader.ID,
		Topics:   make([]TopicScore, 0, len(topics)),
	}

	var sumOfAverages float64
	for _, title := range topics {
		var sum, count int
		for _, r := range reviews {
			if r.LeaderID != leader.ID {
				continue
			}
			if v, ok := r.RatingFor(title); ok {
				sum += v
				count++
			}
		}

		var avg float64
		if count > 0 {
			avg = float64(sum) / float64(count)
		}
		pct := round1(avg / RatingMax * 100)
		sumOfAverages += avg

		board.Topics = append(board.Topics, TopicScore{
			Title:      title,
			Average:    round1(avg),
			Percentage: pct,
			Band:       BandFor(pct),
			Ratings:    count,
		})
	}

	if len(topics) > 0 {
		board.Overall = round2(sumOfAverages / float64(len(topics)))
	}
	return board
}

// TopLeadersByPosition ranks leaders holding the given position by the
// pooled mean of every rating value across every one of their reviews,
// not topic-weighted. Leaders with zero qualifying ratings are excluded
// even when present in the input. The result is sorted descending with
// ties broken by original input order and truncated to at most n
// entries. Returned leaders are copies with AverageRating and
// TotalReviews populated; the input slice is never modified.
func TopLeadersByPosition(leaders []Leader, reviews []Review, position Position, n int) []Leader {
	ranked := make([]Leader, 0)
	for _, l := range leaders {
		if l.Position != position {
			continue
		}

		var sum, count, total int
		for _, r := range reviews {
			if r.LeaderID != l.ID {
				continue
			}
			total++
			for topic := range r.Ratings {
				if v, ok := r.RatingFor(topic); ok {
					sum += v
					count++
				}
			}
		}
		if count == 0 {
			continue
		}

		l.AverageRating = round2(float64(sum) / float64(count))
		l.TotalReviews = total
		ranked = append(ranked, l)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AverageRating > ranked[j].AverageRating
	})

	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func round1(x float64) float64 { return math.Round(x*10) / 10 }

func round2(x float64) float64 { return math.Round(x*100) / 100 }
