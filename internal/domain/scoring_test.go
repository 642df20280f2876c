package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBandFor(t *testing.T) {
	tests := []struct {
		percentage float64
		expected   Band
	}{
		{0, BandPoor},
		{24.9, BandPoor},
		{25, BandAverage},
		{49.9, BandAverage},
		{50, BandGood},
		{74.9, BandGood},
		{75, BandExcellent},
		{87.5, BandExcellent},
		{100, BandExcellent},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, BandFor(tt.percentage), "percentage %.1f", tt.percentage)
	}
}

// TestScoreLeader_TopicAverages verifies the per-topic mean,
// percentage and band math on the 1-4 scale.
func TestScoreLeader_TopicAverages(t *testing.T) {
	leader := Leader{ID: "mca1", Position: PositionMCA, Level: LevelWard}
	reviews := []Review{
		{ID: "r1", LeaderID: "mca1", UserID: "u1", Ratings: map[string]int{"Sanitation": 4}},
		{ID: "r2", LeaderID: "mca1", UserID: "u2", Ratings: map[string]int{"Sanitation": 3}},
		// A different leader's review must never leak in.
		{ID: "r3", LeaderID: "other", UserID: "u3", Ratings: map[string]int{"Sanitation": 1}},
	}

	board := ScoreLeader(leader, reviews)
	require.Len(t, board.Topics, 6)

	sanitation := board.Topics[0]
	assert.Equal(t, "Sanitation", sanitation.Title)
	assert.Equal(t, 3.5, sanitation.Average)
	assert.Equal(t, 87.5, sanitation.Percentage)
	assert.Equal(t, BandExcellent, sanitation.Band)
	assert.Equal(t, 2, sanitation.Ratings)

	// Unrated topics score zero and band Poor.
	roads := board.Topics[2]
	assert.Equal(t, "Roads", roads.Title)
	assert.Zero(t, roads.Average)
	assert.Zero(t, roads.Percentage)
	assert.Equal(t, BandPoor, roads.Band)
	assert.Zero(t, roads.Ratings)

	// Overall is the mean of raw topic averages: 3.5 over 6 topics.
	assert.Equal(t, 0.58, board.Overall)
}

// TestScoreLeader_BackendTopicKeys verifies ratings stored under the
// backend's exact topic titles aggregate instead of being dropped as
// unknown topics. "Women’s Agenda" uses U+2019, not the ASCII
// apostrophe.
func TestScoreLeader_BackendTopicKeys(t *testing.T) {
	leader := Leader{ID: "pres1", Position: PositionPresident, Level: LevelCountry}
	reviews := []Review{
		{ID: "r1", LeaderID: "pres1", UserID: "u1", Ratings: map[string]int{"Women’s Agenda": 4}},
	}

	board := ScoreLeader(leader, reviews)
	require.Len(t, board.Topics, 12)

	agenda := board.Topics[6]
	assert.Equal(t, "Women’s Agenda", agenda.Title)
	assert.Equal(t, 4.0, agenda.Average)
	assert.Equal(t, 1, agenda.Ratings, "a rating under the stored title must count")
}

// TestScoreLeader_OverallIsMeanOfAverages verifies the overall scalar
// comes straight from the per-topic averages rather than a percentage
// round trip.
func TestScoreLeader_OverallIsMeanOfAverages(t *testing.T) {
	leader := Leader{ID: "mp1", Position: PositionMP, Level: LevelConstituency}
	topics := ManifestoTopics(LevelConstituency)
	require.Len(t, topics, 6)

	ratings := map[string]int{}
	for i, topic := range topics {
		if i%2 == 0 {
			ratings[topic] = 4
		} else {
			ratings[topic] = 2
		}
	}
	reviews := []Review{{ID: "r1", LeaderID: "mp1", UserID: "u1", Ratings: ratings}}

	board := ScoreLeader(leader, reviews)
	assert.Equal(t, 3.0, board.Overall)
}

func TestScoreLeader_DiscardsInvalidRatings(t *testing.T) {
	leader := Leader{ID: "gov1", Position: PositionGovernor, Level: LevelCounty}
	reviews := []Review{
		{LeaderID: "gov1", UserID: "u1", Ratings: map[string]int{
			"Agriculture and Food Security": 0,  // below scale
			"Infrastructure Development":    9,  // above scale
			"Governance and Devolution":     2,  // valid
			"No Such Topic":                 4,  // not in catalog
		}},
	}

	board := ScoreLeader(leader, reviews)
	require.Len(t, board.Topics, 7)

	for _, ts := range board.Topics {
		switch ts.Title {
		case "Governance and Devolution":
			assert.Equal(t, 2.0, ts.Average)
			assert.Equal(t, 1, ts.Ratings)
		default:
			assert.Zero(t, ts.Ratings, "topic %s", ts.Title)
		}
	}
}

func TestScoreLeader_NoReviews(t *testing.T) {
	leader := Leader{ID: "pres1", Position: PositionPresident, Level: LevelCountry}

	board := ScoreLeader(leader, nil)
	require.Len(t, board.Topics, 12)
	assert.Zero(t, board.Overall)
	for _, ts := range board.Topics {
		assert.Equal(t, BandPoor, ts.Band)
	}
}

// TestScoreLeader_Idempotent verifies repeated aggregation over the
// same inputs yields identical output.
func TestScoreLeader_Idempotent(t *testing.T) {
	leader := Leader{ID: "mca1", Position: PositionMCA, Level: LevelWard}
	reviews := []Review{
		{LeaderID: "mca1", UserID: "u1", Ratings: map[string]int{"Sanitation": 4, "Roads": 1}},
		{LeaderID: "mca1", UserID: "u2", Ratings: map[string]int{"Sanitation": 2}},
	}

	first := ScoreLeader(leader, reviews)
	second := ScoreLeader(leader, reviews)
	assert.Equal(t, first, second)
}

func TestTopLeadersByPosition(t *testing.T) {
	leaders := []Leader{
		{ID: "gov1", Name: "First", Position: PositionGovernor, Level: LevelCounty, County: "Nakuru"},
		{ID: "gov2", Name: "Second", Position: PositionGovernor, Level: LevelCounty, County: "Kisumu"},
		{ID: "gov3", Name: "Unrated", Position: PositionGovernor, Level: LevelCounty, County: "Meru"},
		{ID: "mp1", Name: "Wrong position", Position: PositionMP, Level: LevelConstituency},
	}
	reviews := []Review{
		{LeaderID: "gov1", UserID: "u1", Ratings: map[string]int{"a": 4, "b": 2}}, // pooled mean 3.0
		{LeaderID: "gov2", UserID: "u2", Ratings: map[string]int{"a": 4}},
		{LeaderID: "gov2", UserID: "u3", Ratings: map[string]int{"a": 3}}, // pooled mean 3.5
		{LeaderID: "mp1", UserID: "u4", Ratings: map[string]int{"a": 4}},
	}

	top := TopLeadersByPosition(leaders, reviews, PositionGovernor, 20)
	require.Len(t, top, 2)

	assert.Equal(t, "gov2", top[0].ID)
	assert.Equal(t, 3.5, top[0].AverageRating)
	assert.Equal(t, 2, top[0].TotalReviews)

	assert.Equal(t, "gov1", top[1].ID)
	assert.Equal(t, 3.0, top[1].AverageRating)

	// The input slice stays untouched.
	assert.Zero(t, leaders[0].AverageRating)
}

// TestTopLeadersByPosition_TiesAndTruncation verifies the stable
// tie-break by input order and the length cap.
func TestTopLeadersByPosition_TiesAndTruncation(t *testing.T) {
	var leaders []Leader
	var reviews []Review
	for _, id := range []string{"a", "b", "c"} {
		leaders = append(leaders, Leader{ID: id, Position: PositionMCA, Level: LevelWard})
		reviews = append(reviews, Review{LeaderID: id, UserID: "u", Ratings: map[string]int{"t": 3}})
	}

	top := TopLeadersByPosition(leaders, reviews, PositionMCA, 20)
	require.Len(t, top, 3)
	assert.Equal(t, "a", top[0].ID)
	assert.Equal(t, "b", top[1].ID)
	assert.Equal(t, "c", top[2].ID)

	capped := TopLeadersByPosition(leaders, reviews, PositionMCA, 2)
	require.Len(t, capped, 2)
	assert.Equal(t, "a", capped[0].ID)
}

func TestTopLeadersByPosition_ExcludesInvalidOnlyRatings(t *testing.T) {
	leaders := []Leader{{ID: "gov1", Position: PositionGovernor, Level: LevelCounty}}
	reviews := []Review{
		// Review exists but carries no value on the valid scale.
		{LeaderID: "gov1", UserID: "u1", Ratings: map[string]int{"a": 0, "b": 7}, CreatedAt: time.Now()},
	}

	assert.Empty(t, TopLeadersByPosition(leaders, reviews, PositionGovernor, 20))
}
