package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/uongozi/uongozi/internal/domain"
)

var rateFlags struct {
	leaderID string
	ratings  []string
}

var rateCmd = &cobra.Command{
	Use:   "rate",
	Short: "Rate a leader against their manifesto topics",
	Long: `Rate a leader on the 1-4 scale, one value per manifesto topic.

Ratings are given as repeated --rating "Topic=Value" flags, e.g.:

  uongozi rate --leader 64a1... \
    --rating "Water Access=4" --rating "County Roads=3"

Run without --rating flags to list the leader's topics and your
current eligibility.`,
	RunE: runRate,
}

func init() {
	rateCmd.Flags().StringVar(&rateFlags.leaderID, "leader", "", "leader id to rate")
	rateCmd.Flags().StringArrayVar(&rateFlags.ratings, "rating", nil, `topic rating as "Topic=Value"`)
	_ = rateCmd.MarkFlagRequired("leader")
}

func runRate(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer func() { _ = rt.logger.Sync() }()

	if len(rateFlags.ratings) == 0 {
		return showRatingForm(cmd, rt)
	}

	ratings, err := parseRatings(rateFlags.ratings)
	if err != nil {
		return err
	}

	outcome, err := rt.app.SubmitReview(cmd.Context(), rateFlags.leaderID, ratings)
	if err != nil {
		return err
	}

	if outcome.CooldownActive {
		fmt.Printf("You reviewed this leader in the last %d months. You can review again on %s.\n",
			domain.ReviewCooldownMonths, outcome.NextEligible.Format("2 Jan 2006"))
		return nil
	}

	fmt.Println("Thank you, your review has been recorded.")
	return nil
}

func showRatingForm(cmd *cobra.Command, rt *runtime) error {
	view, err := rt.app.ViewLeader(cmd.Context(), rateFlags.leaderID)
	if err != nil {
		return err
	}

	printLeaderBoard(view.Leader, view.Scoreboard, view.Eligibility)
	fmt.Println("\nTopics to rate (1-4):")
	for _, topic := range view.Topics {
		fmt.Printf("  --rating %q\n", topic+"=?")
	}
	return nil
}

// parseRatings converts "Topic=Value" pairs to a rating map.
func parseRatings(pairs []string) (map[string]int, error) {
	ratings := make(map[string]int, len(pairs))
	for _, pair := range pairs {
		topic, raw, ok := strings.Cut(pair, "=")
		topic = strings.TrimSpace(topic)
		if !ok || topic == "" {
			return nil, fmt.Errorf("malformed rating %q, expected \"Topic=Value\"", pair)
		}

		value, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("rating for %q is not a number: %w", topic, err)
		}
		if value < domain.RatingMin || value > domain.RatingMax {
			return nil, fmt.Errorf("rating for %q must be between %d and %d",
				topic, domain.RatingMin, domain.RatingMax)
		}
		ratings[topic] = value
	}
	return ratings, nil
}
