package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uongozi/uongozi/internal/application"
	"github.com/uongozi/uongozi/internal/domain"
)

var homeLevel string

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show your leader at a level with their scoreboard and rankings",
	RunE:  runHome,
}

func init() {
	homeCmd.Flags().StringVar(&homeLevel, "level", string(domain.LevelCounty),
		"administrative level: country, county, constituency or ward")
}

func runHome(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer func() { _ = rt.logger.Sync() }()

	view, err := rt.app.RefreshHome(cmd.Context(), domain.Level(homeLevel))
	if err != nil {
		return err
	}

	fmt.Printf("== %s level ==\n", application.LevelDisplayName(view.Level))
	if view.Leader == nil {
		fmt.Println("No leader is on record for your area at this level yet.")
	} else {
		printLeaderBoard(*view.Leader, view.Scoreboard, view.Eligibility)
	}

	printRanking("Top "+application.TabHeading(domain.PositionGovernor), view.TopGovernors)
	printRanking("Top "+application.TabHeading(domain.PositionMP), view.TopMPs)
	printRanking("Top "+application.TabHeading(domain.PositionMCA), view.TopMCAs)
	return nil
}

func printLeaderBoard(leader domain.Leader, board domain.Scoreboard, eligibility domain.Eligibility) {
	fmt.Printf("%s — %s\n", leader.Name, application.PositionDisplayName(leader.Position))
	fmt.Printf("Overall: %.2f / %d (%s)\n",
		board.Overall, int(domain.RatingMax), domain.Sentiment(int(board.Overall+0.5)))

	for _, topic := range board.Topics {
		fmt.Printf("  %-32s %5.1f%%  %-9s (%d ratings)\n",
			topic.Title, topic.Percentage, topic.Band, topic.Ratings)
	}

	switch eligibility.State {
	case domain.EligibilityCooldownActive:
		fmt.Printf("You reviewed this leader recently. Next review: %s.\n",
			eligibility.NextEligible.Format("2 Jan 2006"))
	case domain.EligibilityCooldownExpired:
		fmt.Println("You may review this leader again.")
	default:
		fmt.Println("You have not reviewed this leader yet.")
	}
}

func printRanking(heading string, leaders []domain.Leader) {
	if len(leaders) == 0 {
		return
	}
	fmt.Printf("\n%s\n", heading)
	for i, l := range leaders {
		fmt.Printf("%3d. %-28s %.2f (%d reviews)\n", i+1, l.Name, l.AverageRating, l.TotalReviews)
	}
}
