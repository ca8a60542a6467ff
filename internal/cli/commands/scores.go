package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/numquest/internal/leaderboard"
)

// NewScoresCommand creates the scores command.
func NewScoresCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scores",
		Short: "Show the leaderboard",
		Long:  `Display the top high scores, best (fewest attempts) first.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContext(cmd)

			records, err := cc.Store.Load()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cc.Styles.Header.Render("HIGH SCORES"))
			leaderboard.Render(cmd.OutOrStdout(), records)
			return nil
		},
	}
}
