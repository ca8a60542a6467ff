package commands

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/numquest/internal/ui"
)

// NewPlayCommand creates the play command, which runs a single round
// without the surrounding menu.
func NewPlayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a single round",
		Long:  `Play one guessing round and return, skipping the main menu.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContext(cmd)

			p, err := ui.NewPrompter(cmd.OutOrStdout(), cc.Styles)
			if err != nil {
				return err
			}
			defer func() { _ = p.Close() }()

			if err := playSession(cmd, cc, p); err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			return nil
		},
	}
}
