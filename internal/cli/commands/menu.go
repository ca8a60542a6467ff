package commands

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/numquest/internal/game"
	"github.com/leapstack-labs/numquest/internal/leaderboard"
	"github.com/leapstack-labs/numquest/internal/ui"
)

// RunMenu drives the interactive main menu until the player exits.
// EOF on stdin behaves like choosing exit so piped input terminates
// cleanly.
func RunMenu(cmd *cobra.Command) error {
	cc := NewCommandContext(cmd)

	p, err := ui.NewPrompter(cmd.OutOrStdout(), cc.Styles)
	if err != nil {
		return err
	}
	defer func() { _ = p.Close() }()

	return menuLoop(cmd, cc, p)
}

// menuLoop is the menu body, separated from prompter construction so
// tests can drive it with scripted input.
func menuLoop(cmd *cobra.Command, cc *CommandContext, p *ui.Prompter) error {
	out := cmd.OutOrStdout()

	for {
		ui.ClearScreen(out)
		fmt.Fprintln(out, cc.Styles.Banner.Render("--- Main Menu ---"))
		fmt.Fprintln(out, "1. Play Game")
		fmt.Fprintln(out, "2. View Leaderboard")
		fmt.Fprintln(out, "3. Exit")

		choice, err := p.MenuChoice("Enter your choice (1-3): ")
		if err != nil {
			return nil
		}

		switch choice {
		case "1":
			if err := playSession(cmd, cc, p); err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			}
		case "2":
			if err := showLeaderboard(cmd, cc, p); err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			}
		case "3":
			fmt.Fprintln(out, "Thanks for playing! Goodbye.")
			return nil
		default:
			fmt.Fprintln(out, cc.Styles.Error.Render("Invalid choice. Please enter 1, 2, or 3."))
			if err := p.Pause("Press Enter to try again..."); err != nil {
				return nil
			}
		}
	}
}

// playSession runs one full round: prompts, guess loop, and score
// persistence on a win. Persistence failures are reported but never
// abort the round.
func playSession(cmd *cobra.Command, cc *CommandContext, p *ui.Prompter) error {
	out := cmd.OutOrStdout()

	ui.ClearScreen(out)
	fmt.Fprintln(out, cc.Styles.Banner.Render("Welcome to the Number Guessing Game!"))

	name, err := p.PlayerName()
	if err != nil {
		return err
	}
	difficulty, err := p.DifficultyChoice(cc.Cfg.Presets())
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nOkay %s, I'm thinking of a number between 1 and %d.\n", name, difficulty.NumberRange)
	fmt.Fprintf(out, "You have %d attempts to guess it.\n", difficulty.MaxAttempts)

	engine := game.New(game.Config{
		Player: name,
		Input:  p,
		Output: out,
		Logger: cc.Logger,
		RenderHint: func(s string) string {
			return cc.Styles.Hint.Render(s)
		},
	})
	outcome, err := engine.Run(difficulty)
	if err != nil {
		return err
	}

	if outcome.Won {
		rec := leaderboard.NewRecord(name, difficulty.Name, outcome.Attempts, time.Now())
		if err := cc.Store.Save(rec); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error saving high score: %v\n", err)
		} else {
			fmt.Fprintln(out, cc.Styles.Success.Render("Your score has been saved to the leaderboard!"))
		}
	}

	return p.Pause("\nPress Enter to continue...")
}

// showLeaderboard clears the screen, renders the table, and waits.
func showLeaderboard(cmd *cobra.Command, cc *CommandContext, p *ui.Prompter) error {
	out := cmd.OutOrStdout()

	records, err := cc.Store.Load()
	if err != nil {
		return err
	}

	ui.ClearScreen(out)
	fmt.Fprintln(out, cc.Styles.Header.Render("HIGH SCORES"))
	leaderboard.Render(out, records)

	return p.Pause("Press Enter to continue...")
}
