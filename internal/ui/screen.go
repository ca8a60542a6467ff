package ui

import (
	"io"

	"github.com/muesli/termenv"
)

// ClearScreen clears the terminal and homes the cursor. Used between
// the menu, game, and leaderboard screens.
func ClearScreen(w io.Writer) {
	out := termenv.NewOutput(w)
	out.ClearScreen()
}
