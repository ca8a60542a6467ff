package leaderboard

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// displayLimit caps how many records the table shows.
const displayLimit = 10

// Render writes the top records as a table. An empty leaderboard gets
// an explicit message rather than an empty table.
func Render(w io.Writer, records []ScoreRecord) {
	if len(records) == 0 {
		_, _ = fmt.Fprintln(w, "No scores recorded yet. Be the first to play!")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Rank", "Player", "Difficulty", "Attempts", "Date"})

	for i, rec := range records {
		if i == displayLimit {
			break
		}
		t.AppendRow(table.Row{i + 1, rec.Name, capitalize(rec.Difficulty), rec.Attempts, rec.Date})
	}

	t.Render()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
