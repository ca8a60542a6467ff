// Package ui handles interactive console input and styled output for
// the game screens.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Styles holds the lipgloss styles used across screens. The zero value
// renders everything unstyled.
type Styles struct {
	Banner  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Hint    lipgloss.Style
	Header  lipgloss.Style
}

// NewStyles returns the style set. With enabled false all styles are
// zero values and render plain text.
func NewStyles(enabled bool) *Styles {
	if !enabled {
		return &Styles{}
	}
	return &Styles{
		Banner:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Hint:    lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("14")),
		Header:  lipgloss.NewStyle().Bold(true),
	}
}

// ColorEnabled reports whether styled output should be used. Color is
// off when explicitly disabled or when stdout is not a terminal.
func ColorEnabled(noColor bool) bool {
	if noColor {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
