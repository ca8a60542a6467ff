package ui

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/leapstack-labs/numquest/internal/game"
)

// AnonymousName is used when the player declines to give a name.
const AnonymousName = "Anonymous"

var (
	errNotANumber = errors.New("not a whole number")
	errOutOfRange = errors.New("out of range")
)

// Prompter reads validated player input line by line. Production
// instances are backed by readline; tests inject a scripted read
// function.
type Prompter struct {
	rl     *readline.Instance
	read   func(prompt string) (string, error)
	out    io.Writer
	styles *Styles
}

// NewPrompter wires a readline-backed prompter writing messages to out.
func NewPrompter(out io.Writer, styles *Styles) (*Prompter, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize prompt: %w", err)
	}

	p := &Prompter{rl: rl, out: out, styles: styles}
	p.read = p.readlineOnce
	return p, nil
}

// NewScriptedPrompter returns a prompter fed by read instead of a
// readline instance. It lets tests drive the interactive menu and
// session flows with canned input.
func NewScriptedPrompter(out io.Writer, styles *Styles, read func(prompt string) (string, error)) *Prompter {
	return &Prompter{out: out, styles: styles, read: read}
}

// Close releases the underlying readline instance.
func (p *Prompter) Close() error {
	if p.rl == nil {
		return nil
	}
	return p.rl.Close()
}

// readlineOnce reads a single line, treating Ctrl-C as "ask again".
// EOF propagates so callers can unwind their loops.
func (p *Prompter) readlineOnce(prompt string) (string, error) {
	p.rl.SetPrompt(prompt)
	for {
		line, err := p.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(line), nil
	}
}

// PlayerName prompts for the player's name, defaulting to Anonymous.
func (p *Prompter) PlayerName() (string, error) {
	line, err := p.read("Enter your name (optional, press Enter to be Anonymous): ")
	if err != nil {
		return "", err
	}
	if line == "" {
		return AnonymousName, nil
	}
	return line, nil
}

// DifficultyChoice shows the presets and prompts until one is chosen.
// Matching is case-insensitive on the preset name.
func (p *Prompter) DifficultyChoice(presets []game.Difficulty) (game.Difficulty, error) {
	names := make([]string, len(presets))
	for i, d := range presets {
		names[i] = capitalizeName(d.Name)
	}

	for {
		fmt.Fprintln(p.out, "\n--- Choose Difficulty ---")
		for _, d := range presets {
			fmt.Fprintf(p.out, "  %s: %d tries (1 - %d)\n", capitalizeName(d.Name), d.MaxAttempts, d.NumberRange)
		}

		line, err := p.read(fmt.Sprintf("Enter difficulty (%s): ", strings.Join(names, "/")))
		if err != nil {
			return game.Difficulty{}, err
		}

		choice := strings.ToLower(line)
		for _, d := range presets {
			if choice == d.Name {
				return d, nil
			}
		}
		fmt.Fprintln(p.out, p.styles.Error.Render(
			fmt.Sprintf("Invalid choice. Please choose %s.", strings.Join(names, ", "))))
	}
}

// NextGuess prompts until a valid guess in [1, max] is entered.
// Invalid input is reported and re-prompted without surfacing an error,
// so it never costs the player an attempt.
func (p *Prompter) NextGuess(max int) (int, error) {
	for {
		line, err := p.read(fmt.Sprintf("Enter your guess (1 - %d): ", max))
		if err != nil {
			return 0, err
		}

		guess, err := parseGuess(line, max)
		switch {
		case errors.Is(err, errNotANumber):
			fmt.Fprintln(p.out, p.styles.Error.Render("Invalid input. Please enter a whole number."))
		case errors.Is(err, errOutOfRange):
			fmt.Fprintln(p.out, p.styles.Error.Render(
				fmt.Sprintf("Please enter a number within the range (1 - %d).", max)))
		default:
			return guess, nil
		}
	}
}

// MenuChoice reads one menu selection.
func (p *Prompter) MenuChoice(prompt string) (string, error) {
	return p.read(prompt)
}

// Pause blocks until the player presses Enter.
func (p *Prompter) Pause(msg string) error {
	_, err := p.read(msg)
	return err
}

// parseGuess is the explicit parse result for a raw guess line:
// either a number in [1, max] or a classified validation error.
func parseGuess(line string, max int) (int, error) {
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, errNotANumber
	}
	if n < 1 || n > max {
		return 0, errOutOfRange
	}
	return n, nil
}

func capitalizeName(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
