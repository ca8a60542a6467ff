// Package game implements the guessing session engine: secret number
// generation, the bounded guess loop, and hint generation.
package game

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"
)

// Difficulty is one of the fixed presets a session runs under.
type Difficulty struct {
	Name        string
	MaxAttempts int
	NumberRange int
}

// Outcome is the final result of one session.
type Outcome struct {
	Won      bool
	Attempts int
	Secret   int
}

// GuessSource supplies validated guesses in [1, max]. Implementations
// are responsible for re-prompting on invalid input; the engine only
// ever sees in-range integers.
type GuessSource interface {
	NextGuess(max int) (int, error)
}

// Config holds the dependencies for an Engine.
type Config struct {
	Player     string
	Input      GuessSource
	Output     io.Writer
	Rand       *rand.Rand          // nil for a randomly seeded source
	Selector   Selector            // nil for shuffle selection over Rand
	Logger     *slog.Logger        // nil to discard
	RenderHint func(string) string // nil to print hints unstyled
}

// Engine runs guessing sessions.
type Engine struct {
	player     string
	input      GuessSource
	out        io.Writer
	rng        *rand.Rand
	selector   Selector
	logger     *slog.Logger
	renderHint func(string) string
}

// New creates an Engine from cfg.
func New(cfg Config) *Engine {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	selector := cfg.Selector
	if selector == nil {
		selector = ShuffleSelector{Rand: rng}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	renderHint := cfg.RenderHint
	if renderHint == nil {
		renderHint = func(s string) string { return s }
	}
	return &Engine{
		player:     cfg.Player,
		input:      cfg.Input,
		out:        cfg.Output,
		rng:        rng,
		selector:   selector,
		logger:     logger,
		renderHint: renderHint,
	}
}

// DrawSecret returns a uniformly distributed secret in [1, max].
func DrawSecret(rng *rand.Rand, max int) int {
	return 1 + rng.IntN(max)
}

// Run plays one full session at difficulty d. The returned error is
// non-nil only when the guess source fails (e.g. EOF on stdin); invalid
// guesses never surface here.
func (e *Engine) Run(d Difficulty) (Outcome, error) {
	return e.play(d, DrawSecret(e.rng, d.NumberRange))
}

func (e *Engine) play(d Difficulty, secret int) (Outcome, error) {
	sessionID := uuid.NewString()
	e.logger.Debug("session started",
		"session_id", sessionID,
		"difficulty", d.Name,
		"max_attempts", d.MaxAttempts,
		"range", d.NumberRange)

	attempts := 0
	lastGuess := 0
	for attempts < d.MaxAttempts {
		fmt.Fprintf(e.out, "\nAttempts left: %d\n", d.MaxAttempts-attempts)

		guess, err := e.input.NextGuess(d.NumberRange)
		if err != nil {
			e.logger.Debug("session aborted", "session_id", sessionID, "error", err)
			return Outcome{Attempts: attempts, Secret: secret}, err
		}
		attempts++
		lastGuess = guess
		e.logger.Debug("guess received", "session_id", sessionID, "attempt", attempts, "guess", guess)

		if guess == secret {
			fmt.Fprintf(e.out, "\nCongratulations, %s! You guessed the number %d in %d attempts!\n",
				e.player, secret, attempts)
			e.logger.Debug("session won", "session_id", sessionID, "attempts", attempts)
			return Outcome{Won: true, Attempts: attempts, Secret: secret}, nil
		}
		if guess < secret {
			fmt.Fprintln(e.out, "Too Low! Try again.")
		} else {
			fmt.Fprintln(e.out, "Too High! Try again.")
		}

		if hintDue(attempts) {
			hint := e.selector.Select(Candidates(secret, lastGuess, true))
			fmt.Fprintf(e.out, "Hint: %s\n", e.renderHint(hint))
		}
	}

	fmt.Fprintf(e.out, "\nGame Over! You ran out of attempts. The secret number was %d.\n", secret)
	e.logger.Debug("session lost", "session_id", sessionID, "attempts", attempts)
	return Outcome{Attempts: attempts, Secret: secret}, nil
}

// hintDue reports whether a hint is shown after the given attempt
// count. Hints fire on attempt 3 and every odd attempt after it.
func hintDue(attempts int) bool {
	return attempts >= 3 && attempts%2 == 1
}
