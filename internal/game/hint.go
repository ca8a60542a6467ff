package game

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
)

// Candidates builds the hint fragments for a secret. The parity
// fragment is always present. A divisibility fragment is added only
// for secrets above 10, testing 3, 5, 7 in order and keeping the first
// match. A proximity fragment is added when a previous guess exists.
func Candidates(secret, lastGuess int, haveLast bool) []string {
	var hints []string

	if secret%2 == 0 {
		hints = append(hints, "The number is even.")
	} else {
		hints = append(hints, "The number is odd.")
	}

	if secret > 10 {
		switch {
		case secret%3 == 0:
			hints = append(hints, "It is divisible by 3.")
		case secret%5 == 0:
			hints = append(hints, "It is divisible by 5.")
		case secret%7 == 0:
			hints = append(hints, "It is divisible by 7.")
		}
	}

	if haveLast {
		switch {
		case lastGuess < secret:
			hints = append(hints, fmt.Sprintf("It's greater than %d.", lastGuess))
		case lastGuess > secret:
			hints = append(hints, fmt.Sprintf("It's less than %d.", lastGuess))
		}
	}

	return hints
}

// Selector chooses which candidate fragments make up the displayed
// hint string. Injecting a deterministic Selector keeps hint output
// stable under test.
type Selector interface {
	Select(candidates []string) string
}

// ShuffleSelector joins up to two candidates drawn in random order.
type ShuffleSelector struct {
	Rand *rand.Rand
}

// Select implements Selector.
func (s ShuffleSelector) Select(candidates []string) string {
	c := slices.Clone(candidates)
	s.Rand.Shuffle(len(c), func(i, j int) {
		c[i], c[j] = c[j], c[i]
	})
	if len(c) > 2 {
		c = c[:2]
	}
	return strings.Join(c, " ")
}
