package game

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidates(t *testing.T) {
	tests := []struct {
		name      string
		secret    int
		lastGuess int
		haveLast  bool
		want      []string
	}{
		{
			name:      "even divisible by 3 with lower guess",
			secret:    12,
			lastGuess: 5,
			haveLast:  true,
			want: []string{
				"The number is even.",
				"It is divisible by 3.",
				"It's greater than 5.",
			},
		},
		{
			name:   "small odd number has parity only",
			secret: 7,
			want:   []string{"The number is odd."},
		},
		{
			name:   "divisibility by 5 when 3 does not divide",
			secret: 25,
			want: []string{
				"The number is odd.",
				"It is divisible by 5.",
			},
		},
		{
			name:   "first matching divisor wins",
			secret: 21, // divisible by 3 and 7; only 3 is reported
			want: []string{
				"The number is odd.",
				"It is divisible by 3.",
			},
		},
		{
			name:   "divisibility by 7",
			secret: 14,
			want: []string{
				"The number is even.",
				"It is divisible by 7.",
			},
		},
		{
			name:   "no divisibility hint at or below 10",
			secret: 10, // divisible by 5, but too small for the hint
			want:   []string{"The number is even."},
		},
		{
			name:      "higher guess yields less-than",
			secret:    13,
			lastGuess: 40,
			haveLast:  true,
			want: []string{
				"The number is odd.",
				"It's less than 40.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Candidates(tt.secret, tt.lastGuess, tt.haveLast))
		})
	}
}

func TestShuffleSelector_PicksAtMostTwo(t *testing.T) {
	candidates := []string{
		"The number is even.",
		"It is divisible by 3.",
		"It's greater than 5.",
	}
	s := ShuffleSelector{Rand: rand.New(rand.NewPCG(1, 1))}

	for i := 0; i < 50; i++ {
		got := s.Select(candidates)
		included := 0
		for _, c := range candidates {
			if strings.Contains(got, c) {
				included++
			}
		}
		require.Equal(t, 2, included, "got %q", got)
	}
}

func TestShuffleSelector_FewerCandidates(t *testing.T) {
	s := ShuffleSelector{Rand: rand.New(rand.NewPCG(2, 2))}

	assert.Equal(t, "The number is odd.", s.Select([]string{"The number is odd."}))

	two := []string{"The number is even.", "It's less than 9."}
	got := s.Select(two)
	assert.Contains(t, got, two[0])
	assert.Contains(t, got, two[1])
}

func TestShuffleSelector_DoesNotMutateInput(t *testing.T) {
	candidates := []string{"a.", "b.", "c."}
	s := ShuffleSelector{Rand: rand.New(rand.NewPCG(3, 3))}

	for i := 0; i < 20; i++ {
		s.Select(candidates)
	}
	assert.Equal(t, []string{"a.", "b.", "c."}, candidates)
}
