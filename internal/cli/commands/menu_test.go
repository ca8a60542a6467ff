package commands

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/numquest/internal/cli/config"
	"github.com/leapstack-labs/numquest/internal/leaderboard"
	"github.com/leapstack-labs/numquest/internal/testutil"
	"github.com/leapstack-labs/numquest/internal/ui"
)

// scriptedPrompter feeds the menu loop a fixed line sequence.
func scriptedPrompter(out io.Writer, lines ...string) *ui.Prompter {
	next := 0
	return ui.NewScriptedPrompter(out, ui.NewStyles(false), func(_ string) (string, error) {
		if next >= len(lines) {
			return "", io.EOF
		}
		line := lines[next]
		next++
		return strings.TrimSpace(line), nil
	})
}

// menuTestContext builds a CommandContext whose easy preset has range
// 1, so a scripted guess of 1 always wins.
func menuTestContext(t *testing.T, scoresFile string) *CommandContext {
	t.Helper()

	cfg := config.Default()
	cfg.ScoresFile = scoresFile
	cfg.Difficulties["easy"] = config.DifficultyConfig{Tries: 10, Range: 1}

	return &CommandContext{
		Cfg:    cfg,
		Logger: testutil.NewTestLogger(t),
		Store:  leaderboard.NewStore(scoresFile, testutil.NewTestLogger(t)),
		Styles: ui.NewStyles(false),
	}
}

func newMenuCommand(out, errOut io.Writer) *cobra.Command {
	cmd := &cobra.Command{Use: "numquest"}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	return cmd
}

func TestMenuLoop_ExitOption(t *testing.T) {
	out := new(bytes.Buffer)
	cmd := newMenuCommand(out, new(bytes.Buffer))
	cc := menuTestContext(t, filepath.Join(t.TempDir(), "high_scores.json"))

	err := menuLoop(cmd, cc, scriptedPrompter(out, "3"))
	if err != nil {
		t.Fatalf("menuLoop() error = %v", err)
	}

	for _, want := range []string{"--- Main Menu ---", "Thanks for playing! Goodbye."} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output should contain %q, got: %s", want, out.String())
		}
	}
}

func TestMenuLoop_InvalidChoiceReprompts(t *testing.T) {
	out := new(bytes.Buffer)
	cmd := newMenuCommand(out, new(bytes.Buffer))
	cc := menuTestContext(t, filepath.Join(t.TempDir(), "high_scores.json"))

	err := menuLoop(cmd, cc, scriptedPrompter(out, "9", "", "3"))
	if err != nil {
		t.Fatalf("menuLoop() error = %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Invalid choice. Please enter 1, 2, or 3.") {
		t.Errorf("output should report the invalid choice, got: %s", got)
	}
	if !strings.Contains(got, "Thanks for playing! Goodbye.") {
		t.Errorf("loop should continue to the exit option, got: %s", got)
	}
}

func TestMenuLoop_EOFExitsCleanly(t *testing.T) {
	out := new(bytes.Buffer)
	cmd := newMenuCommand(out, new(bytes.Buffer))
	cc := menuTestContext(t, filepath.Join(t.TempDir(), "high_scores.json"))

	if err := menuLoop(cmd, cc, scriptedPrompter(out)); err != nil {
		t.Fatalf("menuLoop() error = %v", err)
	}
}

func TestMenuLoop_ViewLeaderboard(t *testing.T) {
	out := new(bytes.Buffer)
	cmd := newMenuCommand(out, new(bytes.Buffer))
	cc := menuTestContext(t, filepath.Join(t.TempDir(), "high_scores.json"))

	err := menuLoop(cmd, cc, scriptedPrompter(out, "2", "", "3"))
	if err != nil {
		t.Fatalf("menuLoop() error = %v", err)
	}

	for _, want := range []string{"HIGH SCORES", "No scores recorded yet"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output should contain %q, got: %s", want, out.String())
		}
	}
}

func TestMenuLoop_WonRoundSavesScore(t *testing.T) {
	scoresFile := filepath.Join(t.TempDir(), "high_scores.json")
	out := new(bytes.Buffer)
	cmd := newMenuCommand(out, new(bytes.Buffer))
	cc := menuTestContext(t, scoresFile)

	err := menuLoop(cmd, cc, scriptedPrompter(out, "1", "Dana", "easy", "1", "", "3"))
	if err != nil {
		t.Fatalf("menuLoop() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{"Congratulations, Dana!", "Your score has been saved to the leaderboard!"} {
		if !strings.Contains(got, want) {
			t.Errorf("output should contain %q, got: %s", want, got)
		}
	}

	records, err := cc.Store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("leaderboard should hold one record, got %d", len(records))
	}
	if records[0].Name != "Dana" || records[0].Difficulty != "easy" || records[0].Attempts != 1 {
		t.Errorf("unexpected record: %+v", records[0])
	}
}

func TestMenuLoop_SaveFailureIsReported(t *testing.T) {
	// A scores path in a missing directory makes every save fail.
	scoresFile := filepath.Join(t.TempDir(), "missing", "high_scores.json")
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	cmd := newMenuCommand(out, errOut)
	cc := menuTestContext(t, scoresFile)

	err := menuLoop(cmd, cc, scriptedPrompter(out, "1", "Dana", "easy", "1", "", "3"))
	if err != nil {
		t.Fatalf("menuLoop() error = %v", err)
	}

	if !strings.Contains(errOut.String(), "Error saving high score") {
		t.Errorf("stderr should report the failed save, got: %s", errOut.String())
	}
	if strings.Contains(out.String(), "has been saved") {
		t.Errorf("output should not claim the score was saved, got: %s", out.String())
	}
	if !strings.Contains(out.String(), "Thanks for playing! Goodbye.") {
		t.Errorf("loop should continue after the failed save, got: %s", out.String())
	}
}
