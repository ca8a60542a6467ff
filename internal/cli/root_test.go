package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/numquest/internal/cli/config"
)

func TestNewRootCmd_Metadata(t *testing.T) {
	cmd := NewRootCmd()

	if cmd.Use != "numquest" {
		t.Errorf("Use = %q, want %q", cmd.Use, "numquest")
	}

	wantSubcommands := []string{"play", "scores", "version", "completion"}
	for _, name := range wantSubcommands {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command should have subcommand %q", name)
		}
	}
}

func TestRootCmd_ScoresSubcommand(t *testing.T) {
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"scores", "--scores-file", filepath.Join(t.TempDir(), "high_scores.json")})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(buf.String(), "No scores recorded yet") {
		t.Errorf("output should report an empty leaderboard, got: %s", buf.String())
	}
}

func TestRootCmd_VersionSubcommand(t *testing.T) {
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(buf.String(), "NumQuest v"+Version) {
		t.Errorf("output should contain version, got: %s", buf.String())
	}
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"bogus"})

	if err := cmd.Execute(); err == nil {
		t.Error("Execute() should fail for an unknown command")
	}
}

func TestRootCmd_InvalidConfigFile(t *testing.T) {
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"scores", "--config", filepath.Join(t.TempDir(), "missing.yaml")})

	if err := cmd.Execute(); err == nil {
		t.Error("Execute() should fail when the config file cannot be read")
	}
}
