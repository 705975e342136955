package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/icefall/internal/config"
)

// execute runs the root command with args in a clean home and working dir.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	flagConfig, flagDifficulty = "", ""
	t.Cleanup(func() {
		flagConfig, flagDifficulty = "", ""
		rootCmd.SetArgs(nil)
	})

	rootCmd.SetArgs(args)
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	return rootCmd.Execute()
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "icefall.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInvalidConfigStopsCommand(t *testing.T) {
	bad := writeConfig(t, "trail:\n  min_length: 9\n  max_length: 2\n")

	tests := []struct {
		name string
		args []string
	}{
		{"config", []string{"config", "--config", bad}},
		{"play", []string{"play", "--config", bad, "--mute"}},
		{"root", []string{"--config", bad}},
		{"serve", []string{"serve", "--config", bad}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := execute(t, tt.args...)
			if !errors.Is(err, config.ErrInvalid) {
				t.Errorf("%v returned %v, expected ErrInvalid", tt.args, err)
			}
		})
	}
}

func TestUnknownDifficultyStopsCommand(t *testing.T) {
	err := execute(t, "config", "--difficulty", "brutal")
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("--difficulty brutal returned %v, expected ErrInvalid", err)
	}
}

func TestMissingConfigFileStopsCommand(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	if err := execute(t, "play", "--config", missing, "--mute"); err == nil {
		t.Error("play with a missing --config file should fail")
	}
}

func TestLoadGameConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Cleanup(func() { flagConfig, flagDifficulty = "", "" })

	flagConfig = writeConfig(t, "player:\n  step: 1.5\n")
	flagDifficulty = string(config.DifficultyFixed)

	cfg, err := loadGameConfig()
	if err != nil {
		t.Fatalf("loadGameConfig() error = %v", err)
	}
	if cfg.Player.Step != 1.5 {
		t.Errorf("Player.Step = %v, expected 1.5", cfg.Player.Step)
	}
	if cfg.Spawn.HardInterval != cfg.Spawn.EasyInterval {
		t.Errorf("fixed preset hard interval = %v, expected %v", cfg.Spawn.HardInterval, cfg.Spawn.EasyInterval)
	}
}
