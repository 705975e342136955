package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/icefall/internal/audio"
	"github.com/vovakirdan/icefall/internal/core"
	"github.com/vovakirdan/icefall/internal/games/icefall"
	"github.com/vovakirdan/icefall/internal/platform/tui"
	"github.com/vovakirdan/icefall/internal/registry"
	"github.com/vovakirdan/icefall/internal/storage"
)

var (
	flagMute   bool
	flagVolume float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play icefall in this terminal",
	Long: `Start icefall. The intro screen waits for you to pick a mode.

Controls:
  Space/Enter/Click - Start a normal round
  T                 - Start a turbo round
  Left/A/H          - Move left
  Right/D/L         - Move right
  Mouse             - Move to the pointer
  P/Esc             - Pause
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slower start and a longer ramp
  normal - Ramp as configured
  hard   - Start a third of the way down the ramp
  fixed  - No progression, stays at the starting interval

Examples:
  icefall play
  icefall play --difficulty hard
  icefall play --mute
  icefall play --config ./my-icefall.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", audio.DefaultConfig().Volume, "Sound volume (0-1)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if err := installGameConfig(); err != nil {
		return err
	}

	logger, logCloser, err := newLogger("icefall")
	if err != nil {
		return err
	}
	defer logCloser.Close()

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	svc := registry.Services{Logger: logger}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores kept in memory", "error", err)
		svc.Scores = storage.NewMemory()
	} else {
		defer store.Close()
		svc.Scores = store
	}

	if !flagMute {
		synth := audio.NewSynth(audio.Config{Volume: flagVolume})
		if initErr := synth.Init(); initErr != nil {
			logger.Warn("audio disabled", "error", initErr)
		} else {
			defer synth.Close()
			svc.Audio = synth
		}
	}

	game, err := registry.Create(icefall.GameID, svc)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	if err := tui.Run(game, cfg); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
