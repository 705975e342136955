// icefall is a terminal survival game: dodge the falling icicles for as long as you can.
//
// Usage:
//
//	icefall                  - Play (same as "icefall play")
//	icefall play             - Play a round in this terminal
//	icefall list             - List available games
//	icefall scores           - Show recorded survival times
//	icefall serve            - Start SSH server for remote play
//	icefall config           - Print the resolved configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--log-file <path>     - Write debug logs to a file
//	--config <path>       - Use a custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/icefall/internal/config"
	"github.com/vovakirdan/icefall/internal/games/icefall"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogFile    string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "icefall",
	Short: "Icefall - dodge falling icicles in your terminal",
	Long: `Icefall is a terminal survival game. Icicles fall faster the longer
you last; your score is the time you survived.

Available commands:
  play     - Play in this terminal (default)
  list     - Show all available games
  scores   - View recorded survival times
  serve    - Start SSH server for remote play
  config   - Print the resolved configuration

Examples:
  icefall
  icefall play --difficulty hard
  icefall scores --mode turbo
  icefall serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig resolves --config and --difficulty. An invalid file or
// preset stops the command before anything starts.
func loadGameConfig() (config.IcefallConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.IcefallConfig{}, err
	}
	return config.Resolve(flagConfig, preset)
}

// installGameConfig resolves the configuration and hands it to the game.
func installGameConfig() error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	icefall.SetConfig(cfg)
	return nil
}

// newLogger opens the --log-file logger. Without a file, logs are discarded
// since the terminal belongs to the game.
func newLogger(prefix string) (*log.Logger, io.Closer, error) {
	if flagLogFile == "" {
		return log.New(io.Discard), nopCloser{}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.DebugLevel,
	})
	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
