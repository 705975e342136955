package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/icefall/internal/games/icefall"
	"github.com/vovakirdan/icefall/internal/platform/tui"
	"github.com/vovakirdan/icefall/internal/storage"
)

var (
	flagScoresMode  string
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
	flagScoresAll   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded survival times",
	Long: `Display the best survival times and overall statistics.

Examples:
  icefall scores
  icefall scores --mode turbo
  icefall scores --all
  icefall scores --tui
  icefall scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresMode, "mode", "", "Only show rounds of this mode (normal or turbo)")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "List every round in the order it was played")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded rounds and the high score")
}

func runScores(_ *cobra.Command, _ []string) error {
	switch flagScoresMode {
	case "", storage.ModeNormal, storage.ModeTurbo:
	default:
		return fmt.Errorf("unknown mode %q (want normal or turbo)", flagScoresMode)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(icefall.GameID); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, icefall.GameID, "Icefall", width, height)
	}

	scores, err := listScores(store)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Println("Survival Times - Icefall")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Run 'icefall play' to set the first time!")
		return nil
	}

	rankLabel := "Rank"
	if flagScoresAll {
		rankLabel = "#"
	}
	fmt.Printf("  %-4s  %-8s  %-6s  %s\n", rankLabel, "Time", "Mode", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %s\n", "----", "----", "----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8s  %-6s  %s\n", i+1, icefall.FormatTime(entry.Score), entry.Mode, dateStr)
	}

	fmt.Println()
	if best, ok, err := store.HighScore(icefall.GameID); err == nil && ok {
		fmt.Printf("High score: %s\n", icefall.FormatTime(best))
	}
	if stats, err := store.GetGameStats(icefall.GameID); err == nil {
		fmt.Printf("Rounds: %d (%d turbo)  Average: %s  Total: %s\n",
			stats.GamesCount, stats.TurboCount,
			icefall.FormatTime(stats.Average), icefall.FormatTime(stats.TotalTime))
	}
	return nil
}

// listScores returns the best rounds, or with --all every round in play order.
func listScores(store *storage.Store) ([]storage.ScoreEntry, error) {
	if !flagScoresAll {
		return store.TopScores(icefall.GameID, flagScoresMode, flagScoresLimit)
	}

	all, err := store.AllScores(icefall.GameID)
	if err != nil {
		return nil, err
	}
	scores := all[:0]
	for _, e := range all {
		if flagScoresMode == "" || e.Mode == flagScoresMode {
			scores = append(scores, e)
		}
	}
	return scores, nil
}
