package storage

import (
	"io"

	"github.com/charmbracelet/log"
)

// HighScoreBackend is any store that keeps high scores per game.
type HighScoreBackend interface {
	HighScore(gameID string) (float64, bool, error)
	SetHighScore(gameID string, score float64) error
}

// HighScoreKey binds a backend to a single game's high score. Errors are
// logged and degrade to "no previous score" so a broken database never
// stops a round.
type HighScoreKey struct {
	Backend HighScoreBackend
	GameID  string
	Logger  *log.Logger
}

// NewHighScoreKey creates a binding. A nil logger discards output.
func NewHighScoreKey(b HighScoreBackend, gameID string, logger *log.Logger) *HighScoreKey {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &HighScoreKey{Backend: b, GameID: gameID, Logger: logger}
}

// HighScore returns the stored value, or false when there is none.
func (k *HighScoreKey) HighScore() (float64, bool) {
	v, ok, err := k.Backend.HighScore(k.GameID)
	if err != nil {
		k.Logger.Warn("could not read high score", "game", k.GameID, "error", err)
		return 0, false
	}
	return v, ok
}

// SetHighScore persists a new value.
func (k *HighScoreKey) SetHighScore(score float64) {
	if err := k.Backend.SetHighScore(k.GameID, score); err != nil {
		k.Logger.Error("could not save high score", "game", k.GameID, "score", score, "error", err)
	}
}
