package storage

import (
	"sort"
	"sync"
	"time"
)

// Memory is an in-memory score store. It backs SSH sessions that run
// without a database and the game tests. State is lost on restart.
type Memory struct {
	mu     sync.RWMutex
	nextID int64
	scores map[string][]ScoreEntry
	highs  map[string]float64
}

// NewMemory constructs an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		scores: make(map[string][]ScoreEntry),
		highs:  make(map[string]float64),
	}
}

// SaveScore records a finished round.
func (m *Memory) SaveScore(gameID string, score float64, mode string) (int64, error) {
	if mode == "" {
		mode = ModeNormal
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	m.scores[gameID] = append(m.scores[gameID], ScoreEntry{
		ID:        m.nextID,
		GameID:    gameID,
		Score:     score,
		Mode:      mode,
		CreatedAt: time.Now(),
	})
	return m.nextID, nil
}

// TopScores returns the best scores, optionally filtered by mode.
func (m *Memory) TopScores(gameID, mode string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []ScoreEntry
	for _, e := range m.scores[gameID] {
		if mode == "" || e.Mode == mode {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// HighScore returns the stored high score, if any.
func (m *Memory) HighScore(gameID string) (float64, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.highs[gameID]
	return v, ok, nil
}

// SetHighScore replaces the stored high score.
func (m *Memory) SetHighScore(gameID string, score float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.highs[gameID] = score
	return nil
}
