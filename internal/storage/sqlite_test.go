package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, v := range []float64{12.5, 4.25, 31.75} {
		if _, err := store.SaveScore("icefall", v, ModeNormal); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", 99, ModeNormal); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("icefall", "", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	expected := []float64{31.75, 12.5, 4.25}
	for i, v := range expected {
		if scores[i].Score != v {
			t.Errorf("scores[%d] = %v, expected %v", i, scores[i].Score, v)
		}
		if scores[i].Mode != ModeNormal {
			t.Errorf("scores[%d].Mode = %q, expected %q", i, scores[i].Mode, ModeNormal)
		}
	}
}

func TestStoreTopScoresByMode(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("icefall", 10, ModeNormal)
	store.SaveScore("icefall", 20, ModeTurbo)
	store.SaveScore("icefall", 30, ModeNormal)
	store.SaveScore("icefall", 5, "")

	normal, err := store.TopScores("icefall", ModeNormal, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(normal) != 3 {
		t.Errorf("Expected 3 normal scores (empty mode defaults to normal), got %d", len(normal))
	}

	turbo, err := store.TopScores("icefall", ModeTurbo, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(turbo) != 1 || turbo[0].Score != 20 {
		t.Errorf("turbo scores = %v, expected one entry of 20", turbo)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", float64(i+1)*10, ModeNormal)
	}

	scores, err := store.TopScores("test", "", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 50 || scores[1].Score != 40 || scores[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.HighScore("icefall")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if ok {
		t.Error("Expected no high score for a fresh database")
	}

	if err := store.SetHighScore("icefall", 42.5); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	if err := store.SetHighScore("icefall", 17.25); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}

	high, ok, err := store.HighScore("icefall")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if !ok || high != 17.25 {
		t.Errorf("HighScore() = (%v, %v), expected (17.25, true)", high, ok)
	}
}

func TestStoreHighScoreSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SetHighScore("icefall", 61.3); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	high, ok, err := store.HighScore("icefall")
	if err != nil || !ok || high != 61.3 {
		t.Errorf("HighScore() = (%v, %v, %v), expected (61.3, true, nil)", high, ok, err)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("icefall", 10, ModeNormal)
	store.SaveScore("icefall", 20, ModeTurbo)
	store.SetHighScore("icefall", 20)
	store.SaveScore("other", 30, ModeNormal)

	if err := store.ClearScores("icefall"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("icefall", "", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if _, ok, _ := store.HighScore("icefall"); ok {
		t.Error("Expected high score to be cleared")
	}

	other, _ := store.TopScores("other", "", 10)
	if len(other) != 1 {
		t.Errorf("Other game scores should not be affected by clearing icefall")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	played := []float64{12.5, 40, 3.2, 40, 7}
	for _, s := range played {
		store.SaveScore("test", s, ModeNormal)
	}
	store.SaveScore("other", 99, ModeTurbo)

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != len(played) {
		t.Fatalf("AllScores() returned %d rounds, expected %d", len(scores), len(played))
	}
	for i, s := range scores {
		if s.Score != played[i] {
			t.Errorf("AllScores()[%d] = %v, expected %v (play order)", i, s.Score, played[i])
		}
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("icefall")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v, expected zero values", stats)
	}

	store.SaveScore("icefall", 10, ModeNormal)
	store.SaveScore("icefall", 30, ModeTurbo)

	stats, err = store.GetGameStats("icefall")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.Best != 30 {
		t.Errorf("Best = %v, expected 30", stats.Best)
	}
	if stats.Average != 20 {
		t.Errorf("Average = %v, expected 20", stats.Average)
	}
	if stats.TotalTime != 40 {
		t.Errorf("TotalTime = %v, expected 40", stats.TotalTime)
	}
	if stats.TurboCount != 1 {
		t.Errorf("TurboCount = %d, expected 1", stats.TurboCount)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemory()

	if _, ok, _ := m.HighScore("icefall"); ok {
		t.Error("Expected no high score in a fresh memory store")
	}

	m.SaveScore("icefall", 5, ModeNormal)
	m.SaveScore("icefall", 15, ModeTurbo)
	m.SaveScore("icefall", 10, "")

	all, _ := m.TopScores("icefall", "", 2)
	if len(all) != 2 || all[0].Score != 15 || all[1].Score != 10 {
		t.Errorf("TopScores() = %v, expected [15 10]", all)
	}

	normal, _ := m.TopScores("icefall", ModeNormal, 10)
	if len(normal) != 2 {
		t.Errorf("normal scores = %d, expected 2", len(normal))
	}

	m.SetHighScore("icefall", 15)
	if v, ok, _ := m.HighScore("icefall"); !ok || v != 15 {
		t.Errorf("HighScore() = (%v, %v), expected (15, true)", v, ok)
	}
}

type failingBackend struct{}

func (failingBackend) HighScore(string) (float64, bool, error) {
	return 0, false, os.ErrPermission
}

func (failingBackend) SetHighScore(string, float64) error {
	return os.ErrPermission
}

func TestHighScoreKey(t *testing.T) {
	m := NewMemory()
	key := NewHighScoreKey(m, "icefall", nil)

	if _, ok := key.HighScore(); ok {
		t.Error("Expected no high score before the first round")
	}

	key.SetHighScore(33.3)
	if v, ok := key.HighScore(); !ok || v != 33.3 {
		t.Errorf("HighScore() = (%v, %v), expected (33.3, true)", v, ok)
	}
	if v, _, _ := m.HighScore("other"); v != 0 {
		t.Errorf("other game high score = %v, expected untouched", v)
	}
}

func TestHighScoreKeyDegradesOnError(t *testing.T) {
	key := NewHighScoreKey(failingBackend{}, "icefall", nil)

	if v, ok := key.HighScore(); ok || v != 0 {
		t.Errorf("HighScore() = (%v, %v), expected (0, false) on backend error", v, ok)
	}
	key.SetHighScore(10) // must not panic
}
