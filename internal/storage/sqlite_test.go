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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	games := []struct{ score, level, lines int }{
		{100, 1, 1},
		{50, 1, 0},
		{700, 2, 3},
	}
	for _, g := range games {
		if _, err := store.SaveScore(g.score, g.level, g.lines); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 700 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].Level != 2 || scores[0].Lines != 3 {
		t.Errorf("Expected level 2 and 3 lines for best game, got %d and %d", scores[0].Level, scores[0].Lines)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore((i+1)*100, 1, i+1)
	}

	// Request only top 3
	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreTopScoresTiesKeepInsertOrder(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.SaveScore(300, 1, 2)
	second, _ := store.SaveScore(300, 1, 2)

	scores, err := store.TopScores(0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].ID != first || scores[1].ID != second {
		t.Errorf("Expected ties ordered by insertion, got %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// Nothing saved yet
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}

	if err := store.SaveHighScore(1500); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	if got := store.LoadHighScore(); got != 1500 {
		t.Errorf("Expected high score of 1500, got %d", got)
	}

	// Saving overwrites, even with a lower value
	if err := store.SaveHighScore(300); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	if got := store.LoadHighScore(); got != 300 {
		t.Errorf("Expected overwritten high score of 300, got %d", got)
	}
}

func TestStoreHighScoreIndependentOfHistory(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(900, 2, 4)
	if got := store.LoadHighScore(); got != 0 {
		t.Errorf("History must not change the high score, got %d", got)
	}

	store.SaveHighScore(900)
	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if got := store.LoadHighScore(); got != 900 {
		t.Errorf("ClearScores must keep the high score, got %d", got)
	}
}

func TestStoreHighScoreSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveHighScore(2400)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if got := store.LoadHighScore(); got != 2400 {
		t.Errorf("Expected 2400 after reopen, got %d", got)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(100, 1, 1)
	store.SaveScore(200, 1, 2)

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores(10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	// Add many scores
	for i := 0; i < 20; i++ {
		store.SaveScore(i*100, 1, i)
	}

	scores, err := store.AllScores()
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
	if scores[0].Score != 1900 {
		t.Errorf("Expected best score first, got %d", scores[0].Score)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats()
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveScore(100, 1, 1)
	store.SaveScore(700, 2, 3)
	store.SaveScore(400, 1, 2)

	stats, err = store.GetGameStats()
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 {
		t.Errorf("Expected 3 games, got %d", stats.GamesCount)
	}
	if stats.BestScore != 700 || stats.BestLevel != 2 {
		t.Errorf("Expected best 700 at level 2, got %d at %d", stats.BestScore, stats.BestLevel)
	}
	if stats.TotalScore != 1200 || stats.TotalLines != 6 {
		t.Errorf("Expected totals 1200 and 6, got %d and %d", stats.TotalScore, stats.TotalLines)
	}
	if stats.AvgScore != 400 {
		t.Errorf("Expected average 400, got %f", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected last played to be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
