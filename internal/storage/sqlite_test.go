package storage

import (
	"os"
	"path/filepath"
	"strings"
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
		t.Error("database file was not created")
	}
}

func TestStoreSaveAndRetrieveScores(t *testing.T) {
	store := openTestStore(t)

	for _, entry := range []struct{ score, maxTile int }{
		{100, 16},
		{50, 8},
		{200, 32},
	} {
		if _, err := store.SaveScore(entry.score, entry.maxTile, 4); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(scores))
	}

	// Sorted descending.
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("scores not sorted descending: %d, %d, %d", scores[0].Score, scores[1].Score, scores[2].Score)
	}
	if scores[0].MaxTile != 32 {
		t.Errorf("top MaxTile = %d, expected 32", scores[0].MaxTile)
	}
	if scores[0].BoardSize != 4 {
		t.Errorf("top BoardSize = %d, expected 4", scores[0].BoardSize)
	}

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 200 {
		t.Errorf("HighScore() = %d, expected 200", high)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveScore(i*10, 4, 4); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("expected 5 scores, got %d", len(scores))
	}

	// Non-positive limit falls back to 10.
	scores, err = store.TopScores(0)
	if err != nil {
		t.Fatalf("TopScores(0) failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("expected default limit of 10, got %d", len(scores))
	}
}

func TestStoreHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() on empty store = %d, expected 0", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore(100, 16, 4); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("expected no scores after clear, got %d", len(scores))
	}
}

func TestStoreSaveAndLoadGame(t *testing.T) {
	store := openTestStore(t)

	state := strings.Repeat("00", 14) + "0204"
	if err := store.SaveGame("evening", state, 4, 6); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	save, err := store.LoadGame("evening")
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	if save == nil {
		t.Fatal("LoadGame() = nil, expected the saved game")
	}
	if save.State != state {
		t.Errorf("State = %q, expected %q", save.State, state)
	}
	if save.BoardSize != 4 || save.Score != 6 {
		t.Errorf("BoardSize/Score = %d/%d, expected 4/6", save.BoardSize, save.Score)
	}
}

func TestStoreLoadGameMissing(t *testing.T) {
	store := openTestStore(t)

	save, err := store.LoadGame("nope")
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	if save != nil {
		t.Errorf("LoadGame() = %+v, expected nil for a missing save", save)
	}
}

func TestStoreSaveGameOverwrites(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveGame("slot", strings.Repeat("00", 16), 4, 0); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}
	newState := strings.Repeat("00", 15) + "08"
	if err := store.SaveGame("slot", newState, 4, 8); err != nil {
		t.Fatalf("SaveGame() overwrite failed: %v", err)
	}

	save, err := store.LoadGame("slot")
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	if save.State != newState || save.Score != 8 {
		t.Errorf("save not overwritten: state %q score %d", save.State, save.Score)
	}

	saves, err := store.ListSaves()
	if err != nil {
		t.Fatalf("ListSaves() failed: %v", err)
	}
	if len(saves) != 1 {
		t.Errorf("expected 1 save after overwrite, got %d", len(saves))
	}
}

func TestStoreListAndDeleteSaves(t *testing.T) {
	store := openTestStore(t)

	for _, name := range []string{"one", "two", "three"} {
		if err := store.SaveGame(name, strings.Repeat("00", 16), 4, 0); err != nil {
			t.Fatalf("SaveGame(%q) failed: %v", name, err)
		}
	}

	saves, err := store.ListSaves()
	if err != nil {
		t.Fatalf("ListSaves() failed: %v", err)
	}
	if len(saves) != 3 {
		t.Fatalf("expected 3 saves, got %d", len(saves))
	}

	if err := store.DeleteSave("two"); err != nil {
		t.Fatalf("DeleteSave() failed: %v", err)
	}

	saves, err = store.ListSaves()
	if err != nil {
		t.Fatalf("ListSaves() failed: %v", err)
	}
	if len(saves) != 2 {
		t.Errorf("expected 2 saves after delete, got %d", len(saves))
	}
	for _, save := range saves {
		if save.Name == "two" {
			t.Error("deleted save still listed")
		}
	}
}
