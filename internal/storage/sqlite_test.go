package storage

import (
	"path/filepath"
	"testing"
)

func TestOpenCreatesDatabase(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "nested", "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()
}

func TestSaveAndTopRuns(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	entries := []RunEntry{
		{RuleID: "score-exit", Engine: "arcade", Seed: 1, Score: 10, Escaped: 1, Frames: 600},
		{RuleID: "score-exit", Engine: "arcade", Seed: 2, Score: 45, Escaped: 4, Frames: 1200},
		{RuleID: "score-exit", Engine: "realistic", Seed: 3, Score: 30, Escaped: 2, Frames: 900},
		{RuleID: "splitter", Engine: "arcade", Seed: 4, Score: 99, Escaped: 0, Frames: 300},
	}
	for _, e := range entries {
		if _, err := store.SaveRun(e); err != nil {
			t.Fatalf("SaveRun failed: %v", err)
		}
	}

	top, err := store.TopRuns("score-exit", 10)
	if err != nil {
		t.Fatalf("TopRuns failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("expected 3 score-exit runs, got %d", len(top))
	}
	if top[0].Score != 45 || top[1].Score != 30 || top[2].Score != 10 {
		t.Errorf("runs not ordered by score descending: %d, %d, %d",
			top[0].Score, top[1].Score, top[2].Score)
	}
	if top[0].Engine != "arcade" || top[0].Escaped != 4 {
		t.Errorf("run fields not preserved: engine=%q escaped=%d",
			top[0].Engine, top[0].Escaped)
	}
}

func TestTopRunsLimit(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		_, err := store.SaveRun(RunEntry{RuleID: "growth", Engine: "arcade", Seed: int64(i), Score: i * 10})
		if err != nil {
			t.Fatalf("SaveRun failed: %v", err)
		}
	}

	top, err := store.TopRuns("growth", 2)
	if err != nil {
		t.Fatalf("TopRuns failed: %v", err)
	}
	if len(top) != 2 {
		t.Errorf("expected 2 runs with limit 2, got %d", len(top))
	}
}

func TestBestScore(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	best, err := store.BestScore("painter")
	if err != nil {
		t.Fatalf("BestScore failed: %v", err)
	}
	if best != 0 {
		t.Errorf("expected 0 for empty table, got %d", best)
	}

	store.SaveRun(RunEntry{RuleID: "painter", Engine: "arcade", Score: 7})
	store.SaveRun(RunEntry{RuleID: "painter", Engine: "arcade", Score: 21})

	best, err = store.BestScore("painter")
	if err != nil {
		t.Fatalf("BestScore failed: %v", err)
	}
	if best != 21 {
		t.Errorf("expected best score 21, got %d", best)
	}
}

func TestClearRuns(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(RunEntry{RuleID: "none", Engine: "arcade", Score: 3})
	store.SaveRun(RunEntry{RuleID: "splitter", Engine: "arcade", Score: 8})

	if err := store.ClearRuns("none"); err != nil {
		t.Fatalf("ClearRuns failed: %v", err)
	}

	cleared, err := store.AllRuns("none")
	if err != nil {
		t.Fatalf("AllRuns failed: %v", err)
	}
	if len(cleared) != 0 {
		t.Errorf("expected no runs after clear, got %d", len(cleared))
	}

	kept, err := store.AllRuns("splitter")
	if err != nil {
		t.Fatalf("AllRuns failed: %v", err)
	}
	if len(kept) != 1 {
		t.Errorf("expected splitter runs untouched, got %d", len(kept))
	}
}
