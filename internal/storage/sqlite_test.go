package storage

import (
	"os"
	"path/filepath"
	"testing"
)

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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	_, err = store.SaveRun(RunRecord{Program: "pond.lb", Status: StatusFinished, Ticks: 12, Output: "10"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	_, err = store.SaveRun(RunRecord{Program: "pond.lb", Status: StatusError, Ticks: 3, ErrorText: "RuntimeError: cannot move through an occupied square\n\tat line 5"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	// Different program
	_, err = store.SaveRun(RunRecord{Program: "hello.lb", Status: StatusFinished, Ticks: 400, Output: "Hello"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.RunsForProgram("pond.lb", 10)
	if err != nil {
		t.Fatalf("RunsForProgram() failed: %v", err)
	}

	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs for pond.lb, got %d", len(runs))
	}

	// Most recent first
	if runs[0].Status != StatusError {
		t.Errorf("Expected most recent run to have status %q, got %q", StatusError, runs[0].Status)
	}
	if runs[1].Output != "10" {
		t.Errorf("Expected earlier run output %q, got %q", "10", runs[1].Output)
	}

	all, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 runs total, got %d", len(all))
	}
}

func TestStoreRecentRunsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.SaveRun(RunRecord{Program: "loop.lb", Status: StatusFinished, Ticks: uint64(i + 1)})
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}

	// Most recent inserts first
	if runs[0].Ticks != 5 || runs[1].Ticks != 4 || runs[2].Ticks != 3 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreClearRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(RunRecord{Program: "pond.lb", Status: StatusFinished})
	store.SaveRun(RunRecord{Program: "pond.lb", Status: StatusFinished})
	store.SaveRun(RunRecord{Program: "hello.lb", Status: StatusFinished})

	// Clear only pond.lb history
	if err := store.ClearRuns("pond.lb"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	pondRuns, _ := store.RunsForProgram("pond.lb", 10)
	if len(pondRuns) != 0 {
		t.Errorf("Expected 0 pond.lb runs after clear, got %d", len(pondRuns))
	}

	helloRuns, _ := store.RunsForProgram("hello.lb", 10)
	if len(helloRuns) != 1 {
		t.Errorf("hello.lb runs should not be affected by clearing pond.lb")
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
