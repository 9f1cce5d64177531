package storage

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/neon-runner/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreRecordAndTop(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.RecordRun(Run{Edition: "classic", FinalScore: score, Cause: "floor"}); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}
	if _, err := store.RecordRun(Run{Edition: "glow", FinalScore: 500, Multiplier: 5, Cause: "collision"}); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}

	runs, err := store.TopRuns("classic", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	if runs[0].FinalScore != 200 || runs[1].FinalScore != 100 || runs[2].FinalScore != 50 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
	if runs[0].Multiplier != 1 {
		t.Errorf("Multiplier = %d, expected default 1", runs[0].Multiplier)
	}

	all, err := store.TopRuns("", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(all) != 4 || all[0].Edition != "glow" {
		t.Errorf("TopRuns(all) = %v, expected 4 runs led by glow", all)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.RecordRun(Run{Edition: "cosmos", FinalScore: (i + 1) * 100, Cause: "floor"})
	}

	runs, err := store.TopRuns("cosmos", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].FinalScore != 500 || runs[2].FinalScore != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreRecordAssignsID(t *testing.T) {
	store := openTestStore(t)

	run, err := store.RecordRun(Run{Edition: "classic", FinalScore: 1, Cause: "floor"})
	if err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	if _, err := uuid.Parse(run.ID); err != nil {
		t.Errorf("ID = %q is not a UUID: %v", run.ID, err)
	}
	if run.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestStoreBest(t *testing.T) {
	store := openTestStore(t)

	best, err := store.Best("classic")
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Best() of empty ledger = %d, expected 0", best)
	}

	store.RecordRun(Run{Edition: "classic", FinalScore: 42, Cause: "floor"})
	store.RecordRun(Run{Edition: "classic", FinalScore: 7, Cause: "floor"})

	best, _ = store.Best("classic")
	if best != 42 {
		t.Errorf("Best() = %d, expected 42", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	store.RecordRun(Run{Edition: "glow", FinalScore: 10, Frames: 100, Cause: "floor", CreatedAt: at})
	store.RecordRun(Run{Edition: "glow", FinalScore: 30, Frames: 300, Cause: "collision", CreatedAt: at.Add(time.Minute)})

	stats, err := store.Stats("glow")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.Best != 30 || stats.AvgScore != 20 || stats.TotalFrames != 400 {
		t.Errorf("Stats() = %+v, expected 2 runs, best 30, avg 20, 400 frames", stats)
	}
	if !stats.LastPlayed.Equal(at.Add(time.Minute)) {
		t.Errorf("LastPlayed = %v, expected %v", stats.LastPlayed, at.Add(time.Minute))
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 1 || all["glow"].Runs != 2 {
		t.Errorf("AllStats() = %v, expected only glow with 2 runs", all)
	}
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)
	store.RecordRun(Run{Edition: "classic", FinalScore: 5, Cause: "floor"})

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	runs, _ := store.TopRuns("", 10)
	if len(runs) != 0 {
		t.Errorf("Expected no runs after Clear, got %d", len(runs))
	}
}

func TestRecorder(t *testing.T) {
	store := openTestStore(t)
	rec := NewRecorder(store, "glow", log.New(io.Discard))

	rec.Notify(core.Event{Kind: core.EventLand, Score: 3})
	rec.Notify(core.Event{
		Kind:       core.EventGameOver,
		Frame:      250,
		Score:      120,
		Multiplier: 4,
		Cause:      core.CauseCollision,
	})

	runs, err := store.TopRuns("glow", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 recorded run, got %d", len(runs))
	}
	r := runs[0]
	if r.FinalScore != 120 || r.Multiplier != 4 || r.Cause != "collision" || r.Frames != 250 {
		t.Errorf("recorded run = %+v, expected score 120, x4, collision, 250 frames", r)
	}
	if rec.Last().ID != r.ID {
		t.Errorf("Last().ID = %q, expected %q", rec.Last().ID, r.ID)
	}
}
