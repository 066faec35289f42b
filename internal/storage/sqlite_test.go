package storage

import (
	"sync"
	"testing"
	"time"
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

func save(t *testing.T, store *Store, rec SessionRecord) int64 {
	t.Helper()
	id, err := store.SaveSession(rec)
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	return id
}

func TestStoreOpenIsEmpty(t *testing.T) {
	store := openTestStore(t)

	n, err := store.Count("dodge")
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected empty log, got %d sessions", n)
	}
}

func TestStoresAreIndependent(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	save(t, a, SessionRecord{GameID: "dodge", Player: "local", Mode: "Endless", Score: 3, Level: 1, Reason: "collision"})

	n, err := b.Count("dodge")
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected second store to be empty, got %d sessions", n)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	id := save(t, store, SessionRecord{
		GameID:    "dodge",
		Player:    "alice",
		Mode:      "Time Trial",
		Score:     12,
		Level:     1,
		Duration:  30*time.Second + 250*time.Millisecond,
		Reason:    "time_up",
		CreatedAt: created,
	})

	records, err := store.RecentSessions("dodge", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 session, got %d", len(records))
	}

	r := records[0]
	if r.ID != id {
		t.Errorf("ID = %d, want %d", r.ID, id)
	}
	if r.Player != "alice" || r.Mode != "Time Trial" || r.Reason != "time_up" {
		t.Errorf("Unexpected record: %+v", r)
	}
	if r.Score != 12 || r.Level != 1 {
		t.Errorf("Score/Level = %d/%d, want 12/1", r.Score, r.Level)
	}
	if r.Duration != 30250*time.Millisecond {
		t.Errorf("Duration = %v, want 30.25s", r.Duration)
	}
	if !r.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", r.CreatedAt, created)
	}
}

func TestStoreZeroCreatedAtIsStamped(t *testing.T) {
	store := openTestStore(t)
	before := time.Now().Add(-time.Second)

	save(t, store, SessionRecord{GameID: "dodge", Player: "local", Mode: "Endless", Reason: "collision"})

	records, err := store.RecentSessions("dodge", 1)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if records[0].CreatedAt.Before(before) {
		t.Errorf("CreatedAt %v not stamped", records[0].CreatedAt)
	}
}

func TestStoreRecentNewestFirst(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{5, 1, 9, 3} {
		save(t, store, SessionRecord{GameID: "dodge", Player: "local", Mode: "Endless", Score: score, Reason: "collision"})
	}

	records, err := store.RecentSessions("dodge", 3)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected 3 sessions, got %d", len(records))
	}

	want := []int{3, 9, 1}
	for i, r := range records {
		if r.Score != want[i] {
			t.Errorf("records[%d].Score = %d, want %d", i, r.Score, want[i])
		}
	}
}

func TestStoreTopSessions(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{5, 1, 9, 5} {
		save(t, store, SessionRecord{GameID: "dodge", Player: "local", Mode: "Endless", Score: score, Reason: "collision"})
	}
	save(t, store, SessionRecord{GameID: "other", Player: "local", Mode: "Endless", Score: 100, Reason: "collision"})

	records, err := store.TopSessions("dodge", 0)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("Expected 4 sessions, got %d", len(records))
	}

	want := []int{9, 5, 5, 1}
	for i, r := range records {
		if r.Score != want[i] {
			t.Errorf("records[%d].Score = %d, want %d", i, r.Score, want[i])
		}
	}
	if records[1].ID > records[2].ID {
		t.Errorf("Ties should keep insertion order: %d before %d", records[1].ID, records[2].ID)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	hs, err := store.HighScore("dodge")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 0 {
		t.Errorf("Expected 0 for empty log, got %d", hs)
	}

	save(t, store, SessionRecord{GameID: "dodge", Player: "local", Mode: "Endless", Score: 8, Reason: "collision"})
	save(t, store, SessionRecord{GameID: "dodge", Player: "local", Mode: "Time Trial", Score: 10, Reason: "time_up"})
	save(t, store, SessionRecord{GameID: "dodge", Player: "local", Mode: "Endless", Score: 2, Reason: "collision"})

	hs, err = store.HighScore("dodge")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 10 {
		t.Errorf("HighScore() = %d, want 10", hs)
	}
}

func TestStoreConcurrentWriters(t *testing.T) {
	store := openTestStore(t)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			if _, err := store.SaveSession(SessionRecord{GameID: "dodge", Player: "ssh", Mode: "Endless", Score: score, Reason: "collision"}); err != nil {
				t.Errorf("SaveSession() failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if n, _ := store.Count("dodge"); n != 8 {
		t.Errorf("Expected 8 sessions, got %d", n)
	}
}
