package reminder

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "reminders.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAddAndList(t *testing.T) {
	s := newTestStore(t)

	id, err := s.Add("buy milk", time.Now(), "")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero id")
	}

	got, err := s.List(false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 reminder, got %d", len(got))
	}
	if got[0].Text != "buy milk" {
		t.Errorf("expected text 'buy milk', got %q", got[0].Text)
	}
	if got[0].Priority != PriorityMedium {
		t.Errorf("expected default priority medium, got %q", got[0].Priority)
	}
	if got[0].Completed {
		t.Error("new reminder must not be completed")
	}
	if got[0].CompletedAt != nil {
		t.Error("new reminder must have null completed_at")
	}
	if got[0].CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}

func TestAddRejectsEmptyText(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Add("  ", time.Now(), ""); err == nil {
		t.Fatal("expected error for empty text")
	}
}

func TestListOrderedByDueDate(t *testing.T) {
	s := newTestStore(t)

	later := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	earlier := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	s.Add("second", later, "")
	s.Add("first", earlier, "")

	got, err := s.List(false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 reminders, got %d", len(got))
	}
	if got[0].Text != "first" || got[1].Text != "second" {
		t.Errorf("expected due-date ascending order, got %q then %q", got[0].Text, got[1].Text)
	}
}

func TestCompleteSetsFlagAndTimestamp(t *testing.T) {
	s := newTestStore(t)

	id, _ := s.Add("call mom", time.Now(), PriorityHigh)

	ok, err := s.Complete(id)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !ok {
		t.Fatal("expected complete to match a row")
	}

	pending, _ := s.List(false)
	if len(pending) != 0 {
		t.Fatalf("expected completed reminder excluded, got %d rows", len(pending))
	}

	all, _ := s.List(true)
	if len(all) != 1 {
		t.Fatalf("expected 1 reminder with includeCompleted, got %d", len(all))
	}
	if !all[0].Completed {
		t.Error("expected completed flag set")
	}
	if all[0].CompletedAt == nil {
		t.Error("expected completed_at set")
	}
}

func TestCompleteIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	id, _ := s.Add("water plants", time.Now(), "")

	if ok, _ := s.Complete(id); !ok {
		t.Fatal("first complete should match")
	}
	// Re-completing an existing row is still a success per the contract.
	if ok, _ := s.Complete(id); !ok {
		t.Fatal("re-complete of existing row should still match")
	}
}

func TestCompleteUnknownID(t *testing.T) {
	s := newTestStore(t)

	ok, err := s.Complete(42)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if ok {
		t.Error("expected no match for unknown id")
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)

	id, _ := s.Add("file taxes", time.Now(), "")

	ok, err := s.Delete(id)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !ok {
		t.Fatal("expected delete to match a row")
	}

	// Gone: both complete and delete now report no match.
	if ok, _ := s.Complete(id); ok {
		t.Error("complete after delete should not match")
	}
	if ok, _ := s.Delete(id); ok {
		t.Error("second delete should not match")
	}

	got, _ := s.List(true)
	if len(got) != 0 {
		t.Errorf("expected empty store, got %d rows", len(got))
	}
}

func TestIDsAreMonotonic(t *testing.T) {
	s := newTestStore(t)

	a, _ := s.Add("a", time.Now(), "")
	b, _ := s.Add("b", time.Now(), "")
	if b <= a {
		t.Errorf("expected monotonic ids, got %d then %d", a, b)
	}

	// Deleting the newest row must not recycle its id.
	s.Delete(b)
	c, _ := s.Add("c", time.Now(), "")
	if c <= b {
		t.Errorf("expected id %d to not be reused, got %d", b, c)
	}
}
