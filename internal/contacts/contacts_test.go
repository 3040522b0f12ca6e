package contacts

import "testing"

func seededBook() *Book {
	return NewBook([]Contact{
		{Name: "Sarah Thompson", Email: "sarah@example.com"},
		{Name: "John Doe", Email: "john@example.com"},
	})
}

func TestResolveSubstring(t *testing.T) {
	b := seededBook()

	email, ok := b.Resolve("sarah")
	if !ok {
		t.Fatal("expected match for 'sarah'")
	}
	if email != "sarah@example.com" {
		t.Errorf("expected sarah@example.com, got %q", email)
	}
}

func TestResolveCaseInsensitive(t *testing.T) {
	b := seededBook()

	email, ok := b.Resolve("JOHN")
	if !ok || email != "john@example.com" {
		t.Errorf("expected john@example.com, got %q (ok=%v)", email, ok)
	}
}

func TestResolveNoMatch(t *testing.T) {
	b := seededBook()

	if _, ok := b.Resolve("zzz"); ok {
		t.Error("expected no match for 'zzz'")
	}
}

func TestResolveFirstInsertionOrderWins(t *testing.T) {
	b := NewBook([]Contact{
		{Name: "Sarah Thompson", Email: "sarah.t@example.com"},
		{Name: "Sarah Connor", Email: "sarah.c@example.com"},
	})

	email, ok := b.Resolve("sarah")
	if !ok || email != "sarah.t@example.com" {
		t.Errorf("expected first inserted match, got %q (ok=%v)", email, ok)
	}
}

func TestAddAllowsDuplicates(t *testing.T) {
	b := seededBook()
	b.Add("John Doe", "john.other@example.com")

	if len(b.All()) != 3 {
		t.Fatalf("expected 3 contacts, got %d", len(b.All()))
	}
	// First insertion still wins on lookup.
	if email, _ := b.Resolve("john"); email != "john@example.com" {
		t.Errorf("expected original john entry, got %q", email)
	}
}
