package profiles

import (
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func stringRef(v string) *string { return &v }

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "data", "user-profiles.json"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	store.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return store
}

func TestGetUnknownEmailReturnsNil(t *testing.T) {
	store := newTestStore(t)

	profile, err := store.Get("ghost@store.com")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if profile != nil {
		t.Fatalf("expected nil for unknown email, got %+v", profile)
	}
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save("a@store.com", stringRef("/api/avatars/x.png"), stringRef("hello"), stringRef("a")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	profile, err := store.Get("a@store.com")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if profile == nil || *profile.Bio != "hello" {
		t.Fatalf("unexpected profile %+v", profile)
	}
	if profile.UpdatedAt != "2025-06-01T12:00:00Z" {
		t.Fatalf("unexpected updatedAt %q", profile.UpdatedAt)
	}
}

func TestSaveOverwritesExistingEntry(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save("a@store.com", nil, stringRef("first"), nil); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Save("a@store.com", nil, stringRef("second"), nil); err != nil {
		t.Fatalf("Save: %v", err)
	}

	profile, err := store.Get("a@store.com")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if *profile.Bio != "second" {
		t.Fatalf("expected overwrite, got %q", *profile.Bio)
	}
}

func TestConcurrentSaves(t *testing.T) {
	store := newTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := store.Save("a@store.com", nil, stringRef("bio"), nil); err != nil {
				t.Errorf("Save: %v", err)
			}
		}()
	}
	wg.Wait()

	if _, err := store.Get("a@store.com"); err != nil {
		t.Fatalf("Get after concurrent saves: %v", err)
	}
}
