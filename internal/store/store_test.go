package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/osint-atlas/atlas/internal/model"
	"github.com/osint-atlas/atlas/internal/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "atlas.db"), nil)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_GetSetRemove(t *testing.T) {
	s := openStore(t)

	if v := s.Get("missing"); v != nil {
		t.Errorf("expected nil for absent key, got %q", v)
	}

	if !s.Set("k", []byte("v")) {
		t.Fatal("Set failed")
	}
	if v := s.Get("k"); string(v) != "v" {
		t.Errorf("expected %q, got %q", "v", v)
	}

	if !s.Remove("k") {
		t.Fatal("Remove failed")
	}
	if v := s.Get("k"); v != nil {
		t.Errorf("expected nil after remove, got %q", v)
	}
}

func TestStore_ReviewsRoundtrip(t *testing.T) {
	s := openStore(t)

	review := model.Review{
		ID:        "r1",
		ToolID:    7,
		UserID:    "u1",
		UserEmail: "analyst@example.com",
		Rating:    4,
		Comment:   "Reliable results on every engagement so far.",
		Date:      time.Now().UTC().Format(time.RFC3339),
		Helpful:   2,
	}

	if !s.SaveReviews([]model.Review{review}) {
		t.Fatal("SaveReviews failed")
	}

	loaded := s.LoadValidReviews()
	if len(loaded) != 1 {
		t.Fatalf("expected 1 review, got %d", len(loaded))
	}
	if loaded[0] != review {
		t.Errorf("roundtrip mismatch:\nsaved:  %+v\nloaded: %+v", review, loaded[0])
	}
}

func TestStore_LoadValidReviews_DropsCorrupted(t *testing.T) {
	s := openStore(t)

	// One valid record, one with an out-of-range rating, one with a short
	// comment. Only the first survives hydration.
	payload := `[
		{"id":"r1","toolId":1,"userId":"u1","userEmail":"a@example.com","rating":4,"comment":"This comment is long enough to pass.","date":"2026-08-01T00:00:00Z","helpful":0},
		{"id":"r2","toolId":1,"userId":"u2","userEmail":"b@example.com","rating":11,"comment":"This comment is long enough to pass.","date":"2026-08-01T00:00:00Z","helpful":0},
		{"id":"r3","toolId":1,"userId":"u3","userEmail":"c@example.com","rating":4,"comment":"short","date":"2026-08-01T00:00:00Z","helpful":0}
	]`
	if !s.Set(store.KeyReviews, []byte(payload)) {
		t.Fatal("Set failed")
	}

	loaded := s.LoadValidReviews()
	if len(loaded) != 1 {
		t.Fatalf("expected 1 valid review, got %d", len(loaded))
	}
	if loaded[0].ID != "r1" {
		t.Errorf("expected r1, got %q", loaded[0].ID)
	}
}

func TestStore_LoadValidReviews_Garbage(t *testing.T) {
	s := openStore(t)

	s.Set(store.KeyReviews, []byte("not json at all"))
	if got := s.LoadValidReviews(); len(got) != 0 {
		t.Errorf("expected empty list for garbage payload, got %d", len(got))
	}

	// Absent key is also fine.
	s.Remove(store.KeyReviews)
	if got := s.LoadValidReviews(); got == nil || len(got) != 0 {
		t.Errorf("expected empty list for absent key, got %v", got)
	}
}

func TestStore_ScheduleSaveReviews(t *testing.T) {
	s := openStore(t)

	review := model.Review{
		ID: "r1", ToolID: 1, UserID: "u1", UserEmail: "a@example.com",
		Rating: 5, Comment: "This comment is long enough to pass.",
		Date: "2026-08-01T00:00:00Z",
	}
	s.ScheduleSaveReviews([]model.Review{review})

	// The write lands after the debounce window.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(s.LoadValidReviews()) == 1 {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("debounced save never landed")
}

func TestStore_IDsRoundtrip(t *testing.T) {
	s := openStore(t)

	if got := s.LoadIDs(store.KeyFavorites); got == nil || len(got) != 0 {
		t.Errorf("expected empty list for absent key, got %v", got)
	}

	want := []int{3, 1, 4}
	if !s.SaveIDs(store.KeyFavorites, want) {
		t.Fatal("SaveIDs failed")
	}
	got := s.LoadIDs(store.KeyFavorites)
	if len(got) != 3 || got[0] != 3 || got[1] != 1 || got[2] != 4 {
		t.Errorf("expected %v, got %v", want, got)
	}

	// Corrupted payload falls back to empty.
	s.Set(store.KeyRecent, []byte(`{"oops":true}`))
	if got := s.LoadIDs(store.KeyRecent); len(got) != 0 {
		t.Errorf("expected empty list for corrupted payload, got %v", got)
	}
}

func TestStore_UserRoundtrip(t *testing.T) {
	s := openStore(t)

	if u := s.LoadUser(); u != nil {
		t.Errorf("expected nil user, got %+v", u)
	}

	user := model.User{ID: "u1", Email: "analyst@example.com", Name: "analyst"}
	if !s.SaveUser(user) {
		t.Fatal("SaveUser failed")
	}

	loaded := s.LoadUser()
	if loaded == nil {
		t.Fatal("expected a user")
	}
	if *loaded != user {
		t.Errorf("expected %+v, got %+v", user, *loaded)
	}

	if !s.RemoveUser() {
		t.Fatal("RemoveUser failed")
	}
	if u := s.LoadUser(); u != nil {
		t.Errorf("expected nil after RemoveUser, got %+v", u)
	}
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atlas.db")

	s, err := store.Open(path, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	s.SaveIDs(store.KeyFavorites, []int{7})
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	s2, err := store.Open(path, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	got := s2.LoadIDs(store.KeyFavorites)
	if len(got) != 1 || got[0] != 7 {
		t.Errorf("expected [7] after reopen, got %v", got)
	}
}
