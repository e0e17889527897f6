package storage

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/mindlink/mindlink/internal/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s := NewSQLiteStore(filepath.Join(t.TempDir(), "mindlink.db"))
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStoreLoadUninitialized(t *testing.T) {
	s := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := s.Load(); err == nil {
		t.Fatal("Load() on uninitialized store should error")
	}
}

func TestSQLiteStoreInitSeedsOnce(t *testing.T) {
	s := newTestSQLiteStore(t)

	first := s.Profile()
	if first.AnonymousHandle == "" {
		t.Fatal("fresh profile should have a generated handle")
	}

	// Re-running init must not regenerate the handle or reset data.
	if err := s.SaveMoods([]models.MoodRecord{{Date: "2026-08-30", Score: 3, Note: "ok"}}); err != nil {
		t.Fatalf("SaveMoods() error = %v", err)
	}
	if err := s.Init(); err != nil {
		t.Fatalf("second Init() error = %v", err)
	}
	if got := s.Profile(); got.AnonymousHandle != first.AnonymousHandle {
		t.Errorf("Init() regenerated handle: %q -> %q", first.AnonymousHandle, got.AnonymousHandle)
	}
	if got := s.Moods(); len(got) != 1 {
		t.Errorf("Moods() after re-init = %v, want 1 record", got)
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	s := newTestSQLiteStore(t)

	posts := []models.Post{
		{ID: "a", Handle: "@calm-otter", Text: "hello", Up: 3},
	}
	if err := s.SavePosts(posts); err != nil {
		t.Fatalf("SavePosts() error = %v", err)
	}
	if err := s.SaveMissions([]string{"m1", "m2"}); err != nil {
		t.Fatalf("SaveMissions() error = %v", err)
	}
	s.Close()

	reopened := NewSQLiteStore(s.GetDataPath())
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	defer reopened.Close()

	if got := reopened.Posts(); len(got) != 1 || got[0].Handle != "@calm-otter" {
		t.Errorf("Posts() after reload = %v, want %v", got, posts)
	}
	if got := reopened.Missions(); len(got) != 2 || got[1] != "m2" {
		t.Errorf("Missions() after reload = %v, want [m1 m2]", got)
	}
}

func TestSQLiteStoreCorruptRecordFallsBack(t *testing.T) {
	s := newTestSQLiteStore(t)

	if err := s.SaveMissions([]string{"m1"}); err != nil {
		t.Fatalf("SaveMissions() error = %v", err)
	}

	// Scribble over the profile row through a separate connection.
	db, err := sql.Open("sqlite", s.GetDataPath())
	if err != nil {
		t.Fatalf("opening db: %v", err)
	}
	if _, err := db.Exec(`UPDATE kv SET value = '{nope' WHERE key = 'profile'`); err != nil {
		t.Fatalf("corrupting profile: %v", err)
	}
	db.Close()

	if got := s.Profile(); got != DefaultProfile() {
		t.Errorf("Profile() after corruption = %v, want default", got)
	}
	if got := s.Missions(); len(got) != 1 || got[0] != "m1" {
		t.Errorf("Missions() = %v, want [m1]", got)
	}
}
