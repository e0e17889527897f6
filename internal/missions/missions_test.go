package missions

import (
	"testing"

	"github.com/mindlink/mindlink/internal/storage"
)

func TestCompleteIsIdempotent(t *testing.T) {
	s := New(storage.NewMemStore())

	if s.IsCompleted("m1") {
		t.Fatal("fresh store should have no completed missions")
	}

	for i := 0; i < 3; i++ {
		if err := s.Complete("m1"); err != nil {
			t.Fatalf("Complete() error = %v", err)
		}
	}
	done := s.Completed()
	if len(done) != 1 || done[0] != "m1" {
		t.Errorf("Completed() = %v, want [m1]", done)
	}
	if !s.IsCompleted("m1") {
		t.Error("IsCompleted(m1) = false after completing")
	}
}

func TestCompleteUnknownMission(t *testing.T) {
	s := New(storage.NewMemStore())
	if err := s.Complete("m99"); err == nil {
		t.Error("Complete() on unknown mission should error")
	}
	if len(s.Completed()) != 0 {
		t.Error("unknown mission was recorded")
	}
}

func TestAll(t *testing.T) {
	s := New(storage.NewMemStore())
	if got := len(s.All()); got != 3 {
		t.Errorf("len(All()) = %d, want 3", got)
	}
}
