package ledger

import (
	"errors"
	"testing"

	"github.com/mindlink/mindlink/internal/models"
	"github.com/mindlink/mindlink/internal/storage"
)

func TestDeriveScore(t *testing.T) {
	tests := []struct {
		name string
		note string
		want int
	}{
		{name: "empty", note: "", want: 0},
		{name: "short note", note: "okay", want: 4},
		{name: "ten characters wraps", note: "abcdefghij", want: 0},
		{name: "eleven characters", note: "abcdefghijk", want: 1},
		{name: "multibyte runes count once", note: "café", want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveScore(tt.note); got != tt.want {
				t.Errorf("DeriveScore(%q) = %d, want %d", tt.note, got, tt.want)
			}
		})
	}
}

func TestSubmitRejectsBlankNote(t *testing.T) {
	existing := []models.MoodRecord{{Date: "2026-08-29", Score: 1, Note: "x"}}

	for _, note := range []string{"", "   ", "\t\n"} {
		got, err := Submit(existing, "2026-08-30", note)
		if !errors.Is(err, ErrEmptyNote) {
			t.Errorf("Submit(%q) error = %v, want ErrEmptyNote", note, err)
		}
		if len(got) != 1 {
			t.Errorf("Submit(%q) modified the ledger: %v", note, got)
		}
	}
}

func TestSubmitUpsertsOnePerDay(t *testing.T) {
	var records []models.MoodRecord
	var err error

	// Submitting repeatedly on the same day replaces, never duplicates.
	for _, note := range []string{"first", "second", "third take"} {
		records, err = Submit(records, "2026-08-30", note)
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
	}

	count := 0
	for _, r := range records {
		if r.Date == "2026-08-30" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("ledger has %d records for the day, want 1", count)
	}
	if records[0].Note != "third take" {
		t.Errorf("latest submission did not win: %q", records[0].Note)
	}
	if records[0].Score != DeriveScore("third take") {
		t.Errorf("Score = %d, want %d", records[0].Score, DeriveScore("third take"))
	}
}

func TestSubmitPrependsAndKeepsOtherDays(t *testing.T) {
	records := []models.MoodRecord{
		{Date: "2026-08-29", Score: 3, Note: "yesterday"},
		{Date: "2026-08-28", Score: 5, Note: "before"},
	}

	records, err := Submit(records, "2026-08-30", "today")
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("len = %d, want 3", len(records))
	}
	if records[0].Date != "2026-08-30" {
		t.Errorf("new record not at the front: %v", records[0])
	}
	if records[1].Date != "2026-08-29" || records[2].Date != "2026-08-28" {
		t.Errorf("prior days disturbed: %v", records)
	}
}

func TestLedgerCheckInToday(t *testing.T) {
	store := storage.NewMemStore()
	l := New(store)

	if l.HasCheckedInToday("2026-08-30") {
		t.Fatal("HasCheckedInToday() = true on empty ledger")
	}

	rec, err := l.CheckInToday("2026-08-30", "feeling alright")
	if err != nil {
		t.Fatalf("CheckInToday() error = %v", err)
	}
	if rec.Date != "2026-08-30" {
		t.Errorf("record date = %q", rec.Date)
	}
	if !l.HasCheckedInToday("2026-08-30") {
		t.Error("HasCheckedInToday() = false after check-in")
	}

	// Persisted through the store, not just held in memory.
	if got := store.Moods(); len(got) != 1 || got[0].Note != "feeling alright" {
		t.Errorf("store.Moods() = %v", got)
	}

	if _, err := l.CheckInToday("2026-08-30", "  "); !errors.Is(err, ErrEmptyNote) {
		t.Errorf("blank note error = %v, want ErrEmptyNote", err)
	}
}
