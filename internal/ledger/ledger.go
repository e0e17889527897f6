package ledger

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/mindlink/mindlink/internal/models"
	"github.com/mindlink/mindlink/internal/storage"
)

// ErrEmptyNote is returned when a check-in note is blank after trimming.
// The ledger is left untouched.
var ErrEmptyNote = errors.New("check-in note cannot be empty")

// DeriveScore maps a note to a mood score. This is a stand-in sentiment
// proxy (note length mod 10), not a validated sentiment model.
func DeriveScore(note string) int {
	return utf8.RuneCountInString(note) % 10
}

// HasCheckedIn reports whether a record exists for the given day.
func HasCheckedIn(records []models.MoodRecord, day string) bool {
	for _, r := range records {
		if r.Date == day {
			return true
		}
	}
	return false
}

// Submit upserts a check-in for the given day: any existing record for the
// day is replaced, and the new record is prepended. Submitting twice on the
// same day therefore never duplicates.
func Submit(records []models.MoodRecord, day, note string) ([]models.MoodRecord, error) {
	if strings.TrimSpace(note) == "" {
		return records, ErrEmptyNote
	}

	rec := models.MoodRecord{Date: day, Score: DeriveScore(note), Note: note}
	out := make([]models.MoodRecord, 0, len(records)+1)
	out = append(out, rec)
	for _, r := range records {
		if r.Date != day {
			out = append(out, r)
		}
	}
	return out, nil
}

// Ledger wraps a storage provider with the daily check-in operations.
type Ledger struct {
	store storage.Provider
}

func New(store storage.Provider) *Ledger {
	return &Ledger{store: store}
}

// Records returns all mood records, newest first.
func (l *Ledger) Records() []models.MoodRecord {
	return l.store.Moods()
}

// HasCheckedInToday reports whether a record exists for the given day.
func (l *Ledger) HasCheckedInToday(today string) bool {
	return HasCheckedIn(l.store.Moods(), today)
}

// CheckInToday records a check-in for today and persists the ledger.
func (l *Ledger) CheckInToday(today, note string) (models.MoodRecord, error) {
	records, err := Submit(l.store.Moods(), today, note)
	if err != nil {
		return models.MoodRecord{}, err
	}
	if err := l.store.SaveMoods(records); err != nil {
		return models.MoodRecord{}, err
	}
	return records[0], nil
}
