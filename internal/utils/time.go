package utils

import (
	"time"

	"github.com/mindlink/mindlink/internal/constants"
)

// Today returns today's date string (YYYY-MM-DD) in the local timezone.
// Calendar days, not UTC days, decide what "today" means for check-ins.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// ParseDay parses a date string in the standard format (YYYY-MM-DD).
func ParseDay(day string) (time.Time, error) {
	return time.Parse(constants.DateFormat, day)
}

// AddDays shifts a date string by n calendar days and returns the result
// in the standard format.
func AddDays(day string, n int) (string, error) {
	t, err := ParseDay(day)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(constants.DateFormat), nil
}

// ValidateDay checks if the string matches the standard date format.
func ValidateDay(day string) bool {
	_, err := ParseDay(day)
	return err == nil
}
