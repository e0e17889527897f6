package models

// MoodRecord is a single daily check-in. Date is the natural key; the
// ledger holds at most one record per calendar day.
type MoodRecord struct {
	Date  string `json:"date"` // YYYY-MM-DD, local timezone
	Score int    `json:"score"`
	Note  string `json:"note"`
}
