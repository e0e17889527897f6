package streak

import (
	"time"

	"github.com/mindlink/mindlink/internal/constants"
	"github.com/mindlink/mindlink/internal/models"
)

// Badge is a threshold-gated reward shown on the rewards screen.
type Badge struct {
	Label    string
	Unlocked bool
}

// Compute returns the current consecutive-day check-in streak, scanning at
// most windowDays back from today. A day with no record breaks the chain
// except at offset zero: a missed "today" does not zero a streak built on
// prior days, so the streak survives until the day is truly skipped.
func Compute(records []models.MoodRecord, today string, windowDays int) int {
	t, err := time.Parse(constants.DateFormat, today)
	if err != nil {
		return 0
	}

	days := make(map[string]bool, len(records))
	for _, r := range records {
		days[r.Date] = true
	}

	streak := 0
	for i := 0; i < windowDays; i++ {
		candidate := t.AddDate(0, 0, -i).Format(constants.DateFormat)
		if days[candidate] {
			streak++
		} else if i > 0 {
			break
		}
	}
	return streak
}

// Badges evaluates the fixed badge set for a streak and ledger size. Pure
// and idempotent: identical inputs always yield identical output.
func Badges(streak, totalCheckIns int) []Badge {
	return []Badge{
		{Label: "3-Day Check-in Streak", Unlocked: streak >= 3},
		{Label: "5 Total Check-ins", Unlocked: totalCheckIns >= 5},
		{Label: "First Community Post", Unlocked: true},
		{Label: "7-Day Streak", Unlocked: streak >= 7},
	}
}
