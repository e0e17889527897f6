package cli

import (
	"fmt"

	"github.com/mindlink/mindlink/internal/constants"
	"github.com/mindlink/mindlink/internal/ledger"
	"github.com/mindlink/mindlink/internal/streak"
	"github.com/mindlink/mindlink/internal/utils"
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	led := ledger.New(ctx.Store)
	today := utils.Today()
	records := led.Records()

	profile := ctx.Store.Profile()
	fmt.Printf("%s · %s\n\n", profile.AnonymousHandle, today)

	if led.HasCheckedInToday(today) {
		for _, r := range records {
			if r.Date == today {
				fmt.Printf("Today: checked in, mood %d/9  %s\n", r.Score, moodBar(r.Score))
				break
			}
		}
	} else {
		fmt.Println("Today: not checked in yet (run 'mindlink checkin')")
	}

	cur := streak.Compute(records, today, constants.StreakWindowDays)
	fmt.Printf("Streak: %s · %s total\n\n", plural(cur, "day"), plural(len(records), "check-in"))

	fmt.Println("Badges:")
	for _, b := range streak.Badges(cur, len(records)) {
		fmt.Printf("  %s %s\n", checkbox(b.Unlocked), b.Label)
	}
	return nil
}
