package cli

import (
	"fmt"

	"github.com/mindlink/mindlink/internal/ledger"
	"github.com/mindlink/mindlink/internal/models"
	"github.com/mindlink/mindlink/internal/utils"
)

type LogCmd struct {
	Days int `help:"How many days back to show." default:"14"`
}

func (c *LogCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	records := ledger.New(ctx.Store).Records()
	byDate := make(map[string]models.MoodRecord, len(records))
	for _, r := range records {
		byDate[r.Date] = r
	}

	today, err := utils.ParseDay(utils.Today())
	if err != nil {
		return err
	}

	fmt.Printf("Mood history (last %d days):\n", c.Days)
	for i := 0; i < c.Days; i++ {
		day := today.AddDate(0, 0, -i).Format("2006-01-02")
		if r, ok := byDate[day]; ok {
			fmt.Printf("  %s  %s  %d/9  %s\n", day, moodBar(r.Score), r.Score, r.Note)
		} else {
			fmt.Printf("  %s  %s\n", day, "·········")
		}
	}
	return nil
}
