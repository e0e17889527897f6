package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/mindlink/mindlink/internal/constants"
	"github.com/mindlink/mindlink/internal/ledger"
	"github.com/mindlink/mindlink/internal/streak"
	"github.com/mindlink/mindlink/internal/utils"
)

type CheckinCmd struct {
	Note []string `arg:"" optional:"" help:"How today went, in your own words."`
}

func (c *CheckinCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	note := strings.Join(c.Note, " ")
	if strings.TrimSpace(note) == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewText().
					Title("Daily check-in").
					Description("How are you feeling today?").
					Value(&note),
			),
		).WithTheme(huh.ThemeDracula())
		if err := form.Run(); err != nil {
			return err
		}
	}

	led := ledger.New(ctx.Store)
	today := utils.Today()
	alreadyIn := led.HasCheckedInToday(today)

	rec, err := led.CheckInToday(today, note)
	if errors.Is(err, ledger.ErrEmptyNote) {
		return fmt.Errorf("nothing recorded: the check-in note cannot be empty")
	}
	if err != nil {
		return err
	}

	if alreadyIn {
		fmt.Printf("✓ Updated today's check-in (%s)\n", rec.Date)
	} else {
		fmt.Printf("✓ Checked in for %s\n", rec.Date)
	}
	fmt.Printf("  Mood %d/9  %s\n", rec.Score, moodBar(rec.Score))

	cur := streak.Compute(led.Records(), today, constants.StreakWindowDays)
	fmt.Printf("  Streak: %s\n", plural(cur, "day"))
	return nil
}
