package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/mindlink/mindlink/internal/handle"
)

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	profile := ctx.Store.Profile()
	fmt.Println("Settings:")
	fmt.Printf("  Anonymous handle: %s\n", profile.AnonymousHandle)
	fmt.Printf("  Notifications:    %s\n", onOff(profile.Notifications))
	return nil
}

type SettingsSetCmd struct {
	Handle        string `help:"New anonymous handle (@adjective-animal)."`
	Notifications string `help:"Turn daily reminders on or off." enum:"on,off," default:""`
	NewHandle     bool   `help:"Generate a fresh random handle."`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	profile := ctx.Store.Profile()

	if c.Handle == "" && c.Notifications == "" && !c.NewHandle {
		// No flags given, fall back to an interactive form.
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Anonymous handle").
					Value(&profile.AnonymousHandle).
					Validate(func(s string) error {
						if !handle.Valid(s) {
							return fmt.Errorf("handles look like @quiet-otter")
						}
						return nil
					}),
				huh.NewConfirm().
					Title("Daily reminders").
					Affirmative("On").
					Negative("Off").
					Value(&profile.Notifications),
			),
		).WithTheme(huh.ThemeDracula())
		if err := form.Run(); err != nil {
			return err
		}
	} else {
		if c.NewHandle {
			profile.AnonymousHandle = handle.New()
		}
		if c.Handle != "" {
			if !handle.Valid(c.Handle) {
				return fmt.Errorf("invalid handle %q: handles look like @quiet-otter", c.Handle)
			}
			profile.AnonymousHandle = c.Handle
		}
		if c.Notifications != "" {
			profile.Notifications = c.Notifications == "on"
		}
	}

	if err := ctx.Store.SaveProfile(profile); err != nil {
		return err
	}
	fmt.Printf("✓ Settings saved (%s, reminders %s)\n", profile.AnonymousHandle, onOff(profile.Notifications))
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
