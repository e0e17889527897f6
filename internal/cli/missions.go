package cli

import (
	"fmt"

	"github.com/mindlink/mindlink/internal/missions"
)

type MissionsListCmd struct{}

func (c *MissionsListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	svc := missions.New(ctx.Store)
	fmt.Println("Missions:")
	for _, m := range svc.All() {
		fmt.Printf("  %s %s  (%s)\n", checkbox(svc.IsCompleted(m.ID)), m.Text, m.ID)
	}
	return nil
}

type MissionsCompleteCmd struct {
	ID string `arg:"" help:"ID of the mission to complete."`
}

func (c *MissionsCompleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if err := missions.New(ctx.Store).Complete(c.ID); err != nil {
		return err
	}
	fmt.Println("✓ Mission complete")
	return nil
}
