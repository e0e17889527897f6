package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mindlink/mindlink/internal/storage"
)

type ResetCmd struct {
	Force bool `help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if !c.Force {
		fmt.Println("⚠️  WARNING: This clears all local data: check-ins, posts, missions, and settings.")
		fmt.Print("Continue? [y/N]: ")

		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	profile, err := storage.ResetToDefaults(ctx.Store)
	if err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}

	fmt.Printf("✓ All data cleared. Your new handle is %s\n", profile.AnonymousHandle)
	return nil
}
