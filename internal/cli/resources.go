package cli

import (
	"fmt"

	"github.com/mindlink/mindlink/internal/models"
)

type ResourcesListCmd struct{}

func (c *ResourcesListCmd) Run(ctx *Context) error {
	fmt.Println("Resource Hub:")
	for _, r := range models.Resources() {
		fmt.Printf("  %s  %s\n", r.ID, r.Title)
		fmt.Printf("      %s · %s\n", r.Kind, r.Length)
	}
	return nil
}

type ResourcesReadCmd struct {
	ID string `arg:"" help:"ID of the resource to open."`
}

func (c *ResourcesReadCmd) Run(ctx *Context) error {
	r, ok := models.FindResource(c.ID)
	if !ok {
		return fmt.Errorf("resource not found: %s", c.ID)
	}

	fmt.Printf("%s (%s · %s)\n\n", r.Title, r.Kind, r.Length)
	if r.Kind == models.ResourceArticle {
		fmt.Println(r.Content)
	} else {
		fmt.Printf("Watch at: %s\n", r.URL)
	}
	return nil
}
