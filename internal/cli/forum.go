package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mindlink/mindlink/internal/forum"
)

type ForumListCmd struct{}

func (c *ForumListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	posts := forum.New(ctx.Store).Posts()
	if len(posts) == 0 {
		fmt.Println("No posts yet.")
		return nil
	}

	fmt.Println("Community wall:")
	for _, p := range posts {
		fmt.Printf("  %s  %s\n", p.Handle, p.Text)
		fmt.Printf("      ▲ %d  (id %s)\n", p.Up, p.ID)
	}
	return nil
}

type ForumPostCmd struct {
	Text []string `arg:"" help:"What you want to share."`
}

func (c *ForumPostCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	post, err := forum.New(ctx.Store).Post(strings.Join(c.Text, " "))
	if errors.Is(err, forum.ErrEmptyPost) {
		return fmt.Errorf("nothing posted: the post text cannot be empty")
	}
	if err != nil {
		return err
	}

	fmt.Printf("✓ Posted as %s\n", post.Handle)
	return nil
}

type ForumUpvoteCmd struct {
	ID string `arg:"" help:"ID of the post to upvote."`
}

func (c *ForumUpvoteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if err := forum.New(ctx.Store).Upvote(c.ID); err != nil {
		return err
	}
	fmt.Println("✓ Upvoted")
	return nil
}
