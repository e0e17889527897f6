package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/mindlink/mindlink/internal/chat"
	"github.com/mindlink/mindlink/internal/constants"
)

type ChatCmd struct {
	Prompt []string `arg:"" help:"What you want to talk about."`
	Image  bool     `help:"Ask for a calming image instead of a text reply."`
	URL    string   `help:"Companion service base URL." default:"${chat_url}"`
}

func (c *ChatCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	client := chat.NewClient(c.URL+constants.ChatTextPath, c.URL+constants.ChatImagePath)
	prompt := strings.Join(c.Prompt, " ")

	if c.Image {
		url, err := client.GenerateImage(context.Background(), prompt)
		if err != nil {
			return err
		}
		fmt.Println(url)
		return nil
	}

	reply, err := client.Respond(context.Background(), prompt)
	if err != nil {
		return err
	}
	fmt.Println(reply)
	return nil
}
