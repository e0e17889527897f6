package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/mindlink/mindlink/internal/cli"
	"github.com/mindlink/mindlink/internal/constants"
	apperrors "github.com/mindlink/mindlink/internal/errors"
	"github.com/mindlink/mindlink/internal/logger"
	"github.com/mindlink/mindlink/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Data store path (.db for SQLite, a directory for JSON)." type:"path" default:"~/.config/mindlink/mindlink.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize mindlink storage."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Checkin  cli.CheckinCmd  `cmd:"" help:"Record today's mood check-in."`
	Status   cli.StatusCmd   `cmd:"" help:"Show today's check-in, streak, and badges."`
	Log      cli.LogCmd      `cmd:"" help:"Show mood history."`
	Assess   cli.AssessCmd   `cmd:"" help:"Run a GAD-7 or PHQ-9 screening."`
	Resources struct {
		List cli.ResourcesListCmd `cmd:"" help:"List the resource hub."`
		Read cli.ResourcesReadCmd `cmd:"" help:"Read or locate a resource."`
	} `cmd:"" help:"Self-help resource hub."`
	Forum    struct {
		List   cli.ForumListCmd   `cmd:"" help:"Show the community wall."`
		Post   cli.ForumPostCmd   `cmd:"" help:"Share an anonymous post."`
		Upvote cli.ForumUpvoteCmd `cmd:"" help:"Upvote a post."`
	} `cmd:"" help:"Anonymous peer forum."`
	Missions struct {
		List     cli.MissionsListCmd     `cmd:"" help:"List missions."`
		Complete cli.MissionsCompleteCmd `cmd:"" help:"Mark a mission done."`
	} `cmd:"" help:"Real-world wellness missions."`
	Settings struct {
		Show cli.SettingsShowCmd `cmd:"" help:"Show current settings."`
		Set  cli.SettingsSetCmd  `cmd:"" help:"Change settings."`
	} `cmd:"" help:"Profile settings."`
	Chat   cli.ChatCmd `cmd:"" help:"Talk to the companion."`
	Backup struct {
		Create cli.BackupCreateCmd `cmd:"" help:"Create a backup now."`
		List   cli.BackupListCmd   `cmd:"" help:"List available backups."`
	} `cmd:"" help:"Manage data backups."`
	Reset cli.ResetCmd `cmd:"" help:"Clear all local data."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Local-first student wellness companion"),
		kong.UsageOnError(),
		kong.Vars{
			"version":  constants.Version,
			"chat_url": constants.DefaultChatBaseURL,
		},
	)

	logDir := CLI.Config
	if strings.HasSuffix(CLI.Config, constants.BackupFileSuffix) {
		logDir = filepath.Dir(CLI.Config)
	}
	if err := logger.Init(logger.Config{Debug: CLI.Debug, DataDir: logDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, constants.BackupFileSuffix) {
		store = storage.NewSQLiteStore(CLI.Config)
	} else {
		store = storage.NewJSONStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store: store,
		Debug: CLI.Debug,
	}

	apperrors.Fatal(ctx.Run(appCtx))
}
