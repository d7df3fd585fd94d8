package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/pellegrino/hamster/internal/cli"
	"github.com/pellegrino/hamster/internal/constants"
	"github.com/pellegrino/hamster/internal/errors"
	"github.com/pellegrino/hamster/internal/logger"
	"github.com/pellegrino/hamster/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path. A .json extension selects the JSON backend, anything else SQLite." type:"path" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init   cli.InitCmd   `cmd:"" help:"Initialize hamster storage."`
	Doctor cli.DoctorCmd `cmd:"" help:"Check stored data for conflicts."`
	Routine struct {
		Add    cli.RoutineAddCmd    `cmd:"" help:"Add a new routine."`
		List   cli.RoutineListCmd   `cmd:"" help:"List routines." default:"1"`
		Edit   cli.RoutineEditCmd   `cmd:"" help:"Edit an existing routine."`
		Delete cli.RoutineDeleteCmd `cmd:"" help:"Delete a routine and its history."`
		Pause  cli.RoutinePauseCmd  `cmd:"" help:"Pause a routine."`
		Resume cli.RoutineResumeCmd `cmd:"" help:"Resume a paused routine."`
	} `cmd:"" help:"Manage routines."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage storage backups."`
	Done    cli.DoneCmd    `cmd:"" help:"Toggle a routine's completion for a day."`
	Today   cli.TodayCmd   `cmd:"" help:"Show today's due routines and progress."`
	Heatmap cli.HeatmapCmd `cmd:"" help:"Show a completion heatmap."`
	Next    cli.NextCmd    `cmd:"" help:"Show when each routine is next due."`
	Rewards cli.RewardsCmd `cmd:"" help:"Show XP, level, and achievements."`
	Streak  cli.StreakCmd  `cmd:"" help:"Show the current streak."`
	Notify  cli.NotifyCmd  `cmd:"" hidden:"" help:"Send due-routine notifications (used internally)."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive day view." default:"1"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal habit and routine tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// The storage backend follows the config file extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{Store: store}

	// Load the store before running the command (init handles its own setup)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
		defer store.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
