package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/yuchenli/fupan/internal/cli"
	"github.com/yuchenli/fupan/internal/kv"
	"github.com/yuchenli/fupan/internal/questions"
	"github.com/yuchenli/fupan/internal/repository"
)

var CLI struct {
	Version kong.VersionFlag
	Data    string `help:"Data file path." type:"path" default:"~/.config/fupan/fupan.db"`

	Init cli.InitCmd `cmd:"" help:"Initialize fupan storage."`
	Tui  cli.TuiCmd  `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Plan struct {
		Show cli.PlanShowCmd `cmd:"" help:"Show the annual plan." default:"1"`
		Kpt  cli.PlanKptCmd  `cmd:"" help:"View or update the KPT reflection."`
		Goal struct {
			Add    cli.PlanGoalAddCmd    `cmd:"" help:"Add a quarterly goal."`
			Delete cli.PlanGoalDeleteCmd `cmd:"" help:"Delete a goal."`
		} `cmd:"" help:"Manage quarterly goals."`
		Task struct {
			Add  cli.PlanTaskAddCmd  `cmd:"" help:"Add a monthly task."`
			Done cli.PlanTaskDoneCmd `cmd:"" help:"Toggle a task's completion."`
		} `cmd:"" help:"Manage monthly tasks."`
		Export cli.PlanExportCmd `cmd:"" help:"Export the annual plan as JSON."`
		Reset  cli.PlanResetCmd  `cmd:"" help:"Delete the annual plan."`
	} `cmd:"" help:"Manage the annual plan."`
	Daily struct {
		Save cli.DailySaveCmd `cmd:"" help:"Save a daily review." default:"1"`
		Show cli.DailyShowCmd `cmd:"" help:"Show one day's review."`
		List cli.DailyListCmd `cmd:"" help:"List daily reviews."`
	} `cmd:"" help:"Manage daily reviews."`
	Deep struct {
		New    cli.DeepNewCmd    `cmd:"" help:"Start a new deep review."`
		List   cli.DeepListCmd   `cmd:"" help:"List deep reviews." default:"1"`
		Show   cli.DeepShowCmd   `cmd:"" help:"Show a deep review."`
		Answer cli.DeepAnswerCmd `cmd:"" help:"Answer deep review questions."`
		Export cli.DeepExportCmd `cmd:"" help:"Export a deep review as JSON."`
	} `cmd:"" help:"Manage deep reviews."`
	Config struct {
		List        cli.ConfigListCmd        `cmd:"" help:"List the question configuration." default:"1"`
		AddDaily    cli.ConfigAddDailyCmd    `cmd:"" help:"Add a daily question."`
		EditDaily   cli.ConfigEditDailyCmd   `cmd:"" help:"Edit a daily question."`
		DeleteDaily cli.ConfigDeleteDailyCmd `cmd:"" help:"Delete a daily question."`
		AddCategory cli.ConfigAddCategoryCmd `cmd:"" help:"Add a deep review category."`
		AddQuestion cli.ConfigAddQuestionCmd `cmd:"" help:"Add a deep review question."`
		Reset       cli.ConfigResetCmd       `cmd:"" help:"Restore the default questions."`
	} `cmd:"" help:"Manage review questions."`
	Stats  cli.StatsCmd  `cmd:"" help:"Show the stats dashboard."`
	Export cli.ExportCmd `cmd:"" help:"Export all stored data as JSON."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup of the data file."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups." default:"1"`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore a backup."`
	} `cmd:"" help:"Manage data backups."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks."`
	Debug  cli.DebugCmd  `cmd:"" help:"Debugging helpers."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("fupan"),
		kong.Description("Personal planning and review companion"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	// Storage flavor follows the data file extension.
	var store kv.Store
	if strings.HasSuffix(CLI.Data, ".json") {
		store = kv.NewFileStore(CLI.Data)
	} else {
		store = kv.NewSQLiteStore(CLI.Data)
	}

	appCtx := &cli.Context{
		Store:     store,
		Records:   repository.New(store),
		Questions: questions.New(store),
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
