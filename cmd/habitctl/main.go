package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/limbo/habitlog/internal/cli"
	"github.com/limbo/habitlog/internal/kvstore"
	"github.com/limbo/habitlog/internal/repository"
	"github.com/limbo/habitlog/internal/service"
	"github.com/limbo/habitlog/pkg/cleanup"
	"github.com/limbo/habitlog/pkg/config"
	"github.com/limbo/habitlog/pkg/logger"
)

var CLI struct {
	Version  kong.VersionFlag
	DB       string `help:"SQLite database path." type:"path" default:"${db}"`
	LogLevel string `help:"Log level." default:"warn" enum:"debug,info,warn,error"`

	Register cli.RegisterCmd `cmd:"" help:"Create an account and log in."`
	Login    cli.LoginCmd    `cmd:"" help:"Log in."`
	Logout   cli.LogoutCmd   `cmd:"" help:"Log out."`
	Whoami   cli.WhoamiCmd   `cmd:"" help:"Show the current account."`

	Add     cli.AddCmd     `cmd:"" help:"Add a habit."`
	List    cli.ListCmd    `cmd:"" help:"List habits." default:"1"`
	Pending cli.PendingCmd `cmd:"" help:"Habits not done yet today."`
	Today   cli.TodayCmd   `cmd:"" help:"Habits scheduled for today."`
	Done    cli.DoneCmd    `cmd:"" help:"Toggle today's completion of a habit."`
	Skip    cli.SkipCmd    `cmd:"" help:"Skip a habit today, resetting its streak."`
	Rm      cli.RmCmd      `cmd:"" help:"Remove a habit, history is kept."`

	Calendar  cli.CalendarCmd  `cmd:"" help:"Show logged days."`
	Weekly    cli.WeeklyCmd    `cmd:"" help:"Completions over the last four weeks."`
	Recommend cli.RecommendCmd `cmd:"" help:"Suggest new habits."`
}

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	kctx := kong.Parse(&CLI,
		kong.Name("habitctl"),
		kong.Description("Local habit tracker"),
		kong.UsageOnError(),
		kong.Vars{
			"version": "v0.1.0",
			"db":      cfg.GetString("SQLITE_PATH"),
		},
	)

	lg, err := logger.New(logger.Config{Level: CLI.LogLevel, File: cfg.GetString("LOG_FILE"), Prefix: "habitctl"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	slog.SetDefault(lg)

	ctx := context.Background()
	storeCfg := kvstore.ConfigFrom(cfg)
	if storeCfg.Backend == "" || storeCfg.Backend == kvstore.BackendMemory {
		storeCfg.Backend = kvstore.BackendSQLite
	}
	storeCfg.SQLitePath = CLI.DB
	store, err := kvstore.New(ctx, storeCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := []service.Option{service.WithLocation(cfg.Location())}
	appCtx := &cli.Context{
		Ctx:       ctx,
		Out:       os.Stdout,
		Users:     service.NewUserService(repository.NewUsersRepo(store), store),
		Sessions:  repository.NewSessionRepo(store),
		Habits:    service.NewHabitsService(store, opts...),
		Analytics: service.NewAnalyticsService(store, opts...),
	}

	err = kctx.Run(appCtx)
	cleanup.CleanUp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
