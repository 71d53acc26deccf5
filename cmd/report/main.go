package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/preston-bernstein/cbb-daily-report/internal/config"
	"github.com/preston-bernstein/cbb-daily-report/internal/job"
	"github.com/preston-bernstein/cbb-daily-report/internal/logging"
	"github.com/preston-bernstein/cbb-daily-report/internal/timeutil"
)

const (
	appName    = "cbb-daily-report"
	appVersion = "dev"

	dateFlag      = "date"
	dryRunFlag    = "dry-run"
	teamsFlag     = "teams"
	teamsFileFlag = "teams-file"
	providerFlag  = "provider"
	timezoneFlag  = "timezone"
)

type runFunc func(ctx context.Context, cfg config.Config, logger *slog.Logger, opts job.Options) error

func runJob(ctx context.Context, cfg config.Config, logger *slog.Logger, opts job.Options) error {
	return job.New(cfg, logger).Run(ctx, opts)
}

func main() {
	if os.Getenv("SKIP_REPORT_RUN") == "1" {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(runJob).RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newApp(run runFunc) *cli.App {
	return &cli.App{
		Name:    appName,
		Usage:   "Email yesterday's college basketball results for a set of teams",
		Version: appVersion,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  dateFlag,
				Usage: "report on this date (YYYY-MM-DD) instead of yesterday",
			},
			&cli.BoolFlag{
				Name:  dryRunFlag,
				Usage: "print the report without sending mail",
			},
			&cli.StringFlag{
				Name:  teamsFlag,
				Usage: "comma-separated team keys, overrides TEAMS",
			},
			&cli.StringFlag{
				Name:  teamsFileFlag,
				Usage: "YAML file listing team keys, overrides TEAMS_FILE",
			},
			&cli.StringFlag{
				Name:  providerFlag,
				Usage: "data provider (sportsdata or fixture), overrides PROVIDER",
			},
			&cli.StringFlag{
				Name:  timezoneFlag,
				Usage: "IANA zone used to compute yesterday, overrides REPORT_TIMEZONE",
			},
		},
		Action: func(c *cli.Context) error {
			return action(c, run)
		},
	}
}

func action(c *cli.Context, run runFunc) error {
	cfg := config.Load()
	applyFlags(c, &cfg)

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		File:    cfg.Log.File,
		Service: appName,
		Version: appVersion,
	})

	if err := cfg.ResolveTeams(); err != nil {
		logging.Error(logger, "invalid configuration", err)
		return err
	}
	if err := cfg.Validate(); err != nil {
		logging.Error(logger, "invalid configuration", err)
		return err
	}

	opts := job.Options{DryRun: c.Bool(dryRunFlag)}
	if raw := c.String(dateFlag); raw != "" {
		date, err := timeutil.ParseDate(raw, timeutil.LoadLocation(cfg.Timezone))
		if err != nil {
			logging.Error(logger, "invalid --date", err)
			return err
		}
		opts.Date = date
	}

	start := time.Now()
	if err := run(c.Context, cfg, logger, opts); err != nil {
		return err
	}
	logging.Debug(logger, "exiting", slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
	return nil
}

func applyFlags(c *cli.Context, cfg *config.Config) {
	if c.IsSet(teamsFlag) {
		cfg.Teams = config.SplitList(c.String(teamsFlag))
	}
	if c.IsSet(teamsFileFlag) {
		cfg.TeamsFile = c.String(teamsFileFlag)
	}
	if c.IsSet(providerFlag) {
		cfg.Provider = c.String(providerFlag)
	}
	if c.IsSet(timezoneFlag) {
		cfg.Timezone = c.String(timezoneFlag)
	}
}
