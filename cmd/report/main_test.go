package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/cbb-daily-report/internal/app/daily"
	"github.com/preston-bernstein/cbb-daily-report/internal/config"
	"github.com/preston-bernstein/cbb-daily-report/internal/job"
	"github.com/preston-bernstein/cbb-daily-report/internal/providers/fixture"
)

// Smoke test to ensure main honors SKIP_REPORT_RUN and does not block test runs.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_REPORT_RUN", "1")
	main()
}

type captured struct {
	called bool
	cfg    config.Config
	opts   job.Options
}

func (c *captured) run(_ context.Context, cfg config.Config, _ *slog.Logger, opts job.Options) error {
	c.called = true
	c.cfg = cfg
	c.opts = opts
	return nil
}

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PROVIDER", "fixture")
	t.Setenv("TEAMS", "duke")
	t.Setenv("TEAMS_FILE", "")
	t.Setenv("MAIL_ENABLED", "false")
	t.Setenv("REPORT_TIMEZONE", "")
	t.Setenv("LOG_FILE", "")
	t.Setenv("LOG_LEVEL", "error")
}

func TestFlagsOverrideEnv(t *testing.T) {
	setBaseEnv(t)
	var got captured

	args := []string{appName, "--teams", "unc, ku", "--provider", "fixture", "--timezone", "UTC", "--date", "2024-02-10", "--dry-run"}
	if err := newApp(got.run).Run(args); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.called {
		t.Fatalf("expected job to run")
	}
	if len(got.cfg.Teams) != 2 || got.cfg.Teams[0] != "UNC" || got.cfg.Teams[1] != "KU" {
		t.Fatalf("expected flag teams, got %v", got.cfg.Teams)
	}
	if got.cfg.Timezone != "UTC" {
		t.Fatalf("expected flag timezone, got %q", got.cfg.Timezone)
	}
	if !got.opts.DryRun {
		t.Fatalf("expected dry run")
	}
	want := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	if !got.opts.Date.Equal(want) {
		t.Fatalf("expected date %v, got %v", want, got.opts.Date)
	}
}

func TestEnvUsedWithoutFlags(t *testing.T) {
	setBaseEnv(t)
	var got captured

	if err := newApp(got.run).Run([]string{appName}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.cfg.Teams) != 1 || got.cfg.Teams[0] != "DUKE" {
		t.Fatalf("expected env teams, got %v", got.cfg.Teams)
	}
	if !got.opts.Date.IsZero() || got.opts.DryRun {
		t.Fatalf("expected default options, got %+v", got.opts)
	}
}

func TestTeamsFileFlagMerges(t *testing.T) {
	setBaseEnv(t)
	path := filepath.Join(t.TempDir(), "teams.yaml")
	if err := os.WriteFile(path, []byte("teams:\n  - gonz\n  - DUKE\n"), 0o600); err != nil {
		t.Fatalf("write teams file: %v", err)
	}
	var got captured

	if err := newApp(got.run).Run([]string{appName, "--teams-file", path}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.cfg.Teams) != 2 || got.cfg.Teams[1] != "GONZ" {
		t.Fatalf("expected merged teams, got %v", got.cfg.Teams)
	}
}

func TestInvalidConfigurationSkipsRun(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("TEAMS", "")
	var got captured

	err := newApp(got.run).Run([]string{appName})
	var cfgErr *config.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if got.called {
		t.Fatalf("job must not run with invalid configuration")
	}
}

func TestInvalidDateSkipsRun(t *testing.T) {
	setBaseEnv(t)
	var got captured

	if err := newApp(got.run).Run([]string{appName, "--date", "01/02/2024"}); err == nil {
		t.Fatalf("expected date parse error")
	}
	if got.called {
		t.Fatalf("job must not run with an invalid date")
	}
}

func TestRunErrorPropagates(t *testing.T) {
	setBaseEnv(t)
	boom := errors.New("boom")
	run := func(context.Context, config.Config, *slog.Logger, job.Options) error { return boom }

	if err := newApp(run).Run([]string{appName}); !errors.Is(err, boom) {
		t.Fatalf("expected run error, got %v", err)
	}
}

// captureOutput swaps os.Stdout and os.Stderr for pipes while fn runs.
func captureOutput(t *testing.T, fn func()) (stdout, stderr string) {
	t.Helper()
	outR, outW, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	errR, errW, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}

	origOut, origErr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = outW, errW
	defer func() { os.Stdout, os.Stderr = origOut, origErr }()

	var outBuf, errBuf bytes.Buffer
	done := make(chan struct{}, 2)
	go func() { _, _ = io.Copy(&outBuf, outR); done <- struct{}{} }()
	go func() { _, _ = io.Copy(&errBuf, errR); done <- struct{}{} }()

	fn()

	_ = outW.Close()
	_ = errW.Close()
	<-done
	<-done
	return outBuf.String(), errBuf.String()
}

func TestStdoutCarriesOnlyTheReport(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("REPORT_TITLE", "")

	date := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	want, err := daily.NewService(fixture.New(), []string{"DUKE"}, config.Load().Title, nil).Build(context.Background(), date)
	if err != nil {
		t.Fatalf("build expected report: %v", err)
	}

	var runErr error
	stdout, stderr := captureOutput(t, func() {
		runErr = newApp(runJob).RunContext(context.Background(), []string{appName, "--date", "2024-01-05", "--timezone", "UTC"})
	})
	if runErr != nil {
		t.Fatalf("unexpected error: %v", runErr)
	}
	if stdout != want.Text {
		t.Fatalf("stdout must equal the rendered report\nwant: %q\ngot:  %q", want.Text, stdout)
	}
	if !strings.Contains(stderr, "report run complete") {
		t.Fatalf("expected run logs on stderr, got %q", stderr)
	}
}

func TestFailedRunPrintsNothingToStdout(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("PROVIDER", "sportsdata")
	t.Setenv("SPORTSDATA_API_KEY", "test-key")
	t.Setenv("SPORTSDATA_BASE_URL", "http://127.0.0.1:1")
	t.Setenv("SPORTSDATA_TIMEOUT", "1s")
	t.Setenv("METRICS_ENABLED", "false")

	var runErr error
	stdout, stderr := captureOutput(t, func() {
		runErr = newApp(runJob).RunContext(context.Background(), []string{appName, "--date", "2024-01-05"})
	})
	if runErr == nil {
		t.Fatalf("expected transport failure")
	}
	if stdout != "" {
		t.Fatalf("failed run must not write to stdout, got %q", stdout)
	}
	if !strings.Contains(stderr, "report build failed") {
		t.Fatalf("expected failure logged on stderr, got %q", stderr)
	}
}

func TestProviderFlagIsCaseInsensitive(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("SPORTSDATA_API_KEY", "test-key")
	var got captured

	if err := newApp(got.run).Run([]string{appName, "--provider", "SportsData"}); err != nil {
		t.Fatalf("expected mixed-case provider to validate, got %v", err)
	}
	if !got.called {
		t.Fatalf("expected job to run")
	}
}
