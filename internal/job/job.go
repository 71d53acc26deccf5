package job

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/cbb-daily-report/internal/app/daily"
	"github.com/preston-bernstein/cbb-daily-report/internal/config"
	"github.com/preston-bernstein/cbb-daily-report/internal/logging"
	"github.com/preston-bernstein/cbb-daily-report/internal/mailer"
	"github.com/preston-bernstein/cbb-daily-report/internal/metrics"
	"github.com/preston-bernstein/cbb-daily-report/internal/providers"
	"github.com/preston-bernstein/cbb-daily-report/internal/timeutil"
)

const shutdownTimeout = 10 * time.Second

var metricsSetup = metrics.Setup

// Sender delivers a rendered report.
type Sender interface {
	Send(ctx context.Context, subject, body string) error
}

// Options tune a single run.
type Options struct {
	// Date overrides the report date; zero means yesterday in the configured zone.
	Date   time.Time
	DryRun bool
}

// Runner executes the daily report once: fetch, render, mail, echo.
type Runner struct {
	cfg         config.Config
	logger      *slog.Logger
	provider    providers.DataProvider
	sender      Sender
	metrics     *metrics.Recorder
	metricsStop func(context.Context) error
	out         io.Writer
	now         func() time.Time
}

// New constructs a runner with the configured provider, mailer, and telemetry.
func New(cfg config.Config, logger *slog.Logger) *Runner {
	recorder, stop := buildMetrics(cfg, logger)
	provider := newProviderFactory(logger, recorder).build(cfg)
	return newRunner(cfg, logger, provider, buildSender(cfg, logger), recorder, stop)
}

func newRunner(cfg config.Config, logger *slog.Logger, provider providers.DataProvider, sender Sender, recorder *metrics.Recorder, stop func(context.Context) error) *Runner {
	if recorder == nil {
		recorder = metrics.NewRecorder()
	}
	return &Runner{
		cfg:         cfg,
		logger:      logger,
		provider:    provider,
		sender:      sender,
		metrics:     recorder,
		metricsStop: stop,
		out:         os.Stdout,
		now:         time.Now,
	}
}

// Run builds the report and, on success, mails it (unless disabled) and writes it to stdout.
// Nothing is mailed or printed when any step before delivery fails.
func (r *Runner) Run(ctx context.Context, opts Options) (err error) {
	logger := r.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = logger.With(slog.String(logging.FieldRunID, uuid.NewString()))
	ctx = logging.WithLogger(ctx, logger)

	date := opts.Date
	if date.IsZero() {
		date = timeutil.Yesterday(r.now(), timeutil.LoadLocation(r.cfg.Timezone))
	}

	start := r.now()
	results := 0
	defer func() {
		r.metrics.RecordRun(r.now().Sub(start), results, err)
		r.shutdownMetrics(logger)
	}()

	logging.Info(logger, "report run starting",
		slog.String(logging.FieldDate, date.Format(timeutil.DateLayout)),
		slog.Any(logging.FieldTeams, r.cfg.Teams),
		slog.Bool("dry_run", opts.DryRun),
	)

	svc := daily.NewService(r.provider, r.cfg.Teams, r.cfg.Title, logger)
	out, err := svc.Build(ctx, date)
	if err != nil {
		logging.Error(logger, "report build failed", err)
		return err
	}
	results = len(out.Results)

	if r.shouldMail(opts) {
		if err = r.sender.Send(ctx, r.cfg.Title, out.Text); err != nil {
			logging.Error(logger, "report delivery failed", err)
			return fmt.Errorf("send report: %w", err)
		}
		logging.Info(logger, "report mailed", slog.Int(logging.FieldCount, len(r.cfg.Mail.To)))
	} else {
		logging.Info(logger, "mail skipped", slog.Bool("dry_run", opts.DryRun))
	}

	if _, err = io.WriteString(r.out, out.Text); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	logging.Info(logger, "report run complete",
		slog.Int(logging.FieldCount, results),
		slog.Int64(logging.FieldDurationMS, r.now().Sub(start).Milliseconds()),
	)
	return nil
}

func (r *Runner) shouldMail(opts Options) bool {
	return !opts.DryRun && r.cfg.Mail.Enabled && r.sender != nil
}

func (r *Runner) shutdownMetrics(logger *slog.Logger) {
	if r.metricsStop == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := r.metricsStop(ctx); err != nil {
		logging.Warn(logger, "metrics shutdown failed", slog.Any("error", err))
	}
}

func buildSender(cfg config.Config, logger *slog.Logger) Sender {
	if !cfg.Mail.Enabled {
		return nil
	}
	return mailer.NewSMTPSender(mailer.Config{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		From:     cfg.Mail.From,
		Password: cfg.Mail.Password,
		To:       cfg.Mail.To,
	}, logger)
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, func(context.Context) error) {
	rec, _, shutdown, err := metricsSetup(context.Background(), metrics.TelemetryConfig{
		Enabled:        cfg.Metrics.Enabled,
		ServiceName:    cfg.Metrics.ServiceName,
		OtlpEndpoint:   cfg.Metrics.OtlpEndpoint,
		OtlpInsecure:   cfg.Metrics.OtlpInsecure,
		PushgatewayURL: cfg.Metrics.PushgatewayURL,
	})
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", slog.Any("error", err))
		return metrics.NewRecorder(), nil
	}
	return rec, shutdown
}
