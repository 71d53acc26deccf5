package providers

import (
	"context"
	"log/slog"
	"time"

	domaingames "github.com/preston-bernstein/cbb-daily-report/internal/domain/games"
	"github.com/preston-bernstein/cbb-daily-report/internal/domain/teams"
	"github.com/preston-bernstein/cbb-daily-report/internal/logging"
	"github.com/preston-bernstein/cbb-daily-report/internal/metrics"
)

const (
	opGames = "games"
	opTeams = "teams"
)

// instrumentedProvider records metrics and logs for every upstream call.
// Errors are passed through untouched: a failed fetch aborts the run.
type instrumentedProvider struct {
	inner        DataProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	now          func() time.Time
}

// NewInstrumentedProvider wraps inner with per-call metrics and logging.
func NewInstrumentedProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string) DataProvider {
	if providerName == "" {
		providerName = "unknown"
	}
	return &instrumentedProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: providerName,
		now:          time.Now,
	}
}

func (p *instrumentedProvider) FetchGames(ctx context.Context, date time.Time) ([]domaingames.Game, error) {
	start := p.now()
	games, err := p.inner.FetchGames(ctx, date)
	p.observe(ctx, opGames, start, len(games), err, slog.String(logging.FieldDate, date.Format("2006-01-02")))
	return games, err
}

func (p *instrumentedProvider) FetchTeams(ctx context.Context) ([]teams.SeasonInfo, error) {
	start := p.now()
	infos, err := p.inner.FetchTeams(ctx)
	p.observe(ctx, opTeams, start, len(infos), err)
	return infos, err
}

func (p *instrumentedProvider) observe(ctx context.Context, op string, start time.Time, count int, err error, extra ...any) {
	elapsed := p.now().Sub(start)
	p.metrics.RecordProviderAttempt(p.providerName, op, elapsed, err)

	logger := logging.FromContext(ctx, p.logger)
	args := append([]any{
		slog.String(logging.FieldProvider, p.providerName),
		slog.String(logging.FieldOp, op),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	}, extra...)

	if err != nil {
		if tErr, ok := AsTransportError(err); ok {
			if tErr.StatusCode != 0 {
				args = append(args, slog.Int(logging.FieldStatusCode, tErr.StatusCode))
			}
			if tErr.RateLimited() {
				p.metrics.RecordRateLimit(p.providerName, tErr.RetryAfter)
				args = append(args, slog.Duration("retry_after", tErr.RetryAfter))
			}
		}
		logging.Error(logger, "provider fetch failed", err, args...)
		return
	}
	logging.Info(logger, "provider fetch complete", append(args, slog.Int(logging.FieldCount, count))...)
}
