package providers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	domaingames "github.com/preston-bernstein/cbb-daily-report/internal/domain/games"
	"github.com/preston-bernstein/cbb-daily-report/internal/domain/teams"
	"github.com/preston-bernstein/cbb-daily-report/internal/logging"
)

// rateLimitedProvider wraps a DataProvider and enforces a minimum interval between calls.
type rateLimitedProvider struct {
	next     DataProvider
	interval time.Duration
	limiter  *rate.Limiter
	logger   *slog.Logger
}

// NewRateLimitedProvider returns a DataProvider that spaces upstream calls by at least interval.
// The first call proceeds immediately. A non-positive interval disables limiting.
func NewRateLimitedProvider(next DataProvider, interval time.Duration, logger *slog.Logger) DataProvider {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		limiter:  rate.NewLimiter(limit, 1),
		logger:   logger,
	}
}

func (p *rateLimitedProvider) FetchGames(ctx context.Context, date time.Time) ([]domaingames.Game, error) {
	if err := p.wait(ctx, "games"); err != nil {
		return nil, err
	}
	return p.next.FetchGames(ctx, date)
}

func (p *rateLimitedProvider) FetchTeams(ctx context.Context) ([]teams.SeasonInfo, error) {
	if err := p.wait(ctx, "teams"); err != nil {
		return nil, err
	}
	return p.next.FetchTeams(ctx)
}

func (p *rateLimitedProvider) wait(ctx context.Context, op string) error {
	logger := logging.FromContext(ctx, p.logger)
	if p.next == nil {
		logging.Warn(logger, "provider unavailable", slog.String(logging.FieldProvider, "rate-limited"))
		return ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		logging.Warn(logger, "rate-limited fetch canceled", slog.String(logging.FieldOp, op), slog.Any("error", err))
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	return nil
}
