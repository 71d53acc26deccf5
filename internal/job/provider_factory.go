package job

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/preston-bernstein/cbb-daily-report/internal/config"
	"github.com/preston-bernstein/cbb-daily-report/internal/metrics"
	"github.com/preston-bernstein/cbb-daily-report/internal/providers"
	"github.com/preston-bernstein/cbb-daily-report/internal/providers/fixture"
	"github.com/preston-bernstein/cbb-daily-report/internal/providers/sportsdata"
)

// providerFactory assembles the upstream provider with shared wrappers (instrumentation + rate limit).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	return f.wrap(cfg, selectProvider(cfg, f.logger))
}

func (f providerFactory) wrap(cfg config.Config, base providers.DataProvider) providers.DataProvider {
	instrumented := providers.NewInstrumentedProvider(base, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base))
	return providers.NewRateLimitedProvider(instrumented, cfg.MinInterval, f.logger)
}

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch strings.ToLower(cfg.Provider) {
	case config.ProviderSportsData:
		return sportsdata.NewClient(sportsdata.Config{
			BaseURL: cfg.SportsData.BaseURL,
			APIKey:  cfg.SportsData.APIKey,
			Timeout: cfg.SportsData.Timeout,
		})
	case config.ProviderFixture, "":
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}

// normalizeProviderName returns a lower-cased provider name, deriving from the instance when not configured.
func normalizeProviderName(raw string, provider providers.DataProvider) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
