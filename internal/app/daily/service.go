package daily

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/cbb-daily-report/internal/domain/games"
	"github.com/preston-bernstein/cbb-daily-report/internal/domain/teams"
	"github.com/preston-bernstein/cbb-daily-report/internal/logging"
	"github.com/preston-bernstein/cbb-daily-report/internal/providers"
	"github.com/preston-bernstein/cbb-daily-report/internal/report"
	"github.com/preston-bernstein/cbb-daily-report/internal/timeutil"
)

// Output is everything one run computed, including the rendered text.
type Output struct {
	Date    time.Time
	Results []games.TeamResult
	Records []teams.SeasonInfo
	Missing []string
	Daily   report.Tally
	Season  report.Tally
	Text    string
}

// Service builds the daily report for a fixed set of teams.
type Service struct {
	provider providers.DataProvider
	teams    report.TeamSet
	title    string
	logger   *slog.Logger
}

// NewService constructs a Service reporting on teamKeys.
func NewService(provider providers.DataProvider, teamKeys []string, title string, logger *slog.Logger) *Service {
	return &Service{
		provider: provider,
		teams:    report.NewTeamSet(teamKeys...),
		title:    title,
		logger:   logger,
	}
}

// Build fetches the games played on date and current season records, then
// renders the report. Any provider or derivation error aborts the build.
func (s *Service) Build(ctx context.Context, date time.Time) (Output, error) {
	logger := logging.FromContext(ctx, s.logger)

	all, err := s.provider.FetchGames(ctx, date)
	if err != nil {
		return Output{}, fmt.Errorf("fetch games: %w", err)
	}
	results, err := report.DeriveResults(all, s.teams)
	if errors.Is(err, report.ErrTiedFinal) {
		return Output{}, &providers.FormatError{Op: "derive", Field: "HomeTeamScore", Err: err}
	}
	if err != nil {
		return Output{}, fmt.Errorf("derive results: %w", err)
	}

	known, err := s.provider.FetchTeams(ctx)
	if err != nil {
		return Output{}, fmt.Errorf("fetch teams: %w", err)
	}
	records, missing := report.SelectTeams(known, s.teams)
	if len(missing) > 0 {
		logging.Warn(logger, "configured teams not found upstream; season record excludes them",
			slog.Any(logging.FieldTeams, missing),
		)
	}

	out := Output{
		Date:    date,
		Results: results,
		Records: records,
		Missing: missing,
		Daily:   report.DailyTally(results),
		Season:  report.SeasonTally(records),
	}
	out.Text = report.Render(report.Report{
		Title:   s.title,
		Date:    date,
		Results: out.Results,
		Records: out.Records,
		Daily:   out.Daily,
		Season:  out.Season,
	})

	logging.Debug(logger, "report built",
		slog.String(logging.FieldDate, date.Format(timeutil.DateLayout)),
		slog.Int(logging.FieldCount, len(results)),
		slog.String("daily", out.Daily.String()),
		slog.String("season", out.Season.String()),
	)
	return out, nil
}
