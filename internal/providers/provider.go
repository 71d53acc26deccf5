package providers

import (
	"context"
	"errors"
	"time"

	domaingames "github.com/preston-bernstein/cbb-daily-report/internal/domain/games"
	"github.com/preston-bernstein/cbb-daily-report/internal/domain/teams"
)

// ErrProviderUnavailable is returned when a wrapper has no provider to call.
var ErrProviderUnavailable = errors.New("provider unavailable")

// GameProvider fetches every game the upstream reports for a calendar date,
// across the whole league. Only the year/month/day of date are used.
type GameProvider interface {
	FetchGames(ctx context.Context, date time.Time) ([]domaingames.Game, error)
}

// TeamProvider fetches season records for every team the upstream knows.
type TeamProvider interface {
	FetchTeams(ctx context.Context) ([]teams.SeasonInfo, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	GameProvider
	TeamProvider
}
