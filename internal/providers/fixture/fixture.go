package fixture

import (
	"context"
	"time"

	domaingames "github.com/preston-bernstein/cbb-daily-report/internal/domain/games"
	"github.com/preston-bernstein/cbb-daily-report/internal/domain/teams"
)

// Provider returns a static slate useful for local dry runs without an API key.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchGames returns the same deterministic slate for every date: two final
// games, one involving two ACC rivals, and one game still in progress.
func (p *Provider) FetchGames(ctx context.Context, date time.Time) ([]domaingames.Game, error) {
	_ = ctx
	_ = date
	return []domaingames.Game{
		{
			ID:        1001,
			Status:    domaingames.StatusFinal,
			HomeTeam:  "DUKE",
			AwayTeam:  "UNC",
			HomeScore: domaingames.Score(80),
			AwayScore: domaingames.Score(75),
		},
		{
			ID:        1002,
			Status:    domaingames.StatusFinal,
			HomeTeam:  "KY",
			AwayTeam:  "KU",
			HomeScore: domaingames.Score(68),
			AwayScore: domaingames.Score(71),
		},
		{
			ID:        1003,
			Status:    domaingames.StatusInProgress,
			HomeTeam:  "GONZ",
			AwayTeam:  "UCLA",
			HomeScore: domaingames.Score(40),
		},
	}, nil
}

// FetchTeams returns a deterministic set of season records.
func (p *Provider) FetchTeams(ctx context.Context) ([]teams.SeasonInfo, error) {
	_ = ctx
	return []teams.SeasonInfo{
		{Key: "DUKE", School: "Duke", Wins: 20, Losses: 5},
		{Key: "UNC", School: "North Carolina", Wins: 15, Losses: 10},
		{Key: "KY", School: "Kentucky", Wins: 18, Losses: 7},
		{Key: "KU", School: "Kansas", Wins: 20, Losses: 4},
		{Key: "GONZ", School: "Gonzaga", Wins: 22, Losses: 3},
		{Key: "UCLA", School: "UCLA", Wins: 12, Losses: 13},
	}, nil
}
