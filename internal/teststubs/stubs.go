package teststubs

import (
	"context"
	"sync/atomic"
	"time"

	domaingames "github.com/preston-bernstein/cbb-daily-report/internal/domain/games"
	"github.com/preston-bernstein/cbb-daily-report/internal/domain/teams"
)

// StubProvider is a test double for providers.DataProvider.
type StubProvider struct {
	Games    []domaingames.Game
	Teams    []teams.SeasonInfo
	GamesErr error
	TeamsErr error

	GameCalls atomic.Int32
	TeamCalls atomic.Int32
	LastDate  time.Time
}

// FetchGames returns configured games and error while tracking calls.
func (s *StubProvider) FetchGames(ctx context.Context, date time.Time) ([]domaingames.Game, error) {
	_ = ctx
	s.GameCalls.Add(1)
	s.LastDate = date
	return s.Games, s.GamesErr
}

// FetchTeams returns configured teams and error while tracking calls.
func (s *StubProvider) FetchTeams(ctx context.Context) ([]teams.SeasonInfo, error) {
	_ = ctx
	s.TeamCalls.Add(1)
	return s.Teams, s.TeamsErr
}

// StubSender records the last message handed to it.
type StubSender struct {
	Err     error
	Calls   int
	Subject string
	Body    string
}

// Send stores subject and body and returns the configured error.
func (s *StubSender) Send(ctx context.Context, subject, body string) error {
	_ = ctx
	s.Calls++
	s.Subject = subject
	s.Body = body
	return s.Err
}
