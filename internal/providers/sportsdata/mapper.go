package sportsdata

import (
	"strings"

	"github.com/preston-bernstein/cbb-daily-report/internal/domain/games"
	"github.com/preston-bernstein/cbb-daily-report/internal/domain/teams"
	"github.com/preston-bernstein/cbb-daily-report/internal/providers"
)

func mapGame(g gameResponse) (games.Game, error) {
	home, ok := requiredString(g.HomeTeam)
	if !ok {
		return games.Game{}, formatError(opGames, "HomeTeam")
	}
	away, ok := requiredString(g.AwayTeam)
	if !ok {
		return games.Game{}, formatError(opGames, "AwayTeam")
	}
	return games.Game{
		ID:        g.GameID,
		Status:    mapStatus(g.Status),
		HomeTeam:  home,
		AwayTeam:  away,
		HomeScore: g.HomeTeamScore,
		AwayScore: g.AwayTeamScore,
	}, nil
}

// mapTeam requires every field the season tally reads. A null or absent
// Wins/Losses is rejected rather than counted as zero.
func mapTeam(t teamResponse) (teams.SeasonInfo, error) {
	key, ok := requiredString(t.Key)
	if !ok {
		return teams.SeasonInfo{}, formatError(opTeams, "Key")
	}
	school, ok := requiredString(t.School)
	if !ok {
		return teams.SeasonInfo{}, formatError(opTeams, "School")
	}
	if t.Wins == nil {
		return teams.SeasonInfo{}, formatError(opTeams, "Wins")
	}
	if t.Losses == nil {
		return teams.SeasonInfo{}, formatError(opTeams, "Losses")
	}
	return teams.SeasonInfo{
		Key:    key,
		School: school,
		Wins:   *t.Wins,
		Losses: *t.Losses,
	}, nil
}

func mapStatus(status string) games.GameStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "final", "f/ot", "forfeit":
		return games.StatusFinal
	case "inprogress", "in progress", "halftime":
		return games.StatusInProgress
	case "postponed", "suspended", "delayed":
		return games.StatusPostponed
	case "canceled", "cancelled", "notnecessary":
		return games.StatusCanceled
	default:
		return games.StatusScheduled
	}
}

func requiredString(v *string) (string, bool) {
	if v == nil {
		return "", false
	}
	s := strings.TrimSpace(*v)
	return s, s != ""
}

func formatError(op, field string) error {
	return &providers.FormatError{Provider: providerName, Op: op, Field: field}
}
