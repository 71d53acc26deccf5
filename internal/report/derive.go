package report

import (
	"errors"
	"fmt"

	"github.com/preston-bernstein/cbb-daily-report/internal/domain/games"
)

// ErrTiedFinal marks a final game whose scores are equal. Basketball games
// cannot end tied, so the upstream data is treated as malformed.
var ErrTiedFinal = errors.New("final game with equal scores")

// FilterGames keeps final games in which at least one side is configured.
// Input order is preserved.
func FilterGames(all []games.Game, configured TeamSet) []games.Game {
	filtered := make([]games.Game, 0, len(all))
	for _, g := range all {
		if !configured.Has(g.HomeTeam) && !configured.Has(g.AwayTeam) {
			continue
		}
		if !g.Final() {
			continue
		}
		filtered = append(filtered, g)
	}
	return filtered
}

// DeriveResults emits one TeamResult per configured side of every final game
// involving a configured team, home side first. A final game with equal scores
// is rejected with an error wrapping ErrTiedFinal.
func DeriveResults(all []games.Game, configured TeamSet) ([]games.TeamResult, error) {
	filtered := FilterGames(all, configured)
	results := make([]games.TeamResult, 0, len(filtered))

	for _, g := range filtered {
		home, away := *g.HomeScore, *g.AwayScore
		if home == away {
			return nil, fmt.Errorf("game %d (%s vs %s) %d-%d: %w", g.ID, g.HomeTeam, g.AwayTeam, home, away, ErrTiedFinal)
		}
		if configured.Has(g.HomeTeam) {
			results = append(results, games.NewTeamResult(g.HomeTeam, home, g.AwayTeam, away))
		}
		if configured.Has(g.AwayTeam) {
			results = append(results, games.NewTeamResult(g.AwayTeam, away, g.HomeTeam, home))
		}
	}
	return results, nil
}
