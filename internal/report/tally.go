package report

import (
	"fmt"

	"github.com/preston-bernstein/cbb-daily-report/internal/domain/games"
	"github.com/preston-bernstein/cbb-daily-report/internal/domain/teams"
)

// Tally is a wins/losses pair.
type Tally struct {
	Wins   int
	Losses int
}

// String renders the tally as W-L.
func (t Tally) String() string {
	return fmt.Sprintf("%d-%d", t.Wins, t.Losses)
}

// DailyTally counts wins and losses across results.
func DailyTally(results []games.TeamResult) Tally {
	var t Tally
	for _, r := range results {
		if r.Won() {
			t.Wins++
		} else {
			t.Losses++
		}
	}
	return t
}

// SeasonTally sums every team's own season wins and losses.
func SeasonTally(infos []teams.SeasonInfo) Tally {
	var t Tally
	for _, info := range infos {
		t.Wins += info.Wins
		t.Losses += info.Losses
	}
	return t
}
