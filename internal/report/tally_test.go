package report

import (
	"math/rand"
	"testing"

	"github.com/preston-bernstein/cbb-daily-report/internal/domain/games"
	"github.com/preston-bernstein/cbb-daily-report/internal/domain/teams"
)

func TestDailyTallyEmpty(t *testing.T) {
	got := DailyTally(nil)
	if got != (Tally{}) || got.String() != "0-0" {
		t.Fatalf("expected 0-0, got %s", got)
	}
}

func TestDailyTallyIgnoresOrder(t *testing.T) {
	var results []games.TeamResult
	for i := 0; i < 4; i++ {
		results = append(results, games.TeamResult{Outcome: games.OutcomeWin})
	}
	for i := 0; i < 3; i++ {
		results = append(results, games.TeamResult{Outcome: games.OutcomeLoss})
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		rng.Shuffle(len(results), func(a, b int) { results[a], results[b] = results[b], results[a] })
		if got := DailyTally(results); got != (Tally{Wins: 4, Losses: 3}) {
			t.Fatalf("expected 4-3, got %s", got)
		}
	}
}

func TestSeasonTallySumsRecords(t *testing.T) {
	infos := []teams.SeasonInfo{
		{Key: "DUKE", School: "Duke", Wins: 20, Losses: 5},
		{Key: "UNC", School: "North Carolina", Wins: 15, Losses: 10},
	}
	got := SeasonTally(infos)
	if got != (Tally{Wins: 35, Losses: 15}) || got.String() != "35-15" {
		t.Fatalf("expected 35-15, got %s", got)
	}
	if empty := SeasonTally(nil); empty != (Tally{}) {
		t.Fatalf("expected 0-0 for no records, got %s", empty)
	}
}
