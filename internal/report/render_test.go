package report

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/preston-bernstein/cbb-daily-report/internal/domain/games"
	"github.com/preston-bernstein/cbb-daily-report/internal/domain/teams"
)

func TestRenderFullReport(t *testing.T) {
	results := []games.TeamResult{
		games.NewTeamResult("DUKE", 80, "UNC", 75),
		games.NewTeamResult("UNC", 75, "DUKE", 80),
	}
	records := []teams.SeasonInfo{
		{Key: "UNC", School: "North Carolina", Wins: 15, Losses: 10},
		{Key: "DUKE", School: "Duke", Wins: 20, Losses: 5},
	}

	got := Render(Report{
		Date:    time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Results: results,
		Records: records,
		Daily:   DailyTally(results),
		Season:  SeasonTally(records),
	})

	want := "DAILY CBB REPORT: 01/05/2024\n" +
		"---------------------------------------------\n" +
		"Yesterday's Record: 1-1\n" +
		"Season Record: 35-15\n" +
		"\n" +
		"Yesterday's Results:\n" +
		"DUKE 80 - 75 UNC (W)\n" +
		"UNC 75 - 80 DUKE (L)\n" +
		"\n" +
		"Updated Team Records:\n" +
		"Duke: 20-5\n" +
		"North Carolina: 15-10\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderEmptyDay(t *testing.T) {
	got := Render(Report{Title: "Weekly Hoops", Date: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)})

	if !strings.HasPrefix(got, "WEEKLY HOOPS: 12/31/2024\n") {
		t.Fatalf("unexpected header in %q", got)
	}
	if !strings.Contains(got, "Yesterday's Record: 0-0\n") || !strings.Contains(got, "Season Record: 0-0\n") {
		t.Fatalf("expected zero tallies in %q", got)
	}
	if !strings.HasSuffix(got, "Yesterday's Results:\n\nUpdated Team Records:\n") {
		t.Fatalf("expected empty sections in %q", got)
	}
}

func TestSortByWinsIsStable(t *testing.T) {
	records := []teams.SeasonInfo{
		{Key: "A", School: "A", Wins: 10, Losses: 5},
		{Key: "B", School: "B", Wins: 12, Losses: 3},
		{Key: "C", School: "C", Wins: 12, Losses: 1},
	}

	sorted := SortByWins(records)

	if diff := cmp.Diff([]string{"B", "C", "A"}, []string{sorted[0].Key, sorted[1].Key, sorted[2].Key}); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	if records[0].Key != "A" {
		t.Fatalf("input must not be reordered")
	}

	rendered := Render(Report{Records: records})
	section := rendered[strings.Index(rendered, "Updated Team Records:"):]
	if want := "Updated Team Records:\nB: 12-3\nC: 12-1\nA: 10-5\n"; section != want {
		t.Fatalf("expected %q, got %q", want, section)
	}
}

func TestSortByWinsUsesNumericOrder(t *testing.T) {
	records := []teams.SeasonInfo{
		{Key: "NINE", Wins: 9},
		{Key: "TEN", Wins: 10},
	}
	if got := SortByWins(records)[0].Key; got != "TEN" {
		t.Fatalf("expected 10 wins to sort above 9, got %s first", got)
	}
}
