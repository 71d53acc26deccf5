package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/preston-bernstein/cbb-daily-report/internal/domain/games"
	"github.com/preston-bernstein/cbb-daily-report/internal/domain/teams"
)

const (
	// DefaultTitle heads the report and names the email subject.
	DefaultTitle = "Daily CBB Report"

	headerDateLayout = "01/02/2006"
	separatorWidth   = 45
)

// Report carries everything the renderer needs.
type Report struct {
	Title   string
	Date    time.Time
	Results []games.TeamResult
	Records []teams.SeasonInfo
	Daily   Tally
	Season  Tally
}

// Render composes the plain-text report.
func Render(r Report) string {
	title := r.Title
	if title == "" {
		title = DefaultTitle
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", strings.ToUpper(title), r.Date.Format(headerDateLayout))
	b.WriteString(strings.Repeat("-", separatorWidth) + "\n")
	fmt.Fprintf(&b, "Yesterday's Record: %s\n", r.Daily)
	fmt.Fprintf(&b, "Season Record: %s\n\n", r.Season)

	b.WriteString("Yesterday's Results:\n")
	for _, res := range r.Results {
		fmt.Fprintf(&b, "%s %d - %d %s (%s)\n", res.Team, res.Points, res.OpponentPoints, res.Opponent, res.Outcome)
	}

	b.WriteString("\nUpdated Team Records:\n")
	for _, rec := range SortByWins(r.Records) {
		fmt.Fprintf(&b, "%s: %d-%d\n", rec.School, rec.Wins, rec.Losses)
	}
	return b.String()
}

// SortByWins returns a copy of infos ordered by descending wins. Teams with
// equal wins keep their input order.
func SortByWins(infos []teams.SeasonInfo) []teams.SeasonInfo {
	sorted := make([]teams.SeasonInfo, len(infos))
	copy(sorted, infos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Wins > sorted[j].Wins
	})
	return sorted
}
