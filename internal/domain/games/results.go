package games

// Outcome is the win/loss flag of a TeamResult.
type Outcome string

const (
	OutcomeWin  Outcome = "W"
	OutcomeLoss Outcome = "L"
)

// TeamResult is one configured team's view of a final game.
type TeamResult struct {
	Team           string  `json:"team"`
	Points         int     `json:"points"`
	Opponent       string  `json:"opponent"`
	OpponentPoints int     `json:"opponentPoints"`
	Outcome        Outcome `json:"outcome"`
}

// NewTeamResult builds the result for team, deciding the outcome by strictly
// greater score.
func NewTeamResult(team string, points int, opponent string, opponentPoints int) TeamResult {
	outcome := OutcomeLoss
	if points > opponentPoints {
		outcome = OutcomeWin
	}
	return TeamResult{
		Team:           team,
		Points:         points,
		Opponent:       opponent,
		OpponentPoints: opponentPoints,
		Outcome:        outcome,
	}
}

// Won reports whether the result is a win.
func (r TeamResult) Won() bool {
	return r.Outcome == OutcomeWin
}
