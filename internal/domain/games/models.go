package games

// GameStatus mirrors the provider's lifecycle states for a game.
type GameStatus string

const (
	StatusScheduled  GameStatus = "SCHEDULED"
	StatusInProgress GameStatus = "IN_PROGRESS"
	StatusFinal      GameStatus = "FINAL"
	StatusPostponed  GameStatus = "POSTPONED"
	StatusCanceled   GameStatus = "CANCELED"
)

// Game is one scheduled or completed contest. Scores are nil until the
// provider reports them.
type Game struct {
	ID        int        `json:"id"`
	Status    GameStatus `json:"status"`
	HomeTeam  string     `json:"homeTeam"`
	AwayTeam  string     `json:"awayTeam"`
	HomeScore *int       `json:"homeScore,omitempty"`
	AwayScore *int       `json:"awayScore,omitempty"`
}

// Final reports whether both scores are present.
func (g Game) Final() bool {
	return g.HomeScore != nil && g.AwayScore != nil
}

// Score returns a pointer to v, for building games with known scores.
func Score(v int) *int {
	return &v
}
