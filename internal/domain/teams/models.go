package teams

// SeasonInfo is a team's season-to-date snapshot as reported by the provider.
type SeasonInfo struct {
	Key    string `json:"key"`
	School string `json:"school"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
}
