package sportsdata

// Upstream fields are pointers so absent and null values can be told apart
// from zero.

type gameResponse struct {
	GameID        int     `json:"GameID"`
	Status        string  `json:"Status"`
	HomeTeam      *string `json:"HomeTeam"`
	AwayTeam      *string `json:"AwayTeam"`
	HomeTeamScore *int    `json:"HomeTeamScore"`
	AwayTeamScore *int    `json:"AwayTeamScore"`
}

type teamResponse struct {
	TeamID int     `json:"TeamID"`
	Key    *string `json:"Key"`
	School *string `json:"School"`
	Name   string  `json:"Name"`
	Wins   *int    `json:"Wins"`
	Losses *int    `json:"Losses"`
}
