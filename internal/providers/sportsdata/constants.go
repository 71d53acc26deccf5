package sportsdata

import "time"

const (
	providerName = "sportsdata"

	defaultBaseURL     = "https://api.sportsdata.io/v3/cbb/scores/json"
	defaultHTTPTimeout = 10 * time.Second

	// pathDateLayout matches the upstream's GamesByDate format, e.g. 2024-Jan-05.
	pathDateLayout = "2006-Jan-02"

	// errorBodyLimit caps how much of a failed response is echoed into errors.
	errorBodyLimit = 512
)
