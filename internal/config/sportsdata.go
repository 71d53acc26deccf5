package config

// SportsDataConfig controls how we talk to the SportsData.io API.
type SportsDataConfig struct {
	BaseURL string
	APIKey  string
	Timeout Duration
}

func loadSportsData() SportsDataConfig {
	return SportsDataConfig{
		BaseURL: envOrDefault(envSdBaseURL, defaultSdBaseURL),
		APIKey:  envOrDefault(envSdAPIKey, ""),
		Timeout: durationEnvOrDefault(envSdTimeout, defaultSdTimeout),
	}
}
