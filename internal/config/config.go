package config

import "strings"

// Config holds runtime configuration for one report run. It is built once at
// startup and passed to every component that needs it.
type Config struct {
	Provider    string
	SportsData  SportsDataConfig
	MinInterval Duration
	Teams       []string
	TeamsFile   string
	Timezone    string
	Title       string
	Mail        MailConfig
	Metrics     MetricsConfig
	Log         LogConfig
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level  string
	Format string
	File   string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Provider:    envOrDefault(envProvider, defaultProvider),
		SportsData:  loadSportsData(),
		MinInterval: durationEnvOrDefault(envMinInterval, 0),
		Teams:       listEnv(envTeams),
		TeamsFile:   envOrDefault(envTeamsFile, ""),
		Timezone:    envOrDefault(envTimezone, defaultTimezone),
		Title:       envOrDefault(envTitle, defaultTitle),
		Mail:        loadMail(),
		Metrics:     loadMetrics(),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, "info"),
			Format: envOrDefault(envLogFormat, "text"),
			File:   envOrDefault(envLogFile, ""),
		},
	}
}

// Validate reports the first missing or invalid required value.
func (c Config) Validate() error {
	switch strings.ToLower(c.Provider) {
	case ProviderSportsData:
		if c.SportsData.APIKey == "" {
			return missing(envSdAPIKey)
		}
	case ProviderFixture:
	default:
		return &ConfigurationError{Key: envProvider, Reason: "unknown provider " + c.Provider}
	}

	if len(c.Teams) == 0 {
		return &ConfigurationError{Key: envTeams, Reason: "no teams configured (set TEAMS or TEAMS_FILE)"}
	}

	if c.Mail.Enabled {
		return c.Mail.validate()
	}
	return nil
}
