package config

import "time"

const (
	envProvider     = "PROVIDER"
	envSdBaseURL    = "SPORTSDATA_BASE_URL"
	envSdAPIKey     = "SPORTSDATA_API_KEY"
	envSdTimeout    = "SPORTSDATA_TIMEOUT"
	envMinInterval  = "PROVIDER_MIN_INTERVAL"
	envTeams        = "TEAMS"
	envTeamsFile    = "TEAMS_FILE"
	envTimezone     = "REPORT_TIMEZONE"
	envTitle        = "REPORT_TITLE"
	envMailOn       = "MAIL_ENABLED"
	envSMTPHost     = "SMTP_HOST"
	envSMTPPort     = "SMTP_PORT"
	envFromEmail    = "FROM_EMAIL"
	envFromPassword = "FROM_PASSWORD"
	envToEmail      = "TO_EMAIL"
	envMetricsOn    = "METRICS_ENABLED"
	envPushgateway  = "PUSHGATEWAY_URL"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envLogFile      = "LOG_FILE"

	ProviderSportsData = "sportsdata"
	ProviderFixture    = "fixture"

	defaultProvider   = ProviderSportsData
	defaultSdBaseURL  = "https://api.sportsdata.io/v3/cbb/scores/json"
	defaultSdTimeout  = 10 * Duration(time.Second)
	defaultTimezone   = "America/New_York"
	defaultTitle      = "Daily CBB Report"
	defaultSMTPHost   = "smtp.gmail.com"
	defaultSMTPPort   = 587
	defaultMailOn     = true
	defaultMetricsOn  = false
	defaultServiceTag = "cbb-daily-report"
)
