package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled        bool
	PushgatewayURL string
	OtlpEndpoint   string
	ServiceName    string
	OtlpInsecure   bool
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:        boolEnvOrDefault(envMetricsOn, defaultMetricsOn),
		PushgatewayURL: envOrDefault(envPushgateway, ""),
		OtlpEndpoint:   envOrDefault(envOtelEndpoint, ""),
		ServiceName:    envOrDefault(envOtelService, defaultServiceTag),
		OtlpInsecure:   boolEnvOrDefault(envOtelInsecure, true),
	}
}
