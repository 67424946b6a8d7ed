package config

import "strings"

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	DisplayTimezone string
	TeamsFile       string
	Data            DataConfig
	Publish         PublishConfig
	Metrics         MetricsConfig
	Log             LogConfig
}

// DataConfig selects where view documents come from.
type DataConfig struct {
	Source  string
	Dir     string
	BaseURL string
	APIKey  string
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		DisplayTimezone: envOrDefault(envDisplayTimezone, defaultDisplayTimezone),
		TeamsFile:       envOrDefault(envTeamsFile, ""),
		Data:            loadData(),
		Publish:         loadPublish(),
		Metrics:         loadMetrics(),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
	}
}

func loadData() DataConfig {
	source := strings.ToLower(strings.TrimSpace(envOrDefault(envDataSource, defaultDataSource)))
	switch source {
	case SourceFixture, SourceFS, SourceRemote:
	default:
		source = defaultDataSource
	}
	return DataConfig{
		Source:  source,
		Dir:     envOrDefault(envDataDir, defaultDataDir),
		BaseURL: envOrDefault(envDataBaseURL, ""),
		APIKey:  envOrDefault(envDataAPIKey, ""),
	}
}
