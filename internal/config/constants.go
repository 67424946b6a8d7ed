package config

import "time"

const (
	envPort             = "PORT"
	envDataSource       = "DATA_SOURCE"
	envDataDir          = "DATA_DIR"
	envDataBaseURL      = "DATA_BASE_URL"
	envDataAPIKey       = "DATA_API_KEY"
	envTeamsFile        = "TEAMS_FILE"
	envDisplayTimezone  = "DISPLAY_TIMEZONE"
	envPublishEnabled   = "PUBLISH_ENABLED"
	envPublishDir       = "PUBLISH_DIR"
	envPublishInterval  = "PUBLISH_INTERVAL"
	envPublishRetention = "PUBLISH_RETENTION_DAYS"
	envMetricsPort      = "METRICS_PORT"
	envMetricsOn        = "METRICS_ENABLED"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel         = "LOG_LEVEL"
	envLogFormat        = "LOG_FORMAT"

	defaultPort            = "4000"
	defaultDataSource      = SourceFixture
	defaultDataDir         = "data"
	defaultDisplayTimezone = "America/New_York"
	defaultPublishEnabled  = false
	defaultPublishDir      = "public"
	// The upstream documents are regenerated once a day; a quarter hour keeps the page close behind.
	defaultPublishInterval  = 15 * Duration(time.Minute)
	defaultPublishRetention = 30
	defaultMetricsPort      = "9090"
	defaultServiceName      = "dailypicks-service"
	defaultLogLevel         = "info"
	defaultLogFormat        = "text"
)

// Data sources understood by DATA_SOURCE.
const (
	SourceFixture = "fixture"
	SourceFS      = "fs"
	SourceRemote  = "remote"
)
