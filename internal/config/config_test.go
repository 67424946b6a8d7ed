package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Data.Source != SourceFixture {
		t.Fatalf("expected fixture source by default, got %s", cfg.Data.Source)
	}
	if cfg.Data.Dir != defaultDataDir || cfg.Data.BaseURL != "" || cfg.Data.APIKey != "" {
		t.Fatalf("unexpected data defaults %+v", cfg.Data)
	}
	if cfg.DisplayTimezone != defaultDisplayTimezone {
		t.Fatalf("expected default timezone, got %s", cfg.DisplayTimezone)
	}
	if cfg.Publish.Enabled {
		t.Fatalf("expected publishing disabled by default")
	}
	if cfg.Publish.Interval != defaultPublishInterval || cfg.Publish.RetentionDays != defaultPublishRetention {
		t.Fatalf("unexpected publish defaults %+v", cfg.Publish)
	}
	if cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("expected default service name, got %s", cfg.Metrics.ServiceName)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Fatalf("unexpected log defaults %+v", cfg.Log)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envDataSource, "REMOTE")
	t.Setenv(envDataBaseURL, "http://example.com/data")
	t.Setenv(envDataAPIKey, "secret-key")
	t.Setenv(envTeamsFile, "/etc/teams.toml")
	t.Setenv(envPublishEnabled, "true")
	t.Setenv(envPublishDir, "/srv/www")
	t.Setenv(envPublishInterval, "45s")
	t.Setenv(envPublishRetention, "7")
	t.Setenv(envLogFormat, "json")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.Data.Source != SourceRemote || cfg.Data.BaseURL != "http://example.com/data" || cfg.Data.APIKey != "secret-key" {
		t.Fatalf("unexpected data config %+v", cfg.Data)
	}
	if cfg.TeamsFile != "/etc/teams.toml" {
		t.Fatalf("expected teams file override, got %s", cfg.TeamsFile)
	}
	if !cfg.Publish.Enabled || cfg.Publish.Dir != "/srv/www" || cfg.Publish.Interval != 45*time.Second || cfg.Publish.RetentionDays != 7 {
		t.Fatalf("unexpected publish config %+v", cfg.Publish)
	}
	if cfg.Log.Format != "json" {
		t.Fatalf("expected json log format, got %s", cfg.Log.Format)
	}
}

func TestLoadUnknownSourceFallsBack(t *testing.T) {
	t.Setenv(envDataSource, "carrier-pigeon")

	if got := Load().Data.Source; got != SourceFixture {
		t.Fatalf("expected fixture fallback, got %s", got)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envPublishInterval, "not-a-duration")

	cfg := Load()

	if cfg.Publish.Interval != defaultPublishInterval {
		t.Fatalf("expected default publish interval on invalid value, got %s", cfg.Publish.Interval)
	}
}

func TestLoadNonPositiveDurationFallsBack(t *testing.T) {
	t.Setenv(envPublishInterval, "0s")
	t.Setenv(envPublishRetention, "-3")

	cfg := Load()

	if cfg.Publish.Interval != defaultPublishInterval {
		t.Fatalf("expected default publish interval on non-positive value, got %s", cfg.Publish.Interval)
	}
	if cfg.Publish.RetentionDays != defaultPublishRetention {
		t.Fatalf("expected default retention on non-positive value, got %d", cfg.Publish.RetentionDays)
	}
}
