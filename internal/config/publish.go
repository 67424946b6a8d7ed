package config

import "time"

// PublishConfig controls the static site publisher.
type PublishConfig struct {
	Enabled       bool
	Dir           string        // output root for index.html, views/ and archive/
	Interval      time.Duration // delay between publish cycles
	RetentionDays int           // archive pages older than this are pruned
}

func loadPublish() PublishConfig {
	return PublishConfig{
		Enabled:       boolEnvOrDefault(envPublishEnabled, defaultPublishEnabled),
		Dir:           envOrDefault(envPublishDir, defaultPublishDir),
		Interval:      durationEnvOrDefault(envPublishInterval, defaultPublishInterval),
		RetentionDays: intEnvOrDefault(envPublishRetention, defaultPublishRetention),
	}
}
