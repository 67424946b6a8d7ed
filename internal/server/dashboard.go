package server

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/dailypicks-service/internal/app/dashboard"
	"github.com/preston-bernstein/dailypicks-service/internal/config"
	"github.com/preston-bernstein/dailypicks-service/internal/domain/teams"
	"github.com/preston-bernstein/dailypicks-service/internal/metrics"
	"github.com/preston-bernstein/dailypicks-service/internal/providers"
	"github.com/preston-bernstein/dailypicks-service/internal/publish"
	"github.com/preston-bernstein/dailypicks-service/internal/render"
)

// loadDirectory returns the operator-supplied team directory, or the embedded default.
func loadDirectory(cfg config.Config) (*teams.Directory, error) {
	if cfg.TeamsFile == "" {
		return teams.Default()
	}
	dir, err := teams.LoadFile(cfg.TeamsFile)
	if err != nil {
		return nil, fmt.Errorf("load teams file: %w", err)
	}
	return dir, nil
}

func displayLocation(cfg config.Config, logger *slog.Logger) *time.Location {
	if loc := providers.ResolveTimezone(cfg.DisplayTimezone); loc != nil {
		return loc
	}
	if cfg.DisplayTimezone != "" && logger != nil {
		logger.Warn("invalid display timezone, using UTC", slog.String("timezone", cfg.DisplayTimezone))
	}
	return time.UTC
}

// NewDashboard wires the configured provider, team directory and renderer into a dashboard service.
func NewDashboard(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*dashboard.Service, error) {
	return newDashboard(cfg, logger, recorder, newProviderFactory(logger, recorder).build(cfg))
}

func newDashboard(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, provider providers.DocumentProvider) (*dashboard.Service, error) {
	dir, err := loadDirectory(cfg)
	if err != nil {
		return nil, err
	}
	renderer, err := render.New(dir)
	if err != nil {
		return nil, err
	}
	return dashboard.NewService(provider, renderer,
		dashboard.WithLogger(logger),
		dashboard.WithMetrics(recorder),
		dashboard.WithLocation(displayLocation(cfg, logger)),
	), nil
}

// NewPublisher builds a static publisher writing under cfg.Publish.Dir.
func NewPublisher(cfg config.Config, svc *dashboard.Service, logger *slog.Logger, recorder *metrics.Recorder) *publish.Publisher {
	writer := publish.NewWriter(cfg.Publish.Dir, cfg.Publish.RetentionDays)
	return publish.New(svc, writer, render.Stylesheet(), logger, recorder, cfg.Publish.Interval)
}
