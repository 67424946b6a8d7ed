package server

import (
	"log/slog"

	"github.com/preston-bernstein/dailypicks-service/internal/config"
	"github.com/preston-bernstein/dailypicks-service/internal/providers"
	"github.com/preston-bernstein/dailypicks-service/internal/providers/fixture"
	fsprovider "github.com/preston-bernstein/dailypicks-service/internal/providers/fs"
	"github.com/preston-bernstein/dailypicks-service/internal/providers/remote"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DocumentProvider {
	switch cfg.Data.Source {
	case config.SourceFixture, "":
		return fixture.New()
	case config.SourceFS:
		return fsprovider.New(cfg.Data.Dir)
	case config.SourceRemote:
		return remote.NewClient(remote.Config{
			BaseURL: cfg.Data.BaseURL,
			APIKey:  cfg.Data.APIKey,
		})
	default:
		if logger != nil {
			logger.Warn("unknown data source, falling back to fixture", slog.String("source", cfg.Data.Source))
		}
		return fixture.New()
	}
}
