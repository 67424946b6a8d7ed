package server

import (
	"log/slog"

	"github.com/preston-bernstein/dailypicks-service/internal/config"
	"github.com/preston-bernstein/dailypicks-service/internal/metrics"
	"github.com/preston-bernstein/dailypicks-service/internal/providers"
)

// providerFactory assembles the provider with shared instrumentation. Fetches are not retried.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DocumentProvider {
	return f.wrap(selectProvider(cfg, f.logger))
}

func (f providerFactory) wrap(base providers.DocumentProvider) providers.DocumentProvider {
	return providers.NewInstrumentedProvider(base, f.logger, f.metrics, providers.NameOf(base))
}
