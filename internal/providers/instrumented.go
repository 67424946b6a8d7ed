package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/dailypicks-service/internal/domain/picks"
	"github.com/preston-bernstein/dailypicks-service/internal/logging"
	"github.com/preston-bernstein/dailypicks-service/internal/metrics"
)

// instrumentedProvider logs and records metrics for every fetch. It makes exactly one attempt:
// a failed fetch is terminal for the render pass.
type instrumentedProvider struct {
	inner   DocumentProvider
	logger  *slog.Logger
	metrics *metrics.Recorder
	name    string
}

// NewInstrumentedProvider wraps inner with logging and metrics. An empty name is derived from inner.
func NewInstrumentedProvider(inner DocumentProvider, logger *slog.Logger, recorder *metrics.Recorder, name string) DocumentProvider {
	if name == "" {
		name = NameOf(inner)
	}
	return &instrumentedProvider{
		inner:   inner,
		logger:  logger,
		metrics: recorder,
		name:    name,
	}
}

func (p *instrumentedProvider) Name() string {
	return p.name
}

func (p *instrumentedProvider) FetchDocument(ctx context.Context, view picks.View) ([]byte, error) {
	start := time.Now()
	raw, err := p.inner.FetchDocument(ctx, view)
	elapsed := time.Since(start)

	if p.metrics != nil {
		p.metrics.RecordDocumentFetch(p.name, string(view), elapsed, err)
	}
	if err != nil {
		logWithSource(ctx, p.logger, slog.LevelWarn, p.name, "document fetch failed",
			slog.String(logging.FieldView, string(view)),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			slog.Any("error", err),
		)
		return nil, err
	}
	logWithSource(ctx, p.logger, slog.LevelDebug, p.name, "document fetched",
		slog.String(logging.FieldView, string(view)),
		slog.Int(logging.FieldBytes, len(raw)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return raw, nil
}
