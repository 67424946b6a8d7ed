package dashboard

import (
	"context"
	"html/template"
	"log/slog"
	"time"

	"github.com/preston-bernstein/dailypicks-service/internal/domain/picks"
	"github.com/preston-bernstein/dailypicks-service/internal/logging"
	"github.com/preston-bernstein/dailypicks-service/internal/metrics"
	"github.com/preston-bernstein/dailypicks-service/internal/providers"
	"github.com/preston-bernstein/dailypicks-service/internal/render"
)

// LoadFailedMessage is shown in the error notice when a render pass cannot load its data.
const LoadFailedMessage = "Failed to load data. Please try refreshing the page."

const pageMetricName = "page"

// Section is one rendered view wrapped in its page section.
type Section struct {
	View picks.View
	HTML template.HTML
}

// Build is the output of one full render pass.
type Build struct {
	GeneratedAt time.Time
	Page        template.HTML
	Sections    []Section
}

// Service coordinates loading documents and rendering them.
type Service struct {
	provider providers.DocumentProvider
	renderer *render.Renderer
	logger   *slog.Logger
	metrics  *metrics.Recorder
	loc      *time.Location
	now      func() time.Time
}

// Option customises a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithMetrics sets the metrics recorder.
func WithMetrics(rec *metrics.Recorder) Option {
	return func(s *Service) { s.metrics = rec }
}

// WithLocation sets the timezone dates are displayed in.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService constructs a Service over provider and renderer.
func NewService(provider providers.DocumentProvider, renderer *render.Renderer, opts ...Option) *Service {
	s := &Service{
		provider: provider,
		renderer: renderer,
		loc:      time.UTC,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Renderer exposes the renderer used by the service.
func (s *Service) Renderer() *render.Renderer {
	return s.renderer
}

// Build loads every view and renders the full page plus each section.
func (s *Service) Build(ctx context.Context) (Build, error) {
	start := time.Now()
	now := s.now().In(s.loc)

	bundle, err := Load(ctx, s.provider)
	if err != nil {
		s.recordRender(ctx, pageMetricName, start, err)
		return Build{}, err
	}

	out := Build{GeneratedAt: now}
	results, err := s.renderer.RenderAll(bundle)
	if err != nil {
		s.recordRender(ctx, pageMetricName, start, err)
		return Build{}, err
	}
	for _, res := range results {
		html, err := s.renderer.RenderSection(res)
		if err != nil {
			s.recordRender(ctx, pageMetricName, start, err)
			return Build{}, err
		}
		out.Sections = append(out.Sections, Section{View: res.View, HTML: html})
	}
	out.Page, err = s.renderer.RenderPage(bundle, now)
	s.recordRender(ctx, pageMetricName, start, err)
	if err != nil {
		return Build{}, err
	}
	return out, nil
}

// Page loads every view and renders the full dashboard page.
func (s *Service) Page(ctx context.Context) (template.HTML, error) {
	b, err := s.Build(ctx)
	if err != nil {
		return "", err
	}
	return b.Page, nil
}

// View loads one view's document and renders its section.
func (s *Service) View(ctx context.Context, view picks.View) (template.HTML, error) {
	start := time.Now()
	bundle, err := LoadView(ctx, s.provider, view)
	if err != nil {
		s.recordRender(ctx, string(view), start, err)
		return "", err
	}
	res, err := s.renderer.Render(view, bundle)
	if err != nil {
		s.recordRender(ctx, string(view), start, err)
		return "", err
	}
	html, err := s.renderer.RenderSection(res)
	s.recordRender(ctx, string(view), start, err)
	return html, err
}

// ErrorPage renders the standalone error document.
func (s *Service) ErrorPage() (template.HTML, error) {
	return s.renderer.RenderErrorPage(LoadFailedMessage)
}

// ErrorNotice renders the error notice fragment.
func (s *Service) ErrorNotice() (template.HTML, error) {
	return s.renderer.RenderError(LoadFailedMessage)
}

func (s *Service) recordRender(ctx context.Context, view string, start time.Time, err error) {
	elapsed := time.Since(start)
	s.metrics.RecordRender(view, elapsed, err)

	logger := logging.FromContext(ctx, s.logger)
	if err != nil {
		logging.Error(logger, "render failed", err,
			slog.String(logging.FieldView, view),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
		)
		return
	}
	if logger != nil {
		logger.Debug("rendered",
			slog.String(logging.FieldView, view),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
		)
	}
}
