package publish

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/dailypicks-service/internal/app/dashboard"
	"github.com/preston-bernstein/dailypicks-service/internal/domain/picks"
	"github.com/preston-bernstein/dailypicks-service/internal/logging"
	"github.com/preston-bernstein/dailypicks-service/internal/metrics"
	"github.com/preston-bernstein/dailypicks-service/internal/timeutil"
)

const defaultInterval = 15 * time.Minute

// Builder produces one full render pass.
type Builder interface {
	Build(ctx context.Context) (dashboard.Build, error)
}

// SiteWriter persists a rendered site.
type SiteWriter interface {
	Write(site Site) (int, error)
}

// Publisher renders the dashboard on an interval and writes it out as static files.
type Publisher struct {
	builder    Builder
	writer     SiteWriter
	stylesheet []byte
	logger     *slog.Logger
	metrics    *metrics.Recorder
	interval   time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the publish loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the publisher has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Publisher with sane defaults.
func New(builder Builder, writer SiteWriter, stylesheet []byte, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Publisher {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Publisher{
		builder:    builder,
		writer:     writer,
		stylesheet: stylesheet,
		logger:     logger,
		metrics:    recorder,
		interval:   interval,
		done:       make(chan struct{}),
		stopped:    make(chan struct{}),
	}
}

// Start begins publishing until the context is cancelled or Stop is called.
func (p *Publisher) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		defer close(p.stopped)
		p.logInfo("publisher started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		_ = p.PublishOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("publisher stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("publisher stopped")
				return
			case <-p.ticker.C:
				_ = p.PublishOnce(ctx)
			}
		}
	}()
}

// Stop halts the publish loop and waits for an in-flight cycle to finish or ctx to expire.
func (p *Publisher) Stop(ctx context.Context) error {
	p.stopOnce.Do(func() {
		close(p.done)
	})

	p.startMu.Lock()
	started := p.started
	p.startMu.Unlock()
	if !started {
		return nil
	}

	select {
	case <-p.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// PublishOnce runs a single build-and-write cycle.
func (p *Publisher) PublishOnce(ctx context.Context) error {
	start := time.Now()
	p.recordAttempt(start)

	changed, err := p.publish(ctx)
	if p.metrics != nil {
		p.metrics.RecordPublishCycle(time.Since(start), err)
	}
	if err != nil {
		logging.Error(p.logger, "publish failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		p.recordFailure(err, start)
		return err
	}

	p.recordSuccess(start)
	p.logInfo("published dashboard",
		logging.FieldCount, changed,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

func (p *Publisher) publish(ctx context.Context) (int, error) {
	build, err := p.builder.Build(ctx)
	if err != nil {
		return 0, err
	}
	site := Site{
		Date:       timeutil.FormatDate(build.GeneratedAt),
		Page:       []byte(build.Page),
		Views:      make(map[picks.View][]byte, len(build.Sections)),
		Stylesheet: p.stylesheet,
	}
	for _, s := range build.Sections {
		site.Views[s.View] = []byte(s.HTML)
	}
	return p.writer.Write(site)
}

func (p *Publisher) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Publisher) logInfo(msg string, args ...any) {
	logging.Info(p.logger, msg, args...)
}

func (p *Publisher) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Publisher) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Publisher) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the publisher's recent health.
func (p *Publisher) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
