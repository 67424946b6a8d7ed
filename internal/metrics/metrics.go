package metrics

import (
	"sync"
	"time"
)

type viewStats struct {
	fetches           int
	fetchErrors       int
	renders           int
	renderErrors      int
	lastFetchLatency  time.Duration
	lastRenderLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about document fetches and renders per view.
// When built by Setup it also forwards every observation to OpenTelemetry instruments.
type Recorder struct {
	mu            sync.Mutex
	stats         map[string]*viewStats
	publishCycles int
	publishErrors int
	otel          *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*viewStats),
		otel:  otel,
	}
}

// RecordDocumentFetch counts one fetch of a view document from source.
func (r *Recorder) RecordDocumentFetch(source, view string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.update(view, func(s *viewStats) {
		s.fetches++
		s.lastFetchLatency = duration
		if err != nil {
			s.fetchErrors++
		}
	})
	if r.otel != nil {
		r.otel.recordFetch(source, view, duration, err)
	}
}

// RecordRender counts one render pass for a view ("page" for the whole dashboard).
func (r *Recorder) RecordRender(view string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.update(view, func(s *viewStats) {
		s.renders++
		s.lastRenderLatency = duration
		if err != nil {
			s.renderErrors++
		}
	})
	if r.otel != nil {
		r.otel.recordRender(view, duration, err)
	}
}

// RecordPublishCycle tracks static publish cycles and errors.
func (r *Recorder) RecordPublishCycle(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.publishCycles++
	if err != nil {
		r.publishErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPublish(duration, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot returns a copy of the current stats for a view.
type Snapshot struct {
	Fetches           int
	FetchErrors       int
	Renders           int
	RenderErrors      int
	LastFetchLatency  time.Duration
	LastRenderLatency time.Duration
}

func (r *Recorder) Snapshot(view string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[view]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Fetches:           stats.fetches,
		FetchErrors:       stats.fetchErrors,
		Renders:           stats.renders,
		RenderErrors:      stats.renderErrors,
		LastFetchLatency:  stats.lastFetchLatency,
		LastRenderLatency: stats.lastRenderLatency,
	}
}

// PublishCycles returns the number of publish cycles and how many of them failed.
func (r *Recorder) PublishCycles() (cycles int, failures int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.publishCycles, r.publishErrors
}

func (r *Recorder) update(view string, fn func(*viewStats)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[view]
	if !ok {
		stats = &viewStats{}
		r.stats[view] = stats
	}
	fn(stats)
}
