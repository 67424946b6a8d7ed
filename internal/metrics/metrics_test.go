package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestRecorderTracksFetchesAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordDocumentFetch("fixture", "today", 10*time.Millisecond, nil)
	rec.RecordDocumentFetch("fixture", "today", 15*time.Millisecond, errors.New("boom"))

	snap := rec.Snapshot("today")
	if snap.Fetches != 2 || snap.FetchErrors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if snap.LastFetchLatency != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", snap.LastFetchLatency)
	}
	if other := rec.Snapshot("yesterday"); other != (Snapshot{}) {
		t.Fatalf("expected empty snapshot for untouched view, got %+v", other)
	}
}

func TestRecorderTracksRenders(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRender("page", 2*time.Millisecond, nil)
	rec.RecordRender("page", 3*time.Millisecond, errors.New("template"))

	snap := rec.Snapshot("page")
	if snap.Renders != 2 || snap.RenderErrors != 1 || snap.LastRenderLatency != 3*time.Millisecond {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestRecorderTracksPublishCycles(t *testing.T) {
	rec := NewRecorder()
	rec.RecordPublishCycle(time.Millisecond, nil)
	rec.RecordPublishCycle(time.Millisecond, errors.New("disk full"))

	cycles, failures := rec.PublishCycles()
	if cycles != 2 || failures != 1 {
		t.Fatalf("expected 2 cycles and 1 failure, got %d/%d", cycles, failures)
	}
}

func TestRecorderNilSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordDocumentFetch("fixture", "today", time.Millisecond, nil)
	rec.RecordRender("today", time.Millisecond, nil)
	rec.RecordPublishCycle(time.Millisecond, nil)
	rec.RecordHTTPRequest("GET", "/", 200, time.Millisecond)
	if rec.Snapshot("today") != (Snapshot{}) {
		t.Fatalf("expected zero snapshot")
	}
	if c, f := rec.PublishCycles(); c != 0 || f != 0 {
		t.Fatalf("expected zero cycles")
	}
}

func TestRecorderConcurrentFetches(t *testing.T) {
	rec := NewRecorder()
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec.RecordDocumentFetch("remote", "performance", time.Millisecond, nil)
		}()
	}
	wg.Wait()
	if got := rec.Snapshot("performance").Fetches; got != 4 {
		t.Fatalf("expected 4 fetches, got %d", got)
	}
}
