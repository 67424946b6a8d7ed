package dashboard_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/preston-bernstein/dailypicks-service/internal/app/dashboard"
	"github.com/preston-bernstein/dailypicks-service/internal/domain/picks"
	"github.com/preston-bernstein/dailypicks-service/internal/testutil"
)

func TestLoadFetchesAllViews(t *testing.T) {
	p := &testutil.StubProvider{Docs: testutil.SampleDocuments()}

	bundle, err := dashboard.Load(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got := p.Calls.Load(); got != 4 {
		t.Fatalf("expected 4 fetches, got %d", got)
	}
	if len(bundle.Yesterday.Games) == 0 || len(bundle.Today.Games) == 0 || len(bundle.Tomorrow.Games) == 0 {
		t.Fatalf("expected all documents decoded, got %+v", bundle)
	}
	if bundle.Performance.ModelStats.TotalPredictions == 0 {
		t.Fatalf("expected performance stats decoded")
	}
}

func TestLoadIsAllOrNothing(t *testing.T) {
	boom := errors.New("boom")
	p := &testutil.StubProvider{
		Docs: testutil.SampleDocuments(),
		Errs: map[picks.View]error{picks.ViewTomorrow: boom},
	}

	bundle, err := dashboard.Load(context.Background(), p)
	if !errors.Is(err, boom) {
		t.Fatalf("expected fetch error, got %v", err)
	}
	if len(bundle.Today.Games) != 0 || len(bundle.Yesterday.Games) != 0 {
		t.Fatalf("expected no partial bundle on failure")
	}
	// every fetch still runs to completion; siblings are not abandoned
	if got := p.Calls.Load(); got != 4 {
		t.Fatalf("expected all 4 fetches attempted, got %d", got)
	}
}

func TestLoadRejectsMalformedDocument(t *testing.T) {
	docs := testutil.SampleDocuments()
	docs[picks.ViewPerformance] = []byte(`{"model_stats": [}`)
	_, err := dashboard.Load(context.Background(), &testutil.StubProvider{Docs: docs})
	if err == nil {
		t.Fatalf("expected decode error")
	}
}

type gatedProvider struct {
	docs    map[picks.View][]byte
	release chan struct{}
	mu      sync.Mutex
	active  int
	peak    int
}

func (g *gatedProvider) FetchDocument(ctx context.Context, view picks.View) ([]byte, error) {
	_ = ctx
	g.mu.Lock()
	g.active++
	if g.active > g.peak {
		g.peak = g.active
	}
	g.mu.Unlock()

	<-g.release

	g.mu.Lock()
	g.active--
	g.mu.Unlock()
	return g.docs[view], nil
}

func TestLoadFetchesConcurrently(t *testing.T) {
	g := &gatedProvider{docs: testutil.SampleDocuments(), release: make(chan struct{})}
	done := make(chan error, 1)
	go func() {
		_, err := dashboard.Load(context.Background(), g)
		done <- err
	}()

	deadline := time.After(time.Second)
	for {
		g.mu.Lock()
		active := g.active
		g.mu.Unlock()
		if active == 4 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("expected all four fetches in flight, got %d", active)
		case <-time.After(time.Millisecond):
		}
	}
	close(g.release)
	if err := <-done; err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestLoadViewFetchesSingleDocument(t *testing.T) {
	p := &testutil.StubProvider{Docs: testutil.SampleDocuments()}
	bundle, err := dashboard.LoadView(context.Background(), p, picks.ViewToday)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if fetched := p.Fetched(); len(fetched) != 1 || fetched[0] != picks.ViewToday {
		t.Fatalf("expected only today fetched, got %v", fetched)
	}
	if len(bundle.Today.Games) == 0 {
		t.Fatalf("expected today games")
	}
	if _, err := dashboard.LoadView(context.Background(), testutil.ErrProvider{Err: errors.New("down")}, picks.ViewToday); err == nil {
		t.Fatalf("expected error from failing provider")
	}
}
