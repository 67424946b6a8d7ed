package testutil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/dailypicks-service/internal/domain/picks"
	"github.com/preston-bernstein/dailypicks-service/internal/providers"
)

func TestClockHelpers(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if got := NowAt(now)(); !got.Equal(now) {
		t.Fatalf("expected fixed time, got %v", got)
	}
	if MustParseRFC3339(now.Format(time.RFC3339)) != now {
		t.Fatalf("expected parse round trip")
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on invalid RFC3339")
		}
	}()
	MustParseRFC3339("not-a-time")
}

func TestFixturesHelper(t *testing.T) {
	b := SampleBundle(t)
	if b.Yesterday.Summary.TotalGames == 0 || len(b.Today.Games) == 0 {
		t.Fatalf("expected populated sample bundle, got %+v", b.Today.Summary)
	}
	docs := SampleDocuments()
	if len(docs) != len(picks.AllViews()) {
		t.Fatalf("expected a document per view, got %d", len(docs))
	}
	if NewRenderer(t) == nil {
		t.Fatalf("expected renderer")
	}
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rr := Serve(handler, http.MethodPost, "/test", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)
	var body map[string]bool
	DecodeJSON(t, rr, &body)
	if !body["ok"] {
		t.Fatalf("expected ok=true")
	}

	req := httptest.NewRequest(http.MethodGet, "/req", nil)
	rr2 := ServeRequest(handler, req)
	AssertStatus(t, rr2, http.StatusCreated)
}

func TestServerStubs(t *testing.T) {
	p := &StubPublisher{Err: errors.New("stop")}
	p.Start(context.Background())
	if err := p.Stop(context.Background()); !errors.Is(err, p.Err) {
		t.Fatalf("expected stop error")
	}
	if p.StartCalls != 1 || p.StopCalls != 1 {
		t.Fatalf("unexpected call counts %+v", p)
	}
	if p.Status() != p.StatusVal {
		t.Fatalf("expected status passthrough")
	}

	sh := &StubHTTPServer{ListenErr: errors.New("boom"), ShutdownErr: errors.New("down")}
	sh.HandlerVal = http.NewServeMux()
	_ = sh.ListenAndServe()
	_ = sh.Shutdown(context.Background())
	if sh.ListenCalls != 1 || sh.ShutdownCalls != 1 {
		t.Fatalf("expected listen/shutdown calls, got %+v", sh)
	}

	b := &BlockingHTTPServer{Unblock: make(chan struct{}), HandlerVal: http.NewServeMux()}
	done := make(chan error, 1)
	go func() { done <- b.Shutdown(context.Background()) }()
	close(b.Unblock)
	if err := <-done; err != nil {
		t.Fatalf("expected nil shutdown err, got %v", err)
	}

	e := &ErrHTTPServer{}
	if err := e.ListenAndServe(); err == nil {
		t.Fatalf("expected listen error")
	}
	c := &CloseableHTTPServer{}
	if err := c.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		t.Fatalf("expected ErrServerClosed, got %v", err)
	}
}

func TestLoggerAndMetricsHelpers(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello", "k", "v")
	if buf.Len() == 0 {
		t.Fatalf("expected buffered log output")
	}
	rec, shutdown := NewRecorderWithShutdown()
	if rec == nil || shutdown == nil {
		t.Fatalf("expected recorder and shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil shutdown error, got %v", err)
	}
}

func TestProviderHelpers(t *testing.T) {
	ctx := context.Background()
	docs := SampleDocuments()

	stub := &StubProvider{
		Docs: map[picks.View][]byte{picks.ViewToday: docs[picks.ViewToday]},
		Errs: map[picks.View]error{picks.ViewTomorrow: errors.New("boom")},
	}
	if raw, err := stub.FetchDocument(ctx, picks.ViewToday); err != nil || len(raw) == 0 {
		t.Fatalf("expected today document, got %v", err)
	}
	if _, err := stub.FetchDocument(ctx, picks.ViewTomorrow); err == nil {
		t.Fatalf("expected configured error")
	}
	if _, err := stub.FetchDocument(ctx, picks.ViewYesterday); !errors.Is(err, providers.ErrDocumentNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if stub.Calls.Load() != 3 || len(stub.Fetched()) != 3 {
		t.Fatalf("expected 3 recorded calls")
	}

	errProv := ErrProvider{Err: errors.New("boom")}
	if _, err := errProv.FetchDocument(ctx, picks.ViewToday); !errors.Is(err, errProv.Err) {
		t.Fatalf("expected error passthrough")
	}

	notify := &NotifyingProvider{Docs: docs, Notify: make(chan struct{})}
	if _, err := notify.FetchDocument(ctx, picks.ViewToday); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := notify.FetchDocument(ctx, picks.ViewToday); err != nil {
		t.Fatalf("expected second call to succeed, got %v", err)
	}
	select {
	case <-notify.Notify:
	default:
		t.Fatalf("expected notify channel closed")
	}
}
