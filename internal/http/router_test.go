package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/preston-bernstein/dailypicks-service/internal/app/dashboard"
	appteams "github.com/preston-bernstein/dailypicks-service/internal/app/teams"
	"github.com/preston-bernstein/dailypicks-service/internal/http/handlers"
	"github.com/preston-bernstein/dailypicks-service/internal/testutil"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	renderer := testutil.NewRenderer(t)
	p := &testutil.StubProvider{Docs: testutil.SampleDocuments()}
	svc := dashboard.NewService(p, renderer, dashboard.WithClock(testutil.NowAt(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))))
	h := handlers.NewHandler(svc, appteams.NewService(renderer.Directory()), []byte("body{}"), nil, nil)
	return NewRouter(h)
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter(t)

	cases := map[string]int{
		"/":                  http.StatusOK,
		"/health":            http.StatusOK,
		"/ready":             http.StatusOK,
		"/views/today":       http.StatusOK,
		"/views/performance": http.StatusOK,
		"/views/weekly":      http.StatusNotFound, // known route with unknown view
		"/teams":             http.StatusOK,
		"/teams/SEA":         http.StatusOK,
		"/teams/XXX":         http.StatusNotFound, // known route with missing team
		"/static/styles.css": http.StatusOK,
	}

	for path, expected := range cases {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown route, got %d", rr.Code)
	}
}
