package handlers

import (
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/preston-bernstein/dailypicks-service/internal/app/dashboard"
	appteams "github.com/preston-bernstein/dailypicks-service/internal/app/teams"
	"github.com/preston-bernstein/dailypicks-service/internal/domain/picks"
	"github.com/preston-bernstein/dailypicks-service/internal/domain/teams"
	"github.com/preston-bernstein/dailypicks-service/internal/logging"
	"github.com/preston-bernstein/dailypicks-service/internal/publish"
)

const maxSearchLimit = 30

// Handler wires HTTP routes to the dashboard and team services.
type Handler struct {
	dash       *dashboard.Service
	teams      *appteams.Service
	stylesheet []byte
	logger     *slog.Logger
	statusFn   func() publish.Status
}

// NewHandler constructs a Handler. statusFn may be nil when no publisher runs.
func NewHandler(dash *dashboard.Service, teamSvc *appteams.Service, stylesheet []byte, logger *slog.Logger, statusFn func() publish.Status) *Handler {
	return &Handler{
		dash:       dash,
		teams:      teamSvc,
		stylesheet: stylesheet,
		logger:     logger,
		statusFn:   statusFn,
	}
}

// ServeHTTP dispatches by path so the handler can be mounted without a router.
func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch {
	case r.URL.Path == "/":
		h.Page(w, r)
	case r.URL.Path == "/health":
		h.Health(w, r)
	case r.URL.Path == "/ready":
		h.Ready(w, r)
	case r.URL.Path == "/teams":
		h.Teams(w, r)
	case r.URL.Path == "/static/styles.css":
		h.Stylesheet(w, r)
	case strings.HasPrefix(r.URL.Path, "/views/"):
		h.View(w, r)
	case strings.HasPrefix(r.URL.Path, "/teams/"):
		h.TeamByID(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic. With a publisher running, readiness follows its status.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Page renders the full dashboard. A failed load yields the error page with a retry button.
func (h *Handler) Page(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.URL.Path != "/" {
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
		return
	}
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	page, err := h.dash.Page(r.Context())
	if err != nil {
		h.writeLoadFailure(w, r, "", err)
		return
	}
	writeHTML(w, nethttp.StatusOK, page, h.logger)
}

// View renders one view's section fragment: /views/{view}.
func (h *Handler) View(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	raw, ok := pathParam(r.URL.Path, "/views/")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid view", h.logger)
		return
	}
	view, err := picks.ParseView(raw)
	if err != nil {
		writeError(w, r, nethttp.StatusNotFound, "unknown view", h.logger)
		return
	}
	section, err := h.dash.View(r.Context(), view)
	if err != nil {
		h.writeLoadFailure(w, r, view, err)
		return
	}
	writeHTML(w, nethttp.StatusOK, section, h.logger)
}

// Teams lists the directory, or ranks it against ?q= when present.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeJSON(w, nethttp.StatusOK, map[string]any{"teams": h.teams.Teams()}, h.logger)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxSearchLimit {
			writeError(w, r, nethttp.StatusBadRequest, "invalid limit", h.logger)
			return
		}
		limit = n
	}
	matches := h.teams.Search(query, limit)
	if matches == nil {
		matches = []teams.Match{}
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{"query": query, "matches": matches}, h.logger)
}

// TeamByID returns one team: /teams/{id}.
func (h *Handler) TeamByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	id, ok := pathParam(r.URL.Path, "/teams/")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team id", h.logger)
		return
	}
	team, found := h.teams.TeamByID(id)
	if !found {
		writeError(w, r, nethttp.StatusNotFound, "team not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, team, h.logger)
}

// Stylesheet serves the embedded dashboard stylesheet.
func (h *Handler) Stylesheet(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.WriteHeader(nethttp.StatusOK)
	_, _ = w.Write(h.stylesheet)
}

func (h *Handler) writeLoadFailure(w nethttp.ResponseWriter, r *nethttp.Request, view picks.View, err error) {
	logger := loggerFromContext(r, h.logger)
	attrs := []any{}
	if view != "" {
		attrs = append(attrs, slog.String(logging.FieldView, string(view)))
	}
	logging.Error(logger, "dashboard load failed", err, attrs...)

	render := h.dash.ErrorPage
	if view != "" {
		render = h.dash.ErrorNotice
	}
	body, renderErr := render()
	if renderErr != nil {
		writeError(w, r, nethttp.StatusInternalServerError, "render failed", h.logger)
		return
	}
	writeHTML(w, nethttp.StatusBadGateway, body, h.logger)
}

// pathParam extracts the single segment after prefix.
func pathParam(path, prefix string) (string, bool) {
	raw := strings.TrimPrefix(path, prefix)
	if raw == "" || raw == path {
		return "", false
	}
	val, err := url.PathUnescape(raw)
	if err != nil || val == "" || strings.ContainsAny(val, " \t/") {
		return "", false
	}
	return val, true
}
