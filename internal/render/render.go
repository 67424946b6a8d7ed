package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/preston-bernstein/dailypicks-service/internal/domain/picks"
	"github.com/preston-bernstein/dailypicks-service/internal/domain/teams"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

//go:embed static/styles.css
var stylesheet []byte

// ErrUnknownView is returned when asked to render a view that does not exist.
var ErrUnknownView = errors.New("unknown view")

const (
	pageDateLayout    = "Monday, January 2, 2006"
	lastUpdatedLayout = "1/2/2006 3:04:05 PM"
)

// Result is the rendered output of one view: a summary fragment and one fragment per game,
// in input order.
type Result struct {
	View    picks.View
	Summary template.HTML
	Games   []template.HTML
}

// Renderer turns documents into HTML fragments. It holds no per-render state, so the same
// input always yields byte-identical output.
type Renderer struct {
	dir  *teams.Directory
	tmpl *template.Template
}

// New parses the embedded templates against dir.
func New(dir *teams.Directory) (*Renderer, error) {
	tmpl, err := template.New("render").Funcs(templateFuncs(dir)).ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{dir: dir, tmpl: tmpl}, nil
}

// MustNew is New that panics; the templates are embedded so failure is a build defect.
func MustNew(dir *teams.Directory) *Renderer {
	r, err := New(dir)
	if err != nil {
		panic(err)
	}
	return r
}

// Stylesheet returns the CSS that the fragments are written against.
func Stylesheet() []byte {
	out := make([]byte, len(stylesheet))
	copy(out, stylesheet)
	return out
}

// Directory exposes the team directory the renderer resolves names against.
func (r *Renderer) Directory() *teams.Directory {
	return r.dir
}

// Render renders one view out of b.
func (r *Renderer) Render(view picks.View, b picks.Bundle) (Result, error) {
	switch view {
	case picks.ViewYesterday:
		return r.RenderYesterday(b.Yesterday)
	case picks.ViewToday:
		return r.RenderToday(b.Today)
	case picks.ViewTomorrow:
		return r.RenderTomorrow(b.Tomorrow)
	case picks.ViewPerformance:
		return r.RenderPerformance(b.Performance)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownView, view)
	}
}

// RenderAll renders every view in page order.
func (r *Renderer) RenderAll(b picks.Bundle) ([]Result, error) {
	results := make([]Result, 0, len(picks.AllViews()))
	for _, view := range picks.AllViews() {
		res, err := r.Render(view, b)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// RenderYesterday renders the results view.
func (r *Renderer) RenderYesterday(doc picks.YesterdayDoc) (Result, error) {
	res := Result{View: picks.ViewYesterday}
	var err error
	if res.Summary, err = r.exec("summary-yesterday", doc.Summary); err != nil {
		return Result{}, err
	}
	for _, g := range doc.Games {
		frag, err := r.exec("game-yesterday", g)
		if err != nil {
			return Result{}, err
		}
		res.Games = append(res.Games, frag)
	}
	return res, nil
}

// RenderToday renders the same-day predictions view.
func (r *Renderer) RenderToday(doc picks.TodayDoc) (Result, error) {
	res := Result{View: picks.ViewToday}
	var err error
	if res.Summary, err = r.exec("summary-today", doc.Summary); err != nil {
		return Result{}, err
	}
	for _, g := range doc.Games {
		frag, err := r.exec("game-today", g)
		if err != nil {
			return Result{}, err
		}
		res.Games = append(res.Games, frag)
	}
	return res, nil
}

// RenderTomorrow renders the preview view.
func (r *Renderer) RenderTomorrow(doc picks.TomorrowDoc) (Result, error) {
	res := Result{View: picks.ViewTomorrow}
	var err error
	if res.Summary, err = r.exec("summary-tomorrow", doc.Summary); err != nil {
		return Result{}, err
	}
	for _, g := range doc.Games {
		frag, err := r.exec("game-tomorrow", g)
		if err != nil {
			return Result{}, err
		}
		res.Games = append(res.Games, frag)
	}
	return res, nil
}

// RenderPerformance renders the model performance view. It has a summary and no games.
func (r *Renderer) RenderPerformance(doc picks.PerformanceDoc) (Result, error) {
	summary, err := r.exec("summary-performance", doc)
	if err != nil {
		return Result{}, err
	}
	return Result{View: picks.ViewPerformance, Summary: summary}, nil
}

type sectionData struct {
	ID      picks.View
	Title   string
	Summary template.HTML
	Games   []template.HTML
}

// RenderSection wraps a view result in its page section.
func (r *Renderer) RenderSection(res Result) (template.HTML, error) {
	return r.exec("section", sectionData{
		ID:      res.View,
		Title:   res.View.Title(),
		Summary: res.Summary,
		Games:   res.Games,
	})
}

type pageData struct {
	Date        string
	LastUpdated string
	Sections    []template.HTML
}

// RenderPage renders the whole dashboard. Dates are shown in now's location.
func (r *Renderer) RenderPage(b picks.Bundle, now time.Time) (template.HTML, error) {
	results, err := r.RenderAll(b)
	if err != nil {
		return "", err
	}
	data := pageData{Date: now.Format(pageDateLayout)}
	if updated := b.Performance.ModelStats.LastUpdated; updated != nil && !updated.IsZero() {
		data.LastUpdated = updated.In(now.Location()).Format(lastUpdatedLayout)
	}
	for _, res := range results {
		section, err := r.RenderSection(res)
		if err != nil {
			return "", err
		}
		data.Sections = append(data.Sections, section)
	}
	return r.exec("page", data)
}

// RenderError renders the single retry-capable notice shown when a render pass fails.
func (r *Renderer) RenderError(message string) (template.HTML, error) {
	return r.exec("error", message)
}

// RenderErrorPage renders the error notice as a standalone document.
func (r *Renderer) RenderErrorPage(message string) (template.HTML, error) {
	notice, err := r.RenderError(message)
	if err != nil {
		return "", err
	}
	return r.exec("error-page", notice)
}

func (r *Renderer) exec(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}
