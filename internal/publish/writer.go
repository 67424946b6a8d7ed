package publish

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/preston-bernstein/dailypicks-service/internal/domain/picks"
	"github.com/preston-bernstein/dailypicks-service/internal/timeutil"
)

const defaultRetentionDays = 30

// Site is one complete set of pages to publish.
type Site struct {
	Date       string // YYYY-MM-DD used for the archive copy
	Page       []byte
	Views      map[picks.View][]byte
	Stylesheet []byte
}

// Writer persists published pages and the manifest, pruning old archive copies.
type Writer struct {
	basePath      string
	retentionDays int
	now           func() time.Time
}

// NewWriter constructs a writer rooted at basePath with a rolling archive retention.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = defaultRetentionDays
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
		now:           time.Now,
	}
}

// BasePath exposes the writer root path.
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// Write publishes site and returns how many files changed on disk.
func (w *Writer) Write(site Site) (int, error) {
	if w == nil {
		return 0, errors.New("publish writer not configured")
	}
	if _, err := timeutil.ParseDate(site.Date); err != nil {
		return 0, fmt.Errorf("archive date %q: %w", site.Date, err)
	}
	if len(site.Page) == 0 {
		return 0, errors.New("page required")
	}

	changed := 0
	write := func(path string, data []byte) error {
		ok, err := writeAtomic(path, data)
		if err != nil {
			return err
		}
		if ok {
			changed++
		}
		return nil
	}

	if err := write(IndexPath(w.basePath), site.Page); err != nil {
		return changed, err
	}
	if err := write(ArchivePath(w.basePath, site.Date), site.Page); err != nil {
		return changed, err
	}
	views := make([]string, 0, len(site.Views))
	for _, v := range picks.AllViews() {
		data, ok := site.Views[v]
		if !ok {
			continue
		}
		if err := write(ViewPath(w.basePath, v), data); err != nil {
			return changed, err
		}
		views = append(views, string(v))
	}
	if len(site.Stylesheet) > 0 {
		for _, path := range StylesheetPaths(w.basePath) {
			if err := write(path, site.Stylesheet); err != nil {
				return changed, err
			}
		}
	}

	return changed, w.updateManifest(site.Date, views)
}

func (w *Writer) updateManifest(date string, views []string) error {
	now := w.now().UTC()
	m, err := ReadManifest(ManifestPath(w.basePath))
	if err != nil {
		m = defaultManifest(w.retentionDays, now)
	}

	dates, err := w.listArchiveDates()
	if err != nil {
		return err
	}
	if !containsDate(dates, date) {
		dates = append(dates, date)
	}
	m.Archive.Dates = w.pruneArchive(dates, now)
	m.Archive.LastPublished = now
	m.Retention.ArchiveDays = w.retentionDays
	m.Views = views
	m.GeneratedAt = now

	return writeManifest(w.basePath, m)
}

func containsDate(dates []string, date string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}

func (w *Writer) listArchiveDates() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(w.basePath, archiveDir))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	var dates []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".html" {
			continue
		}
		dates = append(dates, strings.TrimSuffix(e.Name(), ".html"))
	}
	sort.Strings(dates)
	return dates, nil
}

func (w *Writer) pruneArchive(dates []string, now time.Time) []string {
	keep := []string{}
	for _, d := range dates {
		if timeutil.Expired(d, now, w.retentionDays) {
			_ = os.Remove(ArchivePath(w.basePath, d))
			continue
		}
		keep = append(keep, d)
	}
	sort.Strings(keep)
	return keep
}

// writeAtomic writes data via a temp file and rename. Unchanged content is left untouched and
// reported as not changed.
func writeAtomic(target string, data []byte) (bool, error) {
	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return false, err
	}
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return false, err
	}
	if err := os.Rename(tmp, target); err != nil {
		return false, err
	}
	return true, nil
}
