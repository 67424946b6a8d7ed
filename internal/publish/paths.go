package publish

import (
	"fmt"
	"path/filepath"

	"github.com/preston-bernstein/dailypicks-service/internal/domain/picks"
)

const (
	indexFile      = "index.html"
	manifestFile   = "manifest.json"
	viewsDir       = "views"
	archiveDir     = "archive"
	staticDir      = "static"
	stylesheetFile = "styles.css"
)

// IndexPath is the published dashboard page.
func IndexPath(basePath string) string {
	return filepath.Join(basePath, indexFile)
}

// ViewPath is the published section fragment for a view.
func ViewPath(basePath string, view picks.View) string {
	return filepath.Join(basePath, viewsDir, fmt.Sprintf("%s.html", view))
}

// ArchivePath is the dated copy of the dashboard page for a given date (YYYY-MM-DD).
func ArchivePath(basePath, date string) string {
	return filepath.Join(basePath, archiveDir, fmt.Sprintf("%s.html", date))
}

// StylesheetPaths lists every location the stylesheet is written to. Archive pages sit one
// directory down and resolve the same relative href against their own directory.
func StylesheetPaths(basePath string) []string {
	return []string{
		filepath.Join(basePath, staticDir, stylesheetFile),
		filepath.Join(basePath, archiveDir, staticDir, stylesheetFile),
	}
}

// ManifestPath is the publish manifest.
func ManifestPath(basePath string) string {
	return filepath.Join(basePath, manifestFile)
}
