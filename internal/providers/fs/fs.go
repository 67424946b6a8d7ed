// Package fs serves documents from a directory of {view}.json files.
package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/preston-bernstein/dailypicks-service/internal/domain/picks"
	"github.com/preston-bernstein/dailypicks-service/internal/providers"
)

// Provider loads documents from the filesystem.
type Provider struct {
	basePath string
}

// New constructs an FS-backed provider rooted at basePath.
func New(basePath string) *Provider {
	return &Provider{basePath: basePath}
}

// Name identifies the provider in logs and metrics.
func (p *Provider) Name() string {
	return "fs"
}

// FetchDocument reads {basePath}/{view}.json.
func (p *Provider) FetchDocument(ctx context.Context, view picks.View) ([]byte, error) {
	_ = ctx
	if p == nil || p.basePath == "" {
		return nil, &providers.FetchError{Source: "fs", View: view, Err: errors.New("data directory not configured")}
	}
	if !view.Valid() {
		return nil, &providers.FetchError{Source: p.Name(), View: view, Err: fmt.Errorf("unknown view %q", view)}
	}
	raw, err := os.ReadFile(p.path(view))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = fmt.Errorf("%w: %s", providers.ErrDocumentNotFound, p.path(view))
		}
		return nil, &providers.FetchError{Source: p.Name(), View: view, Err: err}
	}
	return raw, nil
}

func (p *Provider) path(view picks.View) string {
	return filepath.Join(p.basePath, fmt.Sprintf("%s.json", view))
}
