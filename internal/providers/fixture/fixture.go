package fixture

import (
	"context"
	"embed"
	"fmt"

	"github.com/preston-bernstein/dailypicks-service/internal/domain/picks"
	"github.com/preston-bernstein/dailypicks-service/internal/providers"
)

//go:embed data/*.json
var documents embed.FS

// Provider serves a static set of documents useful for local testing and bootstrapping.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// Name identifies the provider in logs and metrics.
func (p *Provider) Name() string {
	return "fixture"
}

// FetchDocument returns the embedded sample document for view.
func (p *Provider) FetchDocument(ctx context.Context, view picks.View) ([]byte, error) {
	_ = ctx
	if !view.Valid() {
		return nil, &providers.FetchError{Source: p.Name(), View: view, Err: fmt.Errorf("unknown view %q", view)}
	}
	raw, err := documents.ReadFile("data/" + string(view) + ".json")
	if err != nil {
		return nil, &providers.FetchError{Source: p.Name(), View: view, Err: providers.ErrDocumentNotFound}
	}
	return raw, nil
}

// Documents returns every embedded document keyed by view.
func Documents() map[picks.View][]byte {
	out := make(map[picks.View][]byte, len(picks.AllViews()))
	for _, v := range picks.AllViews() {
		raw, err := documents.ReadFile("data/" + string(v) + ".json")
		if err != nil {
			continue
		}
		out[v] = raw
	}
	return out
}
