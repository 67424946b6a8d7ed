package testutil

import (
	"testing"

	"github.com/preston-bernstein/dailypicks-service/internal/domain/picks"
	"github.com/preston-bernstein/dailypicks-service/internal/domain/teams"
	"github.com/preston-bernstein/dailypicks-service/internal/providers/fixture"
	"github.com/preston-bernstein/dailypicks-service/internal/render"
)

// SampleBundle decodes the embedded fixture documents into a Bundle.
func SampleBundle(t *testing.T) picks.Bundle {
	t.Helper()
	var b picks.Bundle
	for view, raw := range fixture.Documents() {
		if err := b.Decode(view, raw); err != nil {
			t.Fatalf("decode fixture %s: %v", view, err)
		}
	}
	return b
}

// SampleDocuments returns a copy of the embedded fixture documents keyed by view.
func SampleDocuments() map[picks.View][]byte {
	return fixture.Documents()
}

// NewRenderer builds a renderer over the default team directory.
func NewRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	dir, err := teams.Default()
	if err != nil {
		t.Fatalf("load default directory: %v", err)
	}
	r, err := render.New(dir)
	if err != nil {
		t.Fatalf("build renderer: %v", err)
	}
	return r
}
