package dashboard

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/dailypicks-service/internal/domain/picks"
	"github.com/preston-bernstein/dailypicks-service/internal/providers"
)

// Load fetches the four view documents concurrently and decodes them into a Bundle.
// Every fetch runs to completion before the result is decided; if any fetch or decode fails the
// first error is returned and no partial bundle is exposed. Siblings are not cancelled.
func Load(ctx context.Context, provider providers.DocumentProvider) (picks.Bundle, error) {
	views := picks.AllViews()
	raw := make([][]byte, len(views))

	var g errgroup.Group
	for i, v := range views {
		i, v := i, v
		g.Go(func() error {
			doc, err := provider.FetchDocument(ctx, v)
			if err != nil {
				return fmt.Errorf("load %s: %w", v, err)
			}
			raw[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return picks.Bundle{}, err
	}

	var bundle picks.Bundle
	for i, v := range views {
		if err := bundle.Decode(v, raw[i]); err != nil {
			return picks.Bundle{}, err
		}
	}
	return bundle, nil
}

// LoadView fetches and decodes a single view's document into an otherwise empty Bundle.
func LoadView(ctx context.Context, provider providers.DocumentProvider, view picks.View) (picks.Bundle, error) {
	var bundle picks.Bundle
	doc, err := provider.FetchDocument(ctx, view)
	if err != nil {
		return bundle, fmt.Errorf("load %s: %w", view, err)
	}
	if err := bundle.Decode(view, doc); err != nil {
		return picks.Bundle{}, err
	}
	return bundle, nil
}
