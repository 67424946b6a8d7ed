package providers

import (
	"context"

	"github.com/preston-bernstein/dailypicks-service/internal/domain/picks"
)

// DocumentProvider fetches the raw JSON document backing one view.
// Implementations must be safe for concurrent use; the loader fetches all views in parallel.
type DocumentProvider interface {
	FetchDocument(ctx context.Context, view picks.View) ([]byte, error)
}

// Named is implemented by providers that report a stable name for logs and metrics.
type Named interface {
	Name() string
}

// NameOf returns the provider's reported name, or "provider" when it has none.
func NameOf(p DocumentProvider) string {
	if n, ok := p.(Named); ok && n.Name() != "" {
		return n.Name()
	}
	return "provider"
}
