package server

import (
	"context"

	"github.com/preston-bernstein/dailypicks-service/internal/publish"
)

// Publisher defines the minimal publisher behavior needed by the server.
type Publisher interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() publish.Status
}
