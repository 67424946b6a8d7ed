package testutil

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/dailypicks-service/internal/domain/picks"
	"github.com/preston-bernstein/dailypicks-service/internal/providers"
)

// StubProvider serves documents from a map and fails views listed in Errs.
type StubProvider struct {
	Docs map[picks.View][]byte
	Errs map[picks.View]error

	Calls atomic.Int32

	mu    sync.Mutex
	views []picks.View
}

// FetchDocument returns the configured document or error for view.
func (s *StubProvider) FetchDocument(ctx context.Context, view picks.View) ([]byte, error) {
	_ = ctx
	s.Calls.Add(1)
	s.mu.Lock()
	s.views = append(s.views, view)
	s.mu.Unlock()

	if err, ok := s.Errs[view]; ok && err != nil {
		return nil, err
	}
	raw, ok := s.Docs[view]
	if !ok {
		return nil, &providers.FetchError{Source: "stub", View: view, Err: providers.ErrDocumentNotFound}
	}
	return raw, nil
}

// Fetched returns the views requested so far.
func (s *StubProvider) Fetched() []picks.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]picks.View, len(s.views))
	copy(out, s.views)
	return out
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchDocument(ctx context.Context, view picks.View) ([]byte, error) {
	_ = ctx
	_ = view
	return nil, p.Err
}

// NotifyingProvider closes Notify on its first call, then serves Docs.
type NotifyingProvider struct {
	Docs   map[picks.View][]byte
	Notify chan struct{}
	once   sync.Once
}

func (p *NotifyingProvider) FetchDocument(ctx context.Context, view picks.View) ([]byte, error) {
	_ = ctx
	if p.Notify != nil {
		p.once.Do(func() { close(p.Notify) })
	}
	raw, ok := p.Docs[view]
	if !ok {
		return nil, providers.ErrDocumentNotFound
	}
	return raw, nil
}
