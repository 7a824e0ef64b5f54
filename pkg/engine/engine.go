// Package engine implements the five backup operations — snapshot, list,
// restore, prune, and check — on top of pkg/store and pkg/content.
package engine

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsolano/ridgevault/internal/bytesize"
	"github.com/jsolano/ridgevault/pkg/content"
	"github.com/jsolano/ridgevault/pkg/store"
	"github.com/jsolano/ridgevault/pkg/walk"
)

// Engine drives the backup operations against a single store.
type Engine struct {
	store       *store.Store
	walker      walk.Walker
	maxFileSize bytesize.ByteSize
	metrics     *Metrics
}

// Option configures an Engine.
type Option func(*Engine)

// WithWalker overrides the default OS filesystem walker, primarily for
// tests that need a synthetic directory tree.
func WithWalker(w walk.Walker) Option {
	return func(e *Engine) { e.walker = w }
}

// WithMaxFileSize overrides the default per-file size cap. A value of 0
// disables the cap.
func WithMaxFileSize(max bytesize.ByteSize) Option {
	return func(e *Engine) { e.maxFileSize = max }
}

// WithMetrics registers Prometheus collectors for snapshot/restore/prune/check
// operations against registry. A nil registry (the default) leaves the
// Engine uninstrumented; no HTTP exposition is started here or anywhere
// else in this package.
func WithMetrics(registry prometheus.Registerer) Option {
	return func(e *Engine) { e.metrics = NewMetrics(registry) }
}

// New creates an Engine backed by st.
func New(st *store.Store, opts ...Option) *Engine {
	e := &Engine{
		store:       st,
		walker:      walk.OSWalker{},
		maxFileSize: content.DefaultMaxSize,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
