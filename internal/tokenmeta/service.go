// Package tokenmeta resolves and memoizes ERC-20 token metadata (symbol,
// name, decimals). Resolution never fails: unreadable fields degrade to
// sentinel values so downstream display logic always has something to show.
package tokenmeta

import (
	"context"
	"sync"
	"time"
)

// Service resolves token contract metadata.
type Service interface {
	// Resolve returns the metadata for the given token contract address.
	// It never fails; see the method documentation on the implementation
	// for the sentinel and memoization behavior.
	Resolve(ctx context.Context, address string) TokenInfo
}

// service is the internal implementation of the Service interface.
//
// The cache maps lowercased token addresses to fully resolved TokenInfo
// values and is never evicted. It tolerates concurrent read/insert with
// last-write-wins semantics on duplicate resolution.
type service struct {
	reader      MetadataReader
	readTimeout time.Duration

	mu    sync.RWMutex
	cache map[string]TokenInfo
}

var _ Service = (*service)(nil)

type config struct {
	readTimeout time.Duration
}

// Option customizes the tokenmeta service.
type Option func(*config)

// New creates a tokenmeta service backed by the given MetadataReader.
func New(reader MetadataReader, opts ...Option) *service {
	cfg := config{
		readTimeout: defaultReadTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		reader:      reader,
		readTimeout: cfg.readTimeout,
		cache:       make(map[string]TokenInfo),
	}
}

// WithReadTimeout bounds the total time spent reading the metadata fields of
// a single token before falling back to sentinel values.
//
// Default: 3 seconds.
func WithReadTimeout(d time.Duration) Option {
	return func(c *config) {
		c.readTimeout = d
	}
}
