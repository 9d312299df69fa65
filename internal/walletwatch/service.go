// Package walletwatch detects watched-wallet activity in observed blocks,
// classifies each involved transaction, and delivers human-readable
// notifications for actionable trades.
package walletwatch

import (
	"context"
	"time"
)

// defaultMaxProcessingTime bounds how long a block claim is held before
// another instance may retry it.
const defaultMaxProcessingTime = 5 * time.Minute

// Service handles wallet activity detection and notification for observed
// blocks.
type Service interface {
	// NotifyWalletActivity processes one observed block end to end. See the
	// implementation documentation for idempotency and failure semantics.
	NotifyWalletActivity(ctx context.Context, block Block) error
}

// service is the internal implementation of the Service interface.
type service struct {
	maxProcessingTime time.Duration
	idempotencyGuard  IdempotencyGuard

	walletStorage WalletStorage
	analyzer      ActivityAnalyzer
	formatter     SummaryFormatter
	notifier      Notifier
}

var _ Service = (*service)(nil)

type config struct {
	maxProcessingTime time.Duration
	idempotencyGuard  IdempotencyGuard
}

// Option customizes the walletwatch service.
type Option func(*config)

// New creates a walletwatch service from its collaborators: the watched
// wallet storage, the per-transaction analyzer, the summary formatter, and
// the delivery channel.
func New(ws WalletStorage, analyzer ActivityAnalyzer, formatter SummaryFormatter, notifier Notifier, opts ...Option) *service {
	cfg := config{
		maxProcessingTime: defaultMaxProcessingTime,
		idempotencyGuard:  nopIdempotencyGuard{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		maxProcessingTime: cfg.maxProcessingTime,
		idempotencyGuard:  cfg.idempotencyGuard,
		walletStorage:     ws,
		analyzer:          analyzer,
		formatter:         formatter,
		notifier:          notifier,
	}
}

// WithMaxProcessingTime overrides how long a block claim is held before it
// can be retaken. Default: 5 minutes.
func WithMaxProcessingTime(d time.Duration) Option {
	return func(c *config) {
		c.maxProcessingTime = d
	}
}

// WithIdempotencyGuard installs a durable guard so blocks are processed at
// most once across instances and restarts. Default: no-op guard.
func WithIdempotencyGuard(g IdempotencyGuard) Option {
	return func(c *config) {
		c.idempotencyGuard = g
	}
}
