// Package chainstream turns per-network block subscriptions into a single
// stream of observed blocks, with checkpoint persistence and bounded retry
// of failed block fetches.
package chainstream

import (
	"context"
	"errors"
	"sync"

	"github.com/gabapcia/tokenwatch/internal/pkg/logger"
	"github.com/gabapcia/tokenwatch/internal/pkg/resilience/retry"
)

// ErrServiceAlreadyStarted is returned if Start is called more than once.
var ErrServiceAlreadyStarted = errors.New("service already started")

// observedBlockChannelBufferSize absorbs short bursts of blocks without
// backpressuring the per-network subscription loops.
const observedBlockChannelBufferSize = 10

// Service is the chainstream lifecycle entrypoint.
type Service interface {
	// Start opens a subscription for every registered network and returns
	// the merged stream of observed blocks. It returns
	// ErrServiceAlreadyStarted if called more than once.
	Start(ctx context.Context) (<-chan ObservedBlock, error)

	// Close cancels all subscriptions and stops the stream. It is safe to
	// call Close even if the service was never started.
	Close()
}

type closeFunc func()

// fetchFailureHandler is invoked for blocks that stay unfetchable after all
// configured retries.
type fetchFailureHandler func(ctx context.Context, failure BlockFetchFailure)

// service is the internal implementation of the Service interface.
type service struct {
	mu        sync.Mutex // protects lifecycle state
	isStarted bool
	closeFunc closeFunc

	networks          map[string]Blockchain
	checkpointStorage CheckpointStorage

	retry               retry.Retry
	fetchFailureHandler fetchFailureHandler
}

var _ Service = (*service)(nil)

// Start implements the Service interface.
func (s *service) Start(ctx context.Context) (<-chan ObservedBlock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return nil, ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	observedBlockCh := make(chan ObservedBlock, observedBlockChannelBufferSize)

	s.closeFunc = func() {
		cancel()
		close(observedBlockCh)
	}

	for network, chain := range s.networks {
		if err := s.launchNetworkSubscription(ctx, network, chain, observedBlockCh); err != nil {
			s.closeFunc()
			s.closeFunc = nil
			return nil, err
		}
	}

	s.isStarted = true
	return observedBlockCh, nil
}

// Close implements the Service interface.
func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}
	s.closeFunc = nil
	s.isStarted = false
}

type config struct {
	retry               retry.Retry
	checkpointStorage   CheckpointStorage
	fetchFailureHandler fetchFailureHandler
}

// Option customizes the chainstream service.
type Option func(*config)

// New creates a chainstream service for the given networks.
//
// By default no retry is performed on failed block fetches, checkpoints are
// not persisted, and permanent fetch failures are logged.
func New(networks map[string]Blockchain, opts ...Option) *service {
	cfg := config{
		retry:               nil,
		checkpointStorage:   nopCheckpoint{},
		fetchFailureHandler: defaultOnFetchFailure,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		networks:            networks,
		checkpointStorage:   cfg.checkpointStorage,
		retry:               cfg.retry,
		fetchFailureHandler: cfg.fetchFailureHandler,
	}
}

func defaultOnFetchFailure(ctx context.Context, failure BlockFetchFailure) {
	logger.Error(ctx, "block fetch failure",
		"block.network", failure.Network,
		"block.height", failure.Height,
		"block.errors", errors.Join(failure.Errors...),
	)
}

// WithRetry enables retrying of failed block fetches with the given policy.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithCheckpointStorage persists the latest processed height per network so
// streams resume where they left off after a restart.
func WithCheckpointStorage(cs CheckpointStorage) Option {
	return func(c *config) {
		c.checkpointStorage = cs
	}
}

// WithFetchFailureHandler overrides the handler invoked for blocks that
// remain unfetchable after all retries.
func WithFetchFailureHandler(f fetchFailureHandler) Option {
	return func(c *config) {
		c.fetchFailureHandler = f
	}
}
