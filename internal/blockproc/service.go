// Package blockproc coordinates the block-level processing pipeline,
// wiring the chainstream block source into the wallet activity workflow.
package blockproc

import (
	"context"
	"errors"
	"sync"

	"github.com/gabapcia/tokenwatch/internal/chainstream"
	"github.com/gabapcia/tokenwatch/internal/walletwatch"
)

// ErrServiceAlreadyStarted is returned if Start is called more than once.
var ErrServiceAlreadyStarted = errors.New("service already started")

// Service is the pipeline lifecycle and coordination entrypoint.
type Service interface {
	// Start begins the processing pipeline by launching chainstream and
	// wiring observed blocks into the wallet activity workflow. Returns
	// ErrServiceAlreadyStarted if called more than once.
	Start(ctx context.Context) error

	// Close shuts down the pipeline and cancels all background routines.
	// It is safe to call Close even if the service was never started.
	Close()
}

type closeFunc func()

// service is the internal implementation of the Service interface.
type service struct {
	mu        sync.Mutex // protects lifecycle state
	isStarted bool
	closeFunc closeFunc

	chainstream chainstream.Service // source of observed blocks
	walletwatch walletwatch.Service // wallet activity workflow
}

var _ Service = (*service)(nil)

// Start implements the Service interface.
func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	blocksCh, err := s.chainstream.Start(ctx)
	if err != nil {
		cancel()
		return err
	}

	s.startHandleWalletActivity(ctx, blocksCh)

	s.closeFunc = func() {
		cancel()
		s.chainstream.Close()
	}
	s.isStarted = true
	return nil
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

// New creates a blockproc service wiring the chainstream source into the
// walletwatch workflow.
func New(cs chainstream.Service, ww walletwatch.Service) *service {
	return &service{
		chainstream: cs,
		walletwatch: ww,
	}
}
