// Package ethereum adapts an EVM JSON-RPC node to the interfaces consumed
// by the rest of the system: the chainstream block source, the txanalysis
// transaction reader, and the tokenmeta metadata reader.
package ethereum

import (
	"time"

	"github.com/gabapcia/tokenwatch/internal/infra/blockchain/jsonrpc"
)

// defaultPollInterval matches the average Ethereum block time.
const defaultPollInterval = 12 * time.Second

// blockEventChannelBufferSize sizes the subscription channel so a burst of
// backlogged blocks does not stall the poller.
const blockEventChannelBufferSize = 16

type client struct {
	conn         jsonrpc.Caller
	pollInterval time.Duration
}

type config struct {
	pollInterval time.Duration
}

// Option customizes the Ethereum adapter.
type Option func(*config)

// NewClient creates an Ethereum adapter on top of the given JSON-RPC caller.
func NewClient(conn jsonrpc.Caller, opts ...Option) *client {
	cfg := config{
		pollInterval: defaultPollInterval,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		conn:         conn,
		pollInterval: cfg.pollInterval,
	}
}

// WithPollInterval overrides how often the adapter polls for new blocks.
// Default: 12 seconds, the average Ethereum block time.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.pollInterval = d
	}
}
