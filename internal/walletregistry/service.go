// Package walletregistry manages the set of wallets whose activity should
// be monitored, delegating persistence to a pluggable storage backend.
package walletregistry

import "context"

// Service registers and unregisters wallets for activity monitoring.
type Service interface {
	// StartWatching registers a wallet for activity monitoring under the
	// given display label. An empty label defaults to the wallet address.
	StartWatching(ctx context.Context, network, address, label string) error

	// StopWatching unregisters a wallet from activity monitoring.
	StopWatching(ctx context.Context, network, address string) error
}

// service is the concrete implementation of the Service interface.
type service struct {
	walletStorage WalletStorage
}

var _ Service = (*service)(nil)

// New creates a walletregistry service using the provided WalletStorage
// implementation.
func New(ws WalletStorage) *service {
	return &service{
		walletStorage: ws,
	}
}
