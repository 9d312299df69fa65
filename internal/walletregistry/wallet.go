package walletregistry

import (
	"context"
	"strings"

	"github.com/gabapcia/tokenwatch/internal/pkg/validator"
)

// WalletIdentifier uniquely identifies a wallet to be monitored on a
// blockchain network, together with the display label used when notifying
// about its activity.
//
// Addresses are canonicalized to lowercase before persistence so lookups
// are case-insensitive.
type WalletIdentifier struct {
	Network string `validate:"required"` // blockchain network (e.g., "ethereum")
	Address string `validate:"required"` // wallet address to be watched
	Label   string // display name for notifications; defaults to the address
}

// WalletStorage defines the persistence interface for wallet identifiers
// that have opted into monitoring.
type WalletStorage interface {
	// RegisterWallet adds the given WalletIdentifier to the set of watched
	// wallets, overwriting the label if the wallet is already registered.
	// It is idempotent.
	RegisterWallet(ctx context.Context, id WalletIdentifier) error

	// UnregisterWallet removes the given WalletIdentifier from the set of
	// watched wallets. After this call, the wallet no longer receives
	// activity notifications.
	UnregisterWallet(ctx context.Context, id WalletIdentifier) error
}

// buildWalletIdentifier constructs and validates a WalletIdentifier,
// canonicalizing the address and defaulting the label to the address when
// none is provided.
func buildWalletIdentifier(network, address, label string) (WalletIdentifier, error) {
	address = strings.ToLower(address)
	if label == "" {
		label = address
	}

	id := WalletIdentifier{
		Network: network,
		Address: address,
		Label:   label,
	}

	return id, validator.Validate(id)
}

// StartWatching registers a wallet for activity monitoring.
//
// It validates the input, constructs a WalletIdentifier, and persists it
// using WalletStorage.
func (s *service) StartWatching(ctx context.Context, network, address, label string) error {
	id, err := buildWalletIdentifier(network, address, label)
	if err != nil {
		return err
	}

	return s.walletStorage.RegisterWallet(ctx, id)
}

// StopWatching unregisters a wallet from activity monitoring.
func (s *service) StopWatching(ctx context.Context, network, address string) error {
	id, err := buildWalletIdentifier(network, address, "")
	if err != nil {
		return err
	}

	return s.walletStorage.UnregisterWallet(ctx, id)
}
