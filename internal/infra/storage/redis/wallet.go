package redis

import (
	"context"
	"fmt"

	"github.com/gabapcia/tokenwatch/internal/walletregistry"
	"github.com/gabapcia/tokenwatch/internal/walletwatch"
)

// walletRegistryPrefix defines the base key prefix used for storing
// watched wallets in Redis.
const walletRegistryPrefix = "wallet"

// walletRegistryKey returns the Redis key under which watched wallets are
// stored for the specified blockchain network. Each network maps to a hash
// whose fields are lowercase wallet addresses and whose values are the
// display labels to use in notifications.
//
// Format: "wallet:registry:{network}"
func walletRegistryKey(network string) string {
	return fmt.Sprintf("%s:registry:%s", walletRegistryPrefix, network)
}

// RegisterWallet implements the walletregistry.WalletStorage interface.
//
// It stores the wallet address as a hash field mapped to its display label,
// overwriting any previous label for the same address.
func (c *client) RegisterWallet(ctx context.Context, id walletregistry.WalletIdentifier) error {
	key := walletRegistryKey(id.Network)
	return c.conn.HSet(ctx, key, id.Address, id.Label).Err()
}

// UnregisterWallet implements the walletregistry.WalletStorage interface.
//
// Removing an address that is not registered is a no-op.
func (c *client) UnregisterWallet(ctx context.Context, id walletregistry.WalletIdentifier) error {
	key := walletRegistryKey(id.Network)
	return c.conn.HDel(ctx, key, id.Address).Err()
}

// FilterWatchedWallets implements the walletwatch.WalletStorage interface.
//
// It checks which wallet addresses from the provided list are currently being
// monitored for the given blockchain network. Internally, this uses a single
// HMGET against the network's registry hash, so the check costs one round
// trip regardless of how many addresses a block touches.
//
// Parameters:
//   - ctx: context used for cancellation and timeout control.
//   - network: blockchain network identifier (e.g., "ethereum").
//   - addresses: list of lowercase wallet addresses to check.
//
// Returns:
//   - A map from each watched address to its display label.
//   - An error if the Redis query fails or cannot be completed.
func (c *client) FilterWatchedWallets(ctx context.Context, network string, addresses []string) (map[string]string, error) {
	if len(addresses) == 0 {
		return nil, nil
	}

	key := walletRegistryKey(network)

	labels, err := c.conn.HMGet(ctx, key, addresses...).Result()
	if err != nil {
		return nil, err
	}

	matched := make(map[string]string, len(addresses))
	for i, label := range labels {
		if label == nil {
			continue
		}

		if s, ok := label.(string); ok {
			matched[addresses[i]] = s
		}
	}

	return matched, nil
}

// Compile-time assertions to ensure *client satisfies both wallet storage interfaces
var (
	_ walletregistry.WalletStorage = new(client)
	_ walletwatch.WalletStorage    = new(client)
)
