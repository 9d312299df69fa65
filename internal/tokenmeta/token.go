package tokenmeta

import (
	"context"
	"strings"
	"time"

	"github.com/gabapcia/tokenwatch/internal/pkg/logger"
)

// Sentinel values substituted when on-chain metadata cannot be read.
// Token metadata is display-only, so the pipeline never blocks on it.
const (
	sentinelSymbol   = "UNKNOWN"
	sentinelName     = "Unknown Token"
	sentinelDecimals = uint8(18)
)

// TokenInfo describes the display metadata of an ERC-20 token contract.
// Values are immutable once resolved.
type TokenInfo struct {
	Address  string // token contract address, as provided by the caller
	Symbol   string // e.g., "USDC", or "UNKNOWN" when unreadable
	Name     string // e.g., "USD Coin", or "Unknown Token" when unreadable
	Decimals uint8  // display precision, 18 when unreadable
}

// MetadataReader reads individual ERC-20 metadata fields from the chain.
//
// Each accessor fails independently: a token may expose a symbol but revert
// on name(), or vice versa. The resolver treats every field as optional and
// substitutes a sentinel for whichever reads fail.
type MetadataReader interface {
	// TokenSymbol returns the token's symbol (e.g., "WETH").
	TokenSymbol(ctx context.Context, address string) (string, error)

	// TokenName returns the token's full name (e.g., "Wrapped Ether").
	TokenName(ctx context.Context, address string) (string, error)

	// TokenDecimals returns the token's display precision.
	TokenDecimals(ctx context.Context, address string) (uint8, error)
}

// cacheKey canonicalizes a token address for cache lookups. Addresses are
// compared case-insensitively across the whole pipeline.
func cacheKey(address string) string {
	return strings.ToLower(address)
}

// fetch reads all three metadata fields from the chain, substituting the
// sentinel for any field that cannot be read. The second return value is
// false when at least one field fell back to its sentinel.
func (s *service) fetch(ctx context.Context, address string) (TokenInfo, bool) {
	ctx, cancel := context.WithTimeout(ctx, s.readTimeout)
	defer cancel()

	info := TokenInfo{
		Address:  address,
		Symbol:   sentinelSymbol,
		Name:     sentinelName,
		Decimals: sentinelDecimals,
	}

	complete := true

	symbol, err := s.reader.TokenSymbol(ctx, address)
	if err != nil {
		logger.Debug(ctx, "token symbol unavailable", "token.address", address, "error", err)
		complete = false
	} else {
		info.Symbol = symbol
	}

	name, err := s.reader.TokenName(ctx, address)
	if err != nil {
		logger.Debug(ctx, "token name unavailable", "token.address", address, "error", err)
		complete = false
	} else {
		info.Name = name
	}

	decimals, err := s.reader.TokenDecimals(ctx, address)
	if err != nil {
		logger.Debug(ctx, "token decimals unavailable", "token.address", address, "error", err)
		complete = false
	} else {
		info.Decimals = decimals
	}

	return info, complete
}

// Resolve returns the metadata for the given token contract address.
//
// Resolve never fails: any unreadable field degrades to its sentinel value.
// Fully resolved metadata is memoized by lowercased address for the lifetime
// of the process (symbol, name, and decimals are immutable on-chain
// properties, so no eviction is needed). Partially resolved metadata is
// returned but not cached, so a later call may recover the real values once
// the read path is healthy again.
//
// Concurrent calls for the same address may race and fetch redundantly; the
// fetch is idempotent and the last write wins in the cache.
func (s *service) Resolve(ctx context.Context, address string) TokenInfo {
	key := cacheKey(address)

	s.mu.RLock()
	info, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return info
	}

	info, complete := s.fetch(ctx, address)
	if complete {
		s.mu.Lock()
		s.cache[key] = info
		s.mu.Unlock()
	}

	return info
}

// readTimeout bounds a single metadata resolution so a slow or unresponsive
// node degrades to sentinel values instead of stalling the caller.
const defaultReadTimeout = 3 * time.Second
