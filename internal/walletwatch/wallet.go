package walletwatch

import (
	"context"
	"strings"

	"github.com/gabapcia/tokenwatch/internal/pkg/logger"
	"github.com/gabapcia/tokenwatch/internal/pkg/types"
	"github.com/gabapcia/tokenwatch/internal/txanalysis"
)

// Transaction is a block-level view of a transaction, carrying just enough
// to match wallets; the analyzer fetches the full details by hash.
type Transaction struct {
	Hash string // unique transaction hash
	From string // sender address
	To   string // recipient address
}

// Block is a blockchain block annotated with its network, as delivered by
// the upstream block source.
type Block struct {
	Network      string        // blockchain network name (e.g., "ethereum")
	Height       types.Hex     // block height
	Hash         string        // unique block hash
	Transactions []Transaction // transactions contained in the block
}

// WalletStorage identifies which of a set of addresses are being watched.
type WalletStorage interface {
	// FilterWatchedWallets filters the provided addresses and returns only
	// those currently under watch for the network, mapped to their display
	// labels. Lookups are case-insensitive; returned keys are lowercased.
	FilterWatchedWallets(ctx context.Context, network string, addresses []string) (map[string]string, error)
}

// ActivityAnalyzer classifies a single transaction on behalf of a wallet.
type ActivityAnalyzer interface {
	// Analyze returns the trade analysis for the transaction, nil when the
	// transaction carries nothing to report for this wallet, or an error
	// when the transaction or its receipt cannot be read.
	Analyze(ctx context.Context, txHash, wallet string) (*txanalysis.TransactionAnalysis, error)
}

// SummaryFormatter renders an analysis into notification text. The second
// return value is false when no notification should be produced.
type SummaryFormatter interface {
	Format(a txanalysis.TransactionAnalysis, walletLabel string) (string, bool)
}

// Notifier delivers rendered wallet activity messages to an external
// channel (e.g., a messaging platform).
type Notifier interface {
	// Notify delivers one message about the given wallet's activity.
	Notify(ctx context.Context, network, wallet, message string) error
}

// walletMatch pairs a watched wallet with the transactions in a block that
// involve it.
type walletMatch struct {
	label        string
	transactions []Transaction
}

// matchWatchedWallets determines which transactions in a block involve
// watched wallets.
//
// It collects every address appearing as sender or recipient, asks
// WalletStorage which of them are watched, and groups the involved
// transactions per watched wallet. All matching is done on lowercased
// addresses.
func (s *service) matchWatchedWallets(ctx context.Context, network string, txs []Transaction) (map[string]walletMatch, error) {
	var (
		walletsSet = types.NewSet[string]()

		// wallet address -> transactions it appears in, preserving block order
		txsByWallet = types.NewDefaultMap[string](func() []Transaction { return nil })
	)

	for _, tx := range txs {
		from, to := strings.ToLower(tx.From), strings.ToLower(tx.To)
		walletsSet.Add(from, to)

		txsByWallet.Set(from, append(txsByWallet.Get(from), tx))
		if to != from {
			txsByWallet.Set(to, append(txsByWallet.Get(to), tx))
		}
	}

	watched, err := s.walletStorage.FilterWatchedWallets(ctx, network, walletsSet.ToSlice())
	if err != nil {
		return nil, err
	}

	matches := make(map[string]walletMatch, len(watched))
	for address, label := range watched {
		matches[address] = walletMatch{
			label:        label,
			transactions: txsByWallet.Get(address),
		}
	}

	return matches, nil
}

// notifyWalletTransactions analyzes each transaction involving a watched
// wallet and delivers a notification for every actionable trade.
//
// Failures are contained per transaction: an unreadable transaction or
// receipt is logged and skipped, never aborting the rest of the block.
// Only notification delivery errors propagate, since losing those means
// the user misses activity they asked to be told about.
func (s *service) notifyWalletTransactions(ctx context.Context, network, wallet string, match walletMatch) error {
	for _, tx := range match.transactions {
		analysis, err := s.analyzer.Analyze(ctx, tx.Hash, wallet)
		if err != nil {
			logger.Warn(ctx, "skipping unanalyzable transaction",
				"tx.hash", tx.Hash,
				"wallet.address", wallet,
				"error", err,
			)
			continue
		}
		if analysis == nil {
			continue
		}

		message, ok := s.formatter.Format(*analysis, match.label)
		if !ok {
			continue
		}

		if err := s.notifier.Notify(ctx, network, wallet, message); err != nil {
			return err
		}
	}

	return nil
}

// NotifyWalletActivity processes a newly observed block: it claims the block
// through the idempotency guard, identifies transactions involving watched
// wallets, analyzes them, and delivers notifications for actionable trades.
//
// Claiming returns ErrStillInProgress or ErrAlreadyFinished when the block
// is, respectively, being handled elsewhere or already done; callers treat
// both as "skip". After a successful pass the block is marked complete; a
// failure to mark is logged but not propagated, favoring at-most-once
// notification over redelivery.
func (s *service) NotifyWalletActivity(ctx context.Context, block Block) error {
	if err := s.idempotencyGuard.ClaimBlockForActivity(ctx, block.Network, block.Hash, s.maxProcessingTime); err != nil {
		return err
	}

	matches, err := s.matchWatchedWallets(ctx, block.Network, block.Transactions)
	if err != nil {
		return err
	}

	for wallet, match := range matches {
		if err := s.notifyWalletTransactions(ctx, block.Network, wallet, match); err != nil {
			return err
		}
	}

	if err := s.idempotencyGuard.MarkBlockActivityComplete(ctx, block.Network, block.Hash); err != nil {
		logger.Error(ctx, "error marking block activity as complete",
			"block.network", block.Network,
			"block.hash", block.Hash,
			"block.height", block.Height,
			"error", err,
		)
	}

	return nil
}
