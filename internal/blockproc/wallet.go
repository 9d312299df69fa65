package blockproc

import (
	"context"
	"errors"

	"github.com/gabapcia/tokenwatch/internal/chainstream"
	"github.com/gabapcia/tokenwatch/internal/pkg/logger"
	"github.com/gabapcia/tokenwatch/internal/pkg/x/chflow"
	"github.com/gabapcia/tokenwatch/internal/walletwatch"
)

// mapObservedToWalletBlock converts a chainstream.ObservedBlock into a
// walletwatch.Block, keeping the two packages decoupled from each other's
// types.
func mapObservedToWalletBlock(b chainstream.ObservedBlock) walletwatch.Block {
	transactions := make([]walletwatch.Transaction, len(b.Transactions))
	for i, tx := range b.Transactions {
		transactions[i] = walletwatch.Transaction(tx)
	}

	return walletwatch.Block{
		Network:      b.Network,
		Height:       b.Height,
		Hash:         b.Hash,
		Transactions: transactions,
	}
}

// handleWalletActivity consumes observed blocks and routes each one through
// the wallet activity workflow.
//
// Blocks already handled elsewhere (idempotency sentinels) are skipped
// quietly; every other failure is logged and the loop moves on, so a bad
// block never stalls the stream.
func (s *service) handleWalletActivity(ctx context.Context, blocksCh <-chan chainstream.ObservedBlock) {
	for {
		block, ok := chflow.Receive(ctx, blocksCh)
		if !ok {
			return
		}

		err := s.walletwatch.NotifyWalletActivity(ctx, mapObservedToWalletBlock(block))
		switch {
		case err == nil:
		case errors.Is(err, walletwatch.ErrStillInProgress), errors.Is(err, walletwatch.ErrAlreadyFinished):
			logger.Debug(ctx, "block already handled",
				"block.network", block.Network,
				"block.height", block.Height,
			)
		default:
			logger.Error(ctx, "error notifying wallet activity", "error", err)
		}
	}
}

// startHandleWalletActivity launches the wallet activity processing loop in
// a separate goroutine. It is called once during pipeline startup.
func (s *service) startHandleWalletActivity(ctx context.Context, blocksCh <-chan chainstream.ObservedBlock) {
	go s.handleWalletActivity(ctx, blocksCh)
}
