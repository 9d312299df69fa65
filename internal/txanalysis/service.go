// Package txanalysis classifies wallet-relevant transactions into trade
// categories (swap, buy, sell) by decoding their ERC-20 transfer logs and
// correlating the transfer directions against the wallet of interest.
package txanalysis

import (
	"context"
	"fmt"

	"github.com/gabapcia/tokenwatch/internal/transferlog"
)

// TransferDecoder extracts ERC-20 transfer events from receipt logs.
type TransferDecoder interface {
	// Decode returns one TransferEvent per recognized transfer log, in
	// emission order. Malformed and unrelated logs are skipped silently.
	Decode(ctx context.Context, logs []transferlog.Log) []transferlog.TransferEvent
}

// Service analyzes individual transactions on behalf of a watched wallet.
type Service interface {
	// Analyze fetches the transaction and its receipt, decodes the emitted
	// transfer events, and classifies the transaction with respect to the
	// given wallet address.
	//
	// Returns:
	//   - A non-nil TransactionAnalysis when the transaction is a notifiable
	//     trade (swap, buy, or sell).
	//   - (nil, nil) when the transaction exists but there is nothing to
	//     report for this wallet.
	//   - ErrTransactionNotFound when the node does not know the hash.
	//   - Any other error if reading the transaction or receipt fails.
	Analyze(ctx context.Context, txHash, wallet string) (*TransactionAnalysis, error)
}

// service is the internal implementation of the Service interface.
type service struct {
	reader  TransactionReader
	decoder TransferDecoder
}

var _ Service = (*service)(nil)

// New creates a transaction analysis service from a chain reader and a
// transfer log decoder.
func New(reader TransactionReader, decoder TransferDecoder) *service {
	return &service{
		reader:  reader,
		decoder: decoder,
	}
}

// Analyze implements the Service interface.
func (s *service) Analyze(ctx context.Context, txHash, wallet string) (*TransactionAnalysis, error) {
	tx, err := s.reader.TransactionByHash(ctx, txHash)
	if err != nil {
		return nil, fmt.Errorf("fetching transaction %s: %w", txHash, err)
	}

	receipt, err := s.reader.TransactionReceipt(ctx, txHash)
	if err != nil {
		return nil, fmt.Errorf("fetching receipt for %s: %w", txHash, err)
	}

	transfers := s.decoder.Decode(ctx, receipt.Logs)

	analysis := classify(tx, receipt, transfers, wallet)
	if analysis.Type == AnalysisNone {
		return nil, nil
	}

	return &analysis, nil
}
