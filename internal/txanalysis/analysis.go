package txanalysis

import (
	"strings"

	"github.com/gabapcia/tokenwatch/internal/transferlog"

	"github.com/shopspring/decimal"
)

// AnalysisType tags the category a transaction was classified into.
type AnalysisType string

const (
	// AnalysisSwap marks a two-sided trade: tokens left the wallet and
	// different (or the same, see classify) tokens arrived.
	AnalysisSwap AnalysisType = "swap"

	// AnalysisBuy marks a one-sided trade: tokens arrived at the wallet,
	// paid for with the transaction's attached native currency.
	AnalysisBuy AnalysisType = "buy"

	// AnalysisSell marks a one-sided trade: tokens left the wallet with
	// nothing arriving, interpreted as a sale for native currency.
	AnalysisSell AnalysisType = "sell"

	// AnalysisNone marks a transaction with nothing to report: the wallet
	// was not involved in any token transfer, or too few transfers exist
	// to consider the transaction a trade.
	AnalysisNone AnalysisType = ""
)

// TxStatus is the execution outcome recorded in the receipt.
type TxStatus string

const (
	StatusSuccess TxStatus = "success"
	StatusFailed  TxStatus = "failed"
)

// weiDecimals scales an attached native-currency value (wei) to ether.
const weiDecimals = 18

// minTransfersForTrade is the minimum number of transfer events a
// transaction must emit to be considered a trade at all. A single transfer
// is a plain token send, not a trade.
const minTransfersForTrade = 2

// SwapDetails describes a two-sided trade from the wallet's perspective.
type SwapDetails struct {
	DEX          string                      // venue display name
	TokenIn      transferlog.TransferEvent   // first transfer sent by the wallet, in log order
	TokenOut     transferlog.TransferEvent   // first transfer received by the wallet, in log order
	AllTransfers []transferlog.TransferEvent // every transfer in the transaction; always >= 2
}

// BuyDetails describes a purchase paid for with native currency.
type BuyDetails struct {
	DEX         string                    // venue display name
	TokenBought transferlog.TransferEvent // first transfer received by the wallet
	ETHSpent    decimal.Decimal           // transaction value scaled to ether
}

// SellDetails describes a sale settled in native currency.
//
// The native amount is taken from the transaction's attached value. The
// classifier does not verify that the wallet's native balance actually
// increased; "tokens left, nothing arrived" is interpreted as a sale. This
// is a known heuristic limitation, preserved deliberately.
type SellDetails struct {
	DEX         string                    // venue display name
	TokenSold   transferlog.TransferEvent // first transfer sent by the wallet
	ETHReceived decimal.Decimal           // transaction value scaled to ether
}

// TransactionAnalysis is the classified view of a single transaction with
// respect to one wallet. Exactly one of Swap, Buy, or Sell is non-nil,
// matching Type. It is built once per analyzed hash and never mutated.
type TransactionAnalysis struct {
	Hash    string
	Type    AnalysisType
	Swap    *SwapDetails
	Buy     *BuyDetails
	Sell    *SellDetails
	GasUsed int64
	Status  TxStatus
}

// partitionTransfers splits the decoded transfers into those sent by the
// wallet and those received by it. Address comparison is case-insensitive.
// A transfer whose counterparty is also the wallet appears in both slices.
func partitionTransfers(transfers []transferlog.TransferEvent, wallet string) (sent, received []transferlog.TransferEvent) {
	for _, transfer := range transfers {
		if strings.EqualFold(transfer.From, wallet) {
			sent = append(sent, transfer)
		}
		if strings.EqualFold(transfer.To, wallet) {
			received = append(received, transfer)
		}
	}
	return sent, received
}

// classify determines the trade category of a transaction for the given
// wallet, looking only at the presence and direction of transfer events.
// Amounts never influence the decision; they are carried for display only.
//
// Classification rules, in order:
//   - fewer than two transfers in the whole transaction: nothing to report
//   - wallet both sent and received tokens: swap, pairing the first sent
//     with the first received transfer in log order (a transaction moving
//     more than one token per side only surfaces the first pair)
//   - wallet only received tokens: buy, paid with the attached value
//   - wallet only sent tokens: sell, settled in native currency per the
//     attached value
//   - wallet in neither side: nothing to report
//
// A wallet that sends and receives the same token still classifies as a
// swap; same-token round trips are not special-cased.
func classify(tx Transaction, receipt Receipt, transfers []transferlog.TransferEvent, wallet string) TransactionAnalysis {
	analysis := TransactionAnalysis{
		Hash:    tx.Hash,
		Type:    AnalysisNone,
		GasUsed: receipt.GasUsed.Int(),
		Status:  StatusFailed,
	}
	if receipt.Succeeded() {
		analysis.Status = StatusSuccess
	}

	if len(transfers) < minTransfersForTrade {
		return analysis
	}

	sent, received := partitionTransfers(transfers, wallet)
	dex := venueName(tx.To)
	nativeValue := decimal.NewFromBigInt(tx.Value.Big(), -weiDecimals)

	switch {
	case len(sent) > 0 && len(received) > 0:
		analysis.Type = AnalysisSwap
		analysis.Swap = &SwapDetails{
			DEX:          dex,
			TokenIn:      sent[0],
			TokenOut:     received[0],
			AllTransfers: transfers,
		}
	case len(received) > 0:
		analysis.Type = AnalysisBuy
		analysis.Buy = &BuyDetails{
			DEX:         dex,
			TokenBought: received[0],
			ETHSpent:    nativeValue,
		}
	case len(sent) > 0:
		analysis.Type = AnalysisSell
		analysis.Sell = &SellDetails{
			DEX:         dex,
			TokenSold:   sent[0],
			ETHReceived: nativeValue,
		}
	}

	return analysis
}
