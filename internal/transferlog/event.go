package transferlog

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Log is a single event log entry emitted by a transaction, as reported in
// its receipt. Topics and data are "0x"-prefixed hex strings.
type Log struct {
	Address string   // address of the contract that emitted the log
	Topics  []string // indexed event parameters; topic 0 is the event signature hash
	Data    string   // ABI-encoded non-indexed parameters
}

// TransferEvent is one decoded ERC-20 Transfer log, enriched with the
// emitting token's metadata. Values are derived strictly from a single log
// entry and are never mutated after creation.
type TransferEvent struct {
	TokenAddress string          // emitting token contract, lowercased
	TokenSymbol  string          // display symbol, possibly the sentinel
	TokenName    string          // display name, possibly the sentinel
	Decimals     uint8           // token display precision
	From         string          // sender address, lowercased
	To           string          // recipient address, lowercased
	RawValue     *big.Int        // transferred amount in base units
	ScaledValue  decimal.Decimal // RawValue / 10^Decimals, exact
}
