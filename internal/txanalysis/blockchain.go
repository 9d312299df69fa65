package txanalysis

import (
	"context"
	"errors"

	"github.com/gabapcia/tokenwatch/internal/pkg/types"
	"github.com/gabapcia/tokenwatch/internal/transferlog"
)

// ErrTransactionNotFound is returned when the node does not know the
// requested transaction hash or has no receipt for it. Callers must treat
// this differently from a successful analysis with nothing to report.
var ErrTransactionNotFound = errors.New("transaction not found")

// Transaction is the subset of an on-chain transaction the classifier needs.
type Transaction struct {
	Hash  string    // transaction hash
	From  string    // sender address
	To    string    // destination address (contract or EOA)
	Value types.Hex // attached native-currency amount in wei
}

// Receipt is the execution result of a mined transaction.
type Receipt struct {
	Status  types.Hex        // "0x1" on success, "0x0" on revert
	GasUsed types.Hex        // gas consumed by the transaction
	Logs    []transferlog.Log // event logs in emission order
}

// Succeeded reports whether the transaction executed without reverting.
func (r Receipt) Succeeded() bool {
	return r.Status.Int() == 1
}

// TransactionReader retrieves transactions and their receipts from the chain.
type TransactionReader interface {
	// TransactionByHash returns the transaction with the given hash, or
	// ErrTransactionNotFound if the node does not know it.
	TransactionByHash(ctx context.Context, hash string) (Transaction, error)

	// TransactionReceipt returns the receipt of the transaction with the
	// given hash, or ErrTransactionNotFound if the transaction has not been
	// mined or does not exist.
	TransactionReceipt(ctx context.Context, hash string) (Receipt, error)
}
