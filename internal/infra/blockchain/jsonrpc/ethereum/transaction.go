package ethereum

import (
	"context"
	"encoding/json"

	"github.com/gabapcia/tokenwatch/internal/pkg/types"
	"github.com/gabapcia/tokenwatch/internal/transferlog"
	"github.com/gabapcia/tokenwatch/internal/txanalysis"
)

type (
	// transactionByHashResponse is the subset of eth_getTransactionByHash
	// the analysis layer consumes.
	transactionByHashResponse struct {
		Hash  string    `json:"hash"`
		From  string    `json:"from"`
		To    string    `json:"to"`
		Value types.Hex `json:"value"`
	}

	// logResponse is a single receipt log entry.
	logResponse struct {
		Address string   `json:"address"`
		Topics  []string `json:"topics"`
		Data    string   `json:"data"`
	}

	// receiptResponse is the subset of eth_getTransactionReceipt the
	// analysis layer consumes.
	receiptResponse struct {
		Status  types.Hex     `json:"status"`
		GasUsed types.Hex     `json:"gasUsed"`
		Logs    []logResponse `json:"logs"`
	}
)

// TransactionByHash implements the txanalysis.TransactionReader interface.
// A null node response maps to txanalysis.ErrTransactionNotFound.
func (c *client) TransactionByHash(ctx context.Context, hash string) (txanalysis.Transaction, error) {
	data, err := c.conn.Call(ctx, "eth_getTransactionByHash", hash)
	if err != nil {
		return txanalysis.Transaction{}, err
	}

	if isNullResult(data) {
		return txanalysis.Transaction{}, txanalysis.ErrTransactionNotFound
	}

	var tx transactionByHashResponse
	if err := json.Unmarshal(data, &tx); err != nil {
		return txanalysis.Transaction{}, err
	}

	return txanalysis.Transaction{
		Hash:  tx.Hash,
		From:  tx.From,
		To:    tx.To,
		Value: tx.Value,
	}, nil
}

// TransactionReceipt implements the txanalysis.TransactionReader interface.
// A null node response maps to txanalysis.ErrTransactionNotFound.
func (c *client) TransactionReceipt(ctx context.Context, hash string) (txanalysis.Receipt, error) {
	data, err := c.conn.Call(ctx, "eth_getTransactionReceipt", hash)
	if err != nil {
		return txanalysis.Receipt{}, err
	}

	if isNullResult(data) {
		return txanalysis.Receipt{}, txanalysis.ErrTransactionNotFound
	}

	var receipt receiptResponse
	if err := json.Unmarshal(data, &receipt); err != nil {
		return txanalysis.Receipt{}, err
	}

	logs := make([]transferlog.Log, len(receipt.Logs))
	for i, log := range receipt.Logs {
		logs[i] = transferlog.Log{
			Address: log.Address,
			Topics:  log.Topics,
			Data:    log.Data,
		}
	}

	return txanalysis.Receipt{
		Status:  receipt.Status,
		GasUsed: receipt.GasUsed,
		Logs:    logs,
	}, nil
}

var _ txanalysis.TransactionReader = (*client)(nil)
