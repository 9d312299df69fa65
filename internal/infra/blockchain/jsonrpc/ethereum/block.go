package ethereum

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gabapcia/tokenwatch/internal/chainstream"
	"github.com/gabapcia/tokenwatch/internal/pkg/types"
)

type (
	// transactionResponse is the subset of a raw transaction object
	// returned inside a block by the Ethereum JSON-RPC API.
	transactionResponse struct {
		Hash  string    `json:"hash"`
		From  string    `json:"from"`
		To    string    `json:"to"`
		Value types.Hex `json:"value"`
	}

	// blockResponse is the subset of a block returned by eth_getBlockByNumber.
	blockResponse struct {
		Hash         string                `json:"hash"`
		Number       types.Hex             `json:"number"`
		Transactions []transactionResponse `json:"transactions"`
	}
)

// toChainstreamBlock converts a blockResponse to a chainstream.Block.
func (b blockResponse) toChainstreamBlock() chainstream.Block {
	transactions := make([]chainstream.Transaction, len(b.Transactions))
	for i, t := range b.Transactions {
		transactions[i] = chainstream.Transaction{
			Hash: t.Hash,
			From: t.From,
			To:   t.To,
		}
	}

	return chainstream.Block{
		Height:       b.Number,
		Hash:         b.Hash,
		Transactions: transactions,
	}
}

// isNullResult reports whether a JSON-RPC result payload is absent, which
// Ethereum nodes use to signal "not found".
func isNullResult(data json.RawMessage) bool {
	return len(data) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

// getLatestBlockNumber fetches the latest block number from the node.
func (c *client) getLatestBlockNumber(ctx context.Context) (types.Hex, error) {
	data, err := c.conn.Call(ctx, "eth_blockNumber")
	if err != nil {
		return "", err
	}

	var blockNumber types.Hex
	return blockNumber, json.Unmarshal(data, &blockNumber)
}

// getBlockByNumber retrieves a full block (with transaction objects) by its
// number.
func (c *client) getBlockByNumber(ctx context.Context, blockNumber types.Hex) (blockResponse, error) {
	data, err := c.conn.Call(ctx, "eth_getBlockByNumber", blockNumber, true)
	if err != nil {
		return blockResponse{}, err
	}

	if isNullResult(data) {
		return blockResponse{}, fmt.Errorf("block %s not available yet", blockNumber)
	}

	var block blockResponse
	return block, json.Unmarshal(data, &block)
}

// FetchBlockByHeight implements the chainstream.Blockchain interface.
func (c *client) FetchBlockByHeight(ctx context.Context, height types.Hex) (chainstream.Block, error) {
	block, err := c.getBlockByNumber(ctx, height)
	if err != nil {
		return chainstream.Block{}, err
	}

	return block.toChainstreamBlock(), nil
}

// pollNewBlocks fetches every block in the range [fromHeight, latest] and
// emits one BlockchainEvent per block. It returns the height the next poll
// should start from.
//
// Failing to read the latest block number emits a single error event and
// leaves the cursor unchanged; failing to fetch an individual block emits an
// error event carrying that height so the stream layer can retry it, and
// the cursor still advances past it.
func (c *client) pollNewBlocks(ctx context.Context, fromHeight types.Hex, eventsCh chan<- chainstream.BlockchainEvent) types.Hex {
	latest, err := c.getLatestBlockNumber(ctx)
	if err != nil {
		eventsCh <- chainstream.BlockchainEvent{Height: fromHeight, Err: err}
		return fromHeight
	}

	current := fromHeight
	for current.Int() <= latest.Int() {
		block, err := c.getBlockByNumber(ctx, current)

		event := chainstream.BlockchainEvent{Height: current, Err: err}
		if err == nil {
			event.Block = block.toChainstreamBlock()
		}
		eventsCh <- event

		current = current.Add(1)
	}

	return current
}

// Subscribe implements the chainstream.Blockchain interface. It polls the
// node on a fixed interval and emits one event per new block. If fromHeight
// is the zero value, streaming starts from the latest block at the time of
// invocation. The returned channel is closed when the context is canceled.
func (c *client) Subscribe(ctx context.Context, fromHeight types.Hex) (<-chan chainstream.BlockchainEvent, error) {
	if fromHeight == "" {
		latest, err := c.getLatestBlockNumber(ctx)
		if err != nil {
			return nil, err
		}

		fromHeight = latest
	}

	eventsCh := make(chan chainstream.BlockchainEvent, blockEventChannelBufferSize)
	go func() {
		defer close(eventsCh)

		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(c.pollInterval):
				fromHeight = c.pollNewBlocks(ctx, fromHeight, eventsCh)
			}
		}
	}()

	return eventsCh, nil
}

var _ chainstream.Blockchain = (*client)(nil)
