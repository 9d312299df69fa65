// Package transferlog extracts ERC-20 Transfer events from transaction
// receipt logs. Logs that are not transfers, or that are malformed, are
// silently skipped: a transaction commonly emits many unrelated events
// (approvals, pool state updates) that must not abort extraction.
package transferlog

import (
	"context"
	"math/big"
	"strings"

	"github.com/gabapcia/tokenwatch/internal/tokenmeta"

	"github.com/shopspring/decimal"
)

// transferEventSignature is keccak256("Transfer(address,address,uint256)"),
// the topic 0 value of every ERC-20 Transfer log.
const transferEventSignature = "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"

// transferTopicCount is the expected topic layout of an ERC-20 Transfer:
// the signature hash plus the indexed from and to addresses. Logs with a
// different topic count (e.g., ERC-721 transfers, which also index the
// token ID) are skipped.
const transferTopicCount = 3

// TokenResolver provides metadata for the contracts that emit transfer logs.
type TokenResolver interface {
	// Resolve returns the metadata for the given token contract address.
	// It must not fail; unreadable fields degrade to sentinel values.
	Resolve(ctx context.Context, address string) tokenmeta.TokenInfo
}

// Decoder turns raw receipt logs into decoded transfer events.
type Decoder interface {
	// Decode scans the given logs in emission order and returns one
	// TransferEvent per recognized ERC-20 Transfer log. Non-matching and
	// malformed entries are skipped without error.
	Decode(ctx context.Context, logs []Log) []TransferEvent
}

// decoder is the internal implementation of the Decoder interface.
type decoder struct {
	tokens TokenResolver
}

var _ Decoder = (*decoder)(nil)

// New creates a Decoder that resolves token metadata through the given resolver.
func New(tokens TokenResolver) *decoder {
	return &decoder{
		tokens: tokens,
	}
}

// addressFromTopic extracts the address packed into a 32-byte indexed topic
// slot: the rightmost 20 bytes of the slot hold the address. The returned
// address is lowercased. It reports false for any malformed topic.
func addressFromTopic(topic string) (string, bool) {
	topic = strings.ToLower(strings.TrimPrefix(topic, "0x"))
	if len(topic) != 64 {
		return "", false
	}

	if _, ok := new(big.Int).SetString(topic, 16); !ok {
		return "", false
	}

	return "0x" + topic[24:], true
}

// valueFromData interprets a log's data payload as a single unsigned
// big-endian integer. An empty payload decodes to zero. It reports false
// for undecodable payloads.
func valueFromData(data string) (*big.Int, bool) {
	data = strings.TrimPrefix(data, "0x")
	if data == "" {
		return new(big.Int), true
	}

	value, ok := new(big.Int).SetString(data, 16)
	if !ok {
		return nil, false
	}

	return value, true
}

// decodeTransfer decodes a single log entry as an ERC-20 Transfer. It
// reports false when the log is not a transfer or is malformed.
func (d *decoder) decodeTransfer(ctx context.Context, log Log) (TransferEvent, bool) {
	if len(log.Topics) != transferTopicCount {
		return TransferEvent{}, false
	}

	if !strings.EqualFold(log.Topics[0], transferEventSignature) {
		return TransferEvent{}, false
	}

	from, ok := addressFromTopic(log.Topics[1])
	if !ok {
		return TransferEvent{}, false
	}

	to, ok := addressFromTopic(log.Topics[2])
	if !ok {
		return TransferEvent{}, false
	}

	value, ok := valueFromData(log.Data)
	if !ok {
		return TransferEvent{}, false
	}

	info := d.tokens.Resolve(ctx, log.Address)

	return TransferEvent{
		TokenAddress: strings.ToLower(log.Address),
		TokenSymbol:  info.Symbol,
		TokenName:    info.Name,
		Decimals:     info.Decimals,
		From:         from,
		To:           to,
		RawValue:     value,
		// Exact decimal division; float64 would lose precision on
		// large-decimal tokens.
		ScaledValue: decimal.NewFromBigInt(value, -int32(info.Decimals)),
	}, true
}

// Decode implements the Decoder interface. The returned slice preserves the
// emission order of the matching logs within the transaction.
func (d *decoder) Decode(ctx context.Context, logs []Log) []TransferEvent {
	transfers := make([]TransferEvent, 0, len(logs))
	for _, log := range logs {
		transfer, ok := d.decodeTransfer(ctx, log)
		if !ok {
			continue
		}

		transfers = append(transfers, transfer)
	}

	return transfers
}
