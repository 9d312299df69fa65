package ethereum

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/gabapcia/tokenwatch/internal/tokenmeta"
)

// ERC-20 read-only function selectors
const (
	symbolSelector   = "0x95d89b41"
	nameSelector     = "0x06fdde03"
	decimalsSelector = "0x313ce567"
)

const abiWordSize = 32

// ethCall issues an eth_call against the latest block and returns the raw
// return data bytes.
func (c *client) ethCall(ctx context.Context, contract, callData string) ([]byte, error) {
	params := map[string]string{
		"to":   contract,
		"data": callData,
	}

	data, err := c.conn.Call(ctx, "eth_call", params, "latest")
	if err != nil {
		return nil, err
	}

	var result string
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}

	return hex.DecodeString(strings.TrimPrefix(result, "0x"))
}

// decodeABIString decodes a solidity string return value. Standard tokens
// return an ABI encoded dynamic string, but some early contracts declared
// these fields as bytes32, so a single word is decoded by trimming the
// padding instead.
func decodeABIString(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty return data")
	}

	if len(data) == abiWordSize {
		return string(bytes.TrimRight(data, "\x00")), nil
	}

	if len(data) < 2*abiWordSize {
		return "", fmt.Errorf("return data too short: %d bytes", len(data))
	}

	offset := new(big.Int).SetBytes(data[:abiWordSize]).Uint64()
	if offset+abiWordSize > uint64(len(data)) {
		return "", fmt.Errorf("string offset out of range")
	}

	length := new(big.Int).SetBytes(data[offset : offset+abiWordSize]).Uint64()
	start := offset + abiWordSize
	if start+length > uint64(len(data)) {
		return "", fmt.Errorf("string length out of range")
	}

	return string(data[start : start+length]), nil
}

// TokenSymbol implements the tokenmeta.MetadataReader interface.
func (c *client) TokenSymbol(ctx context.Context, tokenAddress string) (string, error) {
	data, err := c.ethCall(ctx, tokenAddress, symbolSelector)
	if err != nil {
		return "", err
	}

	return decodeABIString(data)
}

// TokenName implements the tokenmeta.MetadataReader interface.
func (c *client) TokenName(ctx context.Context, tokenAddress string) (string, error) {
	data, err := c.ethCall(ctx, tokenAddress, nameSelector)
	if err != nil {
		return "", err
	}

	return decodeABIString(data)
}

// TokenDecimals implements the tokenmeta.MetadataReader interface.
func (c *client) TokenDecimals(ctx context.Context, tokenAddress string) (uint8, error) {
	data, err := c.ethCall(ctx, tokenAddress, decimalsSelector)
	if err != nil {
		return 0, err
	}

	if len(data) == 0 {
		return 0, fmt.Errorf("empty return data")
	}

	return data[len(data)-1], nil
}

var _ tokenmeta.MetadataReader = (*client)(nil)
