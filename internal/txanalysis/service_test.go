package txanalysis

import (
	"math/big"
	"testing"

	"github.com/gabapcia/tokenwatch/internal/pkg/logger"
	"github.com/gabapcia/tokenwatch/internal/pkg/types"
	"github.com/gabapcia/tokenwatch/internal/transferlog"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Initialize logger for tests to prevent nil pointer dereference
	_ = logger.Init("error")
}

func TestNew(t *testing.T) {
	t.Run("creates service", func(t *testing.T) {
		reader := NewTransactionReaderMock(t)
		decoder := NewTransferDecoderMock(t)

		svc := New(reader, decoder)

		require.NotNil(t, svc)
		assert.Equal(t, reader, svc.reader)
		assert.Equal(t, decoder, svc.decoder)
	})
}

func TestAnalyze(t *testing.T) {
	const txHash = "0xdeadbeef"

	tx := Transaction{
		Hash:  txHash,
		From:  testWallet,
		To:    testRouter,
		Value: types.Hex("0x0"),
	}

	logs := []transferlog.Log{
		{Address: testTokenA, Topics: []string{"0xsig", "0xfrom", "0xto"}, Data: "0x1"},
	}

	receipt := Receipt{
		Status:  types.Hex("0x1"),
		GasUsed: types.Hex("0x5208"),
		Logs:    logs,
	}

	t.Run("classifies a swap end to end", func(t *testing.T) {
		reader := NewTransactionReaderMock(t)
		decoder := NewTransferDecoderMock(t)

		reader.EXPECT().TransactionByHash(t.Context(), txHash).Return(tx, nil)
		reader.EXPECT().TransactionReceipt(t.Context(), txHash).Return(receipt, nil)

		// wallet sends 1.0 of an 18-decimals token and receives 500 of a
		// 6-decimals token through a known router
		rawA, ok := new(big.Int).SetString("1000000000000000000", 10)
		require.True(t, ok)
		rawB := big.NewInt(500_000_000)

		decoder.EXPECT().Decode(t.Context(), logs).Return([]transferlog.TransferEvent{
			{
				TokenAddress: testTokenA,
				TokenSymbol:  "AAA",
				Decimals:     18,
				From:         testWallet,
				To:           testRouter,
				RawValue:     rawA,
				ScaledValue:  decimal.NewFromBigInt(rawA, -18),
			},
			{
				TokenAddress: testTokenB,
				TokenSymbol:  "BBB",
				Decimals:     6,
				From:         testRouter,
				To:           testWallet,
				RawValue:     rawB,
				ScaledValue:  decimal.NewFromBigInt(rawB, -6),
			},
		})

		analysis, err := New(reader, decoder).Analyze(t.Context(), txHash, testWallet)

		require.NoError(t, err)
		require.NotNil(t, analysis)
		assert.Equal(t, txHash, analysis.Hash)
		require.Equal(t, AnalysisSwap, analysis.Type)
		assert.Equal(t, "Uniswap V2", analysis.Swap.DEX)
		assert.True(t, decimal.NewFromInt(1).Equal(analysis.Swap.TokenIn.ScaledValue))
		assert.True(t, decimal.NewFromInt(500).Equal(analysis.Swap.TokenOut.ScaledValue))
		assert.Equal(t, StatusSuccess, analysis.Status)
	})

	t.Run("returns nil analysis when there is nothing to report", func(t *testing.T) {
		reader := NewTransactionReaderMock(t)
		decoder := NewTransferDecoderMock(t)

		reader.EXPECT().TransactionByHash(t.Context(), txHash).Return(tx, nil)
		reader.EXPECT().TransactionReceipt(t.Context(), txHash).Return(receipt, nil)
		decoder.EXPECT().Decode(t.Context(), logs).Return(nil)

		analysis, err := New(reader, decoder).Analyze(t.Context(), txHash, testWallet)

		require.NoError(t, err)
		assert.Nil(t, analysis)
	})

	t.Run("propagates transaction fetch errors", func(t *testing.T) {
		reader := NewTransactionReaderMock(t)
		decoder := NewTransferDecoderMock(t)

		reader.EXPECT().TransactionByHash(t.Context(), txHash).Return(Transaction{}, ErrTransactionNotFound)

		analysis, err := New(reader, decoder).Analyze(t.Context(), txHash, testWallet)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTransactionNotFound)
		assert.Nil(t, analysis)
	})

	t.Run("propagates receipt fetch errors", func(t *testing.T) {
		reader := NewTransactionReaderMock(t)
		decoder := NewTransferDecoderMock(t)

		reader.EXPECT().TransactionByHash(t.Context(), txHash).Return(tx, nil)
		reader.EXPECT().TransactionReceipt(t.Context(), txHash).Return(Receipt{}, assert.AnError)

		analysis, err := New(reader, decoder).Analyze(t.Context(), txHash, testWallet)

		require.Error(t, err)
		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, analysis)
	})
}
