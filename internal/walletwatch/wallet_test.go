package walletwatch

import (
	"testing"

	"github.com/gabapcia/tokenwatch/internal/pkg/logger"
	"github.com/gabapcia/tokenwatch/internal/txanalysis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	// Initialize logger for tests to prevent nil pointer dereference
	_ = logger.Init("error")
}

// matchAddresses creates a mock.MatchedBy function that matches slices containing the same addresses
// regardless of order, handling the non-deterministic nature of Go's map iteration
func matchAddresses(expectedAddresses []string) interface{} {
	return mock.MatchedBy(func(addresses []string) bool {
		if len(addresses) != len(expectedAddresses) {
			return false
		}
		addressMap := make(map[string]bool)
		for _, addr := range addresses {
			addressMap[addr] = true
		}
		for _, expected := range expectedAddresses {
			if !addressMap[expected] {
				return false
			}
		}
		return true
	})
}

func swapAnalysis(hash string) *txanalysis.TransactionAnalysis {
	return &txanalysis.TransactionAnalysis{
		Hash:   hash,
		Type:   txanalysis.AnalysisSwap,
		Swap:   &txanalysis.SwapDetails{DEX: "Uniswap V2"},
		Status: txanalysis.StatusSuccess,
	}
}

func TestMatchWatchedWallets(t *testing.T) {
	t.Run("empty transaction list", func(t *testing.T) {
		walletStorage := NewWalletStorageMock(t)

		// When there are no transactions, walletsSet.ToSlice() returns nil
		walletStorage.EXPECT().
			FilterWatchedWallets(t.Context(), "ethereum", []string(nil)).
			Return(nil, nil)

		svc := &service{walletStorage: walletStorage}

		matches, err := svc.matchWatchedWallets(t.Context(), "ethereum", nil)
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("no watched wallets", func(t *testing.T) {
		walletStorage := NewWalletStorageMock(t)

		txs := []Transaction{
			{Hash: "0xtx1", From: "0xwallet1", To: "0xwallet2"},
		}

		walletStorage.EXPECT().
			FilterWatchedWallets(t.Context(), "ethereum", matchAddresses([]string{"0xwallet1", "0xwallet2"})).
			Return(nil, nil)

		svc := &service{walletStorage: walletStorage}

		matches, err := svc.matchWatchedWallets(t.Context(), "ethereum", txs)
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("groups transactions per watched wallet with labels", func(t *testing.T) {
		walletStorage := NewWalletStorageMock(t)

		txs := []Transaction{
			{Hash: "0xtx1", From: "0xwallet1", To: "0xwallet2"},
			{Hash: "0xtx2", From: "0xwallet2", To: "0xwallet3"},
			{Hash: "0xtx3", From: "0xwallet3", To: "0xwallet1"},
		}

		walletStorage.EXPECT().
			FilterWatchedWallets(t.Context(), "ethereum", matchAddresses([]string{"0xwallet1", "0xwallet2", "0xwallet3"})).
			Return(map[string]string{"0xwallet1": "alice"}, nil)

		svc := &service{walletStorage: walletStorage}

		matches, err := svc.matchWatchedWallets(t.Context(), "ethereum", txs)
		require.NoError(t, err)
		require.Len(t, matches, 1)

		match, ok := matches["0xwallet1"]
		require.True(t, ok)
		assert.Equal(t, "alice", match.label)
		require.Len(t, match.transactions, 2)
		assert.Equal(t, "0xtx1", match.transactions[0].Hash)
		assert.Equal(t, "0xtx3", match.transactions[1].Hash)
	})

	t.Run("addresses are lowercased before matching", func(t *testing.T) {
		walletStorage := NewWalletStorageMock(t)

		txs := []Transaction{
			{Hash: "0xtx1", From: "0xWALLET1", To: "0xWallet2"},
		}

		walletStorage.EXPECT().
			FilterWatchedWallets(t.Context(), "ethereum", matchAddresses([]string{"0xwallet1", "0xwallet2"})).
			Return(map[string]string{"0xwallet2": "bob"}, nil)

		svc := &service{walletStorage: walletStorage}

		matches, err := svc.matchWatchedWallets(t.Context(), "ethereum", txs)
		require.NoError(t, err)
		require.Contains(t, matches, "0xwallet2")
	})

	t.Run("propagates storage errors", func(t *testing.T) {
		walletStorage := NewWalletStorageMock(t)

		walletStorage.EXPECT().
			FilterWatchedWallets(t.Context(), "ethereum", mock.Anything).
			Return(nil, assert.AnError)

		svc := &service{walletStorage: walletStorage}

		_, err := svc.matchWatchedWallets(t.Context(), "ethereum", []Transaction{{Hash: "0xtx1", From: "0xa", To: "0xb"}})
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestNotifyWalletActivity(t *testing.T) {
	block := Block{
		Network: "ethereum",
		Height:  "0x10",
		Hash:    "0xblock",
		Transactions: []Transaction{
			{Hash: "0xtx1", From: "0xwallet1", To: "0xrouter"},
		},
	}

	t.Run("analyzes and notifies watched wallet trades", func(t *testing.T) {
		walletStorage := NewWalletStorageMock(t)
		analyzer := NewActivityAnalyzerMock(t)
		formatter := NewSummaryFormatterMock(t)
		notifier := NewNotifierMock(t)

		walletStorage.EXPECT().
			FilterWatchedWallets(t.Context(), "ethereum", matchAddresses([]string{"0xwallet1", "0xrouter"})).
			Return(map[string]string{"0xwallet1": "alice"}, nil)

		analysis := swapAnalysis("0xtx1")
		analyzer.EXPECT().Analyze(t.Context(), "0xtx1", "0xwallet1").Return(analysis, nil)
		formatter.EXPECT().Format(*analysis, "alice").Return("swap message", true)
		notifier.EXPECT().Notify(t.Context(), "ethereum", "0xwallet1", "swap message").Return(nil)

		svc := New(walletStorage, analyzer, formatter, notifier)

		err := svc.NotifyWalletActivity(t.Context(), block)
		require.NoError(t, err)
	})

	t.Run("skips transactions with nothing to report", func(t *testing.T) {
		walletStorage := NewWalletStorageMock(t)
		analyzer := NewActivityAnalyzerMock(t)
		formatter := NewSummaryFormatterMock(t)
		notifier := NewNotifierMock(t)

		walletStorage.EXPECT().
			FilterWatchedWallets(t.Context(), "ethereum", mock.Anything).
			Return(map[string]string{"0xwallet1": "alice"}, nil)

		analyzer.EXPECT().Analyze(t.Context(), "0xtx1", "0xwallet1").Return(nil, nil)

		svc := New(walletStorage, analyzer, formatter, notifier)

		err := svc.NotifyWalletActivity(t.Context(), block)
		require.NoError(t, err)
	})

	t.Run("skips unanalyzable transactions without aborting", func(t *testing.T) {
		walletStorage := NewWalletStorageMock(t)
		analyzer := NewActivityAnalyzerMock(t)
		formatter := NewSummaryFormatterMock(t)
		notifier := NewNotifierMock(t)

		multiTxBlock := block
		multiTxBlock.Transactions = []Transaction{
			{Hash: "0xtx1", From: "0xwallet1", To: "0xrouter"},
			{Hash: "0xtx2", From: "0xwallet1", To: "0xrouter"},
		}

		walletStorage.EXPECT().
			FilterWatchedWallets(t.Context(), "ethereum", mock.Anything).
			Return(map[string]string{"0xwallet1": "alice"}, nil)

		analyzer.EXPECT().Analyze(t.Context(), "0xtx1", "0xwallet1").Return(nil, assert.AnError)

		analysis := swapAnalysis("0xtx2")
		analyzer.EXPECT().Analyze(t.Context(), "0xtx2", "0xwallet1").Return(analysis, nil)
		formatter.EXPECT().Format(*analysis, "alice").Return("swap message", true)
		notifier.EXPECT().Notify(t.Context(), "ethereum", "0xwallet1", "swap message").Return(nil)

		svc := New(walletStorage, analyzer, formatter, notifier)

		err := svc.NotifyWalletActivity(t.Context(), multiTxBlock)
		require.NoError(t, err)
	})

	t.Run("skips analyses the formatter declines", func(t *testing.T) {
		walletStorage := NewWalletStorageMock(t)
		analyzer := NewActivityAnalyzerMock(t)
		formatter := NewSummaryFormatterMock(t)
		notifier := NewNotifierMock(t)

		walletStorage.EXPECT().
			FilterWatchedWallets(t.Context(), "ethereum", mock.Anything).
			Return(map[string]string{"0xwallet1": "alice"}, nil)

		analysis := swapAnalysis("0xtx1")
		analyzer.EXPECT().Analyze(t.Context(), "0xtx1", "0xwallet1").Return(analysis, nil)
		formatter.EXPECT().Format(*analysis, "alice").Return("", false)

		svc := New(walletStorage, analyzer, formatter, notifier)

		err := svc.NotifyWalletActivity(t.Context(), block)
		require.NoError(t, err)
	})

	t.Run("propagates notification delivery errors", func(t *testing.T) {
		walletStorage := NewWalletStorageMock(t)
		analyzer := NewActivityAnalyzerMock(t)
		formatter := NewSummaryFormatterMock(t)
		notifier := NewNotifierMock(t)

		walletStorage.EXPECT().
			FilterWatchedWallets(t.Context(), "ethereum", mock.Anything).
			Return(map[string]string{"0xwallet1": "alice"}, nil)

		analysis := swapAnalysis("0xtx1")
		analyzer.EXPECT().Analyze(t.Context(), "0xtx1", "0xwallet1").Return(analysis, nil)
		formatter.EXPECT().Format(*analysis, "alice").Return("swap message", true)
		notifier.EXPECT().Notify(t.Context(), "ethereum", "0xwallet1", "swap message").Return(assert.AnError)

		svc := New(walletStorage, analyzer, formatter, notifier)

		err := svc.NotifyWalletActivity(t.Context(), block)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("skips blocks already claimed elsewhere", func(t *testing.T) {
		walletStorage := NewWalletStorageMock(t)
		analyzer := NewActivityAnalyzerMock(t)
		formatter := NewSummaryFormatterMock(t)
		notifier := NewNotifierMock(t)
		idempotencyGuard := NewIdempotencyGuardMock(t)

		idempotencyGuard.EXPECT().
			ClaimBlockForActivity(t.Context(), "ethereum", "0xblock", defaultMaxProcessingTime).
			Return(ErrStillInProgress)

		svc := New(walletStorage, analyzer, formatter, notifier, WithIdempotencyGuard(idempotencyGuard))

		err := svc.NotifyWalletActivity(t.Context(), block)
		assert.ErrorIs(t, err, ErrStillInProgress)
	})

	t.Run("marks the block complete after a successful pass", func(t *testing.T) {
		walletStorage := NewWalletStorageMock(t)
		analyzer := NewActivityAnalyzerMock(t)
		formatter := NewSummaryFormatterMock(t)
		notifier := NewNotifierMock(t)
		idempotencyGuard := NewIdempotencyGuardMock(t)

		idempotencyGuard.EXPECT().
			ClaimBlockForActivity(t.Context(), "ethereum", "0xblock", defaultMaxProcessingTime).
			Return(nil)
		idempotencyGuard.EXPECT().
			MarkBlockActivityComplete(t.Context(), "ethereum", "0xblock").
			Return(nil)

		walletStorage.EXPECT().
			FilterWatchedWallets(t.Context(), "ethereum", mock.Anything).
			Return(nil, nil)

		svc := New(walletStorage, analyzer, formatter, notifier, WithIdempotencyGuard(idempotencyGuard))

		err := svc.NotifyWalletActivity(t.Context(), block)
		require.NoError(t, err)
	})

	t.Run("a failed completion mark is not propagated", func(t *testing.T) {
		walletStorage := NewWalletStorageMock(t)
		analyzer := NewActivityAnalyzerMock(t)
		formatter := NewSummaryFormatterMock(t)
		notifier := NewNotifierMock(t)
		idempotencyGuard := NewIdempotencyGuardMock(t)

		idempotencyGuard.EXPECT().
			ClaimBlockForActivity(t.Context(), "ethereum", "0xblock", defaultMaxProcessingTime).
			Return(nil)
		idempotencyGuard.EXPECT().
			MarkBlockActivityComplete(t.Context(), "ethereum", "0xblock").
			Return(assert.AnError)

		walletStorage.EXPECT().
			FilterWatchedWallets(t.Context(), "ethereum", mock.Anything).
			Return(nil, nil)

		svc := New(walletStorage, analyzer, formatter, notifier, WithIdempotencyGuard(idempotencyGuard))

		err := svc.NotifyWalletActivity(t.Context(), block)
		require.NoError(t, err)
	})
}
