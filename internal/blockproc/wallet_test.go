package blockproc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gabapcia/tokenwatch/internal/chainstream"
	"github.com/gabapcia/tokenwatch/internal/pkg/types"
	"github.com/gabapcia/tokenwatch/internal/walletwatch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMapObservedToWalletBlock(t *testing.T) {
	t.Run("maps observed block with transactions", func(t *testing.T) {
		observedBlock := chainstream.ObservedBlock{
			Network: "ethereum",
			Block: chainstream.Block{
				Height: types.Hex("0x1a"),
				Hash:   "0xabcdef123456789",
				Transactions: []chainstream.Transaction{
					{Hash: "0x111", From: "0xfrom1", To: "0xto1"},
					{Hash: "0x222", From: "0xfrom2", To: "0xto2"},
				},
			},
		}

		expected := walletwatch.Block{
			Network: "ethereum",
			Height:  types.Hex("0x1a"),
			Hash:    "0xabcdef123456789",
			Transactions: []walletwatch.Transaction{
				{Hash: "0x111", From: "0xfrom1", To: "0xto1"},
				{Hash: "0x222", From: "0xfrom2", To: "0xto2"},
			},
		}

		assert.Equal(t, expected, mapObservedToWalletBlock(observedBlock))
	})

	t.Run("maps observed block with no transactions", func(t *testing.T) {
		observedBlock := chainstream.ObservedBlock{
			Network: "ethereum",
			Block: chainstream.Block{
				Height:       types.Hex("0x0"),
				Hash:         "0xemptyblock",
				Transactions: nil,
			},
		}

		result := mapObservedToWalletBlock(observedBlock)

		assert.Equal(t, "ethereum", result.Network)
		assert.Len(t, result.Transactions, 0)
		assert.NotNil(t, result.Transactions)
	})

	t.Run("preserves transaction order", func(t *testing.T) {
		transactions := []chainstream.Transaction{
			{Hash: "0x001", From: "0xa", To: "0xb"},
			{Hash: "0x002", From: "0xc", To: "0xd"},
			{Hash: "0x003", From: "0xe", To: "0xf"},
		}

		observedBlock := chainstream.ObservedBlock{
			Network: "ethereum",
			Block: chainstream.Block{
				Height:       types.Hex("0x100"),
				Hash:         "0xordertest",
				Transactions: transactions,
			},
		}

		result := mapObservedToWalletBlock(observedBlock)

		require.Len(t, result.Transactions, len(transactions))
		for i, originalTx := range transactions {
			assert.Equal(t, originalTx.Hash, result.Transactions[i].Hash)
		}
	})
}

func TestHandleWalletActivity(t *testing.T) {
	t.Run("processes blocks in order", func(t *testing.T) {
		mockWalletwatch := walletwatch.NewServiceMock(t)
		svc := &service{walletwatch: mockWalletwatch}

		blocks := []chainstream.ObservedBlock{
			{
				Network: "ethereum",
				Block: chainstream.Block{
					Height: types.Hex("0x1"),
					Hash:   "0xblock1",
					Transactions: []chainstream.Transaction{
						{Hash: "0x111", From: "0xa", To: "0xb"},
					},
				},
			},
			{
				Network: "ethereum",
				Block: chainstream.Block{
					Height: types.Hex("0x2"),
					Hash:   "0xblock2",
					Transactions: []chainstream.Transaction{
						{Hash: "0x222", From: "0xc", To: "0xd"},
					},
				},
			},
		}

		blocksCh := make(chan chainstream.ObservedBlock, len(blocks))
		for _, block := range blocks {
			blocksCh <- block
		}
		close(blocksCh)

		for _, block := range blocks {
			mockWalletwatch.EXPECT().
				NotifyWalletActivity(mock.Anything, mapObservedToWalletBlock(block)).
				Return(nil)
		}

		svc.handleWalletActivity(t.Context(), blocksCh)
	})

	t.Run("skips blocks already handled elsewhere", func(t *testing.T) {
		mockWalletwatch := walletwatch.NewServiceMock(t)
		svc := &service{walletwatch: mockWalletwatch}

		block := chainstream.ObservedBlock{
			Network: "ethereum",
			Block: chainstream.Block{
				Height: types.Hex("0x1"),
				Hash:   "0xclaimed",
			},
		}

		blocksCh := make(chan chainstream.ObservedBlock, 1)
		blocksCh <- block
		close(blocksCh)

		mockWalletwatch.EXPECT().
			NotifyWalletActivity(mock.Anything, mapObservedToWalletBlock(block)).
			Return(walletwatch.ErrStillInProgress)

		assert.NotPanics(t, func() {
			svc.handleWalletActivity(t.Context(), blocksCh)
		})
	})

	t.Run("continues processing after an error", func(t *testing.T) {
		mockWalletwatch := walletwatch.NewServiceMock(t)
		svc := &service{walletwatch: mockWalletwatch}

		blocks := []chainstream.ObservedBlock{
			{
				Network: "ethereum",
				Block:   chainstream.Block{Height: types.Hex("0x1"), Hash: "0xblock1"},
			},
			{
				Network: "ethereum",
				Block:   chainstream.Block{Height: types.Hex("0x2"), Hash: "0xblock2"},
			},
		}

		blocksCh := make(chan chainstream.ObservedBlock, len(blocks))
		for _, block := range blocks {
			blocksCh <- block
		}
		close(blocksCh)

		mockWalletwatch.EXPECT().
			NotifyWalletActivity(mock.Anything, mapObservedToWalletBlock(blocks[0])).
			Return(errors.New("first block error"))
		mockWalletwatch.EXPECT().
			NotifyWalletActivity(mock.Anything, mapObservedToWalletBlock(blocks[1])).
			Return(nil)

		svc.handleWalletActivity(t.Context(), blocksCh)
	})

	t.Run("exits when context is cancelled", func(t *testing.T) {
		mockWalletwatch := walletwatch.NewServiceMock(t)
		svc := &service{walletwatch: mockWalletwatch}

		blocksCh := make(chan chainstream.ObservedBlock)

		ctx, cancel := context.WithCancel(t.Context())
		cancel() // Cancel immediately

		svc.handleWalletActivity(ctx, blocksCh)
	})

	t.Run("exits when channel is closed", func(t *testing.T) {
		mockWalletwatch := walletwatch.NewServiceMock(t)
		svc := &service{walletwatch: mockWalletwatch}

		blocksCh := make(chan chainstream.ObservedBlock)
		close(blocksCh)

		svc.handleWalletActivity(t.Context(), blocksCh)
	})
}

func TestStartHandleWalletActivity(t *testing.T) {
	t.Run("starts goroutine that processes blocks", func(t *testing.T) {
		mockWalletwatch := walletwatch.NewServiceMock(t)
		svc := &service{walletwatch: mockWalletwatch}

		block := chainstream.ObservedBlock{
			Network: "ethereum",
			Block: chainstream.Block{
				Height: types.Hex("0x1a"),
				Hash:   "0xabcdef123456789",
				Transactions: []chainstream.Transaction{
					{Hash: "0x111", From: "0xfrom1", To: "0xto1"},
				},
			},
		}

		done := make(chan struct{})
		mockWalletwatch.EXPECT().
			NotifyWalletActivity(mock.Anything, mapObservedToWalletBlock(block)).
			Return(nil).
			Run(func(ctx context.Context, block walletwatch.Block) {
				close(done)
			})

		blocksCh := make(chan chainstream.ObservedBlock, 1)
		svc.startHandleWalletActivity(t.Context(), blocksCh)

		blocksCh <- block
		close(blocksCh)

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("block was not processed")
		}
	})

	t.Run("starts goroutine that handles context cancellation", func(t *testing.T) {
		mockWalletwatch := walletwatch.NewServiceMock(t)
		svc := &service{walletwatch: mockWalletwatch}

		blocksCh := make(chan chainstream.ObservedBlock)

		ctx, cancel := context.WithCancel(t.Context())
		svc.startHandleWalletActivity(ctx, blocksCh)

		cancel()

		// Give the goroutine time to exit
		time.Sleep(50 * time.Millisecond)
	})
}
