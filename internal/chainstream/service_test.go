package chainstream

import (
	"context"
	"testing"
	"time"

	"github.com/gabapcia/tokenwatch/internal/pkg/logger"
	"github.com/gabapcia/tokenwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/tokenwatch/internal/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	// Initialize logger for tests to prevent nil pointer dereference
	_ = logger.Init("error")
}

func TestNew(t *testing.T) {
	t.Run("creates service with default configuration", func(t *testing.T) {
		chain := NewBlockchainMock(t)

		svc := New(map[string]Blockchain{"ethereum": chain})

		require.NotNil(t, svc)
		assert.Nil(t, svc.retry)
		assert.NotNil(t, svc.fetchFailureHandler)

		_, ok := svc.checkpointStorage.(nopCheckpoint)
		assert.True(t, ok, "expected default checkpoint storage to be nopCheckpoint")
	})

	t.Run("creates service with a retry policy", func(t *testing.T) {
		chain := NewBlockchainMock(t)

		svc := New(map[string]Blockchain{"ethereum": chain}, WithRetry(retry.New()))

		require.NotNil(t, svc)
		assert.NotNil(t, svc.retry)
	})

	t.Run("creates service with custom checkpoint storage", func(t *testing.T) {
		chain := NewBlockchainMock(t)
		checkpoint := NewCheckpointStorageMock(t)

		svc := New(map[string]Blockchain{"ethereum": chain}, WithCheckpointStorage(checkpoint))

		require.NotNil(t, svc)
		assert.Equal(t, checkpoint, svc.checkpointStorage)
	})
}

func TestStart(t *testing.T) {
	t.Run("streams observed blocks from the subscription", func(t *testing.T) {
		chain := NewBlockchainMock(t)

		eventsCh := make(chan BlockchainEvent, 1)
		eventsCh <- BlockchainEvent{
			Height: types.Hex("0x10"),
			Block: Block{
				Height: types.Hex("0x10"),
				Hash:   "0xblock10",
			},
		}

		chain.EXPECT().
			Subscribe(mock.Anything, types.Hex("")).
			Return((<-chan BlockchainEvent)(eventsCh), nil)

		svc := New(map[string]Blockchain{"ethereum": chain})
		defer svc.Close()

		observedCh, err := svc.Start(t.Context())
		require.NoError(t, err)

		select {
		case observed := <-observedCh:
			assert.Equal(t, "ethereum", observed.Network)
			assert.Equal(t, types.Hex("0x10"), observed.Height)
			assert.Equal(t, "0xblock10", observed.Hash)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for observed block")
		}
	})

	t.Run("returns error when called twice", func(t *testing.T) {
		chain := NewBlockchainMock(t)

		eventsCh := make(chan BlockchainEvent)
		chain.EXPECT().
			Subscribe(mock.Anything, types.Hex("")).
			Return((<-chan BlockchainEvent)(eventsCh), nil)

		svc := New(map[string]Blockchain{"ethereum": chain})
		defer svc.Close()

		_, err := svc.Start(t.Context())
		require.NoError(t, err)

		_, err = svc.Start(t.Context())
		assert.ErrorIs(t, err, ErrServiceAlreadyStarted)
	})

	t.Run("resumes from the stored checkpoint", func(t *testing.T) {
		chain := NewBlockchainMock(t)
		checkpoint := NewCheckpointStorageMock(t)

		checkpoint.EXPECT().
			LoadLatestCheckpoint(mock.Anything, "ethereum").
			Return(types.Hex("0x20"), nil)

		eventsCh := make(chan BlockchainEvent)
		chain.EXPECT().
			Subscribe(mock.Anything, types.Hex("0x20")).
			Return((<-chan BlockchainEvent)(eventsCh), nil)

		svc := New(map[string]Blockchain{"ethereum": chain}, WithCheckpointStorage(checkpoint))
		defer svc.Close()

		_, err := svc.Start(t.Context())
		require.NoError(t, err)
	})

	t.Run("missing checkpoint starts from the latest block", func(t *testing.T) {
		chain := NewBlockchainMock(t)
		checkpoint := NewCheckpointStorageMock(t)

		checkpoint.EXPECT().
			LoadLatestCheckpoint(mock.Anything, "ethereum").
			Return(types.Hex(""), ErrNoCheckpointFound)

		eventsCh := make(chan BlockchainEvent)
		chain.EXPECT().
			Subscribe(mock.Anything, types.Hex("")).
			Return((<-chan BlockchainEvent)(eventsCh), nil)

		svc := New(map[string]Blockchain{"ethereum": chain}, WithCheckpointStorage(checkpoint))
		defer svc.Close()

		_, err := svc.Start(t.Context())
		require.NoError(t, err)
	})

	t.Run("propagates checkpoint load errors", func(t *testing.T) {
		chain := NewBlockchainMock(t)
		checkpoint := NewCheckpointStorageMock(t)

		checkpoint.EXPECT().
			LoadLatestCheckpoint(mock.Anything, "ethereum").
			Return(types.Hex(""), assert.AnError)

		svc := New(map[string]Blockchain{"ethereum": chain}, WithCheckpointStorage(checkpoint))

		_, err := svc.Start(t.Context())
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("propagates subscription errors", func(t *testing.T) {
		chain := NewBlockchainMock(t)

		chain.EXPECT().
			Subscribe(mock.Anything, types.Hex("")).
			Return(nil, assert.AnError)

		svc := New(map[string]Blockchain{"ethereum": chain})

		_, err := svc.Start(t.Context())
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("persists a checkpoint for each streamed block", func(t *testing.T) {
		chain := NewBlockchainMock(t)
		checkpoint := NewCheckpointStorageMock(t)

		checkpoint.EXPECT().
			LoadLatestCheckpoint(mock.Anything, "ethereum").
			Return(types.Hex(""), ErrNoCheckpointFound)

		saved := make(chan types.Hex, 1)
		checkpoint.EXPECT().
			SaveCheckpoint(mock.Anything, "ethereum", types.Hex("0x10")).
			RunAndReturn(func(_ context.Context, _ string, height types.Hex) error {
				saved <- height
				return nil
			})

		eventsCh := make(chan BlockchainEvent, 1)
		eventsCh <- BlockchainEvent{
			Height: types.Hex("0x10"),
			Block:  Block{Height: types.Hex("0x10"), Hash: "0xblock10"},
		}

		chain.EXPECT().
			Subscribe(mock.Anything, types.Hex("")).
			Return((<-chan BlockchainEvent)(eventsCh), nil)

		svc := New(map[string]Blockchain{"ethereum": chain}, WithCheckpointStorage(checkpoint))
		defer svc.Close()

		observedCh, err := svc.Start(t.Context())
		require.NoError(t, err)

		select {
		case height := <-saved:
			assert.Equal(t, types.Hex("0x10"), height)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for checkpoint save")
		}

		<-observedCh
	})
}

func TestRecoverBlock(t *testing.T) {
	event := BlockchainEvent{
		Height: types.Hex("0x10"),
		Err:    assert.AnError,
	}

	t.Run("with retry the block is recovered after a failed fetch", func(t *testing.T) {
		chain := NewBlockchainMock(t)

		chain.EXPECT().
			FetchBlockByHeight(mock.Anything, types.Hex("0x10")).
			Return(Block{}, assert.AnError).
			Once()
		chain.EXPECT().
			FetchBlockByHeight(mock.Anything, types.Hex("0x10")).
			Return(Block{Height: types.Hex("0x10"), Hash: "0xblock10"}, nil).
			Once()

		svc := New(
			map[string]Blockchain{"ethereum": chain},
			WithRetry(retry.New(retry.WithDelay(time.Millisecond), retry.WithMaxDelay(5*time.Millisecond))),
		)

		block, ok := svc.recoverBlock(t.Context(), "ethereum", chain, event)

		assert.True(t, ok)
		assert.Equal(t, types.Hex("0x10"), block.Height)
		assert.Equal(t, "0xblock10", block.Hash)
	})

	t.Run("with retry exhausted the failure handler is invoked", func(t *testing.T) {
		chain := NewBlockchainMock(t)

		chain.EXPECT().
			FetchBlockByHeight(mock.Anything, types.Hex("0x10")).
			Return(Block{}, assert.AnError).
			Times(2)

		var captured BlockFetchFailure
		svc := New(
			map[string]Blockchain{"ethereum": chain},
			WithRetry(retry.New(
				retry.WithAttempts(2),
				retry.WithDelay(time.Millisecond),
				retry.WithMaxDelay(5*time.Millisecond),
			)),
			WithFetchFailureHandler(func(_ context.Context, failure BlockFetchFailure) {
				captured = failure
			}),
		)

		_, ok := svc.recoverBlock(t.Context(), "ethereum", chain, event)

		assert.False(t, ok)
		require.Len(t, captured.Errors, 2)
		assert.ErrorIs(t, captured.Errors[1], assert.AnError)
	})

	t.Run("without retry the failure handler is invoked", func(t *testing.T) {
		chain := NewBlockchainMock(t)

		var captured BlockFetchFailure
		svc := New(
			map[string]Blockchain{"ethereum": chain},
			WithFetchFailureHandler(func(_ context.Context, failure BlockFetchFailure) {
				captured = failure
			}),
		)

		_, ok := svc.recoverBlock(t.Context(), "ethereum", chain, event)

		assert.False(t, ok)
		assert.Equal(t, "ethereum", captured.Network)
		assert.Equal(t, types.Hex("0x10"), captured.Height)
		require.Len(t, captured.Errors, 1)
		assert.ErrorIs(t, captured.Errors[0], assert.AnError)
	})
}
