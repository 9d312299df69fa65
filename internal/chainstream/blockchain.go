package chainstream

import (
	"context"
	"errors"

	"github.com/gabapcia/tokenwatch/internal/pkg/logger"
	"github.com/gabapcia/tokenwatch/internal/pkg/types"
	"github.com/gabapcia/tokenwatch/internal/pkg/x/chflow"
)

// Transaction is a block-level view of a transaction: just enough to decide
// whether a watched wallet was involved. Full details are fetched lazily by
// the analysis layer.
type Transaction struct {
	Hash string // unique transaction hash
	From string // sender address
	To   string // recipient address
}

// Block is a blockchain block with its height, hash, and transactions.
type Block struct {
	Height       types.Hex     // block height as a hex quantity
	Hash         string        // unique block hash
	Transactions []Transaction // transactions contained in the block
}

// ObservedBlock is a block detected by the stream, annotated with the
// network it originated from. It is the primary output of this package.
type ObservedBlock struct {
	Network string // blockchain network name (e.g., "ethereum")
	Block           // embedded block data
}

// BlockchainEvent is emitted by a Blockchain subscription. It always carries
// the height that was processed, and either the block data or an error.
type BlockchainEvent struct {
	Height types.Hex // block height (always set)
	Block  Block     // block contents (zero value if Err is set)
	Err    error     // any error encountered (nil on success)
}

// Blockchain is a source of blockchain data: it supports fetching individual
// blocks by height and streaming new blocks as they are produced.
type Blockchain interface {
	// FetchBlockByHeight retrieves the block at the specified height.
	FetchBlockByHeight(ctx context.Context, height types.Hex) (Block, error)

	// Subscribe begins streaming blocks from fromHeight (inclusive). If
	// fromHeight is the zero value, streaming starts from the latest known
	// block. The returned channel is closed when ctx is canceled.
	Subscribe(ctx context.Context, fromHeight types.Hex) (<-chan BlockchainEvent, error)
}

// BlockFetchFailure describes a block that could not be fetched even after
// the configured retries. The Errors slice preserves the complete history:
// the original subscription error plus any retry errors.
type BlockFetchFailure struct {
	Network string    // blockchain network name
	Height  types.Hex // height that failed to be fetched
	Errors  []error   // all errors encountered, in order
}

// ErrNoCheckpointFound is returned by CheckpointStorage implementations when
// no checkpoint has been saved yet for the requested network.
var ErrNoCheckpointFound = errors.New("no checkpoint found for network")

// CheckpointStorage persists the latest processed block height per network,
// allowing the stream to resume from the correct position after restarts.
type CheckpointStorage interface {
	// SaveCheckpoint records the given height as the latest checkpoint for
	// the network, overwriting any previous value.
	SaveCheckpoint(ctx context.Context, network string, height types.Hex) error

	// LoadLatestCheckpoint returns the most recent height saved for the
	// network, or ErrNoCheckpointFound if none exists.
	LoadLatestCheckpoint(ctx context.Context, network string) (types.Hex, error)
}

// nopCheckpoint is a no-op CheckpointStorage. It persists nothing and
// always reports that no checkpoint exists, so streams start from the
// latest block.
type nopCheckpoint struct{}

var _ CheckpointStorage = nopCheckpoint{}

func (nopCheckpoint) SaveCheckpoint(_ context.Context, _ string, _ types.Hex) error {
	return nil
}

func (nopCheckpoint) LoadLatestCheckpoint(_ context.Context, _ string) (types.Hex, error) {
	return "", ErrNoCheckpointFound
}

// recoverBlock retries the fetch of a block whose subscription event carried
// an error. It reports the recovered block, or false when the block stays
// unfetchable after all attempts (in which case the failure handler has
// already been invoked).
func (s *service) recoverBlock(ctx context.Context, network string, chain Blockchain, event BlockchainEvent) (Block, bool) {
	failure := BlockFetchFailure{
		Network: network,
		Height:  event.Height,
		Errors:  []error{event.Err},
	}

	if s.retry != nil {
		var block Block
		retryErr := s.retry.Execute(ctx, func() error {
			var err error
			block, err = chain.FetchBlockByHeight(ctx, event.Height)
			return err
		})
		if retryErr == nil {
			return block, true
		}

		failure.Errors = append(failure.Errors, retryErr)
	}

	if s.fetchFailureHandler != nil {
		s.fetchFailureHandler(ctx, failure)
	}

	return Block{}, false
}

// streamNetwork consumes one network's subscription, checkpoints each block,
// and forwards it to the shared output channel. Blocks whose events carry an
// error go through recoverBlock first. The loop exits when the subscription
// channel closes or the context is canceled.
func (s *service) streamNetwork(ctx context.Context, network string, chain Blockchain, eventsCh <-chan BlockchainEvent, out chan<- ObservedBlock) {
	for {
		event, ok := chflow.Receive(ctx, eventsCh)
		if !ok {
			return
		}

		block := event.Block
		if event.Err != nil {
			block, ok = s.recoverBlock(ctx, network, chain, event)
			if !ok {
				continue
			}
		}

		if err := s.checkpointStorage.SaveCheckpoint(ctx, network, block.Height); err != nil {
			// Checkpoint failures must not stall the stream; the worst case
			// is reprocessing a few blocks after a restart.
			logger.Error(ctx, "failed to save checkpoint",
				"block.network", network,
				"block.height", block.Height,
				"error", err,
			)
		}

		observed := ObservedBlock{Network: network, Block: block}
		if ok := chflow.Send(ctx, out, observed); !ok {
			return
		}
	}
}

// launchNetworkSubscription resolves the network's starting height from the
// checkpoint storage, opens the subscription, and starts the streaming
// goroutine for it.
func (s *service) launchNetworkSubscription(ctx context.Context, network string, chain Blockchain, out chan<- ObservedBlock) error {
	fromHeight, err := s.checkpointStorage.LoadLatestCheckpoint(ctx, network)
	if err != nil && !errors.Is(err, ErrNoCheckpointFound) {
		return err
	}

	eventsCh, err := chain.Subscribe(ctx, fromHeight)
	if err != nil {
		return err
	}

	go s.streamNetwork(ctx, network, chain, eventsCh, out)
	return nil
}
