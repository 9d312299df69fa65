package walletwatch

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrStillInProgress indicates that the block is currently being
	// processed by another instance.
	ErrStillInProgress = errors.New("processing still in progress")

	// ErrAlreadyFinished indicates that the block has already been
	// processed successfully.
	ErrAlreadyFinished = errors.New("processing already finished")
)

// IdempotencyGuard coordinates block processing so each block is scanned
// for wallet activity exactly once, even with multiple instances or
// retry-prone workflows. Implementations typically use durable storage
// (e.g., Redis).
type IdempotencyGuard interface {
	// ClaimBlockForActivity attempts to claim exclusive rights to process
	// the given block. The claim is time-bound via ttl so a crashed
	// process does not deadlock the block forever.
	//
	// Returns nil when the claim was acquired, ErrStillInProgress when
	// another process holds the claim, ErrAlreadyFinished when the block
	// was fully processed before, or any other error on guard failure.
	ClaimBlockForActivity(ctx context.Context, network, blockHash string, ttl time.Duration) error

	// MarkBlockActivityComplete records that the block was fully scanned,
	// making future claims return ErrAlreadyFinished even after restarts.
	MarkBlockActivityComplete(ctx context.Context, network, blockHash string) error
}

// nopIdempotencyGuard treats every block as unprocessed. It is intended for
// local development and tests, where duplicate processing is acceptable.
type nopIdempotencyGuard struct{}

var _ IdempotencyGuard = (*nopIdempotencyGuard)(nil)

func (nopIdempotencyGuard) ClaimBlockForActivity(ctx context.Context, network, blockHash string, ttl time.Duration) error {
	return nil
}

func (nopIdempotencyGuard) MarkBlockActivityComplete(ctx context.Context, network, blockHash string) error {
	return nil
}
