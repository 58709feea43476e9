package interfaces

import (
	"context"
	"sync"

	"stock-dashboard/src/models"
)

// -----------------------------------------------------------------------------
// ITickSource interface for producing batches of price ticks.
// -----------------------------------------------------------------------------

type ITickSource interface {

	// Name returns the unique identifier of the source
	Name() string

	// -----------------------------------------------------------------------------

	// UpdateSymbols replaces the list of symbols being generated
	UpdateSymbols(symbols []string) error

	// -----------------------------------------------------------------------------

	// Start begins the tick production loop
	// ctx: controls the lifecycle (cancellation stops the source)
	// outputChan: channel to push tick batches to
	// wg: WaitGroup to signal when the source has fully stopped
	Start(ctx context.Context, outputChan chan<- []models.MPricePoint, wg *sync.WaitGroup) error

	// -----------------------------------------------------------------------------

	// Stop terminates the tick production loop (manual stop)
	// Cancelling the context passed to Start is equivalent.
	Stop() error
}
