package interfaces

import "stock-dashboard/src/models"

// -----------------------------------------------------------------------------
// IDatabase defines the contract for storage operations.
// -----------------------------------------------------------------------------

type IDatabase interface {

	// -----------------------------------------------------------------------------

	// Initialize sets up the database schema and tables.
	Initialize() error

	// -----------------------------------------------------------------------------

	// SaveTicksBulk inserts a batch of generated ticks.
	SaveTicksBulk(ticks []models.MPricePoint) error

	// -----------------------------------------------------------------------------

	// SaveSignals archives a batch of emitted trading signals.
	SaveSignals(signals []models.MSignalRecord) error

	// -----------------------------------------------------------------------------

	// CleanupOldData removes data older than the retention policy.
	CleanupOldData() error

	// -----------------------------------------------------------------------------

	// Close the database connection
	Close() error
}
