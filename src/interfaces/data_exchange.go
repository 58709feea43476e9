package interfaces

import "stock-dashboard/src/models"

// -----------------------------------------------------------------------------
// IDataExchanger defining the interface for pushing dashboard state to
// external listeners (Server/Push).
// -----------------------------------------------------------------------------

type IDataExchanger interface {

	// -----------------------------------------------------------------------------

	// Broadcast pushes a full dashboard state to all connected listeners.
	Broadcast(state *models.MLatestData)

	// -----------------------------------------------------------------------------

	// UpdateAllDatas replaces the internal state without broadcasting.
	UpdateAllDatas(state *models.MLatestData)

	// -----------------------------------------------------------------------------

	// Start the server
	Start() error

	// -----------------------------------------------------------------------------

	// Stop the server gracefully
	Stop() error
}
