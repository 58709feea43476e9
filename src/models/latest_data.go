package models

// -----------------------------------------------------------------------------
// Server State Structure
// -----------------------------------------------------------------------------

// MSymbolState is everything the dashboard shows for one symbol.
type MSymbolState struct {
	Snapshot       MSnapshot       `json:"snapshot"`
	Indicators     MIndicatorSet   `json:"indicators"`
	SignalAnalysis MCombinedSignal `json:"signal_analysis"`
}

// -----------------------------------------------------------------------------

type MLatestData struct {
	Type      string                  `json:"type"` // "INITIAL" or "UPDATE"
	Symbols   map[string]MSymbolState `json:"symbols"`
	Timestamp int64                   `json:"timestamp"`
	Metrics   MProcessingMetrics      `json:"processing_metrics"`
}

// -----------------------------------------------------------------------------

// MProcessingMetrics represents per-cycle performance of the tick pipeline.
type MProcessingMetrics struct {
	AnalysisTimeSeconds float64 `json:"analysis_time_seconds"`
	ValidSymbols        int     `json:"valid_symbols"`
	TicksProcessed      int     `json:"ticks_processed"`
}

// -----------------------------------------------------------------------------
// SubscribeCommand for client messages
// -----------------------------------------------------------------------------

type MSubscribeCommand struct {
	Command string   `json:"command"`
	Symbols []string `json:"symbols"`
}
