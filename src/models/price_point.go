package models

// MPricePoint represents a single synthetic tick for a symbol.
type MPricePoint struct {
	Symbol    string  `json:"symbol"`
	Price     float64 `json:"price"`
	Volume    float64 `json:"volume"`
	Timestamp int64   `json:"timestamp"`
}

// -----------------------------------------------------------------------------

// MSnapshot is the latest observation for a symbol.
// Price and Timestamp are nil until the first tick has been recorded.
type MSnapshot struct {
	Symbol    string   `json:"symbol"`
	Price     *float64 `json:"price"`
	Timestamp *int64   `json:"timestamp"`
}
