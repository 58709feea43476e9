package models

// -----------------------------------------------------------------------------
// Indicator result structures
// -----------------------------------------------------------------------------

// MOrderFlow measures buy vs sell pressure from price action and volume.
type MOrderFlow struct {
	BuyPressure  float64 `json:"buy_pressure"`
	SellPressure float64 `json:"sell_pressure"`
	Ratio        float64 `json:"ratio"` // >1 = more buy volume, <1 = more sell volume
}

// -----------------------------------------------------------------------------

// MVolumeProfile identifies price levels with high trading activity.
type MVolumeProfile struct {
	POC       float64   `json:"poc"` // Point of Control
	ValueArea []float64 `json:"value_area"`
}

// -----------------------------------------------------------------------------

// MMicrostructure captures volatility, order imbalance and market efficiency.
type MMicrostructure struct {
	Volatility float64 `json:"volatility"`
	Imbalance  float64 `json:"imbalance"` // 0=at low, 1=at high, 0.5=middle
	Efficiency float64 `json:"efficiency"`
}

// -----------------------------------------------------------------------------

// MOpenSetup describes opening conditions and morning momentum.
type MOpenSetup struct {
	Gap            float64 `json:"gap"`
	Momentum       float64 `json:"momentum"`
	VolumeStrength float64 `json:"volume_strength"`
	SetupStrength  int     `json:"setup_strength"` // 0-100
}

// -----------------------------------------------------------------------------

// MSignalComponents bundles the sub-indicator outputs behind a combined signal.
type MSignalComponents struct {
	MarketOpenSetup MOpenSetup      `json:"market_open_setup"`
	OrderFlow       MOrderFlow      `json:"order_flow"`
	VWAPPrice       *float64        `json:"vwap_price"`
	VWAPDistance    float64         `json:"vwap_distance"`
	Microstructure  MMicrostructure `json:"microstructure"`
	VolumeProfile   MVolumeProfile  `json:"volume_profile"`
}

// -----------------------------------------------------------------------------

// MCombinedSignal is the weighted composite trading signal.
type MCombinedSignal struct {
	Signal        string            `json:"signal"`
	Confidence    float64           `json:"confidence"`
	CombinedScore float64           `json:"combined_score"`
	Components    MSignalComponents `json:"components"`
}

// -----------------------------------------------------------------------------

// MRSISignal is the simple RSI-bracket signal.
type MRSISignal struct {
	Signal     string  `json:"signal"`
	Confidence float64 `json:"confidence"`
}

// -----------------------------------------------------------------------------

// MIndicatorSet groups the momentum indicators reported per symbol.
type MIndicatorSet struct {
	EMA20     *float64   `json:"ema_20"`
	EMA50     *float64   `json:"ema_50"`
	RSI14     *float64   `json:"rsi_14"`
	RSISignal MRSISignal `json:"rsi_signal"`
}

// -----------------------------------------------------------------------------

// MSignalRecord is the flattened signal row kept by the storage archive.
type MSignalRecord struct {
	Symbol        string  `json:"symbol"`
	Signal        string  `json:"signal"`
	Confidence    float64 `json:"confidence"`
	CombinedScore float64 `json:"combined_score"`
	Timestamp     int64   `json:"timestamp"`
}
