package models

// -----------------------------------------------------------------------------
// Session structures
// -----------------------------------------------------------------------------

// MSessionWindow is a static market-hours table entry.
type MSessionWindow struct {
	Name            string   `json:"name"`
	Start           string   `json:"start"` // "HH:MM" zero-padded
	End             string   `json:"end"`
	Strategy        string   `json:"strategy"`
	Focus           []string `json:"focus"`
	MaxPositionSize float64  `json:"max_position_size"`
	RiskPerTrade    float64  `json:"risk_per_trade"`
	KeyLevels       string   `json:"key_levels"`
}

// -----------------------------------------------------------------------------

// MSessionState is the resolved session for a wall-clock instant.
type MSessionState struct {
	Session         string   `json:"session"`
	Status          string   `json:"status"` // active, waiting, closed, weekend, holiday
	Message         string   `json:"message,omitempty"`
	CurrentTime     string   `json:"current_time,omitempty"`
	StartTime       string   `json:"start_time,omitempty"`
	EndTime         string   `json:"end_time,omitempty"`
	Strategy        string   `json:"strategy,omitempty"`
	Focus           []string `json:"focus,omitempty"`
	MaxPositionSize float64  `json:"max_position_size"`
	RiskPerTrade    float64  `json:"risk_per_trade"`
	KeyLevels       string   `json:"key_levels,omitempty"`
}

// -----------------------------------------------------------------------------

// MGapAnalysis describes the gap between current price and previous close.
type MGapAnalysis struct {
	GapPercent    float64 `json:"gap_percent"`
	GapDirection  string  `json:"gap_direction"` // up, down, neutral
	GapSize       string  `json:"gap_size"`      // large, normal, small
	CurrentPrice  float64 `json:"current_price"`
	PreviousClose float64 `json:"previous_close"`
}

// -----------------------------------------------------------------------------

// MORBLevels holds Opening Range Breakout levels from the first 30 minutes.
// Pointers are nil when fewer than 6 observations exist.
type MORBLevels struct {
	ORBHigh      *float64 `json:"orb_high"`
	ORBLow       *float64 `json:"orb_low"`
	ORBRange     *float64 `json:"orb_range"`
	CurrentPrice float64  `json:"current_price,omitempty"`
	AboveORB     bool     `json:"above_orb"`
	BelowORB     bool     `json:"below_orb"`
}

// -----------------------------------------------------------------------------

// MSessionAlert is a single session-specific trading alert.
type MSessionAlert struct {
	Type    string `json:"type"` // info, warning, trade
	Message string `json:"message"`
	Action  string `json:"action"`
}

// -----------------------------------------------------------------------------

// MSessionMetrics compiles session info, gap/ORB levels, alerts and guidance.
type MSessionMetrics struct {
	Session     MSessionState   `json:"session"`
	GapAnalysis MGapAnalysis    `json:"gap_analysis"`
	ORBLevels   MORBLevels      `json:"orb_levels"`
	Alerts      []MSessionAlert `json:"alerts"`
	Guidance    string          `json:"guidance"`
}
