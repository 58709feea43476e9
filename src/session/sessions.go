package session

import "stock-dashboard/src/models"

// -----------------------------------------------------------------------------
// Static market-hours table (Eastern Time). Ordered by start time; the
// session lookup scans it linearly and the first match wins.
// -----------------------------------------------------------------------------

var marketSessions = []models.MSessionWindow{
	{
		Name:            "premarket",
		Start:           "08:00",
		End:             "09:25",
		Strategy:        "Scan for gappers, news, premarket levels",
		Focus:           []string{"Gap analysis", "News impact", "Premarket momentum"},
		MaxPositionSize: 0.5,
		RiskPerTrade:    0.02,
		KeyLevels:       "Premarket high/low, previous close",
	},
	{
		Name:            "opening",
		Start:           "09:30",
		End:             "10:00",
		Strategy:        "Play ORB, don't chase",
		Focus:           []string{"Opening Range Breakout", "Volume analysis", "First 30 min move"},
		MaxPositionSize: 1.0,
		RiskPerTrade:    0.025,
		KeyLevels:       "ORB levels (opening high/low +30 min)",
	},
	{
		Name:            "morning",
		Start:           "10:00",
		End:             "12:00",
		Strategy:        "VWAP plays, trend continuation",
		Focus:           []string{"VWAP bounces", "Trend confirmation", "MA crossovers"},
		MaxPositionSize: 1.0,
		RiskPerTrade:    0.03,
		KeyLevels:       "VWAP, 20/50 EMA",
	},
	{
		Name:            "lunch",
		Start:           "12:00",
		End:             "13:00",
		Strategy:        "Reduce size, wider stops",
		Focus:           []string{"Low volume", "Consolidation patterns", "News flow"},
		MaxPositionSize: 0.5,
		RiskPerTrade:    0.04,
		KeyLevels:       "Support/Resistance from morning",
	},
	{
		Name:            "afternoon",
		Start:           "13:00",
		End:             "15:30",
		Strategy:        "Mean reversion, breakout retests",
		Focus:           []string{"Bounce trades", "Level retests", "Fed/News impact"},
		MaxPositionSize: 1.0,
		RiskPerTrade:    0.03,
		KeyLevels:       "Daily pivots, morning high/low",
	},
	{
		Name:            "closing",
		Start:           "15:30",
		End:             "16:00",
		Strategy:        "Don't hold overnight unless swing setup",
		Focus:           []string{"Exit management", "Overnight gap risk", "Position squaring"},
		MaxPositionSize: 0.3,
		RiskPerTrade:    0.02,
		KeyLevels:       "Daily high/low, critical support/resistance",
	},
	{
		Name:            "afterhours",
		Start:           "16:00",
		End:             "20:00",
		Strategy:        "Monitor news, prepare for next day",
		Focus:           []string{"Earnings reports", "News digestion", "Premarket prep"},
		MaxPositionSize: 0.0,
		RiskPerTrade:    0.0,
		KeyLevels:       "Level changes, news impact",
	},
}

// -----------------------------------------------------------------------------

// Per-session trading guidance shown on the dashboard.
var sessionGuidance = map[string]string{
	"premarket": "Focus on gap levels and premarket movers. Check news for market-moving events.",
	"opening":   "Play the ORB but don't chase. Tight stops on range breakouts.",
	"morning":   "VWAP bounces and trend continuation trades are best. Confirm with volume.",
	"lunch":     "Reduce size due to low volume. Watch for news events. Wider stops recommended.",
	"afternoon": "Mean reversion trades and level retests work best. Watch for Fed/economic data.",
	"closing":   "Focus on position management. Don't hold overnight unless strong swing setup.",
}
