package session

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"stock-dashboard/src/analysis/core"
	"stock-dashboard/src/logger"
	"stock-dashboard/src/models"
	"stock-dashboard/src/utils"
)

// -----------------------------------------------------------------------------
// Analyzer resolves the active trading session from wall-clock time and
// compiles session-specific metrics, alerts and guidance.
// -----------------------------------------------------------------------------

// ORB needs 6 observations (30 minutes at 5-minute candles).
const orbObservations = 6

type Analyzer struct {
	Location *time.Location
	Calendar *utils.TradingCalendar
	Logger   *logger.Logger

	// now is swappable for tests
	now func() time.Time
}

// -----------------------------------------------------------------------------

func NewAnalyzer(timezone, logLevel string) *Analyzer {
	loc, err := time.LoadLocation(timezone)
	l := logger.NewLogger(logLevel, "SessionAnalyzer")
	if err != nil {
		l.Warning("Failed to load timezone '%s', falling back to UTC: %v", timezone, err)
		loc = time.UTC
	}

	return &Analyzer{
		Location: loc,
		Calendar: utils.NewTradingCalendar(),
		Logger:   l,
		now:      time.Now,
	}
}

// -----------------------------------------------------------------------------

// CurrentSession resolves the session window containing the given instant.
// Weekends and exchange holidays resolve to a closed state; times before the
// first window are "waiting" and times after the last are "closed".
func (a *Analyzer) CurrentSession(now time.Time) models.MSessionState {
	now = now.In(a.Location)
	currentMinutes := now.Hour()*60 + now.Minute()
	currentTime := fmt.Sprintf("%02d:%02d", now.Hour(), now.Minute())

	weekday := now.Weekday()
	if weekday == time.Saturday || weekday == time.Sunday {
		return models.MSessionState{
			Session:  "market_closed",
			Status:   "weekend",
			Strategy: "Prepare for next week",
			Message:  "Market closed - Weekend preparation",
		}
	}

	if a.Calendar != nil && a.Calendar.IsHoliday(now) {
		return models.MSessionState{
			Session:  "market_closed",
			Status:   "holiday",
			Strategy: "Prepare for next trading day",
			Message:  "Market closed - Exchange holiday",
		}
	}

	for _, window := range marketSessions {
		start := parseMinutes(window.Start)
		end := parseMinutes(window.End)

		if start <= currentMinutes && currentMinutes <= end {
			return models.MSessionState{
				Session:         window.Name,
				Status:          "active",
				CurrentTime:     currentTime,
				StartTime:       window.Start,
				EndTime:         window.End,
				Strategy:        window.Strategy,
				Focus:           window.Focus,
				MaxPositionSize: window.MaxPositionSize,
				RiskPerTrade:    window.RiskPerTrade,
				KeyLevels:       window.KeyLevels,
			}
		}
	}

	// Outside trading hours
	firstStart := parseMinutes(marketSessions[0].Start)
	lastEnd := parseMinutes(marketSessions[len(marketSessions)-1].End)

	switch {
	case currentMinutes < firstStart:
		return models.MSessionState{
			Session: "before_premarket",
			Status:  "waiting",
			Message: "Waiting for premarket session",
		}
	case currentMinutes > lastEnd:
		return models.MSessionState{
			Session: "after_hours",
			Status:  "closed",
			Message: "Market closed - After hours session ended",
		}
	default:
		return models.MSessionState{
			Session: "market_closed",
			Status:  "closed",
			Message: "Market session not active",
		}
	}
}

// -----------------------------------------------------------------------------

// parseMinutes converts a zero-padded "HH:MM" string to minutes since
// midnight. The table is static, so malformed entries resolve to 0.
func parseMinutes(hhmm string) int {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h*60 + m
}

// -----------------------------------------------------------------------------

// GapAnalysis classifies the gap between current price and previous close.
// A non-positive previous close yields the all-neutral result.
func GapAnalysis(currentPrice, previousClose float64) models.MGapAnalysis {
	if previousClose <= 0 {
		return models.MGapAnalysis{GapPercent: 0, GapDirection: "neutral", GapSize: "small"}
	}

	gapPercent := (currentPrice - previousClose) / previousClose * 100

	direction := "neutral"
	if gapPercent > 1 {
		direction = "up"
	} else if gapPercent < -1 {
		direction = "down"
	}

	size := "small"
	if math.Abs(gapPercent) > 2 {
		size = "large"
	} else if math.Abs(gapPercent) > 1 {
		size = "normal"
	}

	return models.MGapAnalysis{
		GapPercent:    core.Round2(gapPercent),
		GapDirection:  direction,
		GapSize:       size,
		CurrentPrice:  currentPrice,
		PreviousClose: previousClose,
	}
}

// -----------------------------------------------------------------------------

// ORBLevels computes Opening Range Breakout levels from the first 6
// observations (the first 30 minutes). Fewer observations yield nil levels.
func ORBLevels(prices []float64) models.MORBLevels {
	if len(prices) < orbObservations {
		return models.MORBLevels{}
	}

	opening := prices[:orbObservations]
	orbHigh := opening[0]
	orbLow := opening[0]
	for _, p := range opening {
		if p > orbHigh {
			orbHigh = p
		}
		if p < orbLow {
			orbLow = p
		}
	}

	high := core.Round2(orbHigh)
	low := core.Round2(orbLow)
	orbRange := core.Round2(orbHigh - orbLow)
	latest := prices[len(prices)-1]

	return models.MORBLevels{
		ORBHigh:      &high,
		ORBLow:       &low,
		ORBRange:     &orbRange,
		CurrentPrice: core.Round2(latest),
		AboveORB:     latest > orbHigh,
		BelowORB:     latest < orbLow,
	}
}

// -----------------------------------------------------------------------------

// SessionAlerts applies the per-session static rule table. Thresholds are
// policy, fixed per session, and produce zero or more alerts.
func SessionAlerts(
	currentPrice float64,
	vwapPrice float64,
	orderFlowRatio float64,
	volatility float64,
	sessionInfo models.MSessionState,
) []models.MSessionAlert {

	alerts := []models.MSessionAlert{}

	switch sessionInfo.Session {
	case "premarket":
		if math.Abs(orderFlowRatio-1.0) > 0.5 {
			alerts = append(alerts, models.MSessionAlert{
				Type:    "info",
				Message: "Strong order flow imbalance detected in premarket",
				Action:  "Prepare for gap move at market open",
			})
		}
		if volatility > 10 {
			alerts = append(alerts, models.MSessionAlert{
				Type:    "warning",
				Message: "High premarket volatility",
				Action:  "Be ready for large opening move",
			})
		}

	case "opening":
		if math.Abs(currentPrice-vwapPrice) > vwapPrice*0.02 {
			alerts = append(alerts, models.MSessionAlert{
				Type:    "trade",
				Message: "Price significantly away from VWAP",
				Action:  "Potential ORB play",
			})
		}

	case "morning":
		if math.Abs(currentPrice-vwapPrice) < vwapPrice*0.01 {
			alerts = append(alerts, models.MSessionAlert{
				Type:    "trade",
				Message: "Price near VWAP level",
				Action:  "Consider VWAP bounce play",
			})
		}

	case "lunch":
		if volatility < 2 {
			alerts = append(alerts, models.MSessionAlert{
				Type:    "info",
				Message: "Low volatility period - consolidation likely",
				Action:  "Reduce position size, widen stops",
			})
		}

	case "afternoon":
		if orderFlowRatio < 0.5 {
			alerts = append(alerts, models.MSessionAlert{
				Type:    "trade",
				Message: "Strong sell pressure - possible mean reversion",
				Action:  "Watch for bounce setup",
			})
		} else if orderFlowRatio > 1.5 {
			alerts = append(alerts, models.MSessionAlert{
				Type:    "trade",
				Message: "Strong buy pressure - trend continuation",
				Action:  "Follow momentum",
			})
		}

	case "closing":
		alerts = append(alerts, models.MSessionAlert{
			Type:    "warning",
			Message: fmt.Sprintf("Closing session active - %s", sessionInfo.Strategy),
			Action:  "Review positions, consider exits before 4 PM",
		})
	}

	return alerts
}

// -----------------------------------------------------------------------------

// SessionMetrics compiles session info, gap analysis, ORB levels, alerts and
// guidance for one symbol's history window.
func (a *Analyzer) SessionMetrics(
	prices []float64,
	volumes []float64,
	currentPrice float64,
	previousClose float64,
	vwapPrice float64,
	orderFlowRatio float64,
) models.MSessionMetrics {

	sessionInfo := a.CurrentSession(a.now())

	// Volatility for the alert rules: population stddev of percent returns
	volatility := 0.0
	if len(prices) > 1 {
		returns := core.SimpleReturns(prices)
		if len(returns) > 0 {
			_, std := core.CalculateMeanStd(returns)
			volatility = std * 100
		}
	}

	return models.MSessionMetrics{
		Session:     sessionInfo,
		GapAnalysis: GapAnalysis(currentPrice, previousClose),
		ORBLevels:   ORBLevels(prices),
		Alerts:      SessionAlerts(currentPrice, vwapPrice, orderFlowRatio, volatility, sessionInfo),
		Guidance:    sessionGuidance[sessionInfo.Session],
	}
}
