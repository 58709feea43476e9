package analysis

import (
	"stock-dashboard/src/analysis/core"
	"stock-dashboard/src/logger"
	"stock-dashboard/src/models"
)

// -----------------------------------------------------------------------------
// AnalysisFacade turns a symbol's history window into the full per-symbol
// dashboard state: momentum indicators plus the combined signal.
// -----------------------------------------------------------------------------

// EMA periods reported on the dashboard.
const (
	EMAShortPeriod = 20
	EMALongPeriod  = 50
	RSIPeriod      = 14
)

type AnalysisFacade struct {
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewAnalysisFacade(logLevel string) *AnalysisFacade {
	return &AnalysisFacade{
		Logger: logger.NewLogger(logLevel, "AnalysisFacade"),
	}
}

// -----------------------------------------------------------------------------

// AnalyzeSymbol computes the dashboard state for one symbol from its snapshot
// and chronological price/volume series. Safe on empty histories: indicators
// fall back to their documented defaults.
func (a *AnalysisFacade) AnalyzeSymbol(
	snapshot models.MSnapshot,
	prices []float64,
	volumes []float64,
) models.MSymbolState {

	currentPrice := 0.0
	if snapshot.Price != nil {
		currentPrice = *snapshot.Price
	}

	rsi := core.RSI(prices, RSIPeriod)

	indicators := models.MIndicatorSet{
		EMA20:     core.EMA(prices, EMAShortPeriod),
		EMA50:     core.EMA(prices, EMALongPeriod),
		RSI14:     rsi,
		RSISignal: RSISignal(rsi),
	}

	return models.MSymbolState{
		Snapshot:       snapshot,
		Indicators:     indicators,
		SignalAnalysis: CombinedSignal(prices, volumes, currentPrice),
	}
}

// -----------------------------------------------------------------------------

// AnalyzeAll computes states for every symbol in the input map of series.
// Series maps symbol -> (snapshot, prices, volumes) via the provided reader.
func (a *AnalysisFacade) AnalyzeAll(
	symbols []string,
	read func(symbol string) (models.MSnapshot, []float64, []float64),
) map[string]models.MSymbolState {

	states := make(map[string]models.MSymbolState, len(symbols))
	for _, symbol := range symbols {
		snapshot, prices, volumes := read(symbol)
		states[symbol] = a.AnalyzeSymbol(snapshot, prices, volumes)
	}
	return states
}
