package history

import (
	"sync"

	"stock-dashboard/src/models"
	"stock-dashboard/src/utils"
)

// -----------------------------------------------------------------------------
// HistoryStore keeps a bounded in-memory ring of recent ticks per symbol.
// It is the single shared mutable state of the process: the tick generator
// appends while request handlers read snapshots concurrently.
// -----------------------------------------------------------------------------

type HistoryStore struct {
	streams  map[string]*utils.RingBuffer
	capacity int
	mu       sync.RWMutex
}

// -----------------------------------------------------------------------------

func NewHistoryStore(capacity int) *HistoryStore {
	if capacity <= 0 {
		capacity = 100
	}
	return &HistoryStore{
		streams:  make(map[string]*utils.RingBuffer),
		capacity: capacity,
	}
}

// -----------------------------------------------------------------------------

// RecordTick appends a tick to the symbol's ring, creating it on first use.
// Oldest observations are evicted FIFO once the ring is full.
func (hs *HistoryStore) RecordTick(point models.MPricePoint) {
	hs.mu.Lock()
	defer hs.mu.Unlock()

	buffer, ok := hs.streams[point.Symbol]
	if !ok {
		buffer = utils.NewRingBuffer(point.Symbol, hs.capacity)
		hs.streams[point.Symbol] = buffer
	}

	buffer.Append(point)
}

// -----------------------------------------------------------------------------

// Read returns the latest snapshot and the full observation window for a
// symbol. Unknown symbols yield a nil-priced snapshot and an empty slice,
// never an error. The returned slice is a copy and safe to hold across
// concurrent appends.
func (hs *HistoryStore) Read(symbol string) (models.MSnapshot, []models.MPricePoint) {
	hs.mu.RLock()
	defer hs.mu.RUnlock()

	buffer, ok := hs.streams[symbol]
	if !ok || buffer.Size() == 0 {
		return models.MSnapshot{Symbol: symbol}, []models.MPricePoint{}
	}

	observations := buffer.GetAll()
	latest := observations[len(observations)-1]

	return models.MSnapshot{
		Symbol:    symbol,
		Price:     &latest.Price,
		Timestamp: &latest.Timestamp,
	}, observations
}

// -----------------------------------------------------------------------------

// Series returns parallel price/volume arrays in chronological order,
// the shape the indicator library consumes. Empty for unknown symbols.
func (hs *HistoryStore) Series(symbol string) ([]float64, []float64) {
	hs.mu.RLock()
	defer hs.mu.RUnlock()

	buffer, ok := hs.streams[symbol]
	if !ok {
		return []float64{}, []float64{}
	}
	return buffer.GetSeries()
}

// -----------------------------------------------------------------------------

// Symbols returns the symbols with at least one recorded tick.
func (hs *HistoryStore) Symbols() []string {
	hs.mu.RLock()
	defer hs.mu.RUnlock()

	symbols := make([]string, 0, len(hs.streams))
	for sym, buffer := range hs.streams {
		if buffer.Size() > 0 {
			symbols = append(symbols, sym)
		}
	}
	return symbols
}

// -----------------------------------------------------------------------------

// HasSymbol checks if symbol exists
func (hs *HistoryStore) HasSymbol(symbol string) bool {
	hs.mu.RLock()
	defer hs.mu.RUnlock()

	_, ok := hs.streams[symbol]
	return ok
}

// -----------------------------------------------------------------------------

// SymbolCount returns number of symbols with data
func (hs *HistoryStore) SymbolCount() int {
	hs.mu.RLock()
	defer hs.mu.RUnlock()

	return len(hs.streams)
}
