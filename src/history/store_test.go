package history

import (
	"testing"

	"stock-dashboard/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------

func tick(symbol string, i int) models.MPricePoint {
	return models.MPricePoint{
		Symbol:    symbol,
		Price:     float64(i),
		Volume:    float64(i) * 1000,
		Timestamp: int64(1700000000 + i),
	}
}

// -----------------------------------------------------------------------------

func TestHistoryStoreBoundedWindow(t *testing.T) {
	store := NewHistoryStore(100)

	for i := 1; i <= 150; i++ {
		store.RecordTick(tick("AAPL", i))
	}

	snapshot, observations := store.Read("AAPL")

	// Only the last 100 ticks survive, oldest first
	require.Len(t, observations, 100)
	assert.Equal(t, 51.0, observations[0].Price)
	assert.Equal(t, 150.0, observations[99].Price)

	require.NotNil(t, snapshot.Price)
	assert.Equal(t, 150.0, *snapshot.Price)
	require.NotNil(t, snapshot.Timestamp)
	assert.Equal(t, int64(1700000150), *snapshot.Timestamp)
}

// -----------------------------------------------------------------------------

func TestHistoryStoreUnknownSymbol(t *testing.T) {
	store := NewHistoryStore(100)

	snapshot, observations := store.Read("UNSEEN")

	assert.Equal(t, "UNSEEN", snapshot.Symbol)
	assert.Nil(t, snapshot.Price)
	assert.Nil(t, snapshot.Timestamp)
	assert.Empty(t, observations)

	prices, volumes := store.Series("UNSEEN")
	assert.Empty(t, prices)
	assert.Empty(t, volumes)
}

// -----------------------------------------------------------------------------

func TestHistoryStoreSeriesShape(t *testing.T) {
	store := NewHistoryStore(10)

	for i := 1; i <= 5; i++ {
		store.RecordTick(tick("MSFT", i))
	}

	prices, volumes := store.Series("MSFT")

	require.Len(t, prices, 5)
	require.Len(t, volumes, 5)
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, prices)
	assert.Equal(t, []float64{1000, 2000, 3000, 4000, 5000}, volumes)
}

// -----------------------------------------------------------------------------

func TestHistoryStoreSymbolTracking(t *testing.T) {
	store := NewHistoryStore(10)

	store.RecordTick(tick("AAPL", 1))
	store.RecordTick(tick("MSFT", 1))

	assert.Equal(t, 2, store.SymbolCount())
	assert.True(t, store.HasSymbol("AAPL"))
	assert.False(t, store.HasSymbol("TSLA"))
	assert.ElementsMatch(t, []string{"AAPL", "MSFT"}, store.Symbols())
}

// -----------------------------------------------------------------------------

func TestHistoryStoreIsolatesSymbols(t *testing.T) {
	store := NewHistoryStore(10)

	store.RecordTick(tick("AAPL", 1))
	store.RecordTick(tick("MSFT", 99))

	_, aapl := store.Read("AAPL")
	_, msft := store.Read("MSFT")

	require.Len(t, aapl, 1)
	require.Len(t, msft, 1)
	assert.Equal(t, 1.0, aapl[0].Price)
	assert.Equal(t, 99.0, msft[0].Price)
}
