package storage

import (
	"path/filepath"
	"testing"
	"time"

	"stock-dashboard/src/logger"
	"stock-dashboard/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------

func testDB(t *testing.T) *SQLiteDB {
	t.Helper()

	cfg := &models.MConfig{
		RetentionDays: 7,
		Storage: models.MStorageConfig{
			DBType: "sqlite",
			DBPath: filepath.Join(t.TempDir(), "test.db"),
		},
	}

	db, err := NewSQLiteDB(cfg, logger.NewLogger("ERROR", "test"))
	require.NoError(t, err)
	require.NoError(t, db.Initialize())
	t.Cleanup(func() { db.Close() })

	return db
}

// -----------------------------------------------------------------------------

func TestSQLiteSaveTicksBulk(t *testing.T) {
	db := testDB(t)

	now := time.Now().Unix()
	ticks := []models.MPricePoint{
		{Symbol: "AAPL", Price: 182.5, Volume: 5e6, Timestamp: now},
		{Symbol: "MSFT", Price: 410.1, Volume: 3e6, Timestamp: now},
	}

	require.NoError(t, db.SaveTicksBulk(ticks))

	var count int
	require.NoError(t, db.DB.QueryRow("SELECT COUNT(*) FROM ticks").Scan(&count))
	assert.Equal(t, 2, count)

	// Empty batch is a no-op
	assert.NoError(t, db.SaveTicksBulk(nil))
}

// -----------------------------------------------------------------------------

func TestSQLiteSaveSignals(t *testing.T) {
	db := testDB(t)

	now := time.Now().Unix()
	signals := []models.MSignalRecord{
		{Symbol: "AAPL", Signal: "BUY", Confidence: 0.75, CombinedScore: 0.75, Timestamp: now},
	}

	require.NoError(t, db.SaveSignals(signals))

	var signal string
	var confidence float64
	require.NoError(t, db.DB.QueryRow(
		"SELECT signal, confidence FROM signals WHERE symbol = ?", "AAPL",
	).Scan(&signal, &confidence))
	assert.Equal(t, "BUY", signal)
	assert.Equal(t, 0.75, confidence)
}

// -----------------------------------------------------------------------------

func TestSQLiteUpsertOnConflict(t *testing.T) {
	db := testDB(t)

	tick := models.MPricePoint{Symbol: "AAPL", Price: 180, Volume: 1e6, Timestamp: 1700000000}
	require.NoError(t, db.SaveTicksBulk([]models.MPricePoint{tick}))

	tick.Price = 185
	require.NoError(t, db.SaveTicksBulk([]models.MPricePoint{tick}))

	var count int
	var price float64
	require.NoError(t, db.DB.QueryRow("SELECT COUNT(*), MAX(price) FROM ticks").Scan(&count, &price))
	assert.Equal(t, 1, count)
	assert.Equal(t, 185.0, price)
}

// -----------------------------------------------------------------------------

func TestSQLiteCleanupOldData(t *testing.T) {
	db := testDB(t)

	old := time.Now().UTC().AddDate(0, 0, -30).Unix()
	fresh := time.Now().Unix()

	require.NoError(t, db.SaveTicksBulk([]models.MPricePoint{
		{Symbol: "AAPL", Price: 180, Volume: 1e6, Timestamp: old},
		{Symbol: "AAPL", Price: 185, Volume: 1e6, Timestamp: fresh},
	}))

	require.NoError(t, db.CleanupOldData())

	var count int
	require.NoError(t, db.DB.QueryRow("SELECT COUNT(*) FROM ticks").Scan(&count))
	assert.Equal(t, 1, count)
}

// -----------------------------------------------------------------------------

func TestSQLiteInitializeResetsTables(t *testing.T) {
	db := testDB(t)

	require.NoError(t, db.SaveTicksBulk([]models.MPricePoint{
		{Symbol: "AAPL", Price: 180, Volume: 1e6, Timestamp: time.Now().Unix()},
	}))

	// Re-initialization drops and recreates the archive
	require.NoError(t, db.Initialize())

	var count int
	require.NoError(t, db.DB.QueryRow("SELECT COUNT(*) FROM ticks").Scan(&count))
	assert.Equal(t, 0, count)
}
