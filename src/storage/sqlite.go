package storage

import (
	"database/sql"
	"fmt"
	"time"

	"stock-dashboard/src/logger"
	"stock-dashboard/src/models"

	_ "modernc.org/sqlite"
)

// -----------------------------------------------------------------------------

type SQLiteDB struct {
	Config *models.MConfig
	DB     *sql.DB
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewSQLiteDB(cfg *models.MConfig, log *logger.Logger) (*SQLiteDB, error) {
	return &SQLiteDB{
		Config: cfg,
		Logger: log,
	}, nil
}

// -----------------------------------------------------------------------------

func (d *SQLiteDB) Initialize() error {
	dsn := d.Config.Storage.DBPath

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return err
	}

	if err := db.Ping(); err != nil {
		return err
	}

	d.DB = db

	// PRAGMA optimizations
	if _, err := db.Exec("PRAGMA journal_mode = WAL;"); err != nil {
		d.Logger.Warning("Failed to set WAL mode: %v", err)
	}
	if _, err := db.Exec("PRAGMA synchronous = NORMAL;"); err != nil {
		d.Logger.Warning("Failed to set synchronous mode: %v", err)
	}

	return d.recreateTables()
}

// -----------------------------------------------------------------------------

func (d *SQLiteDB) recreateTables() error {
	// The archive is write-only: each run starts from a clean slate and the
	// in-memory history is the single source of truth for the dashboard.
	if _, err := d.DB.Exec("DROP TABLE IF EXISTS ticks"); err != nil {
		return fmt.Errorf("failed to drop ticks: %w", err)
	}

	query := `
		CREATE TABLE ticks (
			symbol TEXT,
			timestamp INTEGER,
			price REAL,
			volume REAL,
			PRIMARY KEY (symbol, timestamp)
		);
	`
	if _, err := d.DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create ticks: %w", err)
	}

	if _, err := d.DB.Exec("DROP TABLE IF EXISTS signals"); err != nil {
		return fmt.Errorf("failed to drop signals: %w", err)
	}

	query = `
		CREATE TABLE signals (
			symbol TEXT,
			signal TEXT,
			confidence REAL,
			combined_score REAL,
			timestamp INTEGER,
			PRIMARY KEY (symbol, timestamp)
		);
	`
	if _, err := d.DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create signals: %w", err)
	}

	return nil
}

// -----------------------------------------------------------------------------

func (d *SQLiteDB) SaveTicksBulk(ticks []models.MPricePoint) error {
	if len(ticks) == 0 {
		return nil
	}

	tx, err := d.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO ticks (symbol, timestamp, price, volume)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, t := range ticks {
		if _, err := stmt.Exec(t.Symbol, t.Timestamp, t.Price, t.Volume); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// -----------------------------------------------------------------------------

func (d *SQLiteDB) SaveSignals(signals []models.MSignalRecord) error {
	if len(signals) == 0 {
		return nil
	}

	tx, err := d.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO signals (symbol, signal, confidence, combined_score, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, s := range signals {
		if _, err := stmt.Exec(s.Symbol, s.Signal, s.Confidence, s.CombinedScore, s.Timestamp); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// -----------------------------------------------------------------------------

func (d *SQLiteDB) CleanupOldData() error {
	retentionDays := d.Config.RetentionDays
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays).Unix()

	if _, err := d.DB.Exec("DELETE FROM ticks WHERE timestamp < ?", cutoff); err != nil {
		d.Logger.Error("Cleanup ticks error: %v", err)
	}
	if _, err := d.DB.Exec("DELETE FROM signals WHERE timestamp < ?", cutoff); err != nil {
		d.Logger.Error("Cleanup signals error: %v", err)
	}

	d.Logger.Info("Cleanup completed (retention %d days)", retentionDays)
	return nil
}

// -----------------------------------------------------------------------------

func (d *SQLiteDB) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}
