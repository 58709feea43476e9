package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"stock-dashboard/src/logger"
	"stock-dashboard/src/models"

	_ "github.com/lib/pq"
)

// -----------------------------------------------------------------------------

type PostgresDB struct {
	Config *models.MConfig
	DB     *sql.DB
	Schema string
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewPostgresDB(cfg *models.MConfig, log *logger.Logger) (*PostgresDB, error) {
	// Schema named after the executable so multiple instances can share a DB
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable name: %w", err)
	}
	name := filepath.Base(exe)
	name = strings.TrimSuffix(name, filepath.Ext(name))

	return &PostgresDB{
		Config: cfg,
		Schema: name,
		Logger: log,
	}, nil
}

// -----------------------------------------------------------------------------

func (d *PostgresDB) Initialize() error {
	dsn := d.Config.Storage.DBConnectionString
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return err
	}

	if err := db.Ping(); err != nil {
		return err
	}

	d.DB = db

	if _, err := d.DB.Exec(fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS "%s"`, d.Schema)); err != nil {
		return fmt.Errorf("failed to create schema %s: %w", d.Schema, err)
	}

	if err := d.recreateTables(); err != nil {
		return err
	}

	d.Logger.Info("PostgresDB initialized successfully (Schema: %s)", d.Schema)
	return nil
}

// -----------------------------------------------------------------------------

func (d *PostgresDB) recreateTables() error {
	ticksTable := fmt.Sprintf(`"%s"."ticks"`, d.Schema)
	if _, err := d.DB.Exec(fmt.Sprintf(`DROP TABLE IF EXISTS %s`, ticksTable)); err != nil {
		return fmt.Errorf("failed to drop %s: %w", ticksTable, err)
	}

	query := fmt.Sprintf(`
		CREATE TABLE %s (
			symbol TEXT,
			timestamp BIGINT,
			price DOUBLE PRECISION,
			volume DOUBLE PRECISION,
			PRIMARY KEY (symbol, timestamp)
		);
	`, ticksTable)
	if _, err := d.DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create %s: %w", ticksTable, err)
	}

	signalsTable := fmt.Sprintf(`"%s"."signals"`, d.Schema)
	if _, err := d.DB.Exec(fmt.Sprintf(`DROP TABLE IF EXISTS %s`, signalsTable)); err != nil {
		return fmt.Errorf("failed to drop %s: %w", signalsTable, err)
	}

	query = fmt.Sprintf(`
		CREATE TABLE %s (
			symbol TEXT,
			signal TEXT,
			confidence DOUBLE PRECISION,
			combined_score DOUBLE PRECISION,
			timestamp BIGINT,
			PRIMARY KEY (symbol, timestamp)
		);
	`, signalsTable)
	if _, err := d.DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create %s: %w", signalsTable, err)
	}

	return nil
}

// -----------------------------------------------------------------------------

func (d *PostgresDB) SaveTicksBulk(ticks []models.MPricePoint) error {
	if len(ticks) == 0 {
		return nil
	}

	tx, err := d.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := fmt.Sprintf(`
		INSERT INTO "%s"."ticks" (symbol, timestamp, price, volume)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (symbol, timestamp) DO UPDATE SET
			price = excluded.price,
			volume = excluded.volume
	`, d.Schema)

	stmt, err := tx.Prepare(query)
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

func (d *PostgresDB) SaveSignals(signals []models.MSignalRecord) error {
	if len(signals) == 0 {
		return nil
	}

	tx, err := d.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := fmt.Sprintf(`
		INSERT INTO "%s"."signals" (symbol, signal, confidence, combined_score, timestamp)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (symbol, timestamp) DO UPDATE SET
			signal = excluded.signal,
			confidence = excluded.confidence,
			combined_score = excluded.combined_score
	`, d.Schema)

	stmt, err := tx.Prepare(query)
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

func (d *PostgresDB) CleanupOldData() error {
	retentionDays := d.Config.RetentionDays
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays).Unix()

	query := fmt.Sprintf(`DELETE FROM "%s"."ticks" WHERE timestamp < $1`, d.Schema)
	if _, err := d.DB.Exec(query, cutoff); err != nil {
		d.Logger.Error("Cleanup ticks error: %v", err)
	}

	query = fmt.Sprintf(`DELETE FROM "%s"."signals" WHERE timestamp < $1`, d.Schema)
	if _, err := d.DB.Exec(query, cutoff); err != nil {
		d.Logger.Error("Cleanup signals error: %v", err)
	}

	d.Logger.Info("Cleanup completed (retention %d days)", retentionDays)
	return nil
}

// -----------------------------------------------------------------------------

func (d *PostgresDB) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}
