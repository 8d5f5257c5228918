package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// InitDB opens or creates the SQLite file at path and ensures the
// adjustments, thermostat_state and users tables exist.
func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// one writer at a time; SQLite serializes writes anyway
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply %q: %w", pragma, err)
		}
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

const sqliteDriverName = "sqlite"

var pragmas = []string{
	"PRAGMA journal_mode = WAL;",
	"PRAGMA foreign_keys = ON;",
	"PRAGMA busy_timeout = 5000;",
}

const schemaAdjustments = `
CREATE TABLE IF NOT EXISTS adjustments (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP NOT NULL,
    room_temp REAL NOT NULL,
    outdoor_temp REAL NOT NULL,
    preferred_temp REAL NOT NULL,
    adjusted_temp REAL NOT NULL,
    change REAL NOT NULL,
    time_of_day TEXT NOT NULL,
    occupancy BOOLEAN NOT NULL DEFAULT 1,
    energy_efficiency INTEGER NOT NULL,
    suggestion TEXT
);
`

const indexAdjustmentsCreatedAt = `
CREATE INDEX IF NOT EXISTS idx_adjustments_created_at ON adjustments (created_at);
`

const schemaThermostatState = `
CREATE TABLE IF NOT EXISTS thermostat_state (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    mode TEXT NOT NULL,
    current_c REAL NOT NULL,
    target_c REAL NOT NULL,
    outdoor_c REAL NOT NULL,
    occupied BOOLEAN NOT NULL,
    suggestion TEXT,
    updated_at TIMESTAMP NOT NULL,
    revision INTEGER NOT NULL DEFAULT 0
);
`

const schemaUsers = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);
`

func ensureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range []string{
		schemaAdjustments,
		indexAdjustmentsCreatedAt,
		schemaThermostatState,
		schemaUsers,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := addStateRevision(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}

// addStateRevision upgrades thermostat_state tables created before the
// revision column existed.
func addStateRevision(tx *sql.Tx) error {
	var n int
	err := tx.QueryRow(`SELECT COUNT(*) FROM pragma_table_info('thermostat_state') WHERE name = 'revision'`).Scan(&n)
	if err != nil {
		return fmt.Errorf("inspect thermostat_state: %w", err)
	}
	if n > 0 {
		return nil
	}
	if _, err := tx.Exec(`ALTER TABLE thermostat_state ADD COLUMN revision INTEGER NOT NULL DEFAULT 0`); err != nil {
		return fmt.Errorf("add thermostat_state.revision: %w", err)
	}
	return nil
}
