package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hpungsan/cardex/internal/config"
	_ "modernc.org/sqlite"
)

// CurrentSchemaVersion is the latest schema version.
// Bump this when adding migrations.
const CurrentSchemaVersion = 1

// Init opens (or creates) the SQLite database at dbPath, applies schema
// migrations, and seeds the fixed rarity and card-type vocabularies.
// Pass ":memory:" for an in-memory database in tests.
func Init(dbPath string) (*sql.DB, error) {
	inMemory := dbPath == ":memory:"

	if !inMemory {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// Pragmas in the connection string apply to all pool connections.
	dsn := dbPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// The schema and seed data assume a single connection; an in-memory
	// DSN additionally gets a fresh empty database per connection, so the
	// pool must never grow past one.
	db.SetMaxOpenConns(1)

	if !inMemory {
		if err := verifyWALMode(db); err != nil {
			db.Close()
			return nil, err
		}
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	if err := Seed(db); err != nil {
		db.Close()
		return nil, err
	}

	if !inMemory {
		_ = os.Chmod(dbPath, 0600)
	}

	return db, nil
}

// ConfigurePool applies connection pool settings from config.
// The default of one open connection serializes all store access,
// which is the concurrency model the rest of the code assumes.
func ConfigurePool(db *sql.DB, cfg *config.Config) {
	if cfg == nil {
		return
	}
	if cfg.DBMaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	}
	if cfg.DBMaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	}
}

// migrate applies schema migrations based on user_version.
func migrate(db *sql.DB) error {
	version, err := GetUserVersion(db)
	if err != nil {
		return err
	}

	// Migration 0 -> 1: Initial schema (v1)
	if version < 1 {
		schema := `
		CREATE TABLE IF NOT EXISTS rarity (
		  id   INTEGER PRIMARY KEY AUTOINCREMENT,
		  name TEXT NOT NULL UNIQUE
		);

		CREATE TABLE IF NOT EXISTS card_type (
		  id       INTEGER PRIMARY KEY AUTOINCREMENT,
		  maintype TEXT NOT NULL,
		  subtype  TEXT NOT NULL,
		  UNIQUE (maintype, subtype)
		);

		CREATE TABLE IF NOT EXISTS series (
		  id           INTEGER PRIMARY KEY AUTOINCREMENT,
		  name         TEXT NOT NULL UNIQUE,
		  release_date DATE NOT NULL,
		  prefix       TEXT,
		  n_cards      INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS cards (
		  id                INTEGER PRIMARY KEY AUTOINCREMENT,
		  name              TEXT NOT NULL,
		  series_id         INTEGER NOT NULL,
		  collection_number INTEGER NOT NULL,
		  number            TEXT NOT NULL UNIQUE,
		  in_collection     INTEGER NOT NULL DEFAULT 0,
		  rarity_id         INTEGER NOT NULL,
		  card_type_id      INTEGER NOT NULL,
		  FOREIGN KEY (series_id) REFERENCES series(id),
		  FOREIGN KEY (rarity_id) REFERENCES rarity(id),
		  FOREIGN KEY (card_type_id) REFERENCES card_type(id)
		);

		CREATE INDEX IF NOT EXISTS idx_cards_series ON cards(series_id);
		CREATE INDEX IF NOT EXISTS idx_cards_name ON cards(name COLLATE NOCASE);
		`
		if _, err := db.Exec(schema); err != nil {
			return fmt.Errorf("migration 1 failed: %w", err)
		}
		if err := SetUserVersion(db, 1); err != nil {
			return err
		}
	}

	// Future migrations go here:
	// if version < 2 { ... }

	return nil
}

// verifyWALMode checks that WAL mode is active (set via connection string).
func verifyWALMode(db *sql.DB) error {
	var journalMode string
	if err := db.QueryRow("PRAGMA journal_mode;").Scan(&journalMode); err != nil {
		return fmt.Errorf("failed to verify journal mode: %w", err)
	}
	if journalMode != "wal" {
		return fmt.Errorf("expected WAL mode, got %s", journalMode)
	}
	return nil
}

// GetUserVersion returns the current schema version (user_version pragma).
func GetUserVersion(db *sql.DB) (int, error) {
	var version int
	if err := db.QueryRow("PRAGMA user_version;").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get user_version: %w", err)
	}
	return version, nil
}

// SetUserVersion sets the schema version (user_version pragma).
func SetUserVersion(db *sql.DB, version int) error {
	_, err := db.Exec(fmt.Sprintf("PRAGMA user_version=%d", version))
	if err != nil {
		return fmt.Errorf("failed to set user_version: %w", err)
	}
	return nil
}
