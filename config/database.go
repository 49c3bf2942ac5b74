package config

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"
)

// DBPath returns the sqlite file path, defaulting next to the binary.
func DBPath() string {
	if p := os.Getenv("DATABASE_PATH"); p != "" {
		return p
	}
	return "power_consumption.db"
}

func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// sqlite serializes writers itself; a single connection avoids
	// SQLITE_BUSY under concurrent handlers.
	db.SetMaxOpenConns(1)

	return db, nil
}

func RunMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS appliances (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			power_watts REAL NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS daily_consumptions (
			id TEXT PRIMARY KEY,
			date TEXT NOT NULL,
			appliance_id TEXT NOT NULL REFERENCES appliances(id) ON DELETE CASCADE,
			hours_used REAL NOT NULL,
			consumption_kwh REAL NOT NULL,
			created_at TIMESTAMP NOT NULL,
			UNIQUE(date, appliance_id)
		)`,

		`CREATE TABLE IF NOT EXISTS monthly_summaries (
			id TEXT PRIMARY KEY,
			month TEXT NOT NULL,
			country TEXT NOT NULL,
			total_consumption REAL NOT NULL,
			total_cost REAL NOT NULL,
			carbon_footprint REAL NOT NULL,
			created_at TIMESTAMP NOT NULL,
			UNIQUE(month, country)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_daily_consumptions_date ON daily_consumptions(date)`,
		`CREATE INDEX IF NOT EXISTS idx_daily_consumptions_appliance_id ON daily_consumptions(appliance_id)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return nil
}
