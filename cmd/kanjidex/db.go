package main

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/morg/kanjidex/pkg/config"
	"github.com/morg/kanjidex/pkg/db"
)

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDB != "" {
		cfg.Database = flagDB
	}
	return cfg, nil
}

// openDB opens the configured database and runs migrations.
func openDB(cfg config.Config) (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", cfg.Database, err)
	}
	if err := db.InitDB(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initialize database %s: %w", cfg.Database, err)
	}
	return conn, nil
}
