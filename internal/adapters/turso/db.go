// Package turso provides libSQL-backed repositories.
package turso

import (
	"database/sql"
	"fmt"

	_ "github.com/tursodatabase/go-libsql"

	"github.com/tokenforge/tokenforge/internal/config"
)

// NewDB opens the configured libSQL database. Local file URLs need no auth
// token; remote Turso URLs get the token appended.
func NewDB(cfg config.Database) (*sql.DB, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("database URL is required")
	}

	connStr := cfg.URL
	if cfg.AuthToken != "" {
		connStr = fmt.Sprintf("%s?authToken=%s", cfg.URL, cfg.AuthToken)
	}

	db, err := sql.Open("libsql", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
