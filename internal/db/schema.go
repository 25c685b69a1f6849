package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            INTEGER PRIMARY KEY,
    email         TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    admin         INTEGER NOT NULL DEFAULT 0,
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    deleted_at    DATETIME
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_active
    ON users(email) WHERE deleted_at IS NULL;

CREATE TABLE IF NOT EXISTS properties (
    id          TEXT PRIMARY KEY,
    title       TEXT NOT NULL,
    description TEXT,
    location    TEXT NOT NULL,
    price       REAL NOT NULL CHECK (price >= 0),
    type        TEXT NOT NULL CHECK (type IN ('apartment', 'house', 'land')),
    status      TEXT NOT NULL CHECK (status IN ('sale', 'rent')),
    size        REAL NOT NULL CHECK (size > 0),
    rooms       INTEGER NOT NULL DEFAULT 0 CHECK (rooms >= 0),
    bathrooms   INTEGER NOT NULL DEFAULT 0 CHECK (bathrooms >= 0),
    featured    INTEGER NOT NULL DEFAULT 0,
    created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    created_by  TEXT
);

CREATE INDEX IF NOT EXISTS idx_properties_featured_created
    ON properties(featured, created_at DESC);

CREATE TABLE IF NOT EXISTS property_images (
    property_id TEXT NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
    position    INTEGER NOT NULL,
    url         TEXT NOT NULL,
    PRIMARY KEY (property_id, position)
);

CREATE TABLE IF NOT EXISTS photos (
    id          INTEGER PRIMARY KEY,
    property_id TEXT NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
    data        BLOB NOT NULL,
    mime        TEXT NOT NULL,
    created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS revoked_tokens (
    jti        TEXT PRIMARY KEY,
    expires_at DATETIME NOT NULL
);
`

// migrations is a list of SQL statements applied in order after schema
// creation. Each migration must be idempotent. Append new migrations at
// the end.
var migrations = []string{
	// Migration 1: listings created before the featured index existed need
	// it for the homepage query; safe to re-run.
	`CREATE INDEX IF NOT EXISTS idx_properties_featured_created
	     ON properties(featured, created_at DESC)`,
}

// Migrate creates the schema and applies all migrations. Safe to run on
// every startup.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}
