// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
//
// exclusive adds a unique index on draw.item_id so an item can be drawn at
// most once; without it the index is dropped.
func CreateSchema(db *sql.DB, exclusive bool) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if exclusive {
		_, err = db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_draw_item_exclusive ON draw(item_id)`)
		if err != nil {
			return fmt.Errorf("failed to create exclusive item index (is an item already drawn twice?): %w", err)
		}
	} else {
		_, err = db.Exec(`DROP INDEX IF EXISTS idx_draw_item_exclusive`)
		if err != nil {
			return fmt.Errorf("failed to drop exclusive item index: %w", err)
		}
	}

	return nil
}

// Timestamps are UTC unix nanoseconds.
const schema = `
-- Items
CREATE TABLE IF NOT EXISTS item (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    created_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_item_created_at ON item(created_at);

-- Draws
CREATE TABLE IF NOT EXISTS draw (
    id TEXT PRIMARY KEY,
    person_name TEXT NOT NULL,
    person_key TEXT NOT NULL UNIQUE,
    item_id TEXT NOT NULL REFERENCES item(id),
    policy TEXT NOT NULL,
    created_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_draw_item_id ON draw(item_id);
CREATE INDEX IF NOT EXISTS idx_draw_created_at ON draw(created_at);
`
