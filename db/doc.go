// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Drivers

Open selects a driver by database type:

	conn, err := db.Open(db.TypeSQLite, "quickly-draw.db")

  - sqlite: modernc.org/sqlite (pure Go, the default)
  - postgres: github.com/lib/pq
  - pgx: github.com/jackc/pgx/v5/stdlib using the simple query protocol

Queries use $N placeholders, which all three drivers accept.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, exclusive); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - item: the prize catalog
  - draw: one row per participant, referencing the drawn item

# Relationships

	item 1──* draw

draw.item_id has no ON DELETE action: items that were drawn cannot be deleted.

# Indexes

  - draw.person_key (unique)
  - draw.item_id
  - draw.item_id (unique, exclusive policy only)
  - draw.created_at
  - item.created_at

# Constraint Errors

ClassifyError maps driver errors from any of the three drivers to
UniqueViolation or ForeignKeyViolation.
*/
package db
