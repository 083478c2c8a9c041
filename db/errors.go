// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Violation classifies a constraint error raised by any supported driver.
type Violation int

const (
	NoViolation Violation = iota
	UniqueViolation
	ForeignKeyViolation
)

// Postgres SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// ClassifyError reports which constraint err violated. detail names the
// constraint or the offending columns so callers can tell unique indexes
// apart.
func ClassifyError(err error) (v Violation, detail string) {
	if err == nil {
		return NoViolation, ""
	}

	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_UNIQUE, sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY:
			return UniqueViolation, sqliteErr.Error()
		case sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY:
			return ForeignKeyViolation, sqliteErr.Error()
		}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pgUniqueViolation:
			return UniqueViolation, pqErr.Constraint
		case pgForeignKeyViolation:
			return ForeignKeyViolation, pqErr.Constraint
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return UniqueViolation, pgErr.ConstraintName
		case pgForeignKeyViolation:
			return ForeignKeyViolation, pgErr.ConstraintName
		}
	}

	message := err.Error()
	switch {
	case strings.Contains(message, "UNIQUE constraint failed"):
		return UniqueViolation, message
	case strings.Contains(message, "FOREIGN KEY constraint failed"):
		return ForeignKeyViolation, message
	}

	return NoViolation, ""
}
