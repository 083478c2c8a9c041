// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database types
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
	TypePGX      = "pgx"
)

// Open connects to the database and verifies the connection.
//
//   - sqlite: modernc.org/sqlite, foreign keys on, one open connection
//   - postgres: github.com/lib/pq
//   - pgx: github.com/jackc/pgx/v5 with the simple query protocol, for
//     PgBouncer-style poolers
func Open(dbType, url string) (*sql.DB, error) {
	var conn *sql.DB
	var err error

	switch dbType {
	case TypeSQLite:
		conn, err = sql.Open("sqlite", sqliteDSN(url))
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		// SQLite allows one writer; a single connection also keeps
		// :memory: databases alive and shared.
		conn.SetMaxOpenConns(1)

	case TypePostgres:
		conn, err = sql.Open("postgres", url)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres database: %w", err)
		}

	case TypePGX:
		config, err := pgx.ParseConfig(url)
		if err != nil {
			return nil, fmt.Errorf("failed to parse pgx config: %w", err)
		}
		config.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
		conn = stdlib.OpenDB(*config)
		conn.SetConnMaxIdleTime(4 * time.Minute)
		conn.SetMaxOpenConns(10)
		conn.SetMaxIdleConns(2)

	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return conn, nil
}

func sqliteDSN(url string) string {
	params := "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	if strings.Contains(url, "?") {
		return url + "&" + params
	}
	return url + "?" + params
}
