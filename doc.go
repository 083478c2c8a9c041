// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Draw API server.

Quickly Draw runs a gift draw: each participant submits a name and is given
one item from the catalog. A participant keeps the same item for the life of
the ledger, and a handful of names can be pinned to a specific item through
overrides.

# Starting the Server

With no database settings the server stores its ledger in a local SQLite
file (quickly-draw.db):

	ADMIN_PASSWORD=... ADMIN_TOKEN_SECRET=... go run .

Or against PostgreSQL with flags:

	go run . -p 3318 -t pgx -d "postgres://..." -policy exclusive

A .env file in the working directory is loaded before the environment.

# Configuration

Required settings:

  - ADMIN_PASSWORD (-admin-password): Password for POST /login
  - ADMIN_TOKEN_SECRET (-token-secret): HMAC secret for admin tokens

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite, postgres or pgx (default: sqlite)
  - DATABASE_URL (-d): Connection string or SQLite path
  - DRAW_POLICY (-policy): balanced or exclusive (default: balanced)
  - OVERRIDES_FILE (-overrides): YAML file of extra name overrides
  - STATIC_DIR (-static): Directory served at GET /
  - ADMIN_USER (-admin-user): Admin username (default: admin)
  - ADMIN_TOKEN_TTL: Admin token lifetime (default: 12h)

# Architecture

  - draw: Draw engine, policies and overrides
  - store: SQL implementation of the draw ledger
  - feed: Websocket broadcast of new draws
  - handlers: HTTP request handlers (draws, items, login)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, admin auth, JSON helpers
  - models: Request/response types
  - auth: Admin credentials and tokens
  - db: Connections and schema
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
