// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Sources, lowest precedence first: a .env file in the working directory
(optional), environment variables, CLI flags.

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite, postgres or pgx (default: sqlite)
  - DatabaseURL: connection string or sqlite file (default for sqlite: quickly-draw.db)
  - Policy: balanced or exclusive (default: balanced)
  - OverridesFile: optional YAML file of participant overrides
  - AdminUser: admin login name (default: admin)
  - AdminPassword: admin login password (required)
  - AdminTokenSecret: JWT signing secret (required)
  - AdminTokenTTL: admin token lifetime (default: 12h)
  - StaticDir: optional directory served at /

# CLI Flags

	-p               Server port
	-d               Database URL
	-t               Database type
	-policy          Draw policy
	-overrides       Overrides file
	-static          Static directory
	-admin-user      Admin username
	-admin-password  Admin password
	-token-secret    Token signing secret

# Environment Variables

	PORT, DATABASE_URL, DATABASE_TYPE, DRAW_POLICY, OVERRIDES_FILE,
	ADMIN_USER, ADMIN_PASSWORD, ADMIN_TOKEN_SECRET, ADMIN_TOKEN_TTL,
	STATIC_DIR

# Validation

ParseFlags returns an error if:

  - DATABASE_URL is missing for postgres or pgx
  - DATABASE_TYPE or DRAW_POLICY is unknown
  - ADMIN_PASSWORD or ADMIN_TOKEN_SECRET is missing
*/
package cliparse
