package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port             int           `env:"PORT" envDefault:"3318"`
	DatabaseURL      string        `env:"DATABASE_URL"`
	DatabaseType     string        `env:"DATABASE_TYPE" envDefault:"sqlite"`
	Policy           string        `env:"DRAW_POLICY" envDefault:"balanced"`
	OverridesFile    string        `env:"OVERRIDES_FILE"`
	AdminUser        string        `env:"ADMIN_USER" envDefault:"admin"`
	AdminPassword    string        `env:"ADMIN_PASSWORD"`
	AdminTokenSecret string        `env:"ADMIN_TOKEN_SECRET"`
	AdminTokenTTL    time.Duration `env:"ADMIN_TOKEN_TTL" envDefault:"12h"`
	StaticDir        string        `env:"STATIC_DIR"`
}

// DefaultSQLitePath is used when DATABASE_TYPE is sqlite and no URL is set.
const DefaultSQLitePath = "quickly-draw.db"

// ParseFlags loads .env, then environment variables, then CLI flags, each
// overriding the previous.
func ParseFlags(args []string) (Config, error) {
	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid environment: %w", err)
	}

	fs := flag.NewFlagSet("quickly-draw", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Database URL or sqlite file path")
	fs.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "Database type (sqlite, postgres or pgx)")
	fs.StringVar(&cfg.Policy, "policy", cfg.Policy, "Draw policy (balanced or exclusive)")
	fs.StringVar(&cfg.OverridesFile, "overrides", cfg.OverridesFile, "YAML file with participant overrides")
	fs.StringVar(&cfg.StaticDir, "static", cfg.StaticDir, "Directory of static files to serve at /")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminUser, "admin-user", cfg.AdminUser, "Admin username")
	fs.StringVar(&cfg.AdminPassword, "admin-password", cfg.AdminPassword, "Admin password (prefer env)")
	fs.StringVar(&cfg.AdminTokenSecret, "token-secret", cfg.AdminTokenSecret, "Admin token signing secret (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}

	cfg.DatabaseType = strings.ToLower(strings.TrimSpace(cfg.DatabaseType))
	cfg.Policy = strings.ToLower(strings.TrimSpace(cfg.Policy))

	switch cfg.DatabaseType {
	case "sqlite":
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = DefaultSQLitePath
		}
	case "postgres", "pgx":
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
	default:
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	switch cfg.Policy {
	case "balanced", "exclusive":
	default:
		return Config{}, fmt.Errorf("unsupported draw policy %q", cfg.Policy)
	}

	// Secrets - MUST be provided
	if cfg.AdminPassword == "" {
		return Config{}, errors.New("ADMIN_PASSWORD required")
	}
	if cfg.AdminTokenSecret == "" {
		return Config{}, errors.New("ADMIN_TOKEN_SECRET required")
	}

	return cfg, nil
}
