package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMongo    = "mongo"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth     AuthConfig
	Database DatabaseConfig
	Mongo    MongoConfig
	Redis    RedisConfig
}

type AuthConfig struct {
	// AdminKey gates Admin registration. Empty disables it entirely.
	AdminKey      string `env:"ADMIN_KEY"`
	JWTSecret     string `env:"JWT_SECRET,         required"`
	JWTIssuer     string `env:"JWT_ISSUER,         default=bookstore-api"`
	JWTAudience   string `env:"JWT_AUDIENCE,       default=bookstore-clients"`
	JWTExpiryMins int    `env:"JWT_EXPIRY_MINUTES, default=60"`
	BcryptCost    int    `env:"BCRYPT_COST,        default=12"`
}

type DatabaseConfig struct {
	Driver string `env:"DB_DRIVER, default=postgres"`
	DSN    string `env:"DB_DSN"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=bookstore"`
}

type RedisConfig struct {
	// Addr empty disables the book cache.
	Addr     string        `env:"REDIS_ADDR"`
	DB       int           `env:"REDIS_DB,       default=0"`
	CacheTTL time.Duration `env:"BOOK_CACHE_TTL, default=5m"`
}

// TokenTTL is the configured token lifetime.
func (a AuthConfig) TokenTTL() time.Duration {
	return time.Duration(a.JWTExpiryMins) * time.Minute
}

// IsProduction reports whether ENV selects production output.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field constraints envconfig cannot express.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		errs = append(errs, errors.New("JWT_SECRET must not be blank"))
	}
	if c.Auth.JWTExpiryMins <= 0 {
		errs = append(errs, errors.New("JWT_EXPIRY_MINUTES must be positive"))
	}

	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
		if c.Database.DSN == "" {
			errs = append(errs, fmt.Errorf("DB_DSN is required for driver %q", c.Database.Driver))
		}
	case DriverMongo:
		if c.Mongo.URI == "" || c.Mongo.Database == "" {
			errs = append(errs, errors.New("MONGO_URI and MONGO_DB are required for driver \"mongo\""))
		}
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER %q is not one of postgres, sqlite, mongo", c.Database.Driver))
	}

	if c.Redis.Addr != "" && c.Redis.CacheTTL <= 0 {
		errs = append(errs, errors.New("BOOK_CACHE_TTL must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
