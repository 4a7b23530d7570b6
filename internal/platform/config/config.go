package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"
)

const DefaultTariff = 4.32

type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration

	DBDriver          string
	DBDSN             string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	DBAutoMigrate     bool

	JWTSecret   []byte
	JWTIssuer   string
	JWTAudience string

	DefaultTariff float64

	LogLevel  string
	LogFormat string
}

// Load reads the process environment.
func Load() (*Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from any key lookup, applying defaults and
// validating the result.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	p := parser{lookup: lookup}

	cfg := &Config{
		HTTPAddr:        p.str("HTTP_ADDR", ":8080"),
		ShutdownTimeout: p.duration("SHUTDOWN_TIMEOUT", 5*time.Second),

		DBDriver:          p.str("POSTGRES_DRIVER", "postgres"),
		DBDSN:             p.str("POSTGRES_DSN", ""),
		DBMaxOpenConns:    p.int("DB_MAX_OPEN_CONNS", 20),
		DBMaxIdleConns:    p.int("DB_MAX_IDLE_CONNS", 10),
		DBConnMaxLifetime: p.duration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		DBAutoMigrate:     p.bool("DB_AUTO_MIGRATE", true),

		JWTSecret:   []byte(p.str("JWT_SECRET", "")),
		JWTIssuer:   p.str("JWT_ISSUER", ""),
		JWTAudience: p.str("JWT_AUDIENCE", ""),

		DefaultTariff: p.float("DEFAULT_TARIFF", DefaultTariff),

		LogLevel:  p.str("LOG_LEVEL", "info"),
		LogFormat: p.str("LOG_FORMAT", "json"),
	}

	if err := errors.Join(p.errs...); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DBDSN == "" {
		return errors.New("POSTGRES_DSN is not set")
	}
	if c.DBDriver != "postgres" && c.DBDriver != "pgx" {
		return fmt.Errorf("POSTGRES_DRIVER must be postgres or pgx, got %q", c.DBDriver)
	}
	if len(c.JWTSecret) == 0 {
		return errors.New("JWT_SECRET is not set")
	}
	if !(c.DefaultTariff > 0) || math.IsInf(c.DefaultTariff, 0) {
		return errors.New("DEFAULT_TARIFF must be a positive finite number")
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.LogFormat)
	}
	return nil
}

type parser struct {
	lookup func(string) (string, bool)
	errs   []error
}

func (p *parser) str(key, def string) string {
	if v, ok := p.lookup(key); ok && v != "" {
		return v
	}
	return def
}

func (p *parser) int(key string, def int) int {
	v := p.str(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return n
}

func (p *parser) float(key string, def float64) float64 {
	v := p.str(key, "")
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return f
}

func (p *parser) bool(key string, def bool) bool {
	v := p.str(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return b
}

func (p *parser) duration(key string, def time.Duration) time.Duration {
	v := p.str(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return d
}
