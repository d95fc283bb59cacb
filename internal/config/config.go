// Package config loads P2H settings from .env files and the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/PT-IMM-P2H/backend/internal/clock"
	"github.com/PT-IMM-P2H/backend/internal/db"
)

// Environment variable names
const (
	EnvDBDriver         = "P2H_DB_DRIVER"
	EnvDBDSN            = "P2H_DB_DSN"
	EnvTimezone         = "P2H_TIMEZONE"
	EnvExpiryThresholds = "P2H_EXPIRY_THRESHOLDS"
	EnvLogLevel         = "P2H_LOG_LEVEL"
	EnvLogFormat        = "P2H_LOG_FORMAT"
	EnvUser             = "P2H_USER"
)

// Defaults
const (
	DefaultTimezone         = "Asia/Makassar"
	DefaultExpiryThresholds = "7,3,0"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
)

// Config holds the resolved application settings.
type Config struct {
	DBDriver         string
	DBDSN            string
	Timezone         string
	Location         *time.Location
	ExpiryThresholds []int // ascending
	LogLevel         string
	LogFormat        string
	User             string // default submitting user for the CLI
}

// LookupFunc resolves a setting by name.
type LookupFunc func(key string) (string, bool)

// Load reads the given .env files (missing files are skipped), falling back
// to ".env" in the working directory when none are given. Process
// environment takes precedence over file values.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	fileValues := map[string]string{}
	for _, f := range files {
		values, err := godotenv.Read(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", f, err)
		}
		for k, v := range values {
			if _, seen := fileValues[k]; !seen {
				fileValues[k] = v
			}
		}
	}

	return LoadFrom(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileValues[key]
		return v, ok
	})
}

// LoadFrom resolves and validates settings using lookup.
func LoadFrom(lookup LookupFunc) (*Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := &Config{
		DBDriver:  get(EnvDBDriver, db.DriverSQLite),
		Timezone:  get(EnvTimezone, DefaultTimezone),
		LogLevel:  strings.ToLower(get(EnvLogLevel, DefaultLogLevel)),
		LogFormat: strings.ToLower(get(EnvLogFormat, DefaultLogFormat)),
		User:      get(EnvUser, ""),
	}

	switch cfg.DBDriver {
	case db.DriverSQLite:
		def, err := db.DefaultPath()
		if err != nil {
			return nil, err
		}
		cfg.DBDSN = expandHome(get(EnvDBDSN, def))
	case db.DriverPostgres:
		cfg.DBDSN = get(EnvDBDSN, "")
		if cfg.DBDSN == "" {
			return nil, fmt.Errorf("%s is required when %s=postgres", EnvDBDSN, EnvDBDriver)
		}
	default:
		return nil, fmt.Errorf("invalid %s %q (expected sqlite3 or postgres)", EnvDBDriver, cfg.DBDriver)
	}

	sys, err := clock.NewSystem(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", EnvTimezone, cfg.Timezone, err)
	}
	cfg.Location = sys.Location

	thresholds, err := ParseThresholds(get(EnvExpiryThresholds, DefaultExpiryThresholds))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvExpiryThresholds, err)
	}
	cfg.ExpiryThresholds = thresholds

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid %s %q (expected text or json)", EnvLogFormat, cfg.LogFormat)
	}

	return cfg, nil
}

// ParseThresholds parses a comma-separated list of day thresholds,
// returning them ascending without duplicates.
func ParseThresholds(s string) ([]int, error) {
	seen := map[int]bool{}
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("threshold %q is not a number", part)
		}
		if n < 0 {
			return nil, fmt.Errorf("threshold %d must not be negative", n)
		}
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("at least one threshold is required")
	}
	sort.Ints(out)
	return out, nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
