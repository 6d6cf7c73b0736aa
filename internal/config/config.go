package config // package config loads application configuration from environment variables

import (
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable; every variable has a default suitable for
// local single-device operation, so the server starts with no
// environment at all.
type Config struct {
	Env             string // application environment (e.g. "dev", "prod")
	Port            string // HTTP port to listen on
	DataDir         string // writable directory for the catalog and the file KV
	SeedCatalogPath string // bundled read-only seed catalog
	LocationsPath   string // bundled Australian locations reference file
	LedgerBackend   string // "file" or "redis"
	LedgerNamespace string // key prefix for the booking ledger
}

// Load reads configuration values from environment variables and
// returns a Config populated with defaults for anything unset.
func Load() Config {
	return Config{
		Env:             envStr("APP_ENV", "dev"),
		Port:            envStr("APP_PORT", "8080"),
		DataDir:         envStr("DATA_DIR", "data"),
		SeedCatalogPath: envStr("SEED_CATALOG", "seed/concerts.json"),
		LocationsPath:   envStr("LOCATIONS_FILE", "seed/australian_locations.json"),
		LedgerBackend:   envStr("LEDGER_BACKEND", "file"),
		LedgerNamespace: envStr("LEDGER_NAMESPACE", "booking_system"),
	}
}

// Shared env helpers, reused by the cache and rate limit loaders.

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}
