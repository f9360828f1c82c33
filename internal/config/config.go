package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values.  Each field
// corresponds to an environment variable.  Money-adjacent values are
// floats because they feed decimal arithmetic downstream.
type Config struct {
	Env         string  // application environment (e.g. "dev", "prod")
	Port        string  // HTTP port to listen on
	TaxRate     float64 // default sales tax percentage when the hotel has none
	NightlyRate float64 // default nightly rate for reservations without a total
}

// Load reads configuration values from environment variables and
// returns a Config.  Required variables are enforced by must() and
// missing values cause the program to exit with a fatal log message;
// the rates have sensible defaults.
func Load() Config {
	return Config{
		Env:         must("APP_ENV"),
		Port:        must("APP_PORT"),
		TaxRate:     floatOr("TAX_RATE", 10),
		NightlyRate: floatOr("NIGHTLY_RATE", 150),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// floatOr retrieves an optional float variable, falling back to def
// when the variable is unset; an unparseable value is fatal.
func floatOr(key string, def float64) float64 {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("invalid float for %s: %q", key, s)
	}
	return f
}
