// Package config carries the tunable defaults of the record-keeping core.
// Values come from the environment (a .env file is honored when present) and
// fall back to the defaults the system has always shipped with.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// DefaultLeaveBalance is granted to a leave account on first reference.
	DefaultLeaveBalance = 20
	// DefaultSearchLimit caps fuzzy name search results.
	DefaultSearchLimit = 5
	// DefaultSearchCutoff is the minimum similarity ratio for a name match.
	DefaultSearchCutoff = 0.6
)

type Config struct {
	DefaultLeaveBalance int
	SearchLimit         int
	SearchCutoff        float64
}

// Load reads HRMS_* environment variables, falling back to the shipped
// defaults for anything unset or malformed.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		DefaultLeaveBalance: intEnv("HRMS_DEFAULT_LEAVE_BALANCE", DefaultLeaveBalance),
		SearchLimit:         intEnv("HRMS_SEARCH_LIMIT", DefaultSearchLimit),
		SearchCutoff:        floatEnv("HRMS_SEARCH_CUTOFF", DefaultSearchCutoff),
	}
}

// Default returns the shipped defaults without consulting the environment.
func Default() Config {
	return Config{
		DefaultLeaveBalance: DefaultLeaveBalance,
		SearchLimit:         DefaultSearchLimit,
		SearchCutoff:        DefaultSearchCutoff,
	}
}

func intEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func floatEnv(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || v > 1 {
		return fallback
	}
	return v
}
