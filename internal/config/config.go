// Package config reads capgrid settings from the environment and optional
// dotenv files.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/alexanderramin/capgrid/internal/domain"
	"github.com/joho/godotenv"
)

// Config holds process-wide settings.
type Config struct {
	LogEnabled         bool
	Anchor             time.Time
	WeeksShown         int
	SeedFile           string
	OverallocThreshold float64
}

// Default returns a Config with the built-in seeds, an 8-week window and
// the 40 hour overallocation threshold.
func Default() Config {
	return Config{
		Anchor:             domain.DefaultAnchor,
		WeeksShown:         8,
		OverallocThreshold: 40,
	}
}

// Load reads configuration from environment variables, falling back to
// defaults for any unset or malformed values.
func Load() Config {
	cfg := Default()

	if v := os.Getenv("CAPGRID_LOG"); v != "" {
		cfg.LogEnabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("CAPGRID_ANCHOR"); v != "" {
		if t, err := time.Parse(time.DateOnly, v); err == nil {
			cfg.Anchor = t
		}
	}
	if v := os.Getenv("CAPGRID_WEEKS_SHOWN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.WeeksShown = min(n, domain.WeekCount)
		}
	}
	if v := os.Getenv("CAPGRID_SEED_FILE"); v != "" {
		cfg.SeedFile = v
	}
	if v := os.Getenv("CAPGRID_OVERALLOC"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.OverallocThreshold = f
		}
	}

	return cfg
}

// LoadEnv loads the existing files among envFiles into the process
// environment. Variables that are already set are not overridden. It
// returns how many files were loaded.
func LoadEnv(envFiles []string) (int, error) {
	existing := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			existing = append(existing, file)
		}
	}
	if len(existing) == 0 {
		return 0, nil
	}
	return len(existing), godotenv.Load(existing...)
}
