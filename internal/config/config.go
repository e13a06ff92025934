// Package config loads xorcrack settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/provide-io/xorcrack/pkg/breaker"
	"github.com/provide-io/xorcrack/pkg/logging"
)

// Environment variables read by Load
const (
	EnvMaxKeySize   = "XORCRACK_MAX_KEYSIZE"
	EnvSampleBlocks = "XORCRACK_SAMPLE_BLOCKS"
	EnvWorkers      = "XORCRACK_WORKERS"
)

// Config holds the effective settings for one invocation.
type Config struct {
	LogLevel     string
	MaxKeySize   int
	SampleBlocks int
	Workers      int

	// Warnings lists environment values that were ignored.
	Warnings []string
}

// Load reads the environment, falling back to defaults for unset or
// malformed values.
func Load() *Config {
	cfg := &Config{
		LogLevel:     logging.GetLogLevel(),
		MaxKeySize:   breaker.DefaultMaxKeySize,
		SampleBlocks: breaker.DefaultSampleBlocks,
		Workers:      breaker.DefaultWorkers,
	}

	cfg.MaxKeySize = cfg.intFromEnv(EnvMaxKeySize, cfg.MaxKeySize, 1)
	cfg.SampleBlocks = cfg.intFromEnv(EnvSampleBlocks, cfg.SampleBlocks, 2)
	cfg.Workers = cfg.intFromEnv(EnvWorkers, cfg.Workers, 1)

	return cfg
}

func (c *Config) intFromEnv(name string, def, min int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < min {
		c.Warnings = append(c.Warnings, fmt.Sprintf("ignoring %s=%q: want an integer >= %d", name, raw, min))
		return def
	}
	return v
}

// BreakerOptions converts the config into breaker options.
func (c *Config) BreakerOptions() breaker.Options {
	return breaker.Options{
		MaxKeySize:   c.MaxKeySize,
		SampleBlocks: c.SampleBlocks,
		Workers:      c.Workers,
	}
}
