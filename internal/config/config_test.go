package config

import (
	"testing"

	"github.com/provide-io/xorcrack/pkg/breaker"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XORCRACK_LOG_LEVEL", "")
	t.Setenv(EnvMaxKeySize, "")
	t.Setenv(EnvSampleBlocks, "")
	t.Setenv(EnvWorkers, "")

	cfg := Load()
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if got := cfg.BreakerOptions(); got != breaker.DefaultOptions() {
		t.Errorf("BreakerOptions() = %+v, want %+v", got, breaker.DefaultOptions())
	}
	if len(cfg.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", cfg.Warnings)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("XORCRACK_LOG_LEVEL", "debug")
	t.Setenv(EnvMaxKeySize, "16")
	t.Setenv(EnvSampleBlocks, "4")
	t.Setenv(EnvWorkers, "8")

	cfg := Load()
	want := breaker.Options{MaxKeySize: 16, SampleBlocks: 4, Workers: 8}
	if got := cfg.BreakerOptions(); got != want {
		t.Errorf("BreakerOptions() = %+v, want %+v", got, want)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadIgnoresBadValues(t *testing.T) {
	testCases := []struct {
		name  string
		env   string
		value string
	}{
		{name: "not a number", env: EnvMaxKeySize, value: "forty"},
		{name: "below minimum blocks", env: EnvSampleBlocks, value: "1"},
		{name: "zero workers", env: EnvWorkers, value: "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(EnvMaxKeySize, "")
			t.Setenv(EnvSampleBlocks, "")
			t.Setenv(EnvWorkers, "")
			t.Setenv(tc.env, tc.value)

			cfg := Load()
			if got := cfg.BreakerOptions(); got != breaker.DefaultOptions() {
				t.Errorf("BreakerOptions() = %+v, want defaults", got)
			}
			if len(cfg.Warnings) != 1 {
				t.Errorf("Warnings = %v, want exactly one", cfg.Warnings)
			}
		})
	}
}
