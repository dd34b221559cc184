package config

import (
	"testing"
)

// TestLoad tests configuration defaults and environment overrides.
func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() returned unexpected error: %v", err)
		}

		if cfg.Server.Addr != "localhost:5001" {
			t.Errorf("Expected default addr localhost:5001, got %s", cfg.Server.Addr)
		}
		if cfg.Analysis.BenchmarkSymbol != "^GSPC" {
			t.Errorf("Expected default benchmark ^GSPC, got %s", cfg.Analysis.BenchmarkSymbol)
		}
		if cfg.Analysis.RiskFreeRate != 0.02 {
			t.Errorf("Expected default risk-free rate 0.02, got %f", cfg.Analysis.RiskFreeRate)
		}
		if cfg.Market.Timezone.String() != "America/New_York" {
			t.Errorf("Expected default timezone America/New_York, got %s", cfg.Market.Timezone)
		}
	})

	t.Run("honors environment overrides", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "8080")
		t.Setenv("BENCHMARK_SYMBOL", "^DJI")
		t.Setenv("RISK_FREE_RATE", "0.045")
		t.Setenv("MARKET_TIMEZONE", "UTC")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() returned unexpected error: %v", err)
		}

		if cfg.Server.Addr != "localhost:8080" {
			t.Errorf("Expected addr localhost:8080, got %s", cfg.Server.Addr)
		}
		if cfg.Analysis.BenchmarkSymbol != "^DJI" {
			t.Errorf("Expected benchmark ^DJI, got %s", cfg.Analysis.BenchmarkSymbol)
		}
		if cfg.Analysis.RiskFreeRate != 0.045 {
			t.Errorf("Expected risk-free rate 0.045, got %f", cfg.Analysis.RiskFreeRate)
		}
		if cfg.Market.Timezone.String() != "UTC" {
			t.Errorf("Expected timezone UTC, got %s", cfg.Market.Timezone)
		}
	})

	t.Run("rejects an unparseable risk-free rate", func(t *testing.T) {
		t.Setenv("RISK_FREE_RATE", "two percent")

		if _, err := Load(); err == nil {
			t.Error("Expected an error for a malformed rate, got nil")
		}
	})

	t.Run("rejects an unknown timezone", func(t *testing.T) {
		t.Setenv("MARKET_TIMEZONE", "Mars/Olympus_Mons")

		if _, err := Load(); err == nil {
			t.Error("Expected an error for an unknown timezone, got nil")
		}
	})
}
