package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "MAX_TERM_YEARS", "PERIODS_PER_YEAR", "SHUTDOWN_TIMEOUT", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Port != 8000 {
		t.Errorf("expected port 8000, got %d", cfg.Port)
	}
	if cfg.MaxTermYears != 50 {
		t.Errorf("expected max term 50, got %d", cfg.MaxTermYears)
	}
	if cfg.PeriodsPerYear != 12 {
		t.Errorf("expected 12 periods per year, got %d", cfg.PeriodsPerYear)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected shutdown timeout 10s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.Addr() != ":8000" {
		t.Errorf("expected addr :8000, got %s", cfg.Addr())
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MAX_RATE", "75.5")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("MAX_TERM_YEARS", "not-a-number")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.MaxRate != 75.5 {
		t.Errorf("expected max rate 75.5, got %g", cfg.MaxRate)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Errorf("expected shutdown timeout 3s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.MaxTermYears != 50 {
		t.Errorf("unparseable value should fall back to default, got %d", cfg.MaxTermYears)
	}
}

func TestLoadConfigPeriodsPerYearFallback(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{name: "quarterly", value: "4", want: 4},
		{name: "daily", value: "365", want: 365},
		{name: "zero", value: "0", want: 12},
		{name: "negative", value: "-3", want: 12},
		{name: "above daily", value: "366", want: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PERIODS_PER_YEAR", tt.value)

			cfg, err := LoadConfig()
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			if cfg.PeriodsPerYear != tt.want {
				t.Errorf("expected %d periods per year, got %d", tt.want, cfg.PeriodsPerYear)
			}
		})
	}
}
