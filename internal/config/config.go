package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// maxPeriodsPerYear ежедневные платежи
const maxPeriodsPerYear = 365

// Config содержит конфигурацию сервера
type Config struct {
	Port             int
	MaxPrincipal     float64
	MaxRate          float64
	MaxTermYears     int
	PeriodsPerYear   int
	DefaultPrincipal float64
	OTELEndpoint     string
	OTELServiceName  string
	LogLevel         string
	ShutdownTimeout  time.Duration
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnvInt("PORT", 8000),
		MaxPrincipal:     getEnvFloat("MAX_PRINCIPAL", 1e12),
		MaxRate:          getEnvFloat("MAX_RATE", 200),
		MaxTermYears:     getEnvInt("MAX_TERM_YEARS", 50),
		PeriodsPerYear:   getEnvInt("PERIODS_PER_YEAR", 12),
		DefaultPrincipal: getEnvFloat("DEFAULT_PRINCIPAL", 10000000),
		OTELEndpoint:     getEnvString("OTEL_ENDPOINT", ""),
		OTELServiceName:  getEnvString("OTEL_SERVICE_NAME", "amortization-server"),
		LogLevel:         getEnvString("LOG_LEVEL", "INFO"),
		ShutdownTimeout:  getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	if cfg.PeriodsPerYear < 1 || cfg.PeriodsPerYear > maxPeriodsPerYear {
		cfg.PeriodsPerYear = 12
	}

	return cfg, nil
}

// Addr адрес для net/http
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
