package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Dan9191/bizplan/internal/finance"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBConn    string
	LogLevel  string
	JWTSecret string
	TokenTTL  time.Duration

	CBRURL         string
	KeyRateMargin  float64
	KeyRateRefresh string // Cron spec

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SenderEmail  string

	Projection finance.ProjectionAssumptions
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		DBConn:         getEnv("DB_CONN", "host=localhost port=5436 user=test password=test dbname=bizplan sslmode=disable"),
		LogLevel:       getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:      getEnv("JWT_SECRET", "secret"),
		CBRURL:         getEnv("CBR_URL", "https://www.cbr.ru/DailyInfoWebServ/DailyInfo.asmx"),
		KeyRateRefresh: getEnv("KEY_RATE_REFRESH", "@every 6h"),
		SMTPHost:       getEnv("SMTP_HOST", "localhost"),
		SMTPPort:       getEnv("SMTP_PORT", "1025"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SenderEmail:    getEnv("SENDER_EMAIL", "noreply@bizplan.local"),
	}

	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	var err error
	if cfg.TokenTTL, err = time.ParseDuration(getEnv("TOKEN_TTL", "24h")); err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}
	if cfg.KeyRateMargin, err = getFloat("KEY_RATE_MARGIN", 5.0); err != nil {
		return nil, err
	}

	defaults := finance.DefaultProjectionAssumptions()
	if cfg.Projection.RevenueGrowth, err = getFloat("PROJECTION_REVENUE_GROWTH", defaults.RevenueGrowth); err != nil {
		return nil, err
	}
	if cfg.Projection.OpExGrowth, err = getFloat("PROJECTION_OPEX_GROWTH", defaults.OpExGrowth); err != nil {
		return nil, err
	}
	if cfg.Projection.TaxRate, err = getFloat("PROJECTION_TAX_RATE", defaults.TaxRate); err != nil {
		return nil, err
	}
	if cfg.Projection.Years, err = getInt("PROJECTION_YEARS", defaults.Years); err != nil {
		return nil, err
	}
	if cfg.Projection.Years <= 0 {
		return nil, fmt.Errorf("PROJECTION_YEARS must be positive, got %d", cfg.Projection.Years)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getFloat(key string, defaultVal float64) (float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getInt(key string, defaultVal int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
