package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	DatabasePath       string
	Port               string
	LogLevel           string
	Environment        string

	// Location is the local clock used to decide "today" and the check hour.
	Location             *time.Location
	TickInterval         time.Duration
	PageSize             int
	LedgerRetentionDays  int
	MaxConcurrentTenants int

	GatewayCallTimeout time.Duration
	GatewayRatePerSec  float64
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*Config, error) {
	// existing env variables win over .env
	_ = godotenv.Load()

	cfg := &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "./birthdays.db"),
		Port:               getEnv("PORT", "3000"),
		LogLevel:           strings.ToLower(getEnv("LOG_LEVEL", "info")),
		Environment:        strings.ToLower(getEnv("ENVIRONMENT", "development")),
	}

	if cfg.SlackBotToken == "" {
		return nil, fmt.Errorf("SLACK_BOT_TOKEN is not set")
	}
	if cfg.SlackSigningSecret == "" {
		return nil, fmt.Errorf("SLACK_SIGNING_SECRET is not set")
	}

	var err error

	cfg.Location, err = time.LoadLocation(getEnv("TIMEZONE", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	if cfg.TickInterval, err = getDuration("TICK_INTERVAL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.GatewayCallTimeout, err = getDuration("GATEWAY_CALL_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.PageSize, err = getPositiveInt("PAGE_SIZE", 20); err != nil {
		return nil, err
	}
	if cfg.LedgerRetentionDays, err = getPositiveInt("LEDGER_RETENTION_DAYS", 7); err != nil {
		return nil, err
	}
	if cfg.MaxConcurrentTenants, err = getPositiveInt("MAX_CONCURRENT_TENANTS", 4); err != nil {
		return nil, err
	}

	cfg.GatewayRatePerSec, err = strconv.ParseFloat(getEnv("GATEWAY_RATE_PER_SEC", "1"), 64)
	if err != nil || cfg.GatewayRatePerSec <= 0 {
		return nil, fmt.Errorf("invalid GATEWAY_RATE_PER_SEC: must be a positive number")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be a positive duration like 5m", key)
	}
	return d, nil
}

func getPositiveInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid %s: must be a positive integer", key)
	}
	return n, nil
}
