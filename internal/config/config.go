package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database   DatabaseConfig
	App        AppConfig
	Automation AutomationConfig
	Payroll    PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// AutomationConfig holds the attendance automation knobs.
type AutomationConfig struct {
	ShiftStartHour     int
	ShiftStartMinute   int
	ShiftEndHour       int
	ShiftEndMinute     int
	MaxRangeDays       int
	MarkInterval       time.Duration
	HistoricalInterval time.Duration
}

// PayrollConfig holds the payroll calculation constants.
type PayrollConfig struct {
	StandardMonthlyHours int64
	TaxRate              decimal.Decimal
	OtherDeductionRate   decimal.Decimal
}

func Load() (*Config, error) {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "workforce"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	// Automation configuration
	shiftStartHour, shiftStartMinute, err := parseClock(getEnv("SHIFT_START", "08:00"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHIFT_START: %w", err)
	}
	shiftEndHour, shiftEndMinute, err := parseClock(getEnv("SHIFT_END", "17:00"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHIFT_END: %w", err)
	}
	maxRangeDays, err := strconv.Atoi(getEnv("BACKFILL_MAX_RANGE_DAYS", "366"))
	if err != nil {
		return nil, fmt.Errorf("invalid BACKFILL_MAX_RANGE_DAYS: %w", err)
	}
	markInterval, err := time.ParseDuration(getEnv("MARK_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid MARK_INTERVAL: %w", err)
	}
	historicalInterval, err := time.ParseDuration(getEnv("HISTORICAL_BACKFILL_INTERVAL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid HISTORICAL_BACKFILL_INTERVAL: %w", err)
	}

	config.Automation = AutomationConfig{
		ShiftStartHour:     shiftStartHour,
		ShiftStartMinute:   shiftStartMinute,
		ShiftEndHour:       shiftEndHour,
		ShiftEndMinute:     shiftEndMinute,
		MaxRangeDays:       maxRangeDays,
		MarkInterval:       markInterval,
		HistoricalInterval: historicalInterval,
	}

	// Payroll configuration
	standardHours, err := strconv.ParseInt(getEnv("PAYROLL_STANDARD_MONTHLY_HOURS", "160"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_STANDARD_MONTHLY_HOURS: %w", err)
	}
	taxRate, err := decimal.NewFromString(getEnv("PAYROLL_TAX_RATE", "0.15"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_TAX_RATE: %w", err)
	}
	otherRate, err := decimal.NewFromString(getEnv("PAYROLL_OTHER_DEDUCTION_RATE", "0.02"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_OTHER_DEDUCTION_RATE: %w", err)
	}

	config.Payroll = PayrollConfig{
		StandardMonthlyHours: standardHours,
		TaxRate:              taxRate,
		OtherDeductionRate:   otherRate,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Automation.MaxRangeDays <= 0 {
		return fmt.Errorf("BACKFILL_MAX_RANGE_DAYS must be positive")
	}
	if c.Payroll.StandardMonthlyHours <= 0 {
		return fmt.Errorf("PAYROLL_STANDARD_MONTHLY_HOURS must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(key, fallback string) []string {
	value := getEnv(key, fallback)
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// parseClock parses an HH:MM wall-clock value.
func parseClock(value string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, 0, err
	}
	return t.Hour(), t.Minute(), nil
}
