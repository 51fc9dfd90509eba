package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/nurpe/freelance-pricing/internal/rates"
)

type HTTPConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
}

type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime string
}

// Enabled reports whether the market reference data is served from postgres.
func (c DBConfig) Enabled() bool {
	return c.DSN != ""
}

type BudgetConfig struct {
	ItemsPerPage    int
	DefaultCurrency string
	Location        string
	SessionTTL      time.Duration
}

type Config struct {
	Environment string
	LogLevel    string
	HTTP        HTTPConfig
	DB          DBConfig
	Budget      BudgetConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 7090)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("BUDGET_ITEMS_PER_PAGE", 12)
	v.SetDefault("BUDGET_DEFAULT_CURRENCY", "USD")
	v.SetDefault("BUDGET_LOCATION", "Argentina")
	v.SetDefault("BUDGET_SESSION_TTL", "24h")

	_ = v.ReadInConfig()

	ttl, err := time.ParseDuration(strings.TrimSpace(v.GetString("BUDGET_SESSION_TTL")))
	if err != nil {
		return nil, fmt.Errorf("BUDGET_SESSION_TTL: %w", err)
	}

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		HTTP: HTTPConfig{
			Host:           v.GetString("HTTP_HOST"),
			Port:           v.GetInt("HTTP_PORT"),
			AllowedOrigins: parseList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetString("DB_CONN_MAX_LIFETIME"),
		},
		Budget: BudgetConfig{
			ItemsPerPage:    v.GetInt("BUDGET_ITEMS_PER_PAGE"),
			DefaultCurrency: strings.ToUpper(strings.TrimSpace(v.GetString("BUDGET_DEFAULT_CURRENCY"))),
			Location:        v.GetString("BUDGET_LOCATION"),
			SessionTTL:      ttl,
		},
	}

	if len(cfg.HTTP.AllowedOrigins) == 0 {
		cfg.HTTP.AllowedOrigins = []string{"*"}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if cfg.Budget.ItemsPerPage < 1 {
		return fmt.Errorf("BUDGET_ITEMS_PER_PAGE must be positive")
	}
	if !rates.IsSupportedCurrency(cfg.Budget.DefaultCurrency) {
		return fmt.Errorf("BUDGET_DEFAULT_CURRENCY %q is not one of %s", cfg.Budget.DefaultCurrency, strings.Join(rates.SupportedCurrencies, ", "))
	}
	if cfg.Budget.SessionTTL <= 0 {
		return fmt.Errorf("BUDGET_SESSION_TTL must be positive")
	}
	if cfg.DB.Enabled() && cfg.DB.ConnMaxLifetime != "" {
		if _, err := time.ParseDuration(cfg.DB.ConnMaxLifetime); err != nil {
			return fmt.Errorf("DB_CONN_MAX_LIFETIME: %w", err)
		}
	}
	return nil
}

func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	items := strings.Split(raw, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
