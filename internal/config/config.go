// Package config loads runtime settings from defaults, an optional config
// file and the environment through viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config is the typed view of every setting the service reads.
type Config struct {
	AppPort  string `validate:"required"`
	LogLevel string `validate:"oneof=debug info warn error"`
	// json for production, console for local development
	LogFormat string `validate:"oneof=json console"`

	DatabaseDriver string `validate:"oneof=sqlite postgres"`
	DatabaseDSN    string `validate:"required"`
	// static serves the built-in catalog; database reads the products table
	CatalogSource string `validate:"oneof=static database"`

	JWTSecret string        `validate:"required,min=8"`
	TokenTTL  time.Duration `validate:"gt=0"`
	// accounts allowed to edit the database catalog
	AdminEmails []string `validate:"dive,email"`

	// RabbitMQURL may be empty, which disables event publishing.
	RabbitMQURL   string `validate:"omitempty,url"`
	RabbitMQQueue string `validate:"required"`

	SheetsURL     string        `validate:"omitempty,url"`
	SheetsTimeout time.Duration `validate:"gt=0"`

	FreeShippingThreshold float64 `validate:"gte=0"`
	ShippingFlatFee       float64 `validate:"gte=0"`

	CartTTL           time.Duration `validate:"gt=0"`
	CartSweepInterval time.Duration `validate:"gt=0"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "file:makhana.db?cache=shared")
	v.SetDefault("CATALOG_SOURCE", "static")
	v.SetDefault("JWT_SECRET", "change-me-in-production")
	v.SetDefault("TOKEN_TTL", "24h")
	v.SetDefault("ADMIN_EMAILS", "")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_QUEUE", "storefront_events")
	v.SetDefault("SHEETS_URL", "")
	v.SetDefault("SHEETS_TIMEOUT", "15s")
	v.SetDefault("FREE_SHIPPING_THRESHOLD", 500)
	v.SetDefault("SHIPPING_FLAT_FEE", 50)
	v.SetDefault("CART_TTL", "72h")
	v.SetDefault("CART_SWEEP_INTERVAL", "10m")
}

// Load reads configuration into a Config. Environment variables override the
// file named by CONFIG_FILE, which overrides the defaults.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	v.AutomaticEnv()

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	cfg := Config{
		AppPort:               v.GetString("APP_PORT"),
		LogLevel:              v.GetString("LOG_LEVEL"),
		LogFormat:             v.GetString("LOG_FORMAT"),
		DatabaseDriver:        v.GetString("DATABASE_DRIVER"),
		DatabaseDSN:           v.GetString("DATABASE_DSN"),
		CatalogSource:         v.GetString("CATALOG_SOURCE"),
		JWTSecret:             v.GetString("JWT_SECRET"),
		TokenTTL:              v.GetDuration("TOKEN_TTL"),
		AdminEmails:           splitList(v.GetString("ADMIN_EMAILS")),
		RabbitMQURL:           v.GetString("RABBITMQ_URL"),
		RabbitMQQueue:         v.GetString("RABBITMQ_QUEUE"),
		SheetsURL:             v.GetString("SHEETS_URL"),
		SheetsTimeout:         v.GetDuration("SHEETS_TIMEOUT"),
		FreeShippingThreshold: v.GetFloat64("FREE_SHIPPING_THRESHOLD"),
		ShippingFlatFee:       v.GetFloat64("SHIPPING_FLAT_FEE"),
		CartTTL:               v.GetDuration("CART_TTL"),
		CartSweepInterval:     v.GetDuration("CART_SWEEP_INTERVAL"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// splitList parses a comma-separated setting, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, strings.ToLower(item))
		}
	}
	return out
}
