// Package config loads process configuration with viper, grounded on the
// sibling salon services' internal/config packages but adapted to a TOML
// config file per spec §6's documented format: a .env file loaded via
// gotenv for local development, a TOML file under ./configs for connector
// base URLs and non-secret settings, and environment variables
// (PAYMENT_CONNECTOR_ENGINE_*) taking precedence over both for anything a
// deploy environment overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// ConnectorConfig is the per-connector section of the config file: a base
// URL, Adyen's merchant account, and credential fields. cmd/server reads
// only BaseURL and MerchantAccount; request credentials come from gRPC
// metadata, so the credential fields are decoded if present but unused.
type ConnectorConfig struct {
	BaseURL         string
	MerchantAccount string
	APIKey          string
	Key1            string
	APISecret       string
	Key2            string
	WebhookHMACKey  string
}

// Config is the full process configuration.
type Config struct {
	Env    string
	Server struct {
		Port          string
		MetricsPort   string
		ShutdownGrace int // seconds
	}
	Log struct {
		Level       string
		ServiceName string
	}
	Connectors map[string]ConnectorConfig
}

// Load reads configuration the same way every sibling service in this
// codebase does: .env first (gotenv, best-effort), then ./configs/config.toml,
// then environment variables with the PAYMENT_CONNECTOR_ENGINE prefix, which
// win over file values.
func Load() (*Config, error) {
	_ = gotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath("./configs")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("PAYMENT_CONNECTOR_ENGINE")
	v.AutomaticEnv()

	v.SetDefault("env", "dev")
	v.SetDefault("server.port", "9090")
	v.SetDefault("server.metricsport", "9091")
	v.SetDefault("server.shutdowngrace", 30)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.servicename", "payment-connector-engine")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
