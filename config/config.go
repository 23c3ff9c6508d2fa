package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Bank   BankConfig   `mapstructure:"bank"`
	HTTP   HTTPConfig   `mapstructure:"http"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// Addr returns the listen address string.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// BankConfig holds the ledger business policy knobs.
type BankConfig struct {
	OverdraftFloor    float64 `mapstructure:"overdraft_floor"`    // minimum balance non-credit accounts may reach
	CommissionRate    float64 `mapstructure:"commission_rate"`    // rate applied to external transfers
	CommissionMinimum float64 `mapstructure:"commission_minimum"` // fee floor for external transfers
	InternalBankCode  string  `mapstructure:"internal_bank_code"`
	ExternalBankCode  string  `mapstructure:"external_bank_code"`
	Seed              bool    `mapstructure:"seed"` // seed the demo dataset on startup
}

type HTTPConfig struct {
	MaxBodyBytes int64 `mapstructure:"max_body_bytes"`
	RateLimit    bool  `mapstructure:"rate_limit"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: QBS_ (QA Banking Sandbox).
// Nested keys use underscore: QBS_SERVER_PORT, QBS_BANK_COMMISSION_RATE, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("bank.overdraft_floor", -50000)
	v.SetDefault("bank.commission_rate", 0.0075)
	v.SetDefault("bank.commission_minimum", 45)
	v.SetDefault("bank.internal_bank_code", "044525225")
	v.SetDefault("bank.external_bank_code", "040173604")
	v.SetDefault("bank.seed", true)
	v.SetDefault("http.max_body_bytes", 1<<20)
	v.SetDefault("http.rate_limit", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: QBS_BANK_COMMISSION_RATE -> bank.commission_rate
	v.SetEnvPrefix("QBS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
