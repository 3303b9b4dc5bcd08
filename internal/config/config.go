package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server ServerConfig `yaml:"server"`
	Pebble PebbleConfig `yaml:"pebble"`
	Wallet WalletConfig `yaml:"wallet"`
	Price  PriceConfig  `yaml:"price"`
}

// ServerConfig represents the HTTP server configuration
type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

// PebbleConfig represents the Pebble database configuration
type PebbleConfig struct {
	Path string `yaml:"path"`
}

// WalletConfig represents the wallet engine configuration
type WalletConfig struct {
	ConfirmDelaySeconds int `yaml:"confirm_delay_seconds"` // Pending-to-confirmed delay (default: 60)
}

// PriceConfig represents the price feed configuration
type PriceConfig struct {
	Currency            string `yaml:"currency"`              // Display currency code (default: USD)
	PollIntervalSeconds int    `yaml:"poll_interval_seconds"` // Price refresh interval (default: 30)
	APIKey              string `yaml:"api_key"`               // Optional CoinGecko API key
}

// ConfirmDelay returns the confirmation delay as a duration.
func (c *Config) ConfirmDelay() time.Duration {
	return time.Duration(c.Wallet.ConfirmDelaySeconds) * time.Second
}

// PollInterval returns the price poll interval as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Price.PollIntervalSeconds) * time.Second
}

// Load loads configuration from a YAML file and environment variables
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: 8080,
			Host: "0.0.0.0",
		},
		Pebble: PebbleConfig{
			Path: "./data/pebble",
		},
		Wallet: WalletConfig{
			ConfirmDelaySeconds: 60,
		},
		Price: PriceConfig{
			Currency:            "USD",
			PollIntervalSeconds: 30,
		},
	}

	// Load from YAML file if it exists
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		} else {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	// Override with environment variables
	cfg.loadEnv()

	return cfg, nil
}

func (c *Config) loadEnv() {
	// Server config
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}
	if host := os.Getenv("SERVER_HOST"); host != "" {
		c.Server.Host = host
	}

	// Pebble config
	if path := os.Getenv("PEBBLE_PATH"); path != "" {
		c.Pebble.Path = path
	}

	// Wallet config
	if delay := os.Getenv("WALLET_CONFIRM_DELAY"); delay != "" {
		if d, err := strconv.Atoi(delay); err == nil {
			c.Wallet.ConfirmDelaySeconds = d
		}
	}

	// Price config
	if ccy := os.Getenv("PRICE_CURRENCY"); ccy != "" {
		c.Price.Currency = ccy
	}
	if interval := os.Getenv("PRICE_POLL_INTERVAL"); interval != "" {
		if i, err := strconv.Atoi(interval); err == nil {
			c.Price.PollIntervalSeconds = i
		}
	}
	if key := os.Getenv("COINGECKO_API_KEY"); key != "" {
		c.Price.APIKey = key
	}
}
