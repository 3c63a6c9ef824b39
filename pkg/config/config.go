package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"log"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Provider struct {
		// Type selects the upstream market-data source:
		// yahoo, twelvedata or alphavantage.
		Type    string        `yaml:"type"`
		Timeout time.Duration `yaml:"timeout"`
		Yahoo   struct {
			Endpoint string `yaml:"endpoint"`
			Range    string `yaml:"range"`
		} `yaml:"yahoo"`
		TwelveData struct {
			Endpoint   string `yaml:"endpoint"`
			APIKey     string `yaml:"api_key"`
			OutputSize int    `yaml:"output_size"`
		} `yaml:"twelvedata"`
		AlphaVantage struct {
			Endpoint string `yaml:"endpoint"`
			APIKey   string `yaml:"api_key"`
		} `yaml:"alphavantage"`
		Retry struct {
			Enabled     bool          `yaml:"enabled"`
			MaxAttempts int           `yaml:"max_attempts"`
			Delay       time.Duration `yaml:"delay"`
		} `yaml:"retry"`
		Rate struct {
			Enabled      bool    `yaml:"enabled"`
			Capacity     float64 `yaml:"capacity"`
			RefillPerSec float64 `yaml:"refill_per_sec"`
		} `yaml:"rate"`
	} `yaml:"provider"`
	Forecast struct {
		// LookbackDays restricts the normalized series to a trailing
		// window; 0 keeps whatever the provider returned.
		LookbackDays int `yaml:"lookback_days"`
		HorizonDays  int `yaml:"horizon_days"`
	} `yaml:"forecast"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment
// variables. Credentials are expected to arrive this way in deployments;
// they are never embedded in source.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("PROVIDER"); v != "" {
		c.Provider.Type = v
	}
	if v := os.Getenv("TWELVEDATA_API_KEY"); v != "" {
		c.Provider.TwelveData.APIKey = v
	}
	if v := os.Getenv("ALPHAVANTAGE_API_KEY"); v != "" {
		c.Provider.AlphaVantage.APIKey = v
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if c.Log.Output == "" {
		c.Log.Output = "stdout"
	}
	if c.Provider.Timeout == 0 {
		c.Provider.Timeout = 15 * time.Second
	}
	if c.Provider.Retry.MaxAttempts == 0 {
		c.Provider.Retry.MaxAttempts = 3
	}
	if c.Provider.Retry.Delay == 0 {
		c.Provider.Retry.Delay = 20 * time.Second
	}
	if c.Forecast.HorizonDays == 0 {
		c.Forecast.HorizonDays = 7
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	switch c.Provider.Type {
	case "yahoo":
	case "twelvedata":
		if c.Provider.TwelveData.APIKey == "" {
			return fmt.Errorf("provider.twelvedata.api_key is required")
		}
	case "alphavantage":
		if c.Provider.AlphaVantage.APIKey == "" {
			return fmt.Errorf("provider.alphavantage.api_key is required")
		}
	case "":
		return fmt.Errorf("provider.type is required")
	default:
		return fmt.Errorf("provider.type must be 'yahoo', 'twelvedata' or 'alphavantage', got '%s'", c.Provider.Type)
	}
	if c.Provider.Retry.MaxAttempts < 1 {
		return fmt.Errorf("provider.retry.max_attempts must be >= 1")
	}
	if c.Forecast.LookbackDays < 0 {
		return fmt.Errorf("forecast.lookback_days must be >= 0")
	}
	if c.Forecast.HorizonDays < 1 {
		return fmt.Errorf("forecast.horizon_days must be >= 1")
	}
	return nil
}
