package config

import (
	"fmt"
	"os"

	"stock-dashboard/src/models"

	"gopkg.in/yaml.v3"
)

// -----------------------------------------------------------------------------

// Default simulator parameters applied when the YAML omits them.
const (
	DefaultTickIntervalSeconds = 5
	DefaultPriceMin            = 170.0
	DefaultPriceMax            = 190.0
	DefaultBaseVolume          = 5_000_000.0
	DefaultHistorySize         = 100
	DefaultNewsCount           = 8
	DefaultTimezone            = "America/New_York"
)

// -----------------------------------------------------------------------------

// Config wraps models.MConfig and provides business logic methods
type Config struct {
	*models.MConfig
}

// -----------------------------------------------------------------------------

// NewConfig creates a new MConfig instance from YAML file
func NewConfig(configPath string) (*Config, error) {
	// 1. Read the YAML file content
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", configPath, err)
	}

	// 2. Unmarshal data into the models struct
	var modelConfig models.MConfig
	if err := yaml.Unmarshal(data, &modelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse config from YAML: %w", err)
	}

	config := &Config{MConfig: &modelConfig}
	config.applyDefaults()

	// 3. Validate the loaded configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// -----------------------------------------------------------------------------

// applyDefaults fills optional simulator/session/news settings
func (c *Config) applyDefaults() {
	if c.Simulator.TickIntervalSeconds == 0 {
		c.Simulator.TickIntervalSeconds = DefaultTickIntervalSeconds
	}
	if c.Simulator.PriceMin == 0 && c.Simulator.PriceMax == 0 {
		c.Simulator.PriceMin = DefaultPriceMin
		c.Simulator.PriceMax = DefaultPriceMax
	}
	if c.Simulator.BaseVolume == 0 {
		c.Simulator.BaseVolume = DefaultBaseVolume
	}
	if c.Simulator.HistorySize == 0 {
		c.Simulator.HistorySize = DefaultHistorySize
	}
	if c.Session.Timezone == "" {
		c.Session.Timezone = DefaultTimezone
	}
	if c.News.DefaultCount == 0 {
		c.News.DefaultCount = DefaultNewsCount
	}
	if c.RetentionDays == 0 {
		c.RetentionDays = 7
	}
}

// -----------------------------------------------------------------------------

// Validate performs basic configuration validation
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("application name cannot be empty")
	}

	// Validate Server configuration (Flattened)
	if c.Host == "" {
		return fmt.Errorf("server host cannot be empty")
	}
	if c.Port <= 1024 || c.Port > 65535 {
		return fmt.Errorf("invalid server port number: %d (must be between 1025 and 65535)", c.Port)
	}

	// Validate Storage configuration
	if c.Storage.DBType == "" {
		return fmt.Errorf("database type cannot be empty")
	}
	if c.Storage.DBType == "sqlite" && c.Storage.DBPath == "" {
		return fmt.Errorf("database path cannot be empty for sqlite")
	}
	if c.Storage.DBType == "postgres" && c.Storage.DBConnectionString == "" {
		return fmt.Errorf("connection string cannot be empty for postgres")
	}

	// Validate Simulator configuration
	if len(c.Simulator.Symbols) == 0 {
		return fmt.Errorf("at least one symbol must be configured")
	}
	if c.Simulator.TickIntervalSeconds <= 0 {
		return fmt.Errorf("tick interval must be greater than 0")
	}
	if c.Simulator.PriceMin <= 0 || c.Simulator.PriceMax <= c.Simulator.PriceMin {
		return fmt.Errorf("invalid price range [%f, %f]", c.Simulator.PriceMin, c.Simulator.PriceMax)
	}
	if c.Simulator.HistorySize <= 0 {
		return fmt.Errorf("history size must be greater than 0")
	}

	if c.RetentionDays <= 0 {
		return fmt.Errorf("retention days must be greater than 0")
	}

	return nil
}

// -----------------------------------------------------------------------------

// Save persists the current configuration to the specified YAML file path
func (c *Config) Save(configPath string) error {
	// 1. Marshal the struct to YAML
	data, err := yaml.Marshal(c.MConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	// 2. Write to file (0644 permissions)
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config to file '%s': %w", configPath, err)
	}

	return nil
}
