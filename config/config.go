package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/luca-patrignani/poker-time/roundfile"
)

// Config holds the configuration settings
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Timer   TimerConfig   `yaml:"timer"`
	Log     LogConfig     `yaml:"log"`
}

// StorageConfig holds where blind structures are imported from and exported to.
type StorageConfig struct {
	Dir         string `yaml:"dir"`
	DefaultFile string `yaml:"default_file"`
}

// TimerConfig holds the clock cadence.
type TimerConfig struct {
	Tick          time.Duration `yaml:"tick"`
	FlashCycles   int           `yaml:"flash_cycles"`
	FlashInterval time.Duration `yaml:"flash_interval"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	dir, err := roundfile.DefaultDir()
	if err != nil {
		dir = "PokerTime"
	}
	return &Config{
		Storage: StorageConfig{
			Dir:         dir,
			DefaultFile: "structure.csv",
		},
		Timer: TimerConfig{
			Tick:          time.Second,
			FlashCycles:   10,
			FlashInterval: 500 * time.Millisecond,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads the configuration from a YAML file. A missing file is not
// an error: defaults are used. Environment variables override both.
func LoadConfig(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	// --- OVERRIDE WITH ENV VARS IF PRESENT ---
	if v := os.Getenv("POKERTIME_DIR"); v != "" {
		cfg.Storage.Dir = v
	}
	if v := os.Getenv("POKERTIME_DEFAULT_FILE"); v != "" {
		cfg.Storage.DefaultFile = v
	}
	cfg.Timer.Tick = getEnvAsDuration("POKERTIME_TICK", cfg.Timer.Tick)
	cfg.Timer.FlashCycles = getEnvAsInt("POKERTIME_FLASH_CYCLES", cfg.Timer.FlashCycles)
	cfg.Timer.FlashInterval = getEnvAsDuration("POKERTIME_FLASH_INTERVAL", cfg.Timer.FlashInterval)
	if v := os.Getenv("POKERTIME_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the clock cannot run with.
func (c *Config) Validate() error {
	if c.Storage.Dir == "" {
		return fmt.Errorf("storage.dir must not be empty")
	}
	if c.Timer.Tick <= 0 {
		return fmt.Errorf("timer.tick must be positive, got %s", c.Timer.Tick)
	}
	if c.Timer.FlashCycles < 0 {
		return fmt.Errorf("timer.flash_cycles must not be negative, got %d", c.Timer.FlashCycles)
	}
	if c.Timer.FlashCycles > 0 && c.Timer.FlashInterval <= 0 {
		return fmt.Errorf("timer.flash_interval must be positive, got %s", c.Timer.FlashInterval)
	}
	return nil
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
