// Package config loads application configuration from an optional YAML
// file, a .env file and environment variables, in increasing priority.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the CLI settings.
type Config struct {
	// DBPath is the SQLite database file. Empty means the default XDG path.
	DBPath string `yaml:"db_path"`

	// LogLevel is a zap level name, or "off".
	LogLevel string `yaml:"log_level"`

	// WeekCount is the number of weekly windows shown by default.
	WeekCount int `yaml:"week_count"`

	// LearnerID is the learner used when a command is not given one.
	LearnerID string `yaml:"learner_id"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:  "off",
		WeekCount: 8,
	}
}

// Load builds the configuration. The YAML file named by path, or by
// QUIZDUEL_CONFIG_FILE when path is empty, is optional.
func Load(path string) (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := Default()

	if path == "" {
		path = os.Getenv("QUIZDUEL_CONFIG_FILE")
	}
	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.overrideFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) overrideFromEnv() error {
	if v := os.Getenv("QUIZDUEL_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("QUIZDUEL_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("QUIZDUEL_LEARNER"); v != "" {
		c.LearnerID = v
	}
	if v := os.Getenv("QUIZDUEL_WEEKS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: QUIZDUEL_WEEKS=%q is not a number: %w", v, err)
		}
		c.WeekCount = n
	}
	return nil
}
