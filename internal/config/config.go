package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML). Every field has an
// environment-variable override so the server can also run with no config
// file at all.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Data    DataConfig    `yaml:"data"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Port      string `yaml:"port"`       // API_PORT
	StaticDir string `yaml:"static_dir"` // STATIC_DIR
}

type DataConfig struct {
	ModelFile   string `yaml:"model_file"`   // MODEL_FILE
	HistoryFile string `yaml:"history_file"` // HISTORY_FILE
}

type LoggingConfig struct {
	Level string `yaml:"level"` // LOG_LEVEL
}

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() Config {
	return Config{
		Server:  ServerConfig{Port: "8000", StaticDir: "./web/dist"},
		Data:    DataConfig{ModelFile: "all_models.json", HistoryFile: "final_dataset_cleaned_v3.csv"},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads, overrides and validates the configuration. path may be empty,
// in which case only defaults and environment variables apply.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	c := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	c.applyEnv()
	return &c, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("API_PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("STATIC_DIR"); v != "" {
		c.Server.StaticDir = v
	}
	if v := os.Getenv("MODEL_FILE"); v != "" {
		c.Data.ModelFile = v
	}
	if v := os.Getenv("HISTORY_FILE"); v != "" {
		c.Data.HistoryFile = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("server.port %q is not a number", c.Server.Port)
	}
	if c.Data.ModelFile == "" {
		return errors.New("data.model_file is required")
	}
	if c.Data.HistoryFile == "" {
		return errors.New("data.history_file is required")
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level %q is invalid: %w", c.Logging.Level, err)
	}
	return nil
}
