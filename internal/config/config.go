// Package config loads workforce-engine settings from an optional YAML file
// with environment overrides applied on top.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"workforce-engine/internal/validation"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Generation GenerationConfig `yaml:"generation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

// GenerationConfig bounds and seeds population generation.
type GenerationConfig struct {
	MaxCount int     `yaml:"max_count"`
	Seed     *uint64 `yaml:"seed"` // nil: a fresh seed per run
}

type LoggingConfig struct {
	Level       string `yaml:"level"`       // debug, info, warn, error
	Development bool   `yaml:"development"` // console encoder instead of JSON
}

func DefaultConfig() *Config {
	return &Config{
		Server:     ServerConfig{Port: "8080"},
		Generation: GenerationConfig{MaxCount: validation.DefaultMaxCount},
		Logging:    LoggingConfig{Level: "info"},
	}
}

// Load reads path (empty means defaults only), applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Port = port
	}

	if level := os.Getenv("WORKFORCE_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}

	if raw := os.Getenv("WORKFORCE_MAX_COUNT"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("WORKFORCE_MAX_COUNT: %w", err)
		}
		c.Generation.MaxCount = n
	}

	if raw := os.Getenv("WORKFORCE_SEED"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("WORKFORCE_SEED: %w", err)
		}
		c.Generation.Seed = &seed
	}

	return nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port == "" {
		errs = append(errs, errors.New("server.port is required"))
	} else if p, err := strconv.Atoi(c.Server.Port); err != nil || p < 1 || p > 65535 {
		errs = append(errs, fmt.Errorf("server.port %q is not a valid port", c.Server.Port))
	}

	if c.Generation.MaxCount < 0 {
		errs = append(errs, fmt.Errorf("generation.max_count must not be negative, got %d", c.Generation.MaxCount))
	}

	if _, err := c.Logging.ZapLevel(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// ZapLevel parses Logging.Level.
func (l LoggingConfig) ZapLevel() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("logging.level: %w", err)
	}
	return level, nil
}
