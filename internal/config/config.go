// Package config loads showcase configuration from an optional YAML file
// with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines application configuration.
type Config struct {
	DB     DBConfig     `yaml:"db"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Load reads configuration from an optional YAML file and environment
// variables. Defaults live under ~/.showcase.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}

	cfg := Config{
		DB: DBConfig{
			Path: filepath.Join(home, ".showcase", "showcase.db"),
		},
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
		Log: LogConfig{
			Level: "info",
			File:  filepath.Join(home, ".showcase", "showcase.log"),
		},
	}

	if path := os.Getenv("SHOWCASE_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if dbPath := os.Getenv("SHOWCASE_DB"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if host := os.Getenv("SHOWCASE_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("SHOWCASE_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SHOWCASE_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if level := os.Getenv("SHOWCASE_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if file := os.Getenv("SHOWCASE_LOG_FILE"); file != "" {
		cfg.Log.File = file
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
