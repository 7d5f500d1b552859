// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Data    DataConfig            `toml:"data"`
	Session SessionConfig         `toml:"session"`
	Cities  map[string]CityConfig `toml:"cities"`
}

// DataConfig locates the city CSV files.
type DataConfig struct {
	Dir *string `toml:"dir"`
}

// SessionConfig maps interactive session settings.
type SessionConfig struct {
	PageSize *int    `toml:"page-size"`
	LogLevel *string `toml:"log-level"`
}

// CityConfig overrides or adds a city. Keys are lowercased city names.
type CityConfig struct {
	File      *string `toml:"file"`
	Gender    *bool   `toml:"gender"`
	BirthYear *bool   `toml:"birth-year"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
