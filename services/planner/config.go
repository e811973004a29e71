// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package planner

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Config contains all planner service configuration.
//
// Thread Safety: Safe to read concurrently. Not safe to modify after
// creation.
type Config struct {
	// Server contains the HTTP listener settings.
	Server ServerConfig `json:"server" yaml:"server"`

	// Search contains the search budget settings.
	Search SearchConfig `json:"search" yaml:"search"`

	// Worlds contains the world library settings.
	Worlds WorldsConfig `json:"worlds" yaml:"worlds"`
}

// ServerConfig contains HTTP listener settings.
type ServerConfig struct {
	Host string `json:"host" yaml:"host"`
	Port int    `json:"port" yaml:"port"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Duration is a time.Duration that unmarshals from "2s" style
// strings in YAML and JSON, or from plain nanosecond integers.
type Duration time.Duration

// Std converts back to the standard library type.
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return time.Duration(d).String() }

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		var n int64
		if intErr := value.Decode(&n); intErr == nil {
			*d = Duration(n)
			return nil
		}
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var n int64
		if intErr := json.Unmarshal(data, &n); intErr == nil {
			*d = Duration(n)
			return nil
		}
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (any, error) { return d.String(), nil }

func (d Duration) MarshalJSON() ([]byte, error) { return json.Marshal(d.String()) }

// SearchConfig bounds a single plan call.
type SearchConfig struct {
	// TimeLimit caps one search. Zero means unbounded.
	TimeLimit Duration `json:"time_limit" yaml:"time_limit"`

	// MaxExpansions caps node expansions. Zero means unbounded.
	MaxExpansions int `json:"max_expansions" yaml:"max_expansions"`

	// MaxHeight caps column height for drop edges. Zero means
	// unbounded.
	MaxHeight int `json:"max_height" yaml:"max_height"`
}

// WorldsConfig points at the on-disk world library.
type WorldsConfig struct {
	// Dir is a directory of *.yaml world files. Empty disables the
	// on-disk library; the embedded examples remain available.
	Dir string `json:"dir" yaml:"dir"`

	// Watch reloads the library when Dir changes on disk.
	Watch bool `json:"watch" yaml:"watch"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8093,
		},
		Search: SearchConfig{
			TimeLimit:     Duration(10 * time.Second),
			MaxExpansions: 1_000_000,
			MaxHeight:     0,
		},
		Worlds: WorldsConfig{
			Dir:   "",
			Watch: true,
		},
	}
}

// LoadConfig loads configuration with priority: env > file > defaults.
//
// Inputs:
//   - configPath: Path to a YAML/JSON config file (optional, can be
//     empty; a missing file is not an error).
//
// Outputs:
//   - Config: Merged configuration.
//   - error: Non-nil if the file exists but is invalid, or the merged
//     result fails validation.
func LoadConfig(configPath string) (Config, error) {
	config := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(configPath, &config); err != nil {
			return config, fmt.Errorf("load config file: %w", err)
		}
	}

	loadConfigFromEnv(&config)

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func loadConfigFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if strings.HasSuffix(path, ".json") {
		return json.Unmarshal(data, config)
	}
	return yaml.Unmarshal(data, config)
}

// loadConfigFromEnv overrides fields from SHRDLITE_* variables.
func loadConfigFromEnv(config *Config) {
	if v := os.Getenv("SHRDLITE_HOST"); v != "" {
		config.Server.Host = v
	}
	if v := os.Getenv("SHRDLITE_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Server.Port = n
		}
	}
	if v := os.Getenv("SHRDLITE_TIME_LIMIT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.Search.TimeLimit = Duration(d)
		}
	}
	if v := os.Getenv("SHRDLITE_MAX_EXPANSIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Search.MaxExpansions = n
		}
	}
	if v := os.Getenv("SHRDLITE_MAX_HEIGHT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Search.MaxHeight = n
		}
	}
	if v := os.Getenv("SHRDLITE_WORLDS_DIR"); v != "" {
		config.Worlds.Dir = v
	}
	if v := os.Getenv("SHRDLITE_WORLDS_WATCH"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.Worlds.Watch = b
		}
	}
}

// Validate checks the merged configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Search.TimeLimit < 0 {
		return fmt.Errorf("search.time_limit is negative: %v", c.Search.TimeLimit)
	}
	if c.Search.MaxExpansions < 0 {
		return fmt.Errorf("search.max_expansions is negative: %d", c.Search.MaxExpansions)
	}
	if c.Search.MaxHeight < 0 {
		return fmt.Errorf("search.max_height is negative: %d", c.Search.MaxHeight)
	}
	return nil
}
