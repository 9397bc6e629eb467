// Package config provides configuration management for cssel using Viper
// for flexible loading from files, environment variables, and
// command-line flags.
//
// Configuration is read from .cssel.yml, overridden by CSSEL_-prefixed
// environment variables, and finally by command-line flags bound in the
// cmd package. It covers rendering style, the preview server, and file
// watching.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Render RenderConfig `yaml:"render"`
	Server ServerConfig `yaml:"server"`
	Watch  WatchConfig  `yaml:"watch"`
}

type RenderConfig struct {
	Indent string `yaml:"indent"`
	Minify bool   `yaml:"minify"`
}

type ServerConfig struct {
	Port           int      `yaml:"port"`
	Host           string   `yaml:"host"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type WatchConfig struct {
	DebounceMs int `yaml:"debounce_ms"`
}

// Load reads the current viper state into a validated Config.
func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	// Workaround for viper zero-value handling: explicit settings win
	// over struct zero values.
	if viper.IsSet("render.indent") {
		config.Render.Indent = viper.GetString("render.indent")
	}
	if viper.IsSet("render.minify") {
		config.Render.Minify = viper.GetBool("render.minify")
	}
	if viper.IsSet("server.allowed_origins") && len(config.Server.AllowedOrigins) == 0 {
		config.Server.AllowedOrigins = viper.GetStringSlice("server.allowed_origins")
	}
	if viper.IsSet("watch.debounce_ms") {
		config.Watch.DebounceMs = viper.GetInt("watch.debounce_ms")
	}

	applyDefaults(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func applyDefaults(config *Config) {
	if config.Render.Indent == "" && !viper.IsSet("render.indent") {
		config.Render.Indent = "  "
	}
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}
	if config.Server.Host == "" {
		config.Server.Host = "localhost"
	}
	if config.Watch.DebounceMs == 0 {
		config.Watch.DebounceMs = 100
	}
}

// Validate checks configuration values for consistency.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range (1-65535)", c.Server.Port)
	}
	if c.Watch.DebounceMs < 0 || c.Watch.DebounceMs > 10000 {
		return fmt.Errorf("watch debounce %dms out of range (0-10000)", c.Watch.DebounceMs)
	}

	return nil
}
