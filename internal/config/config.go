// Package config provides configuration loading for the repline demo binary.
//
// Configuration comes from three layers, later layers winning: built-in
// defaults, an optional TOML file, and REPLINE_-prefixed environment
// variables. A missing config file is not an error. The library core takes no
// configuration files; this package serves only the binary.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "REPLINE_"

// Config holds the demo binary's settings.
type Config struct {
	// Prompt is printed before the editable line.
	Prompt string `toml:"prompt"`
	// Banner is printed once at startup.
	Banner string `toml:"banner"`
	// Welcome is printed after the banner.
	Welcome string `toml:"welcome"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Prompt:   "> ",
		Banner:   "repline",
		Welcome:  "Lua REPL. Type exit to leave.",
		LogLevel: "info",
	}
}

// Load returns the defaults overlaid with the TOML file at path (skipped when
// path is empty or the file does not exist) and then environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// Missing file falls through to defaults.
		case err != nil:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overlays REPLINE_-prefixed environment variables.
// An empty value is treated as set.
func (c *Config) applyEnv() {
	overrides := map[string]*string{
		EnvPrefix + "PROMPT":    &c.Prompt,
		EnvPrefix + "BANNER":    &c.Banner,
		EnvPrefix + "WELCOME":   &c.Welcome,
		EnvPrefix + "LOG_LEVEL": &c.LogLevel,
	}
	for env, field := range overrides {
		if val, ok := os.LookupEnv(env); ok {
			*field = val
		}
	}
}

func (c *Config) validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
}
