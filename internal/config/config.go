// Package config loads the ambient settings shared by the commands and the
// HTTP server: logging, output formatting and listener options.
//
// Nothing here influences the numeric transform.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix of environment variables read by Load,
// e.g. FRAMES_LOG_LEVEL.
const EnvPrefix = "FRAMES_"

// Output formats.
const (
	OutputLines = "lines"
	OutputJSON  = "json"
	OutputTable = "table"
)

// Default values.
const (
	DefaultLogLevel  = "warn"
	DefaultOutput    = OutputLines
	DefaultPrecision = -1
	DefaultHTTPAddr  = ":8080"
)

// Config holds every ambient setting.
type Config struct {
	LogLevel  string `koanf:"log_level"`
	Output    string `koanf:"output"`
	Precision int    `koanf:"precision"` // digits after the decimal point; -1 = shortest round-trip

	HTTPAddr    string `koanf:"http_addr"`
	AuthEnabled bool   `koanf:"auth_enabled"`
	AuthToken   string `koanf:"auth_token"`
	TrustProxy  bool   `koanf:"trust_proxy"`
}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		LogLevel:  DefaultLogLevel,
		Output:    DefaultOutput,
		Precision: DefaultPrecision,
		HTTPAddr:  DefaultHTTPAddr,
	}
}

func defaultsMap() map[string]interface{} {
	d := Default()
	return map[string]interface{}{
		"log_level":    d.LogLevel,
		"output":       d.Output,
		"precision":    d.Precision,
		"http_addr":    d.HTTPAddr,
		"auth_enabled": d.AuthEnabled,
		"auth_token":   d.AuthToken,
		"trust_proxy":  d.TrustProxy,
	}
}

// Load loads configuration from defaults, an optional YAML file, environment
// variables and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
// Only flags that were explicitly set override lower layers. A "config" flag
// is never treated as a setting.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaultsMap(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// 3. Environment variables: FRAMES_LOG_LEVEL -> log_level
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
	return &cfg, nil
}

// Validate checks the settings that have a closed set of values.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputLines, OutputJSON, OutputTable:
	default:
		return fmt.Errorf("unknown output format %q (want %s, %s or %s)", c.Output, OutputLines, OutputJSON, OutputTable)
	}
	if c.Precision < -1 {
		return fmt.Errorf("precision must be -1 or greater, got %d", c.Precision)
	}
	if c.AuthEnabled && c.AuthToken == "" {
		return errors.New("auth_token is required when auth is enabled")
	}
	return nil
}
