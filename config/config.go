// Package config loads the settings of the whatwg-url command from a YAML
// file and the environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alwinb/whatwg-url/whatwgurl"
)

// Environment variables that override file settings.
const (
	EnvOutput = "WHATWG_URL_OUTPUT"
	EnvDebug  = "WHATWG_URL_DEBUG"
	EnvBase   = "WHATWG_URL_BASE"
)

// ErrInvalidConfig is returned for unreadable or inconsistent settings.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the command settings.
type Config struct {
	Output         string `yaml:"output"`
	Debug          bool   `yaml:"debug"`
	StructuredLogs bool   `yaml:"structuredLogs"`
	Base           string `yaml:"base"`
	Metrics        bool   `yaml:"metrics"`
	MCP            MCP    `yaml:"mcp"`
}

// MCP holds the settings of the MCP tool server.
type MCP struct {
	// RateLimit is the sustained number of tool calls per second.
	RateLimit float64 `yaml:"rateLimit"`
	Burst     int     `yaml:"burst"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Output: "default",
		MCP:    MCP{RateLimit: 10, Burst: 20},
	}
}

// DefaultPath returns the config file location under the user config
// directory, or "" when there is none.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "whatwg-url", "config.yaml")
}

// Load reads the config file at path, applies environment overrides and
// validates the result. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if strings.Contains(path, "..") {
			return nil, fmt.Errorf("%w: path contains parent directory reference: %s", ErrInvalidConfig, path)
		}
		// #nosec G304 -- path is rejected above when it traverses upward
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := decode(data, cfg); err != nil {
				return nil, err
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: failed to parse config: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output = v
	}
	if v := os.Getenv(EnvDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidConfig, EnvDebug, v)
		}
		c.Debug = debug
	}
	if v := os.Getenv(EnvBase); v != "" {
		c.Base = v
	}
	return nil
}

// Validate checks the output format, the MCP limits and that the base URL,
// when set, is an absolute URL.
func (c *Config) Validate() error {
	switch c.Output {
	case "default", "json", "yaml":
	default:
		return fmt.Errorf("%w: output must be default, json or yaml, got %q", ErrInvalidConfig, c.Output)
	}
	if c.MCP.RateLimit <= 0 {
		return fmt.Errorf("%w: mcp.rateLimit must be positive", ErrInvalidConfig)
	}
	if c.MCP.Burst < 1 {
		return fmt.Errorf("%w: mcp.burst must be at least 1", ErrInvalidConfig)
	}
	if c.Base != "" {
		if _, err := whatwgurl.New(c.Base); err != nil {
			return fmt.Errorf("%w: base: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// Marshal renders the settings as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
