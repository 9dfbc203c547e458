// Package config loads the optional accessbridge.yaml configuration and
// resolves it against defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up by LoadOptional.
const FileName = "accessbridge.yaml"

// Defaults applied by Resolve.
const (
	DefaultRuntimeVersion = "v2.38.0"
	DefaultTypePrefix     = "Drift"
	DefaultRootSize       = 64
	DefaultFace           = "basic7x13"
)

// Config represents the optional accessbridge.yaml configuration.
type Config struct {
	Runtime RuntimeConfig `yaml:"runtime"`
	Logging LoggingConfig `yaml:"logging"`
	Text    TextConfig    `yaml:"text"`
}

// RuntimeConfig describes the native accessibility runtime.
type RuntimeConfig struct {
	Version    string `yaml:"version,omitempty"`
	TypePrefix string `yaml:"type_prefix,omitempty"`
	RootSize   int    `yaml:"root_size,omitempty"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level,omitempty"`
	Verbose bool   `yaml:"verbose,omitempty"`
}

// TextConfig contains default text metric settings.
type TextConfig struct {
	Face string `yaml:"face,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	RuntimeVersion string
	TypePrefix     string
	RootSize       int
	LogLevel       zapcore.Level
	Verbose        bool
	Face           string
}

// LoadOptional reads accessbridge.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return Parse(data)
}

// Parse decodes configuration YAML.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// Resolve loads accessbridge.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve()
}

// Resolve applies defaults and validates the configuration.
func (c *Config) Resolve() (*Resolved, error) {
	version, err := CanonicalVersion(c.Runtime.Version)
	if err != nil {
		return nil, err
	}

	prefix := strings.TrimSpace(c.Runtime.TypePrefix)
	if prefix == "" {
		prefix = DefaultTypePrefix
	}
	if strings.Contains(prefix, "+") {
		return nil, fmt.Errorf("runtime.type_prefix cannot contain '+' (got %q)", prefix)
	}

	rootSize := c.Runtime.RootSize
	if rootSize < 0 {
		return nil, fmt.Errorf("runtime.root_size must not be negative (got %d)", rootSize)
	}
	if rootSize == 0 {
		rootSize = DefaultRootSize
	}

	level := zapcore.InfoLevel
	if name := strings.TrimSpace(c.Logging.Level); name != "" {
		if err := level.UnmarshalText([]byte(name)); err != nil {
			return nil, fmt.Errorf("logging.level: %w", err)
		}
	}

	face := strings.TrimSpace(c.Text.Face)
	switch face {
	case "", "basic", DefaultFace:
		face = DefaultFace
	default:
		return nil, fmt.Errorf("text.face %q is not supported (use %q)", face, DefaultFace)
	}

	return &Resolved{
		RuntimeVersion: version,
		TypePrefix:     prefix,
		RootSize:       rootSize,
		LogLevel:       level,
		Verbose:        c.Logging.Verbose,
		Face:           face,
	}, nil
}

// CanonicalVersion validates a runtime version and returns its canonical
// semver form. A missing "v" prefix is added; empty means the default.
func CanonicalVersion(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return DefaultRuntimeVersion, nil
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", fmt.Errorf("runtime.version %q is not a valid semantic version", v)
	}
	return semver.Canonical(v), nil
}

// Logger builds a production zap logger at the resolved level.
func (r *Resolved) Logger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(r.LogLevel)
	if !r.Verbose {
		cfg.DisableStacktrace = true
	}
	return cfg.Build()
}
