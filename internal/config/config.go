// Package config loads the quitcheck user configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/quitcheck/internal/logger"
)

// EnvPath overrides the default configuration file location.
const EnvPath = "QUITCHECK_CONFIG"

// Config holds user preferences.
type Config struct {
	// Variant is the questionnaire opened by default.
	Variant string `yaml:"variant"`

	// AdvanceDelay is the pause between answering and showing the next
	// question. Zero advances at once.
	AdvanceDelay time.Duration `yaml:"advance_delay"`

	// AnalyzeDelay is how long the analyzing screen is shown.
	AnalyzeDelay time.Duration `yaml:"analyze_delay"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// LogFile, when set, receives the application log.
	LogFile string `yaml:"log_file"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Variant:      "survival",
		AdvanceDelay: 200 * time.Millisecond,
		AnalyzeDelay: 1500 * time.Millisecond,
		LogLevel:     "info",
	}
}

// DefaultPath returns the configuration file location.
// Priority: QUITCHECK_CONFIG env var > XDG_CONFIG_HOME > ~/.config.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "quitcheck", "config.yaml"), nil
}

// Load reads the file at path over the defaults. A missing file is not an
// error. An empty path resolves to DefaultPath.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Durations are written as strings ("200ms").
	type yamlConfig struct {
		Variant      string `yaml:"variant"`
		AdvanceDelay string `yaml:"advance_delay"`
		AnalyzeDelay string `yaml:"analyze_delay"`
		LogLevel     string `yaml:"log_level"`
		LogFile      string `yaml:"log_file"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yamlCfg.Variant != "" {
		cfg.Variant = yamlCfg.Variant
	}
	if yamlCfg.AdvanceDelay != "" {
		d, err := time.ParseDuration(yamlCfg.AdvanceDelay)
		if err != nil {
			return nil, fmt.Errorf("invalid advance_delay %q: %w", yamlCfg.AdvanceDelay, err)
		}
		cfg.AdvanceDelay = d
	}
	if yamlCfg.AnalyzeDelay != "" {
		d, err := time.ParseDuration(yamlCfg.AnalyzeDelay)
		if err != nil {
			return nil, fmt.Errorf("invalid analyze_delay %q: %w", yamlCfg.AnalyzeDelay, err)
		}
		cfg.AnalyzeDelay = d
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.LogFile != "" {
		cfg.LogFile = yamlCfg.LogFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.AdvanceDelay < 0 {
		return fmt.Errorf("advance_delay must be >= 0, got %s", c.AdvanceDelay)
	}
	if c.AnalyzeDelay < 0 {
		return fmt.Errorf("analyze_delay must be >= 0, got %s", c.AnalyzeDelay)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Logger opens the logger described by the configuration. Without a log
// file it returns a no-op logger so that nothing is written over the
// terminal UI. The returned close function is never nil.
func (c *Config) Logger() (logger.Logger, func() error, error) {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if c.LogFile == "" {
		return logger.Nop(), func() error { return nil }, nil
	}
	fl, err := logger.NewFileLogger(c.LogFile, level)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return fl, fl.Close, nil
}
