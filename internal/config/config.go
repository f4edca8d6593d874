// ABOUTME: Configuration for extraction options, read from JSON or YAML
// ABOUTME: Resolves the XDG config path, applies defaults, and validates settings

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/harper/feedparse/internal/parse"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config stores feedparse configuration.
type Config struct {
	// DefaultLanguage is used when a feed declares no language.
	DefaultLanguage string `json:"default_language,omitempty" yaml:"default_language,omitempty"`

	// DateTemplate is a Go reference-time layout for normalized dates.
	DateTemplate string `json:"date_template,omitempty" yaml:"date_template,omitempty"`

	RemoveStyles  bool `json:"remove_styles" yaml:"remove_styles"`
	RemoveScripts bool `json:"remove_scripts" yaml:"remove_scripts"`

	// Workers > 1 builds items concurrently.
	Workers int `json:"workers,omitempty" yaml:"workers,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level,omitempty" yaml:"log_level,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DefaultLanguage: DefaultLanguage,
		DateTemplate:    DefaultDateTemplate,
		RemoveStyles:    true,
		RemoveScripts:   true,
		Workers:         DefaultWorkers,
		LogLevel:        DefaultLogLevel,
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "feedparse", "config.json")
}

// Load reads config from path, or from GetConfigPath when path is empty.
// A missing file yields the defaults. Values in the file override defaults
// field by field.
func Load(path string) (*Config, error) {
	if path == "" {
		path = GetConfigPath()
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes config to path in the format its extension names.
func (c *Config) Save(path string) error {
	if path == "" {
		path = GetConfigPath()
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), DefaultDirPerms); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, DefaultFilePerms); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Validate checks every field and reports the first problem.
func (c *Config) Validate() error {
	if _, err := language.Parse(c.DefaultLanguage); err != nil {
		return fmt.Errorf("%w: default_language %q: %v", ErrInvalidConfig, c.DefaultLanguage, err)
	}
	if strings.TrimSpace(c.DateTemplate) == "" {
		return fmt.Errorf("%w: date_template is empty", ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// Language returns DefaultLanguage in canonical BCP 47 form, falling back
// to the raw value when it doesn't parse.
func (c *Config) Language() string {
	tag, err := language.Parse(c.DefaultLanguage)
	if err != nil {
		return c.DefaultLanguage
	}
	return tag.String()
}

// Level returns the configured log level, Info when unset or unknown.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Options converts the config into parser options that log to logger.
func (c *Config) Options(logger *log.Logger) parse.Options {
	return parse.Options{
		DefaultLanguage: c.Language(),
		DateTemplate:    c.DateTemplate,
		RemoveStyles:    c.RemoveStyles,
		RemoveScripts:   c.RemoveScripts,
		Workers:         c.Workers,
		Logger:          logger,
	}
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
