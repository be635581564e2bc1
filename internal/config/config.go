// Package config holds the explicit configuration shared by the alias store,
// the validator and the interactive prompts.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lazyasf/lazyasf/internal/core/domain/alias"
	"gopkg.in/yaml.v3"
)

const (
	rcFilename   = ".zshrc"
	backupSuffix = ".bak"
)

// Prompts are the messages shown by the interactive add flow.
type Prompts struct {
	FullCommand string `yaml:"full_command"`
	ShortAlias  string `yaml:"short_alias"`
	Confirm     string `yaml:"confirm"`
}

// Config is passed to the store, the validator and the prompt layer.
// RcPath and BackupPath are not read from the config file.
type Config struct {
	RcPath       string  `yaml:"-"`
	BackupPath   string  `yaml:"-"`
	AliasPattern string  `yaml:"alias_pattern"`
	Prompts      Prompts `yaml:"prompts"`
}

// DefaultPrompts returns the built-in prompt texts.
func DefaultPrompts() Prompts {
	return Prompts{
		FullCommand: "Enter the command you want to shorten (e.g. git init):",
		ShortAlias:  "Which alias should it get? (e.g. gii):",
		Confirm:     "Add this alias?",
	}
}

// Default returns the configuration for homeDir: ~/.zshrc and its ~/.zshrc.bak sibling.
func Default(homeDir string) *Config {
	rc := filepath.Join(homeDir, rcFilename)
	return &Config{
		RcPath:       rc,
		BackupPath:   rc + backupSuffix,
		AliasPattern: alias.DefaultNamePattern,
		Prompts:      DefaultPrompts(),
	}
}

// Path returns the default config file path ($XDG_CONFIG_HOME/lazyasf/config.yaml).
func Path() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "lazyasf", "config.yaml")
	}
	return filepath.Join(dir, "lazyasf", "config.yaml")
}

// Load builds the default configuration for the current user and overlays the
// YAML file at path. A missing or empty file leaves the defaults untouched.
func Load(path string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return LoadFrom(home, path)
}

// LoadFrom is Load with an explicit home directory.
func LoadFrom(homeDir, path string) (*Config, error) {
	cfg := Default(homeDir)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if len(data) == 0 {
		return cfg, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	// Blank values in the file fall back to the defaults.
	defaults := DefaultPrompts()
	if cfg.AliasPattern == "" {
		cfg.AliasPattern = alias.DefaultNamePattern
	}
	if cfg.Prompts.FullCommand == "" {
		cfg.Prompts.FullCommand = defaults.FullCommand
	}
	if cfg.Prompts.ShortAlias == "" {
		cfg.Prompts.ShortAlias = defaults.ShortAlias
	}
	if cfg.Prompts.Confirm == "" {
		cfg.Prompts.Confirm = defaults.Confirm
	}
	return cfg, nil
}

// Validator compiles the configured alias name pattern.
func (c *Config) Validator() (*alias.Validator, error) {
	return alias.NewValidator(c.AliasPattern)
}
