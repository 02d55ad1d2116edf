// Package config loads tool configuration from an optional TOML file at
// $XDG_CONFIG_HOME/memsweep/config.toml, layered over compiled-in
// defaults. A missing file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// Category is a named group of cleanup paths. Globs are allowed; a
// pattern that matches nothing is recorded as a skip, not an error.
type Category struct {
	Name  string   `toml:"name"`
	Paths []string `toml:"paths"`
}

// Config is the full tool configuration.
type Config struct {
	// MinProcessBytes is the resident-size threshold above which a
	// non-protected process becomes a termination candidate.
	MinProcessBytes uint64

	// ExtraProtected extends the built-in protected process names.
	// The built-in set can never be shrunk.
	ExtraProtected []string

	// GracePeriod is how long to wait after SIGTERM before re-checking
	// liveness.
	GracePeriod time.Duration

	// CommandTimeout bounds external reclamation commands (purge,
	// cache flushes).
	CommandTimeout time.Duration

	Categories []Category
}

// fileConfig is the on-disk shape. Durations are plain seconds so the
// TOML stays hand-editable.
type fileConfig struct {
	MinProcessMB          uint64     `toml:"min_process_mb"`
	ExtraProtected        []string   `toml:"extra_protected"`
	GracePeriodSeconds    int        `toml:"grace_period_seconds"`
	CommandTimeoutSeconds int        `toml:"command_timeout_seconds"`
	Categories            []Category `toml:"categories"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		MinProcessBytes: 100 * 1024 * 1024,
		GracePeriod:     3 * time.Second,
		CommandTimeout:  60 * time.Second,
		Categories: []Category{
			{
				Name: "user caches",
				Paths: []string{
					filepath.Join(home, "Library", "Caches", "*"),
					filepath.Join(home, ".cache", "*"),
				},
			},
			{
				Name: "logs",
				Paths: []string{
					filepath.Join(home, "Library", "Logs", "*"),
				},
			},
			{
				Name: "trash",
				Paths: []string{
					filepath.Join(home, ".Trash", "*"),
					filepath.Join(home, ".local", "share", "Trash", "files", "*"),
				},
			},
			{
				Name: "developer caches",
				Paths: []string{
					filepath.Join(home, "Library", "Developer", "Xcode", "DerivedData", "*"),
					filepath.Join(home, ".npm", "_cacache"),
				},
			},
		},
	}
}

// Load returns the default configuration overlaid with the user config
// file, if one exists.
func Load() (Config, error) {
	path, err := xdg.SearchConfigFile(filepath.Join("memsweep", "config.toml"))
	if err != nil {
		// No config file; defaults apply.
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from an explicit path.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var file fileConfig
	if err := toml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if file.MinProcessMB > 0 {
		cfg.MinProcessBytes = file.MinProcessMB * 1024 * 1024
	}
	if file.GracePeriodSeconds > 0 {
		cfg.GracePeriod = time.Duration(file.GracePeriodSeconds) * time.Second
	}
	if file.CommandTimeoutSeconds > 0 {
		cfg.CommandTimeout = time.Duration(file.CommandTimeoutSeconds) * time.Second
	}
	if len(file.ExtraProtected) > 0 {
		cfg.ExtraProtected = file.ExtraProtected
	}
	if len(file.Categories) > 0 {
		cfg.Categories = file.Categories
	}

	return cfg, nil
}
