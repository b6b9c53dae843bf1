// Package config provides configuration management for the leapscaffold CLI.
package config

import "time"

// Config holds all CLI configuration options.
type Config struct {
	OutputFormat    string                    `koanf:"output"`
	Verbose         bool                      `koanf:"verbose"`
	DefaultScaffold string                    `koanf:"default_scaffold"`
	Destination     string                    `koanf:"destination"`
	Indent          bool                      `koanf:"indent"`
	Vars            map[string]string         `koanf:"vars"`
	Scaffolds       map[string]ScaffoldConfig `koanf:"scaffolds"`
	Watch           WatchConfig               `koanf:"watch"`

	// ProjectRoot is the directory holding the config file, or the working
	// directory when none was found. Not read from configuration.
	ProjectRoot string `koanf:"-"`
}

// ScaffoldConfig declares a template directory on disk.
type ScaffoldConfig struct {
	Path        string `koanf:"path"`
	Description string `koanf:"description"`
}

// WatchConfig holds options for the watch command.
type WatchConfig struct {
	Debounce time.Duration `koanf:"debounce"`
}

// Default configuration values.
const (
	DefaultOutput      = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultScaffold    = "base"
	DefaultDestination = "."
	DefaultDebounce    = 300 * time.Millisecond

	// EnvPrefix prefixes environment overrides. Nested keys use a double
	// underscore: LEAPSCAFFOLD_WATCH__DEBOUNCE sets watch.debounce.
	EnvPrefix = "LEAPSCAFFOLD_"
)

// ConfigFileNames are searched in order.
var ConfigFileNames = []string{"leapscaffold.yaml", "leapscaffold.yml"}
