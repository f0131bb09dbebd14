package app

import (
	"io"

	"adaptctl/internal/catalog"
	"adaptctl/internal/config"
)

// Config holds the application configuration
type Config struct {
	// Debug forces debug logging regardless of the configured level
	Debug bool

	// ConfigPath, when set, replaces the layered configuration with
	// config.yaml from this directory
	ConfigPath string

	// Catalogs are loaded after the configured catalogs
	Catalogs []string

	// Output overrides the configured output format when set
	Output string

	// Quiet suppresses informational messages around results
	Quiet bool

	// LogOutput receives log lines; defaults to os.Stderr
	LogOutput io.Writer

	// Out receives command results; defaults to os.Stdout
	Out io.Writer

	// Symbols resolves catalog names; defaults to catalog.DefaultSymbols
	Symbols *catalog.Symbols

	// Loaded configuration, set by NewApplication
	AdaptctlConfig *config.AdaptctlConfig
}

// NewConfig creates a new application configuration
func NewConfig(debug bool, configPath string, catalogs []string, output string) *Config {
	return &Config{
		Debug:      debug,
		ConfigPath: configPath,
		Catalogs:   catalogs,
		Output:     output,
	}
}
