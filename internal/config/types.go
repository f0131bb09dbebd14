package config

import (
	"fmt"
	"slices"

	"adaptctl/pkg/adaptation"
	"adaptctl/pkg/logging"
)

// AdaptctlConfig is the top-level configuration structure for adaptctl.
type AdaptctlConfig struct {
	// Catalogs lists catalog files or directories, loaded in order. Relative
	// paths are resolved against the directory of the config file naming them.
	Catalogs []string `yaml:"catalogs,omitempty"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"logLevel,omitempty"`
	// Output is the default output format: table, json or yaml.
	Output string `yaml:"output,omitempty"`
	// RouteDepth bounds route planning; 0 selects the built-in default.
	RouteDepth int `yaml:"routeDepth,omitempty"`
}

// Output formats understood by the CLI.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// OutputFormats lists the accepted Output values.
var OutputFormats = []string{OutputTable, OutputJSON, OutputYAML}

// Validate checks the configuration values.
func (c AdaptctlConfig) Validate() error {
	var errs adaptation.ValidationErrors

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, adaptation.ValidationError{Field: "logLevel", Message: err.Error()})
	}
	if !slices.Contains(OutputFormats, c.Output) {
		errs = append(errs, adaptation.ValidationError{
			Field:   "output",
			Message: fmt.Sprintf("unsupported output format %q (expected one of %v)", c.Output, OutputFormats),
		})
	}
	if c.RouteDepth < 0 {
		errs = append(errs, adaptation.ValidationError{Field: "routeDepth", Message: "must not be negative"})
	}
	for i, path := range c.Catalogs {
		if path == "" {
			errs = append(errs, adaptation.ValidationError{Field: fmt.Sprintf("catalogs[%d]", i), Message: "path is empty"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
