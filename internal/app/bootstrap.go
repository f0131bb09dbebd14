package app

import (
	"fmt"
	"os"
	"slices"

	"adaptctl/internal/catalog"
	"adaptctl/internal/cli"
	"adaptctl/internal/config"
	"adaptctl/pkg/logging"
)

// Application is the main application structure that bootstraps adaptctl
type Application struct {
	config   *Config
	catalog  *catalog.Catalog
	printer  *cli.Printer
	services *Services
}

// NewApplication loads configuration and catalogs. The catalogs are not
// registered with a manager until Services is called.
func NewApplication(cfg *Config) (*Application, error) {
	logOutput := cfg.LogOutput
	if logOutput == nil {
		logOutput = os.Stderr
	}

	// Configure logging based on debug flag until the configured level is known
	appLogLevel := logging.LevelInfo
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}
	logging.InitForCLI(appLogLevel, logOutput)

	var adaptctlCfg config.AdaptctlConfig
	var err error

	if cfg.ConfigPath != "" {
		adaptctlCfg, err = config.LoadConfigFromPath(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load adaptctl configuration from path: %s", cfg.ConfigPath)
			return nil, fmt.Errorf("failed to load adaptctl configuration from path %s: %w", cfg.ConfigPath, err)
		}
		logging.Debug("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
	} else {
		adaptctlCfg, err = config.LoadConfig()
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load adaptctl configuration")
			return nil, fmt.Errorf("failed to load adaptctl configuration: %w", err)
		}
		logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	}
	cfg.AdaptctlConfig = &adaptctlCfg

	outputName := cfg.Output
	if outputName == "" {
		outputName = adaptctlCfg.Output
	}
	format, err := cli.ParseOutputFormat(outputName)
	if err != nil {
		return nil, err
	}

	if !cfg.Debug {
		// Already validated by the config loader
		appLogLevel, _ = logging.ParseLevel(adaptctlCfg.LogLevel)
	}
	// JSON results come with JSON logs
	if format == cli.OutputFormatJSON {
		logging.InitForJSON(appLogLevel, logOutput)
	} else {
		logging.InitForCLI(appLogLevel, logOutput)
	}

	paths := append(slices.Clone(adaptctlCfg.Catalogs), cfg.Catalogs...)
	cat, err := catalog.LoadAll(paths...)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to load catalogs")
		return nil, fmt.Errorf("failed to load catalogs: %w", err)
	}
	logging.Debug("Bootstrap", "Loaded %d catalog files", len(cat.Sources))

	return &Application{
		config:  cfg,
		catalog: cat,
		printer: cli.NewPrinter(cli.PrinterOptions{Format: format, Quiet: cfg.Quiet, Out: cfg.Out}),
	}, nil
}

// Config returns the application configuration.
func (a *Application) Config() *Config {
	return a.config
}

// Catalog returns the merged catalog.
func (a *Application) Catalog() *catalog.Catalog {
	return a.catalog
}

// Printer returns the printer for command results.
func (a *Application) Printer() *cli.Printer {
	return a.printer
}

// Symbols returns the symbol table catalogs are resolved against.
func (a *Application) Symbols() *catalog.Symbols {
	if a.config.Symbols != nil {
		return a.config.Symbols
	}
	return catalog.DefaultSymbols()
}

// Services builds the catalog into a manager on first call.
func (a *Application) Services() (*Services, error) {
	if a.services != nil {
		return a.services, nil
	}

	services, err := InitializeServices(a.catalog, a.Symbols())
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}
	a.services = services
	return services, nil
}
