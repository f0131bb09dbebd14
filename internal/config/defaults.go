package config

// GetDefaultConfig returns the built-in configuration: no catalogs, warn
// logging and table output.
func GetDefaultConfig() AdaptctlConfig {
	return AdaptctlConfig{
		Catalogs: []string{},
		LogLevel: "warn",
		Output:   OutputTable,
	}
}
