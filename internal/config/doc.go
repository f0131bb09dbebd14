// Package config provides configuration management for adaptctl.
//
// Configuration is loaded from several YAML files and merged in order, later
// sources overriding earlier ones:
//
//  1. Default configuration (built in)
//  2. User configuration (~/.config/adaptctl/config.yaml)
//  3. Project configuration (./.adaptctl/config.yaml)
//
// LoadConfigFromPath skips the user and project layers and reads a single
// directory instead.
//
// # Configuration Structure
//
//	catalogs:
//	  - catalogs/plugs.yaml     # relative to this file
//	  - /etc/adaptctl/catalogs  # every *.yaml and *.yml inside
//	logLevel: debug
//	output: json
//	routeDepth: 4
//
// Catalog lists accumulate across layers. logLevel, output and routeDepth are
// replaced by the last layer that sets them.
package config
