// Package config handles settings file parsing and validation for wpa-netman.
//
// This package reads the TOML settings file and provides strongly-typed
// structures for accessing configuration data. A missing settings file is
// not an error: the built-in defaults apply, so a fresh install works
// without writing any configuration first.
//
// # Configuration Structure
//
// The settings file defines:
//   - General settings (networks directory, publish target, optional
//     header/footer blobs, editor override)
//   - Admin HTTP API settings (enable flag, listen address and port)
//
// # Supported Features
//
//   - TOML format with automatic type conversion
//   - Built-in defaults for every omitted field
//   - Relative paths resolved against the settings file location
//   - Aggregated validation errors with TOML field paths
//
// # Example Usage
//
// Loading and validating the settings file:
//
//	cfg, err := config.LoadConfig(config.DefaultConfigPath)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.ValidateConfig(); err != nil {
//	    log.Fatal(err)
//	}
//
// Accessing resolved paths:
//
//	fmt.Printf("fragments: %s\n", cfg.GetAbsNetworksDir())
//	fmt.Printf("target:    %s\n", cfg.GetAbsOutputPath())
//
// Validation reports all problems at once with their TOML field paths,
// e.g. "general.output_path: output_path must not be located inside
// networks_dir".
package config
