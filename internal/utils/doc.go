// Package utils provides general-purpose utility functions for wpa-netman.
//
// This package contains small helpers used across the application: path
// resolution relative to the settings directory, directory creation, and
// safe file closing.
//
// # Example Usage
//
// Path resolution:
//
//	absPath := utils.GetAbsolutePath("networks.d", "/opt/etc/wpa-netman")
//	// Returns: /opt/etc/wpa-netman/networks.d
//
// Directory creation:
//
//	if err := utils.EnsureDir(cfg.General.NetworksDir); err != nil {
//	    log.Fatalf("cannot create networks directory: %v", err)
//	}
//
// The utilities in this package are designed to be simple, focused, and
// reusable across different parts of the application.
package utils
