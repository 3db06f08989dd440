// Package log provides simple leveled logging for wpa-netman.
//
// This package implements a lightweight logging system with colored output
// and support for different log levels: DEBUG, INFO, WARN, and ERROR.
// It provides global logging functions that can be used throughout the
// application.
//
// # Log Levels
//
//   - DEBUG: Detailed diagnostic information (only shown in verbose mode)
//   - INFO: General informational messages
//   - WARN: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures and exceptions
//
// # Example Usage
//
// Basic logging:
//
//	log.Infof("Wrote fragment %q", ssid)
//	log.Warnf("Fragment file %s is malformed, passing through as-is", path)
//	log.Errorf("Failed to publish: %v", err)
//
// Enabling verbose mode for debug output:
//
//	log.SetVerbose(true)
//	log.Debugf("Scanner state: %+v", state)
//
// Commands that print a document to stdout redirect logs to stderr first:
//
//	log.SetForceStdErr(true)
//
// The package uses global state for simplicity; all operations are safe for
// the single-threaded CLI use this tool has.
package log
