package config

import (
	"fmt"
	"path/filepath"

	"github.com/maksimkurb/wpa-netman/internal/utils"
)

type Config struct {
	// ConfigVersion is the configuration file version.
	ConfigVersion uint8 `toml:"config_version" json:"config_version"`
	// General holds general configuration.
	General *GeneralConfig `toml:"general"`
	// API configures the optional admin HTTP API for the "serve" command.
	API *APIConfig `toml:"api"`

	_absConfigFilePath string
}

type GeneralConfig struct {
	// NetworksDir is the directory holding one fragment file per network.
	NetworksDir string `toml:"networks_dir" json:"networks_dir" validate:"required"`
	// OutputPath is where the assembled wpa_supplicant configuration is published.
	OutputPath string `toml:"output_path" json:"output_path" validate:"required"`
	// HeaderFile is an optional static blob placed before the network blocks. Its contents are never inspected.
	HeaderFile string `toml:"header_file,omitempty" json:"header_file,omitempty"`
	// FooterFile is an optional static blob placed after the network blocks. Its contents are never inspected.
	FooterFile string `toml:"footer_file,omitempty" json:"footer_file,omitempty"`
	// Editor overrides the $EDITOR environment variable for the "edit" command.
	Editor string `toml:"editor,omitempty" json:"editor,omitempty"`
}

type APIConfig struct {
	// Enable allows the "serve" command to start the admin HTTP API (default: false).
	Enable bool `toml:"enable" json:"enable"`
	// ListenAddr is the API listen address (default: 127.0.0.1; IPv6 in square brackets, e.g. [::]).
	ListenAddr string `toml:"listen_addr" json:"listen_addr" validate:"ip_or_empty"`
	// ListenPort is the API listen port (default: 8710).
	ListenPort uint16 `toml:"listen_port" json:"listen_port" validate:"required,min=1"`
}

func (c *Config) GetConfigDir() string {
	return filepath.Dir(c._absConfigFilePath)
}

// GetAbsNetworksDir resolves the fragment store directory, interpreting a
// relative path against the configuration file location.
func (c *Config) GetAbsNetworksDir() string {
	return utils.GetAbsolutePath(c.General.NetworksDir, c.GetConfigDir())
}

// GetAbsOutputPath resolves the publish target path.
func (c *Config) GetAbsOutputPath() string {
	return utils.GetAbsolutePath(c.General.OutputPath, c.GetConfigDir())
}

// GetAbsHeaderFile resolves the optional header blob path. Empty means no
// header is configured.
func (c *Config) GetAbsHeaderFile() string {
	if c.General.HeaderFile == "" {
		return ""
	}
	return utils.GetAbsolutePath(c.General.HeaderFile, c.GetConfigDir())
}

// GetAbsFooterFile resolves the optional footer blob path. Empty means no
// footer is configured.
func (c *Config) GetAbsFooterFile() string {
	if c.General.FooterFile == "" {
		return ""
	}
	return utils.GetAbsolutePath(c.General.FooterFile, c.GetConfigDir())
}

// GetListenAddress returns the API listen address in host:port form.
// Bracketed IPv6 addresses pass through as-is, so "[::]" yields "[::]:8710".
func (c *Config) GetListenAddress() string {
	return fmt.Sprintf("%s:%d", c.API.ListenAddr, c.API.ListenPort)
}
