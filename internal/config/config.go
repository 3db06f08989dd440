package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/maksimkurb/wpa-netman/internal/errors"
	"github.com/maksimkurb/wpa-netman/internal/log"
)

const (
	// CurrentConfigVersion is the configuration schema version this build writes.
	CurrentConfigVersion = 1

	// DefaultConfigPath is the default settings file location.
	DefaultConfigPath = "/opt/etc/wpa-netman/wpa-netman.conf"

	DefaultNetworksDir = "/opt/etc/wpa-netman/networks.d"
	DefaultOutputPath  = "/opt/etc/wpa_supplicant.conf"
	DefaultListenAddr  = "127.0.0.1"
	DefaultListenPort  = 8710
)

// Default returns the built-in settings used when no configuration file
// exists.
func Default() *Config {
	return &Config{
		ConfigVersion: CurrentConfigVersion,
		General: &GeneralConfig{
			NetworksDir: DefaultNetworksDir,
			OutputPath:  DefaultOutputPath,
		},
		API: &APIConfig{
			Enable:     false,
			ListenAddr: DefaultListenAddr,
			ListenPort: DefaultListenPort,
		},
	}
}

// LoadConfig reads the TOML settings file at configPath. A missing file is
// not an error: the built-in defaults are returned instead, so the tool
// works out of the box. Fields absent from the file are filled with their
// defaults after parsing.
func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, errors.NewConfigError("failed to get absolute config path", err)
		} else {
			configFile = path
		}
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		log.Debugf("Configuration file not found, using defaults: %s", configFile)
		config := Default()
		config._absConfigFilePath = configFile
		return config, nil
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to read config file '%s'", configFile), err)
	}

	var config Config
	if err := toml.Unmarshal(content, &config); err != nil {
		var derr *toml.DecodeError
		if stderrors.As(err, &derr) {
			log.Errorf(derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return nil, errors.NewConfigError(fmt.Sprintf("failed to parse config file '%s'", configFile), err)
		}
		return nil, errors.NewConfigError(fmt.Sprintf("failed to parse config file '%s'", configFile), err)
	}

	config._absConfigFilePath = configFile
	config.applyDefaults()

	log.Debugf("Configuration file path: %s", configFile)
	log.Debugf("Networks directory: %s", config.GetAbsNetworksDir())

	return &config, nil
}

// applyDefaults fills unset fields with their built-in defaults, so a
// minimal settings file only needs to name what it changes.
func (c *Config) applyDefaults() {
	if c.ConfigVersion == 0 {
		c.ConfigVersion = CurrentConfigVersion
	}
	if c.General == nil {
		c.General = &GeneralConfig{}
	}
	if c.General.NetworksDir == "" {
		c.General.NetworksDir = DefaultNetworksDir
	}
	if c.General.OutputPath == "" {
		c.General.OutputPath = DefaultOutputPath
	}
	if c.API == nil {
		c.API = &APIConfig{}
	}
	if c.API.ListenAddr == "" {
		c.API.ListenAddr = DefaultListenAddr
	}
	if c.API.ListenPort == 0 {
		c.API.ListenPort = DefaultListenPort
	}
}

// SerializeConfig renders the effective settings as indented TOML.
func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}
