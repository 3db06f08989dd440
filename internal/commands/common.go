package commands

import (
	"fmt"

	"github.com/maksimkurb/wpa-netman/internal/config"
	"github.com/maksimkurb/wpa-netman/internal/store"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	Verbose    bool

	// Build information passed down from main for the version command.
	Version string
	Commit  string
	Date    string
}

// loadSettingsOrFail loads the settings file and validates it. A missing
// file is fine and yields the built-in defaults.
func loadSettingsOrFail(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %v", err)
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("settings validation failed: %v", err)
	}

	return cfg, nil
}

// openStore returns the fragment store for a command, honoring the -d
// override. The override is taken verbatim (relative to the working
// directory); the settings value resolves relative to the settings file.
func openStore(cfg *config.Config, dirOverride string) *store.Store {
	if dirOverride != "" {
		return store.New(dirOverride)
	}
	return store.New(cfg.GetAbsNetworksDir())
}
