package commands

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/maksimkurb/wpa-netman/internal/assembly"
	"github.com/maksimkurb/wpa-netman/internal/config"
	"github.com/maksimkurb/wpa-netman/internal/log"
)

func CreateSelfCheckCommand() *SelfCheckCommand {
	gc := &SelfCheckCommand{
		fs: flag.NewFlagSet("self-check", flag.ExitOnError),
	}
	return gc
}

type SelfCheckCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config

	hasFailures bool
}

func (g *SelfCheckCommand) Name() string {
	return g.fs.Name()
}

func (g *SelfCheckCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadSettingsOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *SelfCheckCommand) Run() error {
	log.Infof("Running self-check...")
	log.Infof("---------------- Configuration START -----------------")

	if cfg, err := g.cfg.SerializeConfig(); err != nil {
		log.Errorf("Failed to serialize settings: %v", err)
		return err
	} else {
		os.Stdout.Write(cfg.Bytes())
	}

	log.Infof("----------------- Configuration END ------------------")

	g.checkNetworksDir()
	g.checkFragments()
	g.checkOutputPath()

	if g.hasFailures {
		log.Errorf("Self-check completed with failures")
		return fmt.Errorf("self-check failed")
	}

	log.Infof("Self-check completed successfully")
	return nil
}

func (g *SelfCheckCommand) fail(format string, args ...interface{}) {
	log.Errorf(format, args...)
	g.hasFailures = true
}

// checkNetworksDir verifies the fragment store directory is usable. A
// directory that does not exist yet is fine; add creates it.
func (g *SelfCheckCommand) checkNetworksDir() {
	dir := g.cfg.GetAbsNetworksDir()

	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		log.Warnf("Networks directory %s does not exist yet (created on first add)", dir)
		return
	}
	if err != nil {
		g.fail("Failed to check networks directory %s: %v", dir, err)
		return
	}
	if !info.IsDir() {
		g.fail("Networks directory %s is not a directory", dir)
		return
	}

	if err := unix.Access(dir, unix.W_OK); err != nil {
		g.fail("Networks directory %s is not writable: %v", dir, err)
		return
	}

	log.Infof("Networks directory %s is writable", dir)
}

// checkFragments parses every stored fragment and lists the ones that do
// not round-trip.
func (g *SelfCheckCommand) checkFragments() {
	st := openStore(g.cfg, "")

	ssids, err := st.List()
	if err != nil {
		log.Warnf("Skipping fragment check: %v", err)
		return
	}

	malformed := 0
	for _, ssid := range ssids {
		if _, err := st.Read(ssid); err != nil {
			g.fail("Fragment '%s' does not parse: %v", ssid, err)
			malformed++
		}
	}

	if malformed == 0 {
		log.Infof("All %d fragment(s) parse correctly", len(ssids))
	}
}

// checkOutputPath verifies the publish target is writable and reports
// whether the published document is current.
func (g *SelfCheckCommand) checkOutputPath() {
	target := g.cfg.GetAbsOutputPath()

	if err := unix.Access(filepath.Dir(target), unix.W_OK); err != nil {
		g.fail("Output directory %s is not writable: %v", filepath.Dir(target), err)
		return
	}
	log.Infof("Output path %s is writable", target)

	text, err := assembly.BuildDocument(openStore(g.cfg, ""), g.cfg.GetAbsHeaderFile(), g.cfg.GetAbsFooterFile())
	if err != nil {
		log.Warnf("Skipping up-to-date check: %v", err)
		return
	}

	upToDate, err := assembly.UpToDate(text, target)
	if err != nil {
		g.fail("Failed to compare output file: %v", err)
		return
	}

	if upToDate {
		log.Infof("Published configuration is up to date")
	} else {
		log.Warnf("Published configuration is out of date, run 'wpa-netman make'")
	}
}
