package commands

import (
	"flag"
	"fmt"

	"github.com/maksimkurb/wpa-netman/internal/assembly"
	"github.com/maksimkurb/wpa-netman/internal/config"
	"github.com/maksimkurb/wpa-netman/internal/errors"
	"github.com/maksimkurb/wpa-netman/internal/log"
	"github.com/maksimkurb/wpa-netman/internal/utils"
)

func CreateMakeCommand() *MakeCommand {
	gc := &MakeCommand{
		fs: flag.NewFlagSet("make", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.Dir, "d", "", "Override the networks directory from the settings file")
	gc.fs.BoolVar(&gc.Print, "p", false, "Print the assembled document to stdout instead of publishing")

	return gc
}

type MakeCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config

	Dir   string
	Print bool
}

func (g *MakeCommand) Name() string {
	return g.fs.Name()
}

func (g *MakeCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if g.Print {
		// The document goes to stdout, logs must not mix into it.
		log.SetForceStdErr(true)
	}

	if cfg, err := loadSettingsOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *MakeCommand) Run() error {
	st := openStore(g.cfg, g.Dir)

	// A store that was never written to is just an empty document, not a
	// failure, so the directory is created on the fly.
	if err := utils.EnsureDir(st.Dir); err != nil {
		return errors.NewIOError(fmt.Sprintf("failed to create networks directory '%s'", st.Dir), err)
	}

	text, err := assembly.BuildDocument(st, g.cfg.GetAbsHeaderFile(), g.cfg.GetAbsFooterFile())
	if err != nil {
		return err
	}

	if g.Print {
		fmt.Print(text)
		return nil
	}

	target := g.cfg.GetAbsOutputPath()
	if err := assembly.Publish(text, target); err != nil {
		return err
	}

	log.Infof("Configuration published to %s (%d bytes)", target, len(text))
	return nil
}
