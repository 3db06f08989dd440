package commands

import (
	"flag"
	"fmt"

	"github.com/maksimkurb/wpa-netman/internal/assembly"
	"github.com/maksimkurb/wpa-netman/internal/config"
	"github.com/maksimkurb/wpa-netman/internal/log"
)

func CreateDiffCommand() *DiffCommand {
	gc := &DiffCommand{
		fs: flag.NewFlagSet("diff", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.Dir, "d", "", "Override the networks directory from the settings file")

	return gc
}

type DiffCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config

	Dir string
}

func (g *DiffCommand) Name() string {
	return g.fs.Name()
}

func (g *DiffCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	// The diff goes to stdout, logs must not mix into it.
	log.SetForceStdErr(true)

	if cfg, err := loadSettingsOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *DiffCommand) Run() error {
	st := openStore(g.cfg, g.Dir)

	generated, err := assembly.BuildDocument(st, g.cfg.GetAbsHeaderFile(), g.cfg.GetAbsFooterFile())
	if err != nil {
		return err
	}

	target := g.cfg.GetAbsOutputPath()
	current, err := assembly.ReadTarget(target)
	if err != nil {
		return err
	}

	text, err := assembly.Diff(current, generated)
	if err != nil {
		return err
	}

	if text == "" {
		log.Infof("%s is up to date", target)
		return nil
	}

	fmt.Print(text)
	return fmt.Errorf("%s is out of date", target)
}
