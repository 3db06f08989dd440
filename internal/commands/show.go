package commands

import (
	"flag"
	"fmt"

	"github.com/maksimkurb/wpa-netman/internal/config"
	"github.com/maksimkurb/wpa-netman/internal/log"
)

func CreateShowCommand() *ShowCommand {
	gc := &ShowCommand{
		fs: flag.NewFlagSet("show", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.Dir, "d", "", "Override the networks directory from the settings file")

	return gc
}

type ShowCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config

	Dir string

	ssid string
}

func (g *ShowCommand) Name() string {
	return g.fs.Name()
}

func (g *ShowCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if g.fs.NArg() < 1 {
		return fmt.Errorf("usage: show [options] <ssid>")
	}
	g.ssid = g.fs.Arg(0)

	// The fragment goes to stdout, logs must not mix into it.
	log.SetForceStdErr(true)

	if cfg, err := loadSettingsOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *ShowCommand) Run() error {
	frag, err := openStore(g.cfg, g.Dir).Read(g.ssid)
	if err != nil {
		return err
	}

	fmt.Println(frag.Serialize())
	return nil
}
