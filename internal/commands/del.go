package commands

import (
	"flag"
	"fmt"

	"github.com/maksimkurb/wpa-netman/internal/config"
	"github.com/maksimkurb/wpa-netman/internal/log"
)

func CreateDeleteCommand() *DeleteCommand {
	gc := &DeleteCommand{
		fs: flag.NewFlagSet("del", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.Dir, "d", "", "Override the networks directory from the settings file")

	return gc
}

type DeleteCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config

	Dir string

	ssid string
}

func (g *DeleteCommand) Name() string {
	return g.fs.Name()
}

func (g *DeleteCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if g.fs.NArg() < 1 {
		return fmt.Errorf("usage: del [options] <ssid>")
	}
	g.ssid = g.fs.Arg(0)

	if cfg, err := loadSettingsOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *DeleteCommand) Run() error {
	st := openStore(g.cfg, g.Dir)

	if err := st.Delete(g.ssid); err != nil {
		return err
	}

	log.Infof("Network '%s' deleted", g.ssid)
	return nil
}
