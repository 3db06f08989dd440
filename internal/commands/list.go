package commands

import (
	"flag"
	"fmt"

	"github.com/maksimkurb/wpa-netman/internal/config"
	"github.com/maksimkurb/wpa-netman/internal/log"
)

func CreateListCommand() *ListCommand {
	gc := &ListCommand{
		fs: flag.NewFlagSet("list", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.Dir, "d", "", "Override the networks directory from the settings file")

	return gc
}

type ListCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config

	Dir string
}

func (g *ListCommand) Name() string {
	return g.fs.Name()
}

func (g *ListCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	log.SetForceStdErr(true)

	if cfg, err := loadSettingsOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *ListCommand) Run() error {
	ssids, err := openStore(g.cfg, g.Dir).List()
	if err != nil {
		return err
	}

	for _, ssid := range ssids {
		fmt.Println(ssid)
	}

	return nil
}
