package commands

import (
	"flag"
	"fmt"

	"github.com/maksimkurb/wpa-netman/internal/config"
	"github.com/maksimkurb/wpa-netman/internal/errors"
	"github.com/maksimkurb/wpa-netman/internal/fragment"
	"github.com/maksimkurb/wpa-netman/internal/log"
	"github.com/maksimkurb/wpa-netman/internal/utils"
)

func CreateAddCommand() *AddCommand {
	gc := &AddCommand{
		fs: flag.NewFlagSet("add", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.Dir, "d", "", "Override the networks directory from the settings file")
	gc.fs.BoolVar(&gc.RawPSK, "p", false, "Treat the passphrase argument as a raw 64-digit hex PSK")
	gc.fs.BoolVar(&gc.Force, "f", false, "Overwrite an existing fragment")
	gc.fs.BoolVar(&gc.Open, "o", false, "Open network (key_mgmt=NONE, no passphrase)")

	return gc
}

type AddCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config

	Dir    string
	RawPSK bool
	Force  bool
	Open   bool

	ssid       string
	passphrase string
}

func (g *AddCommand) Name() string {
	return g.fs.Name()
}

func (g *AddCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if g.fs.NArg() < 1 {
		return fmt.Errorf("usage: add [options] <ssid> [passphrase]")
	}
	g.ssid = g.fs.Arg(0)
	g.passphrase = g.fs.Arg(1)

	if g.Open && g.RawPSK {
		return fmt.Errorf("-o and -p can not be used together")
	}
	if g.Open && g.passphrase != "" {
		return fmt.Errorf("an open network takes no passphrase")
	}
	if !g.Open && g.passphrase == "" {
		return fmt.Errorf("a passphrase is required unless -o is given")
	}

	if cfg, err := loadSettingsOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *AddCommand) Run() error {
	frag := fragment.New(g.ssid)

	// Credential validation happens before anything touches the disk.
	switch {
	case g.Open:
		frag.Options[fragment.KeyMgmt] = fragment.KeyMgmtNone
	case g.RawPSK:
		if err := fragment.ValidatePSK(g.passphrase); err != nil {
			return err
		}
		frag.Options[fragment.KeyPSK] = g.passphrase
	default:
		if err := fragment.ValidatePassphrase(g.passphrase); err != nil {
			return err
		}
		frag.Options[fragment.KeyPSK] = `"` + g.passphrase + `"`
	}

	st := openStore(g.cfg, g.Dir)
	if err := utils.EnsureDir(st.Dir); err != nil {
		return errors.NewIOError(fmt.Sprintf("failed to create networks directory '%s'", st.Dir), err)
	}

	if err := st.Write(frag, g.Force); err != nil {
		return err
	}

	log.Infof("Network '%s' added (%s)", g.ssid, st.FragmentPath(g.ssid))
	return nil
}
