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

func CreateMigrateCommand() *MigrateCommand {
	gc := &MigrateCommand{
		fs: flag.NewFlagSet("migrate", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.Dir, "d", "", "Override the networks directory from the settings file")
	gc.fs.StringVar(&gc.Source, "c", "", "Legacy configuration file to import (default: the output path)")
	gc.fs.BoolVar(&gc.Force, "f", false, "Overwrite fragments that already exist")

	return gc
}

type MigrateCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config

	Dir    string
	Source string
	Force  bool
}

func (g *MigrateCommand) Name() string {
	return g.fs.Name()
}

func (g *MigrateCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadSettingsOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	if g.Source == "" {
		g.Source = g.cfg.GetAbsOutputPath()
	}

	return nil
}

func (g *MigrateCommand) Run() error {
	fragments, err := fragment.Extract(g.Source)
	if err != nil {
		return err
	}

	if len(fragments) == 0 {
		log.Warnf("No network blocks found in %s", g.Source)
		return nil
	}

	st := openStore(g.cfg, g.Dir)
	if err := utils.EnsureDir(st.Dir); err != nil {
		return errors.NewIOError(fmt.Sprintf("failed to create networks directory '%s'", st.Dir), err)
	}

	imported := 0
	skipped := 0
	for _, frag := range fragments {
		if err := st.Write(frag, g.Force); err != nil {
			if errors.IsCode(err, errors.ErrCodeAlreadyExists) {
				log.Warnf("Network '%s' already exists, skipping (use -f to overwrite)", frag.SSID)
				skipped++
				continue
			}
			return err
		}

		log.Debugf("Imported network '%s'", frag.SSID)
		imported++
	}

	log.Infof("Migration from %s complete: %d imported, %d skipped", g.Source, imported, skipped)
	return nil
}
