package commands

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/maksimkurb/wpa-netman/internal/config"
	"github.com/maksimkurb/wpa-netman/internal/errors"
	"github.com/maksimkurb/wpa-netman/internal/fragment"
	"github.com/maksimkurb/wpa-netman/internal/log"
	"github.com/maksimkurb/wpa-netman/internal/utils"
)

func CreateEditCommand() *EditCommand {
	gc := &EditCommand{
		fs: flag.NewFlagSet("edit", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.Dir, "d", "", "Override the networks directory from the settings file")
	gc.fs.BoolVar(&gc.Create, "c", false, "Create a minimal fragment first if the network does not exist")

	return gc
}

type EditCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config

	Dir    string
	Create bool

	ssid string
}

func (g *EditCommand) Name() string {
	return g.fs.Name()
}

func (g *EditCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if g.fs.NArg() < 1 {
		return fmt.Errorf("usage: edit [options] <ssid>")
	}
	g.ssid = g.fs.Arg(0)

	if cfg, err := loadSettingsOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *EditCommand) Run() error {
	st := openStore(g.cfg, g.Dir)
	path := st.FragmentPath(g.ssid)

	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return errors.NewIOError(fmt.Sprintf("failed to check fragment '%s'", path), err)
		}
		if !g.Create {
			return errors.NewNotFoundError(
				fmt.Sprintf("network '%s' not found (use -c to create it)", g.ssid))
		}

		if err := utils.EnsureDir(st.Dir); err != nil {
			return errors.NewIOError(fmt.Sprintf("failed to create networks directory '%s'", st.Dir), err)
		}
		if err := st.Write(fragment.New(g.ssid), false); err != nil {
			return err
		}
		log.Infof("Created minimal fragment for '%s'", g.ssid)
	}

	editor, err := resolveEditor(g.cfg)
	if err != nil {
		return err
	}

	if err := runEditor(editor, path); err != nil {
		return err
	}

	// Re-parse after the editor exits. A malformed result is reported but
	// the edited bytes stay on disk; the merge passes them through anyway.
	if _, err := st.Read(g.ssid); err != nil {
		if errors.IsCode(err, errors.ErrCodeMalformedFragment) {
			log.Warnf("The edited file was kept as saved; edit it again or delete the network")
		}
		return err
	}

	log.Infof("Network '%s' updated", g.ssid)
	return nil
}

// resolveEditor picks the editor command line: the settings file first,
// then the EDITOR environment variable.
func resolveEditor(cfg *config.Config) (string, error) {
	if cfg.General.Editor != "" {
		return cfg.General.Editor, nil
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor, nil
	}
	return "", errors.NewEditorUnavailableError(
		"no editor configured: set general.editor in the settings file or the EDITOR environment variable")
}

// runEditor launches the editor on the fragment file and blocks until it
// exits. The editor value may carry arguments ("busybox vi", "code -w").
func runEditor(editor, path string) error {
	parts := strings.Fields(editor)
	args := append(parts[1:], path)

	cmd := exec.Command(parts[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	log.Debugf("Launching editor: %s %s", parts[0], strings.Join(args, " "))
	if err := cmd.Run(); err != nil {
		return errors.NewIOError(fmt.Sprintf("editor '%s' failed", editor), err)
	}

	return nil
}
