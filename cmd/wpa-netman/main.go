package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/maksimkurb/wpa-netman/internal/commands"
	"github.com/maksimkurb/wpa-netman/internal/config"
	"github.com/maksimkurb/wpa-netman/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := &commands.AppContext{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	// Define flags
	flag.StringVar(&ctx.ConfigPath, "config", config.DefaultConfigPath, "Path to settings file")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "wpa_supplicant Network Fragment Manager\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command> [command options] [arguments]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  add <ssid> [passphrase] Add a network fragment (-o open, -p raw PSK, -f overwrite)\n")
		fmt.Fprintf(os.Stderr, "  del <ssid>              Delete a network fragment\n")
		fmt.Fprintf(os.Stderr, "  show <ssid>             Print a network fragment\n")
		fmt.Fprintf(os.Stderr, "  edit <ssid>             Edit a network fragment in the configured editor\n")
		fmt.Fprintf(os.Stderr, "  list                    List stored networks\n")
		fmt.Fprintf(os.Stderr, "  make                    Assemble and publish the configuration (-p print only)\n")
		fmt.Fprintf(os.Stderr, "  diff                    Diff the assembled configuration against the published file\n")
		fmt.Fprintf(os.Stderr, "  migrate                 Import network blocks from a legacy monolithic file\n")
		fmt.Fprintf(os.Stderr, "  interfaces              List network interfaces\n")
		fmt.Fprintf(os.Stderr, "  self-check              Run self-check\n")
		fmt.Fprintf(os.Stderr, "  serve                   Run the admin HTTP API\n")
		fmt.Fprintf(os.Stderr, "  version                 Print version information\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if ctx.Verbose {
		log.SetVerbose(true)
	}

	cmds := []commands.Runner{
		commands.CreateAddCommand(),
		commands.CreateDeleteCommand(),
		commands.CreateShowCommand(),
		commands.CreateEditCommand(),
		commands.CreateListCommand(),
		commands.CreateMakeCommand(),
		commands.CreateDiffCommand(),
		commands.CreateMigrateCommand(),
		commands.CreateInterfacesCommand(),
		commands.CreateSelfCheckCommand(),
		commands.CreateServeCommand(),
		commands.CreateVersionCommand(),
	}

	args := flag.Args()

	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	subcommand := args[0]
	for _, cmd := range cmds {
		if cmd.Name() == subcommand {
			if err := cmd.Init(args[1:], ctx); err != nil {
				log.Fatalf("Failed to initialize command: %v", err)
			}

			if err := cmd.Run(); err != nil {
				log.Fatalf("Failed to run command: %v", err)
			}

			os.Exit(0)
		}
	}

	log.Fatalf("Unknown subcommand: %s", subcommand)
}
