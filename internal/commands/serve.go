package commands

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/maksimkurb/wpa-netman/internal/api"
	"github.com/maksimkurb/wpa-netman/internal/config"
	"github.com/maksimkurb/wpa-netman/internal/log"
)

func CreateServeCommand() *ServeCommand {
	gc := &ServeCommand{
		fs: flag.NewFlagSet("serve", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.Listen, "listen", "", "Listen address (addr:port), overrides the settings file and implies api.enable")

	return gc
}

type ServeCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config

	Listen string
}

func (g *ServeCommand) Name() string {
	return g.fs.Name()
}

func (g *ServeCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadSettingsOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	g.cfg = cfg

	if g.Listen != "" {
		host, portStr, err := net.SplitHostPort(g.Listen)
		if err != nil {
			return fmt.Errorf("invalid -listen address '%s': %v", g.Listen, err)
		}
		port, err := strconv.ParseUint(portStr, 10, 16)
		if err != nil || port == 0 {
			return fmt.Errorf("invalid -listen port '%s'", portStr)
		}
		if strings.Contains(host, ":") {
			host = "[" + host + "]"
		}

		g.cfg.API.Enable = true
		g.cfg.API.ListenAddr = host
		g.cfg.API.ListenPort = uint16(port)
	}

	if !g.cfg.API.Enable {
		return fmt.Errorf("the API is disabled: set api.enable = true in the settings file or pass -listen")
	}

	return nil
}

func (g *ServeCommand) Run() error {
	server := api.NewServer(g.cfg)

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	go func() {
		serverErrors <- server.Start()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	select {
	case err := <-serverErrors:
		if err != nil {
			return err
		}

	case sig := <-shutdown:
		log.Infof("Received signal %v, shutting down server...", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Stop(ctx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		log.Infof("Server stopped gracefully")
	}

	return nil
}
