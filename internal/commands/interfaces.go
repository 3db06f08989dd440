package commands

import (
	"flag"
	"fmt"
	"strings"

	"github.com/maksimkurb/wpa-netman/internal/networking"
)

func CreateInterfacesCommand() *InterfacesCommand {
	gc := &InterfacesCommand{
		fs: flag.NewFlagSet("interfaces", flag.ExitOnError),
	}
	return gc
}

type InterfacesCommand struct {
	fs *flag.FlagSet
}

func (g *InterfacesCommand) Name() string {
	return g.fs.Name()
}

func (g *InterfacesCommand) Init(args []string, ctx *AppContext) error {
	return g.fs.Parse(args)
}

func (g *InterfacesCommand) Run() error {
	interfaces, err := networking.GetInterfaceList()
	if err != nil {
		return fmt.Errorf("failed to get interfaces: %v", err)
	}

	fmt.Printf("%-16s %-6s %-9s %-18s %s\n", "INTERFACE", "STATE", "WIRELESS", "MAC", "ADDRESSES")
	for i := range interfaces {
		iface := &interfaces[i]
		if iface.IsLoopback() {
			continue
		}

		state := "DOWN"
		if iface.IsUp() {
			state = "UP"
		}

		wireless := "no"
		if iface.IsWireless() {
			wireless = "yes"
		}

		var addresses []string
		if ips, err := iface.AddrsIps(); err == nil {
			for _, ip := range ips {
				addresses = append(addresses, ip.String())
			}
		}

		fmt.Printf("%-16s %-6s %-9s %-18s %s\n",
			iface.Attrs().Name, state, wireless, iface.MAC(), strings.Join(addresses, ", "))
	}

	return nil
}
