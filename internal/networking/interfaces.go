package networking

import (
	"net"
	"os"
	"path/filepath"

	"github.com/vishvananda/netlink"
)

const sysClassNet = "/sys/class/net"

type Interface struct {
	netlink.Link
}

func GetInterface(interfaceName string) (*Interface, error) {
	link, err := netlink.LinkByName(interfaceName)
	if err != nil {
		return nil, err
	}
	return &Interface{link}, nil
}

func GetInterfaceList() ([]Interface, error) {
	links, err := netlink.LinkList()
	if err != nil {
		return nil, err
	}
	var interfaces []Interface
	for _, link := range links {
		interfaces = append(interfaces, Interface{link})
	}
	return interfaces, nil
}

func (iface *Interface) IsUp() bool {
	return iface.Attrs().Flags&net.FlagUp != 0
}

func (iface *Interface) IsLoopback() bool {
	return iface.Attrs().Flags&net.FlagLoopback != 0
}

// IsWireless reports whether the kernel exposes a wireless extension for
// this link (a wireless/ entry under its sysfs node).
func (iface *Interface) IsWireless() bool {
	return isWirelessAt(sysClassNet, iface.Attrs().Name)
}

// MAC returns the hardware address, or an empty string for links without
// one (e.g. loopback).
func (iface *Interface) MAC() string {
	hw := iface.Attrs().HardwareAddr
	if len(hw) == 0 {
		return ""
	}
	return hw.String()
}

func (iface *Interface) AddrsIps() ([]net.IP, error) {
	addrs, err := netlink.AddrList(iface.Link, netlink.FAMILY_ALL)
	if err != nil {
		return nil, err
	}
	var ips []net.IP
	for _, addr := range addrs {
		ips = append(ips, addr.IP)
	}
	return ips, nil
}

func isWirelessAt(sysfsRoot, name string) bool {
	info, err := os.Stat(filepath.Join(sysfsRoot, name, "wireless"))
	return err == nil && info.IsDir()
}
