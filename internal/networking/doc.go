// Package networking provides network interface enumeration for wpa-netman.
//
// The "interfaces" command uses this package to show the administrator
// which links exist on the system, which of them are wireless, and their
// current state, so the generated wpa_supplicant configuration can be
// pointed at the right device.
//
// # Key Components
//
//   - Interface: thin wrapper around a netlink link with convenience
//     accessors (IsUp, IsLoopback, IsWireless, MAC, AddrsIps)
//   - GetInterfaceList / GetInterface: enumeration via the netlink API
//
// Wireless detection reads the kernel's sysfs tree: a link is wireless
// when /sys/class/net/<name>/wireless exists.
//
// # Example Usage
//
//	interfaces, err := networking.GetInterfaceList()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, iface := range interfaces {
//	    if iface.IsWireless() {
//	        fmt.Printf("%s (wireless, up=%v)\n", iface.Attrs().Name, iface.IsUp())
//	    }
//	}
package networking
