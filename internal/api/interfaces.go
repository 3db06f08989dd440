package api

import (
	"net/http"

	"github.com/maksimkurb/wpa-netman/internal/networking"
)

// GetInterfaces returns a list of network interfaces on the system, with
// a flag marking the wireless ones. Loopback devices are skipped.
// GET /api/v1/interfaces
func (h *Handler) GetInterfaces(w http.ResponseWriter, r *http.Request) {
	interfaces, err := networking.GetInterfaceList()
	if err != nil {
		WriteInternalError(w, "Failed to get network interfaces: "+err.Error())
		return
	}

	infos := make([]InterfaceInfo, 0, len(interfaces))
	for i := range interfaces {
		iface := &interfaces[i]
		if iface.IsLoopback() {
			continue
		}

		info := InterfaceInfo{
			Name:     iface.Attrs().Name,
			MAC:      iface.MAC(),
			Up:       iface.IsUp(),
			Wireless: iface.IsWireless(),
		}
		if ips, err := iface.AddrsIps(); err == nil {
			for _, ip := range ips {
				info.Addresses = append(info.Addresses, ip.String())
			}
		}

		infos = append(infos, info)
	}

	writeJSONData(w, InterfacesResponse{Interfaces: infos})
}
