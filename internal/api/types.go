package api

// DataResponse wraps successful responses with a "data" field.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// NetworkInfo describes one stored network fragment.
type NetworkInfo struct {
	SSID      string            `json:"ssid"`
	Options   map[string]string `json:"options"` // nil when the fragment does not parse
	Malformed bool              `json:"malformed,omitempty"`
}

// NetworksResponse returns all networks in the store.
type NetworksResponse struct {
	Networks []*NetworkInfo `json:"networks"`
}

// CreateNetworkRequest creates a new network fragment.
// Exactly one of passphrase, psk, or open must be specified.
type CreateNetworkRequest struct {
	SSID       string            `json:"ssid"`
	Passphrase string            `json:"passphrase,omitempty"`
	PSK        string            `json:"psk,omitempty"`
	Open       bool              `json:"open,omitempty"`
	Options    map[string]string `json:"options,omitempty"`
	Overwrite  bool              `json:"overwrite,omitempty"`
}

// UpdateNetworkRequest replaces an existing network fragment. The SSID
// comes from the URL; the credential rules match CreateNetworkRequest.
type UpdateNetworkRequest struct {
	Passphrase string            `json:"passphrase,omitempty"`
	PSK        string            `json:"psk,omitempty"`
	Open       bool              `json:"open,omitempty"`
	Options    map[string]string `json:"options,omitempty"`
}

// PublishResponse returns the result of a publish operation.
type PublishResponse struct {
	Output string `json:"output"`
	Backup string `json:"backup,omitempty"` // empty when no previous file existed
	Bytes  int    `json:"bytes"`
}

// StatusResponse returns tool status information.
type StatusResponse struct {
	Version     VersionInfo `json:"version"`
	NetworksDir string      `json:"networks_dir"`
	OutputPath  string      `json:"output_path"`
	Networks    int         `json:"networks"`
	UpToDate    bool        `json:"up_to_date"`
}

// VersionInfo contains build version information.
type VersionInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// InterfaceInfo describes a network interface on the system.
type InterfaceInfo struct {
	Name      string   `json:"name"`
	MAC       string   `json:"mac,omitempty"`
	Up        bool     `json:"up"`
	Wireless  bool     `json:"wireless"`
	Addresses []string `json:"addresses,omitempty"`
}

// InterfacesResponse returns all non-loopback interfaces on the system.
type InterfacesResponse struct {
	Interfaces []InterfaceInfo `json:"interfaces"`
}
