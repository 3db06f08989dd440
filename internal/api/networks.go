package api

import (
	stderrors "errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maksimkurb/wpa-netman/internal/errors"
	"github.com/maksimkurb/wpa-netman/internal/fragment"
	"github.com/maksimkurb/wpa-netman/internal/log"
)

// GetNetworks returns all networks in the store.
// GET /api/v1/networks
func (h *Handler) GetNetworks(w http.ResponseWriter, r *http.Request) {
	st := h.store()

	ssids, err := st.List()
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	// A fragment that no longer parses still shows up in the listing,
	// just without its options.
	networks := make([]*NetworkInfo, 0, len(ssids))
	for _, ssid := range ssids {
		info := &NetworkInfo{SSID: ssid}
		frag, err := st.Read(ssid)
		if err != nil {
			log.Warnf("Failed to parse fragment for '%s': %v", ssid, err)
			info.Malformed = true
		} else {
			info.Options = frag.Options
		}
		networks = append(networks, info)
	}

	writeJSONData(w, NetworksResponse{Networks: networks})
}

// GetNetwork returns a specific network by SSID.
// GET /api/v1/networks/{ssid}
func (h *Handler) GetNetwork(w http.ResponseWriter, r *http.Request) {
	ssid := chi.URLParam(r, "ssid")

	frag, err := h.store().Read(ssid)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	writeJSONData(w, NetworkInfo{SSID: frag.SSID, Options: frag.Options})
}

// CreateNetwork creates a new network fragment.
// POST /api/v1/networks
func (h *Handler) CreateNetwork(w http.ResponseWriter, r *http.Request) {
	var req CreateNetworkRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteInvalidRequest(w, "Invalid JSON: "+err.Error())
		return
	}

	if req.SSID == "" {
		WriteInvalidRequest(w, "ssid is required")
		return
	}
	if err := validateCredentials(req.Passphrase, req.PSK, req.Open, req.Options); err != nil {
		WriteInvalidRequest(w, err.Error())
		return
	}

	frag, err := buildFragment(req.SSID, req.Passphrase, req.PSK, req.Open, req.Options)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	if err := h.store().Write(frag, req.Overwrite); err != nil {
		WriteDomainError(w, err)
		return
	}

	writeCreated(w, NetworkInfo{SSID: frag.SSID, Options: frag.Options})
}

// UpdateNetwork replaces an existing network fragment.
// PUT /api/v1/networks/{ssid}
func (h *Handler) UpdateNetwork(w http.ResponseWriter, r *http.Request) {
	ssid := chi.URLParam(r, "ssid")

	var req UpdateNetworkRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteInvalidRequest(w, "Invalid JSON: "+err.Error())
		return
	}

	if err := validateCredentials(req.Passphrase, req.PSK, req.Open, req.Options); err != nil {
		WriteInvalidRequest(w, err.Error())
		return
	}

	st := h.store()

	// A fragment that fails to parse can still be replaced; only a
	// missing one is an error here.
	if _, err := st.Read(ssid); err != nil && !errors.IsCode(err, errors.ErrCodeMalformedFragment) {
		WriteDomainError(w, err)
		return
	}

	frag, err := buildFragment(ssid, req.Passphrase, req.PSK, req.Open, req.Options)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	if err := st.Write(frag, true); err != nil {
		WriteDomainError(w, err)
		return
	}

	writeJSONData(w, NetworkInfo{SSID: frag.SSID, Options: frag.Options})
}

// DeleteNetwork deletes a network fragment.
// DELETE /api/v1/networks/{ssid}
func (h *Handler) DeleteNetwork(w http.ResponseWriter, r *http.Request) {
	ssid := chi.URLParam(r, "ssid")

	if err := h.store().Delete(ssid); err != nil {
		WriteDomainError(w, err)
		return
	}

	writeNoContent(w)
}

// validateCredentials enforces the credential selection rules shared by
// create and update requests.
func validateCredentials(passphrase, psk string, open bool, options map[string]string) error {
	credentialCount := 0
	if passphrase != "" {
		credentialCount++
	}
	if psk != "" {
		credentialCount++
	}
	if open {
		credentialCount++
	}
	if credentialCount != 1 {
		return stderrors.New("exactly one of passphrase, psk, or open must be specified")
	}

	if _, ok := options[fragment.KeySSID]; ok {
		return stderrors.New("ssid cannot be set through options")
	}

	return nil
}

// buildFragment constructs a fragment from request fields. The selected
// credential becomes a psk or key_mgmt option; extra options are merged
// in verbatim afterwards.
func buildFragment(ssid, passphrase, psk string, open bool, options map[string]string) (*fragment.Fragment, error) {
	frag := fragment.New(ssid)

	switch {
	case passphrase != "":
		if err := fragment.ValidatePassphrase(passphrase); err != nil {
			return nil, err
		}
		frag.Options[fragment.KeyPSK] = `"` + passphrase + `"`
	case psk != "":
		if err := fragment.ValidatePSK(psk); err != nil {
			return nil, err
		}
		frag.Options[fragment.KeyPSK] = psk
	case open:
		frag.Options[fragment.KeyMgmt] = fragment.KeyMgmtNone
	}

	for key, value := range options {
		frag.Options[key] = value
	}

	return frag, nil
}
