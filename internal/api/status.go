package api

import (
	"net/http"

	"github.com/maksimkurb/wpa-netman/internal/assembly"
	"github.com/maksimkurb/wpa-netman/internal/log"
)

var (
	// Version information set via ldflags at build time
	Version = "dev"
	Date    = "n/a"
	Commit  = "n/a"
)

// GetStatus returns tool status information.
// GET /api/v1/status
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	response := StatusResponse{
		Version: VersionInfo{
			Version: Version,
			Date:    Date,
			Commit:  Commit,
		},
		NetworksDir: h.cfg.GetAbsNetworksDir(),
		OutputPath:  h.cfg.GetAbsOutputPath(),
	}

	// A missing networks directory just means nothing was added yet, so
	// the status degrades to zero networks rather than failing.
	st := h.store()
	if ssids, err := st.List(); err != nil {
		log.Debugf("Failed to list networks for status: %v", err)
	} else {
		response.Networks = len(ssids)
	}

	if text, err := assembly.BuildDocument(st, h.cfg.GetAbsHeaderFile(), h.cfg.GetAbsFooterFile()); err != nil {
		log.Debugf("Failed to assemble document for status: %v", err)
	} else if upToDate, err := assembly.UpToDate(text, h.cfg.GetAbsOutputPath()); err != nil {
		log.Warnf("Failed to compare output file for status: %v", err)
	} else {
		response.UpToDate = upToDate
	}

	writeJSONData(w, response)
}
