package api

import (
	"net/http"
	"os"

	"github.com/maksimkurb/wpa-netman/internal/assembly"
)

// PreviewDocument assembles the full wpa_supplicant configuration and
// returns it as plain text without touching the output file.
// GET /api/v1/document
func (h *Handler) PreviewDocument(w http.ResponseWriter, r *http.Request) {
	text, err := assembly.BuildDocument(h.store(), h.cfg.GetAbsHeaderFile(), h.cfg.GetAbsFooterFile())
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(text))
}

// PublishDocument assembles the full configuration and writes it to the
// configured output path, backing up any existing file first.
// POST /api/v1/document
func (h *Handler) PublishDocument(w http.ResponseWriter, r *http.Request) {
	target := h.cfg.GetAbsOutputPath()

	text, err := assembly.BuildDocument(h.store(), h.cfg.GetAbsHeaderFile(), h.cfg.GetAbsFooterFile())
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	// Whether a backup happens depends on the target existing before
	// the publish, so check first.
	_, statErr := os.Stat(target)
	backedUp := statErr == nil

	if err := assembly.Publish(text, target); err != nil {
		WriteDomainError(w, err)
		return
	}

	response := PublishResponse{
		Output: target,
		Bytes:  len(text),
	}
	if backedUp {
		response.Backup = assembly.BackupPath(target)
	}

	writeJSONData(w, response)
}
