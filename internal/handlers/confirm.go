package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"github.com/lehigh-university-libraries/transcriber/internal/export"
	"github.com/lehigh-university-libraries/transcriber/internal/models"
)

// maxTableBytes caps the edited table payload
const maxTableBytes = 1 << 20

// handleConfirm exports the edited table for the session's current image and
// answers with the CSV itself as a download.
func (h *Handler) handleConfirm(w http.ResponseWriter, r *http.Request, session models.TranscriptionSession) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxTableBytes+1))
	if err != nil {
		h.writeError(w, "Failed to read request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(body) > maxTableBytes {
		h.writeError(w, "Table too large", http.StatusRequestEntityTooLarge)
		return
	}

	var edited models.Table
	if err := json.Unmarshal(body, &edited); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	image, ok := h.catalog.At(session.Navigation.ImageIndex)
	if !ok {
		h.writeError(w, "Current image is not in the catalog", http.StatusInternalServerError)
		return
	}

	result, err := h.pipeline.Export(&edited, image.Path)
	if err != nil {
		if errors.Is(err, export.ErrInvalidTable) {
			h.writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.writeError(w, "Export failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	h.sessionStore.Update(session.ID, func(s *models.TranscriptionSession) {
		s.LastExport = result.FileName
	})

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": result.FileName}))
	// header values are ASCII, so the page reads the escaped name from here
	w.Header().Set("X-Export-Filename", url.PathEscape(result.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Data)))
	w.Header().Set("X-Export-Message", result.Message)
	if _, err := w.Write(result.Data); err != nil {
		slog.Error("Unable to write export response", "session_id", session.ID, "err", err)
	}
}
