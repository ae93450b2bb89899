package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/lehigh-university-libraries/transcriber/internal/catalog"
	"github.com/lehigh-university-libraries/transcriber/internal/export"
	"github.com/lehigh-university-libraries/transcriber/internal/models"
	"github.com/lehigh-university-libraries/transcriber/internal/navigation"
	"github.com/lehigh-university-libraries/transcriber/internal/storage"
	"github.com/lehigh-university-libraries/transcriber/internal/tabletemplate"
)

type Handler struct {
	sessionStore *storage.SessionStore
	catalog      *catalog.Catalog
	pipeline     *export.Pipeline
	staticDir    string
}

// PageView is everything the editor page needs to render the current page
type PageView struct {
	SessionID   string             `json:"session_id"`
	Image       models.ImageRecord `json:"image"`
	ImageURL    string             `json:"image_url"`
	ImageWidth  int                `json:"image_width"`
	ImageHeight int                `json:"image_height"`
	ImageIndex  int                `json:"image_index"`
	ImageCount  int                `json:"image_count"`
	PageCounter int                `json:"page_counter"`
	HasPrevious bool               `json:"has_previous"`
	HasNext     bool               `json:"has_next"`
	LastExport  string             `json:"last_export,omitempty"`
	Table       *models.Table      `json:"table"`
}

func New(cat *catalog.Catalog, pipeline *export.Pipeline, staticDir string) *Handler {
	return &Handler{
		sessionStore: storage.New(),
		catalog:      cat,
		pipeline:     pipeline,
		staticDir:    staticDir,
	}
}

// Routes registers every handler on a new mux
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/sessions", h.HandleSessions)
	mux.HandleFunc("/api/sessions/", h.HandleSessionDetail)
	mux.HandleFunc("/images/", h.HandleImage)
	mux.HandleFunc("/", h.HandleStatic)
	mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("OK")); err != nil {
			slog.Error("Unable to write healthcheck", "err", err)
		}
	})
	return mux
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	http.Error(w, message, code)
}

// Session helpers
func (h *Handler) getSessionOrError(w http.ResponseWriter, sessionID string) (models.TranscriptionSession, bool) {
	session, exists := h.sessionStore.Get(sessionID)
	if !exists {
		h.writeError(w, "Session not found", http.StatusNotFound)
		return models.TranscriptionSession{}, false
	}
	return session, true
}

func (h *Handler) createSession() models.TranscriptionSession {
	now := time.Now()
	session := models.TranscriptionSession{
		ID:         uuid.NewString(),
		Navigation: navigation.New(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	h.sessionStore.Set(session.ID, session)

	slog.Info("Session created", "session_id", session.ID, "images", h.catalog.Len())
	return session
}

// pageView renders a session's current page with a freshly generated template
func (h *Handler) pageView(session models.TranscriptionSession) PageView {
	nav := session.Navigation
	image, _ := h.catalog.At(nav.ImageIndex)

	width, height, err := getImageDimensions(image.Path)
	if err != nil {
		slog.Warn("Failed to get image dimensions", "image", image.Path, "error", err)
	}

	return PageView{
		SessionID:   session.ID,
		Image:       image,
		ImageURL:    "/images/" + url.PathEscape(image.Name),
		ImageWidth:  width,
		ImageHeight: height,
		ImageIndex:  nav.ImageIndex,
		ImageCount:  h.catalog.Len(),
		PageCounter: nav.PageCounter,
		HasPrevious: nav.ImageIndex > 0,
		HasNext:     nav.ImageIndex < h.catalog.Len()-1,
		LastExport:  session.LastExport,
		Table:       tabletemplate.Generate(nav.PageCounter),
	}
}
