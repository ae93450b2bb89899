package handlers

import (
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/lehigh-university-libraries/transcriber/internal/models"
)

func (h *Handler) HandleSessions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		sessions := h.sessionStore.GetAll()
		sessionList := make([]models.TranscriptionSession, 0, len(sessions))
		for _, session := range sessions {
			sessionList = append(sessionList, session)
		}
		sort.Slice(sessionList, func(i, j int) bool {
			return sessionList[i].CreatedAt.Before(sessionList[j].CreatedAt)
		})
		h.writeJSON(w, sessionList)
	case "POST":
		session := h.createSession()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		h.writeJSON(w, h.pageView(session))
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleSessionDetail serves /api/sessions/{id} and /api/sessions/{id}/{action}
func (h *Handler) HandleSessionDetail(w http.ResponseWriter, r *http.Request) {
	sessionID, action, _ := strings.Cut(strings.TrimPrefix(r.URL.Path, "/api/sessions/"), "/")

	session, ok := h.getSessionOrError(w, sessionID)
	if !ok {
		return
	}

	switch action {
	case "":
		h.handleSession(w, r, session)
	case "previous", "next":
		h.handleNavigate(w, r, sessionID, action)
	case "confirm":
		h.handleConfirm(w, r, session)
	default:
		h.writeError(w, "Not found", http.StatusNotFound)
	}
}

func (h *Handler) handleSession(w http.ResponseWriter, r *http.Request, session models.TranscriptionSession) {
	switch r.Method {
	case "GET":
		h.writeJSON(w, h.pageView(session))
	case "DELETE":
		h.sessionStore.Delete(session.ID)
		slog.Info("Session ended", "session_id", session.ID)
		w.WriteHeader(http.StatusNoContent)
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) handleNavigate(w http.ResponseWriter, r *http.Request, sessionID, direction string) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var moved bool
	session, ok := h.sessionStore.Update(sessionID, func(s *models.TranscriptionSession) {
		if direction == "next" {
			moved = s.Navigation.Advance(h.catalog.Len())
		} else {
			moved = s.Navigation.Retreat()
		}
	})
	if !ok {
		h.writeError(w, "Session not found", http.StatusNotFound)
		return
	}

	slog.Debug("Navigated",
		"session_id", sessionID,
		"direction", direction,
		"moved", moved,
		"image_index", session.Navigation.ImageIndex,
		"page_counter", session.Navigation.PageCounter)

	h.writeJSON(w, h.pageView(session))
}
