package storage

import (
	"sync"
	"time"

	"github.com/lehigh-university-libraries/transcriber/internal/models"
)

type SessionStore struct {
	sessions map[string]*models.TranscriptionSession
	mu       sync.RWMutex
}

func New() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*models.TranscriptionSession),
	}
}

// Get returns a copy of the session so callers cannot mutate shared state
func (s *SessionStore) Get(sessionID string) (models.TranscriptionSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, exists := s.sessions[sessionID]
	if !exists {
		return models.TranscriptionSession{}, false
	}
	return *session, true
}

func (s *SessionStore) Set(sessionID string, session models.TranscriptionSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = &session
}

// Update applies fn to the stored session under the write lock and returns the result.
// It reports false if the session does not exist.
func (s *SessionStore) Update(sessionID string, fn func(*models.TranscriptionSession)) (models.TranscriptionSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, exists := s.sessions[sessionID]
	if !exists {
		return models.TranscriptionSession{}, false
	}
	fn(session)
	session.UpdatedAt = time.Now()
	return *session, true
}

func (s *SessionStore) GetAll() map[string]models.TranscriptionSession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]models.TranscriptionSession, len(s.sessions))
	for k, v := range s.sessions {
		result[k] = *v
	}
	return result
}

func (s *SessionStore) Delete(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, exists := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	return exists
}
