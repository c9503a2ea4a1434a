package service

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/radion-x/ODI-Aaron-3/internal/catalog"
	"github.com/radion-x/ODI-Aaron-3/internal/session"
)

// ErrSessionNotFound is returned for unknown session ids
var ErrSessionNotFound = fmt.Errorf("session not found")

// SessionService owns the server-side wizard sessions. Each session belongs
// to one interactive user; the per-session mutex serializes its transitions,
// independent sessions proceed concurrently.
type SessionService struct {
	catalogs *catalog.Registry

	mu       sync.RWMutex
	sessions map[string]*managedSession
}

type managedSession struct {
	mu      sync.Mutex
	session *session.Session
}

// NewSessionService creates a new session service
func NewSessionService(catalogs *catalog.Registry) *SessionService {
	return &SessionService{
		catalogs: catalogs,
		sessions: make(map[string]*managedSession),
	}
}

// Create starts a new session over the named catalog and returns its id
func (s *SessionService) Create(catalogID string) (string, error) {
	cat, err := s.catalogs.Get(catalogID)
	if err != nil {
		return "", err
	}

	id := uuid.New().String()
	s.mu.Lock()
	s.sessions[id] = &managedSession{session: session.New(cat)}
	s.mu.Unlock()
	return id, nil
}

// With runs fn against the identified session while holding its lock
func (s *SessionService) With(id string, fn func(*session.Session) error) error {
	s.mu.RLock()
	ms, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return ErrSessionNotFound
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()
	return fn(ms.session)
}

// Delete removes a session once the client is done with it
func (s *SessionService) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}
