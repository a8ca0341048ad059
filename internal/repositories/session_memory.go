package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-water-quality/internal/logger"
)

type memorySession struct {
	id        string
	expiresAt time.Time
}

// SessionMemoryRepository keeps active sessions in process memory.
// Sessions are lost on restart.
type SessionMemoryRepository struct {
	mu       sync.Mutex
	sessions map[string]memorySession
	now      func() time.Time
}

// NewSessionMemoryRepository creates an empty in-memory session store
func NewSessionMemoryRepository() *SessionMemoryRepository {
	return &SessionMemoryRepository{
		sessions: make(map[string]memorySession),
		now:      time.Now,
	}
}

// Replace makes sessionID the only active session of username.
func (r *SessionMemoryRepository) Replace(ctx context.Context, username, sessionID string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[username] = memorySession{id: sessionID, expiresAt: r.now().Add(ttl)}
	return nil
}

// Get returns the active session id of username, or "" if there is none.
func (r *SessionMemoryRepository) Get(ctx context.Context, username string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[username]
	if !ok {
		return "", nil
	}
	if !r.now().Before(s.expiresAt) {
		delete(r.sessions, username)
		return "", nil
	}
	return s.id, nil
}

// Delete ends the session if it is still the active one.
func (r *SessionMemoryRepository) Delete(ctx context.Context, username, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[username]; ok && s.id == sessionID {
		delete(r.sessions, username)
	}
	return nil
}

// PurgeExpired drops every expired session and returns how many were removed.
func (r *SessionMemoryRepository) PurgeExpired(ctx context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	purged := 0
	for username, s := range r.sessions {
		if !now.Before(s.expiresAt) {
			delete(r.sessions, username)
			purged++
		}
	}

	logger.Log.Debugw("Purged expired sessions", "purged", purged, "active", len(r.sessions))
	return purged
}
