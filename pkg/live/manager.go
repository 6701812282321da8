package live

import (
	"sync"

	"github.com/rs/zerolog"

	dwerrors "github.com/dashwire-dev/dashwire/internal/errors"
)

// Manager tracks the live sessions of a server and enforces the session
// limit.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	limit    int
	log      zerolog.Logger
}

// NewManager creates a manager. A limit of 0 means unlimited.
func NewManager(limit int, log zerolog.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		limit:    limit,
		log:      log,
	}
}

// Add registers a session and hooks its close callback.
// Fails when the session limit is reached.
func (m *Manager) Add(s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.limit > 0 && len(m.sessions) >= m.limit {
		return dwerrors.Newf(dwerrors.CategorySession, "session limit %d reached", m.limit)
	}

	m.sessions[s.id] = s
	s.onClose = m.remove
	return nil
}

// remove drops a closed session.
func (m *Manager) remove(s *Session) {
	m.mu.Lock()
	delete(m.sessions, s.id)
	m.mu.Unlock()
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// CloseAll closes every live session. Used during server shutdown.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
	m.log.Info().Int("count", len(sessions)).Msg("closed all sessions")
}
