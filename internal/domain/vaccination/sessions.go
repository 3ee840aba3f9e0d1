package vaccination

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionManager hands each logical session its own RecordRepository. Stores
// are never shared between sessions and are dropped after sitting idle for
// the configured TTL.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
}

type session struct {
	records  RecordRepository
	lastSeen time.Time
}

// NewSessionManager creates a manager whose stores expire after ttl of
// inactivity. A non-positive ttl disables expiry.
func NewSessionManager(ttl time.Duration) *SessionManager {
	return &SessionManager{sessions: make(map[string]*session), ttl: ttl}
}

// Get returns the record store for id, creating a fresh session when id is
// empty or unknown. The returned id is the effective session id.
func (m *SessionManager) Get(id string) (RecordRepository, string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id != "" {
		if s, ok := m.sessions[id]; ok {
			s.lastSeen = time.Now()
			return s.records, id
		}
	}
	if id == "" {
		id = uuid.New().String()
	}
	s := &session{records: NewRecordStore(), lastSeen: time.Now()}
	m.sessions[id] = s
	return s.records, id
}

// Len reports the number of live sessions.
func (m *SessionManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Prune drops sessions idle past the TTL and reports how many were removed.
func (m *SessionManager) Prune(now time.Time) int {
	if m.ttl <= 0 {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, s := range m.sessions {
		if now.Sub(s.lastSeen) > m.ttl {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// StartPruning sweeps expired sessions on the given interval until ctx is
// cancelled.
func (m *SessionManager) StartPruning(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case t := <-ticker.C:
				m.Prune(t)
			}
		}
	}()
}
