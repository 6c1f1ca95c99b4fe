package session

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/keypad"
	"github.com/averycrespi/calc-mcp/pkg/types"
)

// session is a calculator state guarded by its own lock
type session struct {
	mu     sync.Mutex
	keypad *keypad.Keypad
}

// Manager manages named calculator sessions sharing one memory register
type Manager struct {
	defaultID string
	memory    types.Memory
	sessions  map[string]*session
	mu        sync.RWMutex
}

// NewManager creates a new session manager
func NewManager(defaultID string, memory types.Memory) *Manager {
	if defaultID == "" {
		defaultID = types.DefaultSession
	}

	return &Manager{
		defaultID: defaultID,
		memory:    memory,
		sessions:  make(map[string]*session),
	}
}

// Memory returns the shared memory register
func (m *Manager) Memory() types.Memory {
	return m.memory
}

// ResolveID maps an empty session id to the default one
func (m *Manager) ResolveID(id string) string {
	if id == "" {
		return m.defaultID
	}
	return id
}

// get returns the session with the given id, creating it on first use
func (m *Manager) get(id string) *session {
	id = m.ResolveID(id)

	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		return s
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[id]; ok {
		return s
	}

	slog.Debug("Creating calculator session", "session", id)
	s = &session{keypad: keypad.New(calculator.NewState(), m.memory)}
	m.sessions[id] = s
	return s
}

// WithSession runs fn with exclusive access to the session's keypad
func (m *Manager) WithSession(id string, fn func(pad *keypad.Keypad)) {
	s := m.get(id)

	s.mu.Lock()
	defer s.mu.Unlock()

	fn(s.keypad)
}

// Snapshot returns a copy of the session's state
func (m *Manager) Snapshot(id string) calculator.Snapshot {
	var snap calculator.Snapshot
	m.WithSession(id, func(pad *keypad.Keypad) {
		snap = pad.State().Snapshot()
	})
	return snap
}

// Reset fully clears a session
func (m *Manager) Reset(id string) calculator.Snapshot {
	var snap calculator.Snapshot
	m.WithSession(id, func(pad *keypad.Keypad) {
		pad.State().Clear()
		snap = pad.State().Snapshot()
	})
	return snap
}

// Delete discards a session, reporting whether it existed
func (m *Manager) Delete(id string) bool {
	id = m.ResolveID(id)

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return false
	}

	slog.Debug("Deleting calculator session", "session", id)
	delete(m.sessions, id)
	return true
}

// List returns the ids of all sessions in sorted order
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
