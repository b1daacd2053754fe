// Package session tracks the single active identity. Login is role
// selection, not authentication: nothing here verifies a credential.
package session

import (
	"sync"

	"github.com/google/uuid"

	"go-agritrace/internal/model"
)

// Session is one logged-in identity/role pair. The ID ties issued tokens
// to this particular login; beginning a new session revokes tokens that
// carry an older ID.
type Session struct {
	Identity string
	Role     model.Role
	ID       uuid.UUID
}

// State holds at most one active session. It is never persisted.
type State struct {
	mu      sync.Mutex
	current *Session
}

func NewState() *State {
	return &State{}
}

// Begin replaces any active session with a fresh one for identity/role.
func (s *State) Begin(identity string, role model.Role) Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := Session{Identity: identity, Role: role, ID: uuid.New()}
	s.current = &sess
	return sess
}

// End clears the session unconditionally.
func (s *State) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// Current returns the active session, if any.
func (s *State) Current() (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Session{}, false
	}
	return *s.current, true
}

// IsActive reports whether id identifies the currently active session.
func (s *State) IsActive(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil && s.current.ID == id
}
