package auth

import (
	"sync"
	"time"

	"techsell-web/domain"
	"techsell-web/entities"
	"techsell-web/internal/navstate"
	"techsell-web/pkg/gateway"

	"github.com/google/uuid"
)

// SessionState is the explicit session lifecycle: signup-submitted moves
// anonymous to pending-verification, otp-verified or login moves to
// authenticated, logout tears back down to anonymous.
type SessionState string

const (
	StateAnonymous           SessionState = "anonymous"
	StatePendingVerification SessionState = "pending-verification"
	StateAuthenticated       SessionState = "authenticated"
)

type (
	// PendingSignup is the signup record held between signup submission and
	// OTP verification. It lives only in this store; there is no persisted
	// client storage.
	PendingSignup struct {
		ID           string
		Username     string
		StudentEmail string
		Residence    string
		Password     string
		CreatedAt    time.Time
	}

	// Session is one authenticated browser session: the identity reported by
	// the backend, the backend credentials to replay, and the navigation
	// shell state.
	Session struct {
		User        entities.User
		Credentials *gateway.Credentials
		Nav         *navstate.State
		CreatedAt   time.Time
	}

	SessionStore interface {
		CreatePending(req domain.SignupRequest) *PendingSignup
		GetPending(id string) (*PendingSignup, bool)
		DeletePending(id string)
		Put(session *Session)
		Get(userID string) (*Session, bool)
		Delete(userID string)
		StateOf(userID, signupID string) SessionState
	}

	sessionStore struct {
		mu       sync.RWMutex
		pending  map[string]*PendingSignup
		sessions map[string]*Session
	}
)

func NewSessionStore() SessionStore {
	return &sessionStore{
		pending:  make(map[string]*PendingSignup),
		sessions: make(map[string]*Session),
	}
}

func (s *sessionStore) CreatePending(req domain.SignupRequest) *PendingSignup {
	record := &PendingSignup{
		ID:           uuid.New().String(),
		Username:     req.Username,
		StudentEmail: req.StudentEmail,
		Residence:    req.Residence,
		Password:     req.Password,
		CreatedAt:    time.Now(),
	}
	s.mu.Lock()
	s.pending[record.ID] = record
	s.mu.Unlock()
	return record
}

func (s *sessionStore) GetPending(id string) (*PendingSignup, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.pending[id]
	return record, ok
}

func (s *sessionStore) DeletePending(id string) {
	s.mu.Lock()
	delete(s.pending, id)
	s.mu.Unlock()
}

func (s *sessionStore) Put(session *Session) {
	s.mu.Lock()
	s.sessions[session.User.ID] = session
	s.mu.Unlock()
}

func (s *sessionStore) Get(userID string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[userID]
	return session, ok
}

func (s *sessionStore) Delete(userID string) {
	s.mu.Lock()
	delete(s.sessions, userID)
	s.mu.Unlock()
}

func (s *sessionStore) StateOf(userID, signupID string) SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.sessions[userID]; ok {
		return StateAuthenticated
	}
	if _, ok := s.pending[signupID]; ok {
		return StatePendingVerification
	}
	return StateAnonymous
}
