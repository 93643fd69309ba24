// Package session holds the server side of each browser's session: the
// backend bearer token, the authenticated user, and any auth flow still in
// progress. Sessions are created explicitly at login/registration time and
// destroyed on logout; the API client reads the token from here on every
// outgoing call.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"cemention-gateway/authflow"
	"cemention-gateway/models"
)

// Session is the state behind one cmt_session cookie. A session serves a
// single browser, which issues requests one screen at a time, so its fields
// are written without a per-session lock.
type Session struct {
	ID        string
	User      *models.User
	Token     string
	Flow      *authflow.Flow
	ExpiresAt time.Time
}

// LoggedIn reports whether the session carries a usable backend token.
func (s *Session) LoggedIn() bool {
	return s.User != nil && s.Token != ""
}

// Authenticate stores the outcome of a completed auth flow.
func (s *Session) Authenticate(user *models.User, token string) {
	s.User = user
	s.Token = token
	s.Flow = nil
}

// Store keeps sessions in memory, keyed by their cookie ID.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

func (st *Store) TTL() time.Duration {
	return st.ttl
}

// Create mints a new anonymous session.
func (st *Store) Create() *Session {
	s := &Session{
		ID:        uuid.NewString(),
		ExpiresAt: time.Now().Add(st.ttl),
	}
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get looks a session up and slides its expiry. Expired sessions are dropped
// on access.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return nil, false
	}
	if time.Now().After(s.ExpiresAt) {
		delete(st.sessions, id)
		return nil, false
	}
	s.ExpiresAt = time.Now().Add(st.ttl)
	return s, true
}

// Delete tears a session down; used by logout.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
