// Package session maintains the authenticated identity/token pair for the
// lifetime of the console process and persists it across restarts.
//
// The store is the single owner of session state. Sign-in and sign-out are
// the only mutations; every fetcher call site reads the token through the
// store. All methods are safe for concurrent use: view fetches run on their
// own goroutines.
package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User is the authenticated identity.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Session is the identity/token pair governing access to protected views.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Store owns the current session. The zero value is unauthenticated;
// use NewStore to get rehydration from the persisted entry.
type Store struct {
	mu      sync.RWMutex
	current Session
	path    string

	// now is a test seam for token-expiry checks.
	now func() time.Time
}

// NewStore opens the store backed by the session file at path and attempts
// to rehydrate a previously persisted session. A missing, malformed, or
// expired entry leaves the store unauthenticated and removes the stale file;
// it is never surfaced as an error, since it represents a corrupted local
// cache rather than a user action.
func NewStore(path string) *Store {
	s := &Store{path: path, now: time.Now}
	if sess, ok := s.load(); ok {
		s.current = sess
	}
	return s
}

// SignIn atomically replaces the session with the given identity and token
// and persists the pair as one entry. No reader can observe the identity
// without the token or vice versa.
func (s *Store) SignIn(user User, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = Session{User: user, Token: token}
	return s.save(s.current)
}

// SignOut clears the session and removes the persisted entry. Idempotent.
func (s *Store) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = Session{}
	s.remove()
}

// Current returns a copy of the session and whether it is authenticated.
func (s *Store) Current() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.current.Token != ""
}

// Token returns the current token, or "" when unauthenticated.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Token
}

// Authenticated reports whether a token is present.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Token != ""
}

// tokenUsable rejects JWT-shaped tokens whose exp claim is already in the
// past. Opaque tokens are accepted as-is: the backend stays the authority on
// their validity, and the signing key is not available client-side anyway.
func (s *Store) tokenUsable(token string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return true // not a JWT
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true // no usable exp claim
	}
	return exp.After(s.now())
}
