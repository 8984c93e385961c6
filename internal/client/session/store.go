// Package session holds the client's single authenticated session. The store
// is the sole source of truth for which screen group is reachable: absent
// session means the login screen, present session means the product screens.
package session

import (
	"errors"

	"github.com/fakestore/storefront/internal/models"
)

// ErrEmptyToken is returned by Set when the session carries no token.
// A stored session always has a non-empty token.
var ErrEmptyToken = errors.New("session token must not be empty")

// Session is the authenticated state created by a successful login.
// It lives only for the process lifetime; nothing is persisted.
type Session struct {
	Token string
	User  models.User
}

// Listener is notified synchronously after every store change.
type Listener func(active *Session)

// Store keeps at most one active session. It is confined to the UI flow:
// a single logical writer, so no locking. Changes notify subscribers in
// registration order before Set/Clear return.
type Store struct {
	active    *Session
	listeners []Listener
}

func NewStore() *Store {
	return &Store{}
}

// Get returns the active session, or nil when logged out.
func (s *Store) Get() *Session {
	return s.active
}

// Set activates the given session and notifies subscribers.
func (s *Store) Set(sess Session) error {
	if sess.Token == "" {
		return ErrEmptyToken
	}
	s.active = &sess
	s.notify()
	return nil
}

// Clear drops the active session and notifies subscribers. Clearing an
// already-empty store is a no-op and notifies nobody.
func (s *Store) Clear() {
	if s.active == nil {
		return
	}
	s.active = nil
	s.notify()
}

// Subscribe registers a listener for subsequent changes. There is no
// unsubscribe; subscriptions live as long as the app.
func (s *Store) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

func (s *Store) notify() {
	for _, l := range s.listeners {
		l(s.active)
	}
}
