// Package session implements the server-side per-visitor state the app hangs
// everything off: the authenticated user, the ticket collection, and the
// one-shot flash message. Records live in memory keyed by a UUID; the browser
// holds only a signed cookie carrying that UUID.
package session

import (
	"sync"
	"time"

	"ticketflow/internal/models"
)

// Well-known value keys. Handlers agree on these; the session itself is a
// generic key/value bag.
const (
	KeyUser    = "user"
	KeyTickets = "tickets"
)

type Session struct {
	id string

	mu        sync.Mutex
	values    map[string]any
	flash     string
	expiresAt time.Time
}

func newSession(id string, ttl time.Duration) *Session {
	return &Session{
		id:        id,
		values:    make(map[string]any),
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) Get(key string) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key]
}

func (s *Session) Set(key string, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = v
}

func (s *Session) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.values[key]
	return ok
}

// Clear drops every key and any pending flash, resetting the session to a
// fresh, unseeded state. The record itself (and its cookie) survives.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = make(map[string]any)
	s.flash = ""
}

// Flash stores a notification shown on the next rendered page only.
func (s *Session) Flash(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flash = msg
}

// PopFlash returns the pending flash message and clears it.
func (s *Session) PopFlash() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := s.flash
	s.flash = ""
	return msg
}

// User returns the authenticated user, or nil.
func (s *Session) User() *models.User {
	u, _ := s.Get(KeyUser).(*models.User)
	return u
}

func (s *Session) SetUser(u *models.User) { s.Set(KeyUser, u) }

func (s *Session) expired(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.After(s.expiresAt)
}

func (s *Session) touch(ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expiresAt = time.Now().Add(ttl)
}
