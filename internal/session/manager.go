package session

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const cookieName = "session"

type ctxKey struct{}

// Manager owns the session records and the signed cookie that references
// them. Expired records are evicted lazily on lookup and swept by a janitor
// goroutine.
type Manager struct {
	secret []byte
	ttl    time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session

	done chan struct{}
	once sync.Once
}

func NewManager(secret string, ttl time.Duration) *Manager {
	m := &Manager{
		secret:   []byte(secret),
		ttl:      ttl,
		sessions: make(map[string]*Session),
		done:     make(chan struct{}),
	}
	go m.janitor()
	return m
}

// Close stops the janitor.
func (m *Manager) Close() {
	m.once.Do(func() { close(m.done) })
}

func (m *Manager) janitor() {
	t := time.NewTicker(time.Minute)
	defer t.Stop()
	for {
		select {
		case <-m.done:
			return
		case now := <-t.C:
			m.mu.Lock()
			for id, s := range m.sessions {
				if s.expired(now) {
					delete(m.sessions, id)
				}
			}
			m.mu.Unlock()
		}
	}
}

func (m *Manager) lookup(id string) (*Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.expired(time.Now()) {
		m.mu.Lock()
		delete(m.sessions, id)
		m.mu.Unlock()
		return nil, false
	}
	return s, true
}

func (m *Manager) create() *Session {
	s := newSession(uuid.NewString(), m.ttl)
	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()
	return s
}

// The cookie value is a signed JWT whose subject is the session ID; the
// browser never sees server-side state, only an opaque reference to it.
func (m *Manager) signCookie(id string) (string, error) {
	now := time.Now()
	return jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}).SignedString(m.secret)
}

func (m *Manager) parseCookie(tok string) (string, bool) {
	t, err := jwt.ParseWithClaims(tok, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil || !t.Valid {
		return "", false
	}
	c, ok := t.Claims.(*jwt.RegisteredClaims)
	if !ok || c.Subject == "" {
		return "", false
	}
	return c.Subject, true
}

func (m *Manager) setCookie(w http.ResponseWriter, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(m.ttl),
	})
}

// Middleware resolves the visitor's session from the cookie, creating a fresh
// one (and issuing a new cookie) when the cookie is absent, invalid, or
// references an expired record. Handlers reach the session via FromContext.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sess *Session
		if c, err := r.Cookie(cookieName); err == nil {
			if id, ok := m.parseCookie(c.Value); ok {
				if s, ok := m.lookup(id); ok {
					sess = s
				}
			}
		}
		if sess == nil {
			sess = m.create()
			if tok, err := m.signCookie(sess.id); err == nil {
				m.setCookie(w, tok)
			}
		} else {
			sess.touch(m.ttl)
		}
		ctx := context.WithValue(r.Context(), ctxKey{}, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromContext returns the request's session, or nil outside the middleware.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(ctxKey{}).(*Session)
	return s
}
