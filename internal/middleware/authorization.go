package middleware

import (
	"net/http"

	"ticketflow/internal/session"
)

// RequireAuth redirects visitors without a session user to the login page.
// It runs before any handler logic on the protected subtree.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromContext(r.Context())
		if sess == nil || !sess.Has(session.KeyUser) {
			http.Redirect(w, r, "/auth/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
