package router

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"ticketflow/internal/config"
	"ticketflow/internal/session"
	"ticketflow/internal/view"
)

func newTestServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()
	rd, err := view.New()
	if err != nil {
		t.Fatalf("view.New: %v", err)
	}
	cfg := config.Config{
		Env:           "test",
		SessionSecret: "test-secret",
		SessionTTL:    time.Hour,
		Origin:        "http://localhost",
	}
	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL)
	t.Cleanup(sessions.Close)

	srv := httptest.NewServer(New(zerolog.Nop(), cfg, sessions, rd))
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return srv, client
}

func get(t *testing.T, c *http.Client, url string) (*http.Response, string) {
	t.Helper()
	resp, err := c.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, string(b)
}

func postForm(t *testing.T, c *http.Client, url string, form url.Values) (*http.Response, string) {
	t.Helper()
	resp, err := c.PostForm(url, form)
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, string(b)
}

func login(t *testing.T, c *http.Client, base string) {
	t.Helper()
	resp, _ := postForm(t, c, base+"/auth/login", url.Values{
		"email":    {"jane@example.com"},
		"password": {"secret1"},
	})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("login status = %d, want 302", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/app" {
		t.Fatalf("login redirect = %q, want /app", loc)
	}
}

func TestAuthGateRedirectsToLogin(t *testing.T) {
	t.Parallel()
	srv, client := newTestServer(t)

	for _, path := range []string{"/app", "/app/dashboard", "/app/tickets", "/app/tickets/create", "/app/tickets/1/edit"} {
		resp, _ := get(t, client, srv.URL+path)
		if resp.StatusCode != http.StatusFound {
			t.Errorf("GET %s status = %d, want 302", path, resp.StatusCode)
		}
		if loc := resp.Header.Get("Location"); loc != "/auth/login" {
			t.Errorf("GET %s redirect = %q, want /auth/login", path, loc)
		}
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	t.Parallel()
	srv, client := newTestServer(t)

	resp, body := get(t, client, srv.URL+"/nope")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	if !strings.Contains(body, "Page not found") {
		t.Errorf("404 page body missing heading: %q", body)
	}
}

func TestLandingAndHealth(t *testing.T) {
	t.Parallel()
	srv, client := newTestServer(t)

	resp, body := get(t, client, srv.URL+"/")
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, "TicketFlow") {
		t.Errorf("landing: status %d", resp.StatusCode)
	}
	resp, body = get(t, client, srv.URL+"/healthz")
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, `"ok"`) {
		t.Errorf("healthz: status %d body %q", resp.StatusCode, body)
	}
}

func TestLoginValidationFailure(t *testing.T) {
	t.Parallel()
	srv, client := newTestServer(t)

	resp, body := postForm(t, client, srv.URL+"/auth/login", url.Values{
		"email":    {"not-an-email"},
		"password": {"secret1"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200 re-render", resp.StatusCode)
	}
	if !strings.Contains(body, "Email is invalid") {
		t.Error("error message not rendered")
	}
	if !strings.Contains(body, `value="not-an-email"`) {
		t.Error("submitted email not preserved")
	}

	// No user was set: the gate still redirects.
	resp, _ = get(t, client, srv.URL+"/app")
	if resp.StatusCode != http.StatusFound {
		t.Errorf("gate after failed login: status = %d, want 302", resp.StatusCode)
	}
}

func TestSignupValidationFailure(t *testing.T) {
	t.Parallel()
	srv, client := newTestServer(t)

	resp, body := postForm(t, client, srv.URL+"/auth/signup", url.Values{
		"name":             {"Jane"},
		"email":            {"jane@example.com"},
		"password":         {"secret1"},
		"confirm_password": {"secret2"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200 re-render", resp.StatusCode)
	}
	if !strings.Contains(body, "Passwords do not match") {
		t.Error("confirm_password error not rendered")
	}
}

func TestSignupSuccess(t *testing.T) {
	t.Parallel()
	srv, client := newTestServer(t)

	resp, _ := postForm(t, client, srv.URL+"/auth/signup", url.Values{
		"name":             {"Jane Doe"},
		"email":            {"jane@example.com"},
		"password":         {"secret1"},
		"confirm_password": {"secret1"},
	})
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/app" {
		t.Fatalf("signup: status %d location %q", resp.StatusCode, resp.Header.Get("Location"))
	}

	_, body := get(t, client, srv.URL+"/app/dashboard")
	if !strings.Contains(body, "Jane Doe") {
		t.Error("dashboard does not greet the signed-up user")
	}
}

func TestDashboardStats(t *testing.T) {
	t.Parallel()
	srv, client := newTestServer(t)
	login(t, client, srv.URL)

	resp, body := get(t, client, srv.URL+"/app/dashboard")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	for _, want := range []string{"Total: 5", "Open: 2", "In progress: 2", "Closed: 1"} {
		if !strings.Contains(body, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
	// Login name comes from the email local part.
	if !strings.Contains(body, "jane") {
		t.Error("dashboard missing user name")
	}
}

func TestTicketListAndFilters(t *testing.T) {
	t.Parallel()
	srv, client := newTestServer(t)
	login(t, client, srv.URL)

	_, body := get(t, client, srv.URL+"/app/tickets")
	if got := strings.Count(body, "/delete"); got != 5 {
		t.Errorf("seed list shows %d rows, want 5", got)
	}

	_, body = get(t, client, srv.URL+"/app/tickets?search=payment&status=all&priority=all")
	if !strings.Contains(body, "Payment processing error") {
		t.Error("search=payment missing the payment ticket")
	}
	if got := strings.Count(body, "/delete"); got != 1 {
		t.Errorf("search=payment shows %d rows, want 1", got)
	}

	_, body = get(t, client, srv.URL+"/app/tickets?status=closed")
	if !strings.Contains(body, "UI improvement suggestions") {
		t.Error("status=closed missing ticket 4")
	}
	if got := strings.Count(body, "/delete"); got != 1 {
		t.Errorf("status=closed shows %d rows, want 1", got)
	}
}

func TestCreateTicketValidationFailure(t *testing.T) {
	t.Parallel()
	srv, client := newTestServer(t)
	login(t, client, srv.URL)

	resp, body := postForm(t, client, srv.URL+"/app/tickets/create", url.Values{
		"title":  {"ab"},
		"status": {"open"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200 re-render", resp.StatusCode)
	}
	if !strings.Contains(body, "Title must be at least 3 characters long") {
		t.Error("title error not rendered")
	}
	if !strings.Contains(body, `value="ab"`) {
		t.Error("submitted title not preserved")
	}

	// Collection unchanged.
	_, body = get(t, client, srv.URL+"/app/tickets")
	if got := strings.Count(body, "/delete"); got != 5 {
		t.Errorf("list shows %d rows after invalid create, want 5", got)
	}
}

func TestCreateTicketSuccessAndFlash(t *testing.T) {
	t.Parallel()
	srv, client := newTestServer(t)
	login(t, client, srv.URL)

	resp, _ := postForm(t, client, srv.URL+"/app/tickets/create", url.Values{
		"title":       {"Printer on fire"},
		"description": {"Smoke reported on floor 3."},
		"status":      {"open"},
		"priority":    {"high"},
	})
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/app/tickets" {
		t.Fatalf("create: status %d location %q", resp.StatusCode, resp.Header.Get("Location"))
	}

	_, body := get(t, client, srv.URL+"/app/tickets")
	if !strings.Contains(body, "Printer on fire") {
		t.Error("created ticket not listed")
	}
	if !strings.Contains(body, "Ticket created successfully!") {
		t.Error("flash not shown after create")
	}
	if got := strings.Count(body, "/delete"); got != 6 {
		t.Errorf("list shows %d rows, want 6", got)
	}

	// Flash is one-shot.
	_, body = get(t, client, srv.URL+"/app/tickets")
	if strings.Contains(body, "Ticket created successfully!") {
		t.Error("flash shown twice")
	}
}

func TestEditTicket(t *testing.T) {
	t.Parallel()
	srv, client := newTestServer(t)
	login(t, client, srv.URL)

	// The edit form is prefilled from the stored ticket.
	_, body := get(t, client, srv.URL+"/app/tickets/2/edit")
	if !strings.Contains(body, `value="Feature request: Dark mode"`) {
		t.Error("edit form not prefilled")
	}

	resp, _ := postForm(t, client, srv.URL+"/app/tickets/2/edit", url.Values{
		"title":       {"Dark mode shipped"},
		"description": {"Released in 2.1."},
		"status":      {"closed"},
		"priority":    {"low"},
	})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("edit: status %d, want 302", resp.StatusCode)
	}

	_, body = get(t, client, srv.URL+"/app/tickets")
	if !strings.Contains(body, "Dark mode shipped") {
		t.Error("edited title not listed")
	}
	if !strings.Contains(body, "Ticket updated successfully!") {
		t.Error("flash not shown after edit")
	}
}

func TestEditNonexistentTicketIs404(t *testing.T) {
	t.Parallel()
	srv, client := newTestServer(t)
	login(t, client, srv.URL)

	resp, _ := get(t, client, srv.URL+"/app/tickets/9999/edit")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}

	// A non-numeric id never reaches the handler.
	resp, _ = get(t, client, srv.URL+"/app/tickets/abc/edit")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("non-numeric id: status = %d, want 404", resp.StatusCode)
	}
}

func TestDeleteTicket(t *testing.T) {
	t.Parallel()
	srv, client := newTestServer(t)
	login(t, client, srv.URL)

	resp, _ := postForm(t, client, srv.URL+"/app/tickets/1/delete", nil)
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/app/tickets" {
		t.Fatalf("delete: status %d location %q", resp.StatusCode, resp.Header.Get("Location"))
	}

	_, body := get(t, client, srv.URL+"/app/tickets")
	if strings.Contains(body, "Login issue with mobile app") {
		t.Error("deleted ticket still listed")
	}
	if !strings.Contains(body, "Ticket deleted successfully!") {
		t.Error("flash not shown after delete")
	}
	if got := strings.Count(body, "/delete"); got != 4 {
		t.Errorf("list shows %d rows, want 4", got)
	}

	// Deleting it again is a 404.
	resp, _ = postForm(t, client, srv.URL+"/app/tickets/1/delete", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("second delete: status = %d, want 404", resp.StatusCode)
	}
}

func TestLogoutResetsSession(t *testing.T) {
	t.Parallel()
	srv, client := newTestServer(t)
	login(t, client, srv.URL)

	// Mutate the collection, then log out.
	postForm(t, client, srv.URL+"/app/tickets/1/delete", nil)
	resp, _ := get(t, client, srv.URL+"/auth/logout")
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/" {
		t.Fatalf("logout: status %d location %q", resp.StatusCode, resp.Header.Get("Location"))
	}

	// Gate is back.
	resp, _ = get(t, client, srv.URL+"/app/tickets")
	if resp.StatusCode != http.StatusFound {
		t.Errorf("after logout: status = %d, want 302", resp.StatusCode)
	}

	// Logging in again re-seeds the sample tickets, deleted one included.
	login(t, client, srv.URL)
	_, body := get(t, client, srv.URL+"/app/tickets")
	if !strings.Contains(body, "Login issue with mobile app") {
		t.Error("seed data not restored after logout")
	}
	if got := strings.Count(body, "/delete"); got != 5 {
		t.Errorf("re-seeded list shows %d rows, want 5", got)
	}
}

func TestLogoutAcceptsAnyMethod(t *testing.T) {
	t.Parallel()
	srv, client := newTestServer(t)

	resp, _ := postForm(t, client, srv.URL+"/auth/logout", nil)
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/" {
		t.Errorf("POST logout: status %d location %q", resp.StatusCode, resp.Header.Get("Location"))
	}
}
