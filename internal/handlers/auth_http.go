package handlers

import (
	"net/http"
	"strings"

	"ticketflow/internal/service"
	"ticketflow/internal/session"
	"ticketflow/internal/validate"
	"ticketflow/internal/view"
)

type AuthHTTP struct {
	svc    *service.Auth
	render *view.Renderer
}

func NewAuthHTTP(svc *service.Auth, rd *view.Renderer) *AuthHTTP {
	return &AuthHTTP{svc: svc, render: rd}
}

func (h *AuthHTTP) LoginPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.renderLogin(w, r, validate.LoginInput{}, validate.Errors{})
	}
}

func (h *AuthHTTP) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in := validate.LoginInput{
			Email:    strings.TrimSpace(r.PostFormValue("email")),
			Password: r.PostFormValue("password"),
		}
		if errs := validate.Login(in); !errs.Valid() {
			h.renderLogin(w, r, in, errs)
			return
		}
		sess := session.FromContext(r.Context())
		sess.SetUser(h.svc.Login(in.Email, in.Password))
		http.Redirect(w, r, "/app", http.StatusFound)
	}
}

func (h *AuthHTTP) SignupPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.renderSignup(w, r, validate.SignupInput{}, validate.Errors{})
	}
}

func (h *AuthHTTP) Signup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in := validate.SignupInput{
			Name:            strings.TrimSpace(r.PostFormValue("name")),
			Email:           strings.TrimSpace(r.PostFormValue("email")),
			Password:        r.PostFormValue("password"),
			ConfirmPassword: r.PostFormValue("confirm_password"),
		}
		if errs := validate.Signup(in); !errs.Valid() {
			h.renderSignup(w, r, in, errs)
			return
		}
		u, err := h.svc.Signup(in.Name, in.Email, in.Password)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		session.FromContext(r.Context()).SetUser(u)
		http.Redirect(w, r, "/app", http.StatusFound)
	}
}

// Logout clears the whole session, ticket collection included; the next
// request starts from a fresh, re-seeded state.
func (h *AuthHTTP) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sess := session.FromContext(r.Context()); sess != nil {
			sess.Clear()
		}
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

func (h *AuthHTTP) renderLogin(w http.ResponseWriter, r *http.Request, in validate.LoginInput, errs validate.Errors) {
	d := withFlash(r, baseData(r, "Login"))
	d["form"] = in
	d["errors"] = errs
	h.render.Render(w, http.StatusOK, "auth/login", d)
}

func (h *AuthHTTP) renderSignup(w http.ResponseWriter, r *http.Request, in validate.SignupInput, errs validate.Errors) {
	d := withFlash(r, baseData(r, "Sign up"))
	d["form"] = in
	d["errors"] = errs
	h.render.Render(w, http.StatusOK, "auth/signup", d)
}
