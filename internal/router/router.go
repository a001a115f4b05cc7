package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog"

	"ticketflow/internal/config"
	"ticketflow/internal/handlers"
	"ticketflow/internal/middleware"
	"ticketflow/internal/service"
	"ticketflow/internal/session"
	"ticketflow/internal/view"
)

func New(log zerolog.Logger, cfg config.Config, sessions *session.Manager, rd *view.Renderer) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(httprate.LimitByIP(200, time.Minute))
	r.Use(sessions.Middleware)

	r.Get("/healthz", handlers.Health())

	pages := handlers.NewPages(rd)
	auth := handlers.NewAuthHTTP(service.NewAuth(), rd)
	tickets := handlers.NewTicketHTTP(rd)

	r.Get("/", pages.Landing())

	r.Get("/auth/login", auth.LoginPage())
	r.Post("/auth/login", auth.Login())
	r.Get("/auth/signup", auth.SignupPage())
	r.Post("/auth/signup", auth.Signup())
	r.Handle("/auth/logout", auth.Logout()) // any method

	// Protected subtree: the auth gate runs before every handler here.
	r.Route("/app", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", tickets.Dashboard())
		r.Get("/dashboard", tickets.Dashboard())
		r.Route("/tickets", func(r chi.Router) {
			r.Get("/", tickets.List())
			r.Get("/create", tickets.CreatePage())
			r.Post("/create", tickets.Create())
			// Non-numeric ids fall through to the 404 handler.
			r.Route("/{id:[0-9]+}", func(r chi.Router) {
				r.Get("/edit", tickets.EditPage())
				r.Post("/edit", tickets.Edit())
				r.Get("/delete", tickets.Delete())
				r.Post("/delete", tickets.Delete())
			})
		})
	})

	r.NotFound(pages.NotFound())

	return r
}
