package handlers

import (
	"encoding/json"
	"net/http"

	"ticketflow/internal/view"
)

type Pages struct {
	render *view.Renderer
}

func NewPages(rd *view.Renderer) *Pages { return &Pages{render: rd} }

func (h *Pages) Landing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render.Render(w, http.StatusOK, "landing", baseData(r, "Home"))
	}
}

func (h *Pages) NotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderNotFound(h.render, w, r)
	}
}

func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}
