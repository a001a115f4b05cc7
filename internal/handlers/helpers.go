package handlers

import (
	"net/http"

	"ticketflow/internal/session"
	"ticketflow/internal/view"
)

// baseData builds the context every page starts from: title plus the session
// user when one is logged in.
func baseData(r *http.Request, title string) view.Data {
	d := view.Data{"title": title}
	if sess := session.FromContext(r.Context()); sess != nil {
		if u := sess.User(); u != nil {
			d["user"] = u
		}
	}
	return d
}

// withFlash consumes the session's pending flash message into the page data.
// Only pages that display the flash slot call this; the message is shown once.
func withFlash(r *http.Request, d view.Data) view.Data {
	if sess := session.FromContext(r.Context()); sess != nil {
		if msg := sess.PopFlash(); msg != "" {
			d["flash"] = msg
		}
	}
	return d
}

func renderNotFound(rd *view.Renderer, w http.ResponseWriter, r *http.Request) {
	rd.Render(w, http.StatusNotFound, "404", baseData(r, "Page not found"))
}
