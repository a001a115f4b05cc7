package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"ticketflow/internal/models"
	"ticketflow/internal/repository"
	"ticketflow/internal/repository/memory"
	"ticketflow/internal/session"
	"ticketflow/internal/utils"
	"ticketflow/internal/validate"
	"ticketflow/internal/view"
)

const (
	flashCreated = "Ticket created successfully!"
	flashUpdated = "Ticket updated successfully!"
	flashDeleted = "Ticket deleted successfully!"
)

// TicketHTTP serves the authenticated /app pages. Every request operates on
// the ticket store owned by the visitor's session.
type TicketHTTP struct {
	render *view.Renderer
}

func NewTicketHTTP(rd *view.Renderer) *TicketHTTP {
	return &TicketHTTP{render: rd}
}

// store returns the session's ticket repository, seeding the sample tickets
// on first access (and after logout wiped the session).
func (h *TicketHTTP) store(r *http.Request) repository.TicketRepository {
	sess := session.FromContext(r.Context())
	if st, ok := sess.Get(session.KeyTickets).(*memory.TicketStore); ok {
		return st
	}
	st := memory.NewTicketStore(models.SeedTickets())
	sess.Set(session.KeyTickets, st)
	return st
}

func (h *TicketHTTP) Dashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := h.store(r)
		stats, err := store.Stats(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		recent, err := store.Recent(r.Context(), 5)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		d := withFlash(r, baseData(r, "Dashboard"))
		d["stats"] = stats
		d["recent"] = recent
		h.render.Render(w, http.StatusOK, "dashboard", d)
	}
}

func (h *TicketHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qv := r.URL.Query()
		f := repository.TicketFilter{
			Q:        strings.TrimSpace(qv.Get("search")),
			Status:   utils.QueryString(qv, "status", repository.FilterAll),
			Priority: utils.QueryString(qv, "priority", repository.FilterAll),
		}
		items, err := h.store(r).Filter(r.Context(), f)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		d := withFlash(r, baseData(r, "Tickets"))
		d["tickets"] = items
		d["search"] = f.Q
		d["status_filter"] = f.Status
		d["priority_filter"] = f.Priority
		h.render.Render(w, http.StatusOK, "tickets/list", d)
	}
}

func (h *TicketHTTP) CreatePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.renderCreate(w, r, validate.TicketInput{}, validate.Errors{})
	}
}

func (h *TicketHTTP) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in := ticketInputFromForm(r)
		if errs := validate.Ticket(in); !errs.Valid() {
			h.renderCreate(w, r, in, errs)
			return
		}
		t := models.Ticket{
			Title:       strings.TrimSpace(in.Title),
			Description: in.Description,
			Status:      models.Status(in.Status),
			Priority:    models.Priority(in.Priority),
		}
		if err := h.store(r).Create(r.Context(), &t); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		session.FromContext(r.Context()).Flash(flashCreated)
		http.Redirect(w, r, "/app/tickets", http.StatusFound)
	}
}

func (h *TicketHTTP) EditPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := ticketID(r)
		if !ok {
			renderNotFound(h.render, w, r)
			return
		}
		t, err := h.store(r).Get(r.Context(), id)
		if err != nil {
			renderNotFound(h.render, w, r)
			return
		}
		in := validate.TicketInput{
			Title:       t.Title,
			Description: t.Description,
			Status:      string(t.Status),
			Priority:    string(t.Priority),
		}
		h.renderEdit(w, r, id, in, validate.Errors{})
	}
}

func (h *TicketHTTP) Edit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := ticketID(r)
		if !ok {
			renderNotFound(h.render, w, r)
			return
		}
		store := h.store(r)
		if _, err := store.Get(r.Context(), id); err != nil {
			renderNotFound(h.render, w, r)
			return
		}
		in := ticketInputFromForm(r)
		if errs := validate.Ticket(in); !errs.Valid() {
			h.renderEdit(w, r, id, in, errs)
			return
		}
		t := models.Ticket{
			ID:          id,
			Title:       strings.TrimSpace(in.Title),
			Description: in.Description,
			Status:      models.Status(in.Status),
			Priority:    models.Priority(in.Priority),
		}
		if err := store.Update(r.Context(), &t); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				renderNotFound(h.render, w, r)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		session.FromContext(r.Context()).Flash(flashUpdated)
		http.Redirect(w, r, "/app/tickets", http.StatusFound)
	}
}

func (h *TicketHTTP) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := ticketID(r)
		if !ok {
			renderNotFound(h.render, w, r)
			return
		}
		if err := h.store(r).Delete(r.Context(), id); err != nil {
			renderNotFound(h.render, w, r)
			return
		}
		session.FromContext(r.Context()).Flash(flashDeleted)
		http.Redirect(w, r, "/app/tickets", http.StatusFound)
	}
}

func (h *TicketHTTP) renderCreate(w http.ResponseWriter, r *http.Request, in validate.TicketInput, errs validate.Errors) {
	d := baseData(r, "New ticket")
	d["form"] = in
	d["errors"] = errs
	h.render.Render(w, http.StatusOK, "tickets/create", d)
}

func (h *TicketHTTP) renderEdit(w http.ResponseWriter, r *http.Request, id int, in validate.TicketInput, errs validate.Errors) {
	d := baseData(r, "Edit ticket")
	d["ticket_id"] = id
	d["form"] = in
	d["errors"] = errs
	h.render.Render(w, http.StatusOK, "tickets/edit", d)
}

func ticketInputFromForm(r *http.Request) validate.TicketInput {
	return validate.TicketInput{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		Status:      r.PostFormValue("status"),
		Priority:    r.PostFormValue("priority"),
	}
}

// ticketID parses the {id} path parameter. The route pattern already pins it
// to decimal digits; the Atoi guards against overflow.
func ticketID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, false
	}
	return id, true
}
