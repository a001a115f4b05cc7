// Package memory holds the in-memory TicketRepository backing a single
// session. Ticket state lives for the session's lifetime only; a persistent
// implementation would slot in behind the same interface.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"ticketflow/internal/models"
	"ticketflow/internal/repository"
)

// DefaultAssignee is stamped onto tickets created through the app.
const DefaultAssignee = "Current User"

type TicketStore struct {
	mu    sync.Mutex
	items []models.Ticket
	now   func() time.Time
}

var _ repository.TicketRepository = (*TicketStore)(nil)

func NewTicketStore(seed []models.Ticket) *TicketStore {
	items := make([]models.Ticket, len(seed))
	copy(items, seed)
	return &TicketStore{items: items, now: time.Now}
}

func (s *TicketStore) List(ctx context.Context) ([]models.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(), nil
}

func (s *TicketStore) Filter(ctx context.Context, f repository.TicketFilter) ([]models.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f.Empty() {
		return s.snapshot(), nil
	}
	q := strings.ToLower(f.Q)
	out := make([]models.Ticket, 0, len(s.items))
	for _, t := range s.items {
		if q != "" &&
			!strings.Contains(strings.ToLower(t.Title), q) &&
			!strings.Contains(strings.ToLower(t.Description), q) {
			continue
		}
		if f.Status != "" && f.Status != repository.FilterAll && string(t.Status) != f.Status {
			continue
		}
		if f.Priority != "" && f.Priority != repository.FilterAll && string(t.Priority) != f.Priority {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *TicketStore) Get(ctx context.Context, id int) (*models.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.items {
		if t.ID == id {
			c := t
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

// Create assigns the next id (max existing + 1, or 1 on an empty collection),
// stamps both timestamps, and appends.
func (s *TicketStore) Create(ctx context.Context, t *models.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	maxID := 0
	for _, it := range s.items {
		if it.ID > maxID {
			maxID = it.ID
		}
	}
	t.ID = maxID + 1
	now := s.now()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Assignee == "" {
		t.Assignee = DefaultAssignee
	}
	s.items = append(s.items, *t)
	return nil
}

// Update mutates the matching ticket's title, description, status and
// priority and bumps UpdatedAt. Id, CreatedAt and Assignee are untouched.
func (s *TicketStore) Update(ctx context.Context, t *models.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == t.ID {
			s.items[i].Title = t.Title
			s.items[i].Description = t.Description
			s.items[i].Status = t.Status
			s.items[i].Priority = t.Priority
			s.items[i].UpdatedAt = s.now()
			*t = s.items[i]
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *TicketStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	found := false
	for _, t := range s.items {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	s.items = kept
	if !found {
		return repository.ErrNotFound
	}
	return nil
}

func (s *TicketStore) Stats(ctx context.Context) (repository.TicketStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := repository.TicketStats{Total: len(s.items)}
	for _, t := range s.items {
		switch t.Status {
		case models.StatusOpen:
			st.Open++
		case models.StatusInProgress:
			st.InProgress++
		case models.StatusClosed:
			st.Closed++
		}
	}
	return st, nil
}

// Recent returns up to n tickets, most recently inserted first.
func (s *TicketStore) Recent(ctx context.Context, n int) ([]models.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n > len(s.items) {
		n = len(s.items)
	}
	out := make([]models.Ticket, 0, n)
	for i := len(s.items) - 1; i >= len(s.items)-n; i-- {
		out = append(out, s.items[i])
	}
	return out, nil
}

func (s *TicketStore) snapshot() []models.Ticket {
	out := make([]models.Ticket, len(s.items))
	copy(out, s.items)
	return out
}
