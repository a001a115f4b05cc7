package repository

import (
	"context"
	"errors"

	"ticketflow/internal/models"
)

// ErrNotFound signals an id absent from the collection.
var ErrNotFound = errors.New("ticket not found")

type TicketRepository interface {
	List(ctx context.Context) ([]models.Ticket, error)
	Filter(ctx context.Context, f TicketFilter) ([]models.Ticket, error)
	Get(ctx context.Context, id int) (*models.Ticket, error)
	Create(ctx context.Context, t *models.Ticket) error
	Update(ctx context.Context, t *models.Ticket) error
	Delete(ctx context.Context, id int) error
	Stats(ctx context.Context) (TicketStats, error)
	Recent(ctx context.Context, n int) ([]models.Ticket, error)
}

type TicketStats struct {
	Total      int
	Open       int
	InProgress int
	Closed     int
}
