package models

import "time"

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusClosed     Status = "closed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Ticket struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	Priority    Priority  `json:"priority"`
	Assignee    string    `json:"assignee"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SeedTickets returns the fixed sample tickets a fresh session starts with.
func SeedTickets() []Ticket {
	return []Ticket{
		{
			ID:          1,
			Title:       "Login issue with mobile app",
			Description: "Users are unable to log in using the mobile application. The error occurs after entering credentials.",
			Status:      StatusOpen,
			Priority:    PriorityHigh,
			Assignee:    "John Doe",
			CreatedAt:   time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 15, 14, 20, 0, 0, time.UTC),
		},
		{
			ID:          2,
			Title:       "Feature request: Dark mode",
			Description: "Add dark mode support to improve user experience during night time usage.",
			Status:      StatusInProgress,
			Priority:    PriorityMedium,
			Assignee:    "Jane Smith",
			CreatedAt:   time.Date(2024, 1, 14, 9, 15, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 15, 11, 45, 0, 0, time.UTC),
		},
		{
			ID:          3,
			Title:       "Payment processing error",
			Description: "Payment gateway returns error 500 when processing credit card transactions.",
			Status:      StatusOpen,
			Priority:    PriorityHigh,
			Assignee:    "Mike Johnson",
			CreatedAt:   time.Date(2024, 1, 14, 16, 20, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 14, 16, 20, 0, 0, time.UTC),
		},
		{
			ID:          4,
			Title:       "UI improvement suggestions",
			Description: "Several UI elements could be improved for better accessibility and user experience.",
			Status:      StatusClosed,
			Priority:    PriorityLow,
			Assignee:    "Sarah Wilson",
			CreatedAt:   time.Date(2024, 1, 13, 14, 10, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 14, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:          5,
			Title:       "Database performance issue",
			Description: "Queries are running slowly during peak hours, affecting application performance.",
			Status:      StatusInProgress,
			Priority:    PriorityHigh,
			Assignee:    "Alex Brown",
			CreatedAt:   time.Date(2024, 1, 12, 11, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 15, 9, 15, 0, 0, time.UTC),
		},
	}
}
