// Package validate checks form payloads. Validators are pure: each takes a
// typed input and returns a field-to-message map; an empty map means valid.
// Only the first failing rule per field is reported.
package validate

import (
	"net/mail"
	"strings"

	"ticketflow/internal/models"
)

type Errors map[string]string

func (e Errors) Valid() bool { return len(e) == 0 }

type LoginInput struct {
	Email    string
	Password string
}

type SignupInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

type TicketInput struct {
	Title       string
	Description string
	Status      string
	Priority    string
}

func Login(in LoginInput) Errors {
	errs := Errors{}
	switch {
	case in.Email == "":
		errs["email"] = "Email is required"
	case !validEmail(in.Email):
		errs["email"] = "Email is invalid"
	}
	switch {
	case in.Password == "":
		errs["password"] = "Password is required"
	case len(in.Password) < 6:
		errs["password"] = "Password must be at least 6 characters"
	}
	return errs
}

func Signup(in SignupInput) Errors {
	errs := Errors{}
	switch {
	case in.Name == "":
		errs["name"] = "Name is required"
	case len(in.Name) < 2:
		errs["name"] = "Name must be at least 2 characters"
	}
	switch {
	case in.Email == "":
		errs["email"] = "Email is required"
	case !validEmail(in.Email):
		errs["email"] = "Email is invalid"
	}
	switch {
	case in.Password == "":
		errs["password"] = "Password is required"
	case len(in.Password) < 6:
		errs["password"] = "Password must be at least 6 characters"
	}
	switch {
	case in.ConfirmPassword == "":
		errs["confirm_password"] = "Please confirm your password"
	case in.Password != in.ConfirmPassword:
		errs["confirm_password"] = "Passwords do not match"
	}
	return errs
}

func Ticket(in TicketInput) Errors {
	errs := Errors{}
	title := strings.TrimSpace(in.Title)
	switch {
	case title == "":
		errs["title"] = "Title is required"
	case len(title) < 3:
		errs["title"] = "Title must be at least 3 characters long"
	case len(title) > 100:
		errs["title"] = "Title must be less than 100 characters"
	}
	if in.Description != "" && len(in.Description) > 1000 {
		errs["description"] = "Description must be less than 1000 characters"
	}
	switch {
	case in.Status == "":
		errs["status"] = "Status is required"
	case !models.Status(in.Status).Valid():
		errs["status"] = "Status must be one of: open, in_progress, closed"
	}
	if in.Priority != "" && !models.Priority(in.Priority).Valid() {
		errs["priority"] = "Priority must be one of: low, medium, high"
	}
	return errs
}

// validEmail accepts a single RFC 5322 address with a dotted domain, which is
// what the login and signup forms mean by an email address.
func validEmail(s string) bool {
	a, err := mail.ParseAddress(s)
	if err != nil || a.Address != s {
		return false
	}
	at := strings.LastIndex(s, "@")
	return at > 0 && strings.Contains(s[at+1:], ".")
}
