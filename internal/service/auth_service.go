package service

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"ticketflow/internal/models"
)

const bcryptCost = 12

// Auth produces the session user for validated credentials. There is no
// credential store: any well-formed login succeeds and signup never persists
// the account. A user repository would slot in here to make either real.
type Auth struct{}

func NewAuth() *Auth { return &Auth{} }

// Login derives the display name from the email's local part.
func (a *Auth) Login(email, password string) *models.User {
	name := email
	if i := strings.Index(email, "@"); i > 0 {
		name = email[:i]
	}
	return &models.User{ID: 1, Email: email, Name: name}
}

func (a *Auth) Signup(name, email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}
	return &models.User{ID: 1, Email: email, Name: name, PasswordHash: string(hash)}, nil
}
