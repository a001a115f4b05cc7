package models

type User struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	// PasswordHash is kept on the session user after signup; it is never
	// rendered and there is no credential store to verify it against.
	PasswordHash string `json:"-"`
}
