package models

import "time"

// User represents a registered account.
type User struct {
	ID           string    `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	StudentID    string    `json:"studentId"`
	PasswordHash string    `json:"-"` // Never expose this to the client
	CreatedAt    time.Time `json:"createdAt"`
}

// Reporter is the public projection of a user attached to item responses.
type Reporter struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	StudentID string `json:"studentId"`
}

// Public returns the reporter view of u.
func (u User) Public() Reporter {
	return Reporter{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		StudentID: u.StudentID,
	}
}
