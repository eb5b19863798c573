// Package entity contains the core business objects of the project.
package entity

import "time"

// User is a registered account. The ID is assigned by persistence and is zero
// until the user has been created.
type User struct {
	ID           uint64
	FirstName    string
	LastName     string
	Email        string // unique, used for lookup and login
	PasswordHash string // bcrypt output, never the raw password
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
