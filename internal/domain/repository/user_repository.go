// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"tresor/internal/domain/entity"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// Create inserts a new user and sets its generated ID and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// FindByID returns ErrUserNotFound when no row has the given ID.
	FindByID(ctx context.Context, id uint64) (*entity.User, error)

	// FindByEmail returns ErrUserNotFound when no row has the given email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAll returns every user ordered by ID.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// Update overwrites names, email and password hash of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user; ErrUserNotFound when nothing was deleted.
	Delete(ctx context.Context, id uint64) error
}
