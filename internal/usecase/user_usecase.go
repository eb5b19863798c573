// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"tresor/internal/domain/entity"
	"tresor/internal/domain/validation"
)

const (
	maxNameLength  = 30
	maxEmailLength = 255
	// bcrypt only reads the first 72 bytes and refuses longer input.
	maxPasswordBytes = 72
)

// --- Input DTOs ---

// EmailInput asks for the ID behind an email address.
type EmailInput struct {
	Email string `json:"email"`
}

func (in *EmailInput) Validate() validation.FieldErrors {
	return validation.NewChecker().
		Required("email", in.Email, "E-Mail is required.").
		Errors()
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in *LoginInput) Validate() validation.FieldErrors {
	return validation.NewChecker().
		Required("email", in.Email, "E-Mail is required.").
		Required("password", in.Password, "Password is required.").
		Errors()
}

// UpdateUserInput replaces the profile fields of a user. The password is
// not part of it.
type UpdateUserInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func (in *UpdateUserInput) Validate() validation.FieldErrors {
	return validateEmail(validateName(validation.NewChecker(), in.FirstName, in.LastName), in.Email).Errors()
}

// UserUsecase covers lookup and management of existing users.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	GetUserByID(ctx context.Context, id uint64) (*entity.User, error)
	GetAllUsers(ctx context.Context) ([]*entity.User, error)
	UpdateUser(ctx context.Context, id uint64, input *UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id uint64) error

	// FindUserIDByEmail resolves an email to a user ID.
	FindUserIDByEmail(ctx context.Context, input *EmailInput) (uint64, error)

	// Login resolves the email to a user ID. The password is only compared
	// with the stored hash when auth.verifyPasswordOnLogin is set.
	Login(ctx context.Context, input *LoginInput) (uint64, error)
}
