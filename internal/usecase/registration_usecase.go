package usecase

import (
	"context"

	"tresor/internal/domain/entity"
	"tresor/internal/domain/validation"
)

// RegisterUserInput is the new-user form.
type RegisterUserInput struct {
	FirstName            string `json:"firstName"`
	LastName             string `json:"lastName"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"passwordConfirmation,omitempty"`
	CaptchaResponse      string `json:"captchaResponse"`
}

// Validate checks the shape of the form. Password strength is checked
// separately by the registration flow.
func (in *RegisterUserInput) Validate() validation.FieldErrors {
	checker := validateName(validation.NewChecker(), in.FirstName, in.LastName)
	checker = validateEmail(checker, in.Email)
	checker.
		Required("password", in.Password, "Password is required.").
		MaxBytes("password", in.Password, maxPasswordBytes, "Password must be at most 72 bytes.")
	if in.PasswordConfirmation != "" {
		checker.Equal("passwordConfirmation", in.PasswordConfirmation, in.Password,
			"Password and password-confirmation are not equal.")
	}

	return checker.Errors()
}

// RegisterOutput carries the stored user, ID assigned.
type RegisterOutput struct {
	User *entity.User
}

// RegistrationUsecase creates new users.
type RegistrationUsecase interface {
	// RegisterUser runs CAPTCHA, field validation, password policy, hashing
	// and persistence in that order and stops at the first failure.
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)
}

func validateName(checker *validation.Checker, firstName, lastName string) *validation.Checker {
	return checker.
		Required("firstName", firstName, "Firstname is required.").
		MaxLength("firstName", firstName, maxNameLength, "Firstname must be at most 30 characters.").
		Required("lastName", lastName, "Lastname is required.").
		MaxLength("lastName", lastName, maxNameLength, "Lastname must be at most 30 characters.")
}

func validateEmail(checker *validation.Checker, email string) *validation.Checker {
	return checker.
		Required("email", email, "E-Mail is required.").
		Email("email", email, "E-Mail must be a valid address.").
		MaxLength("email", email, maxEmailLength, "E-Mail must be at most 255 characters.")
}
