// Package validation provides explicit field checks that collect every
// failure of an input into a list instead of stopping at the first one.
package validation

import (
	"strconv"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldError is a single rejected field.
type FieldError struct {
	Field   string
	Message string
}

// String renders the "field: message" form used in responses.
func (e FieldError) String() string {
	return e.Field + ": " + e.Message
}

// FieldErrors is the ordered result of validating one input.
type FieldErrors []FieldError

// Messages renders every error as "field: message".
func (fe FieldErrors) Messages() []string {
	messages := make([]string, 0, len(fe))
	for _, e := range fe {
		messages = append(messages, e.String())
	}

	return messages
}

// Checker accumulates FieldErrors. A field that already failed is not
// checked again, so each field reports at most one message.
type Checker struct {
	errs   FieldErrors
	failed map[string]bool
}

// NewChecker returns an empty Checker.
func NewChecker() *Checker {
	return &Checker{failed: make(map[string]bool)}
}

// Required fails when value is empty or only whitespace.
func (c *Checker) Required(field, value, message string) *Checker {
	return c.check(field, value, "required", message, isBlank(value))
}

// MaxLength fails when value has more than limit characters.
func (c *Checker) MaxLength(field, value string, limit int, message string) *Checker {
	return c.check(field, value, "max="+strconv.Itoa(limit), message, false)
}

// MaxBytes fails when value is longer than limit bytes.
func (c *Checker) MaxBytes(field, value string, limit int, message string) *Checker {
	if c.failed[field] || len(value) <= limit {
		return c
	}

	return c.fail(field, message)
}

// Email fails when a non-empty value is not an email address.
func (c *Checker) Email(field, value, message string) *Checker {
	if value == "" {
		return c
	}

	return c.check(field, value, "email", message, false)
}

// Equal fails when value differs from other.
func (c *Checker) Equal(field, value, other, message string) *Checker {
	if c.failed[field] || value == other {
		return c
	}

	return c.fail(field, message)
}

// Errors returns the collected failures, nil when all checks passed.
func (c *Checker) Errors() FieldErrors {
	return c.errs
}

func (c *Checker) check(field, value, tag, message string, forceFail bool) *Checker {
	if c.failed[field] {
		return c
	}
	if forceFail || validate.Var(value, tag) != nil {
		return c.fail(field, message)
	}

	return c
}

func (c *Checker) fail(field, message string) *Checker {
	c.failed[field] = true
	c.errs = append(c.errs, FieldError{Field: field, Message: message})

	return c
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}

	return true
}
