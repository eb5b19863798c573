package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecker_CollectsEveryField(t *testing.T) {
	errs := NewChecker().
		Required("firstName", "", "Firstname is required.").
		Required("lastName", "Doe", "Lastname is required.").
		Required("email", "  ", "E-Mail is required.").
		Email("email", "  ", "E-Mail must be a valid address.").
		Errors()

	assert.Equal(t, []string{
		"firstName: Firstname is required.",
		"email: E-Mail is required.",
	}, errs.Messages())
}

func TestChecker_OneMessagePerField(t *testing.T) {
	errs := NewChecker().
		Required("email", "", "E-Mail is required.").
		Email("email", "", "E-Mail must be a valid address.").
		MaxLength("email", "", 3, "too long").
		Errors()

	assert.Len(t, errs, 1)
	assert.Equal(t, "E-Mail is required.", errs[0].Message)
}

func TestChecker_Email(t *testing.T) {
	assert.Empty(t, NewChecker().Email("email", "a@b.com", "bad").Errors())
	assert.Len(t, NewChecker().Email("email", "not-an-email", "bad").Errors(), 1)
	// Emptiness is Required's concern.
	assert.Empty(t, NewChecker().Email("email", "", "bad").Errors())
}

func TestChecker_MaxLengthCountsCharacters(t *testing.T) {
	assert.Empty(t, NewChecker().MaxLength("firstName", strings.Repeat("ä", 30), 30, "too long").Errors())
	assert.Len(t, NewChecker().MaxLength("firstName", strings.Repeat("a", 31), 30, "too long").Errors(), 1)
}

func TestChecker_MaxBytesCountsBytes(t *testing.T) {
	assert.Empty(t, NewChecker().MaxBytes("password", strings.Repeat("a", 72), 72, "too long").Errors())
	assert.Len(t, NewChecker().MaxBytes("password", strings.Repeat("a", 73), 72, "too long").Errors(), 1)
	// 36 two-byte runes fill the limit exactly; one more rune exceeds it.
	assert.Empty(t, NewChecker().MaxBytes("password", strings.Repeat("ä", 36), 72, "too long").Errors())
	assert.Len(t, NewChecker().MaxBytes("password", strings.Repeat("ä", 37), 72, "too long").Errors(), 1)
}

func TestChecker_Equal(t *testing.T) {
	assert.Empty(t, NewChecker().Equal("passwordConfirmation", "x", "x", "differs").Errors())

	errs := NewChecker().Equal("passwordConfirmation", "x", "y", "differs").Errors()
	assert.Equal(t, []string{"passwordConfirmation: differs"}, errs.Messages())
}

func TestChecker_NoErrorsIsNil(t *testing.T) {
	errs := NewChecker().Required("name", "Ann Lee", "required").Errors()
	assert.Nil(t, errs)
	assert.Empty(t, errs.Messages())
}
