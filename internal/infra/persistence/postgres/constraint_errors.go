package postgres

import (
	"strings"

	domainerrors "tresor/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// translateWriteError maps constraint violations of an insert or update to
// domain errors. Anything else becomes an opaque DatabaseExecuteError.
func translateWriteError(err error, notNullErr *domainerrors.BaseError, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
	case isNotNullConstraintViolation(err):
		return notNullErr.WithDetails("missing required user information").WrapMessage(details)
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

// Requires TranslateError on the gorm config.
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "not null constraint") ||
		strings.Contains(errMsg, "violates not-null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation
}
