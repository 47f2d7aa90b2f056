package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	domainerrors "autolot/internal/domain/errors"
)

// isUniqueConstraintViolation reports whether err is a duplicate-key fault.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// The postgres driver does not always surface gorm.ErrDuplicatedKey;
	// fall back to the SQLSTATE and message patterns.
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "23505")
}

// translateWriteError converts a storage fault into the domain taxonomy:
// a uniqueness violation becomes Conflict, anything else PersistenceError.
func translateWriteError(err error, details string) error {
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrConflict.WrapMessage(details)
	}

	return domainerrors.NewPersistenceError(err, details)
}
