package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domainerrors "autolot/internal/domain/errors"
)

func TestValidateFilter(t *testing.T) {
	columns := columnSet("id", "name", "zip_code")

	t.Run("accepts known columns", func(t *testing.T) {
		err := validateFilter("stores", columns, map[string]any{"name": "North", "zip_code": 30301})
		assert.NoError(t, err)
	})

	t.Run("accepts empty filter", func(t *testing.T) {
		assert.NoError(t, validateFilter("stores", columns, nil))
	})

	t.Run("rejects unknown column", func(t *testing.T) {
		err := validateFilter("stores", columns, map[string]any{"nmae": "North"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidFilter)
		assert.Contains(t, err.Error(), "nmae")
	})
}

func TestTranslateWriteError(t *testing.T) {
	t.Run("duplicated key becomes conflict", func(t *testing.T) {
		err := translateWriteError(gorm.ErrDuplicatedKey, "insert into users")
		assert.ErrorIs(t, err, domainerrors.ErrConflict)
	})

	t.Run("sqlstate 23505 becomes conflict", func(t *testing.T) {
		err := translateWriteError(
			errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`),
			"insert into users")
		assert.ErrorIs(t, err, domainerrors.ErrConflict)
	})

	t.Run("other faults become persistence errors", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := translateWriteError(cause, "insert into users")

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "PERSISTENCE_ERROR", appErr.ErrorCode())
		assert.ErrorIs(t, err, cause)
	})
}

func TestHashedPasswordIsNotFilterable(t *testing.T) {
	err := validateFilter("users", userColumns, map[string]any{"hashed_password": "x"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidFilter)
}
