package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-workforce/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

var errShiftNotFound = apperror.New(apperror.CodeNotFound, "shift not found", http.StatusNotFound).
	WithMessageID("shift.not_found")

func TestFromRepository(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, apperror.FromRepository(nil, errShiftNotFound))
	})

	t.Run("record not found uses the feature sentinel", func(t *testing.T) {
		err := apperror.FromRepository(fmt.Errorf("find: %w", gorm.ErrRecordNotFound), errShiftNotFound)
		assert.ErrorIs(t, err, errShiftNotFound)

		err = apperror.FromRepository(gorm.ErrRecordNotFound, nil)
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("pg codes", func(t *testing.T) {
		err := apperror.FromRepository(&pgconn.PgError{Code: "23503"}, nil)
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, apperror.CodeForeignKeyViolation, httpErr.Code)
		assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)

		err = apperror.FromRepository(&pgconn.PgError{Code: "23505"}, nil)
		assert.Equal(t, http.StatusConflict, apperror.ToHTTP(err).Status)
		assert.True(t, apperror.IsUniqueViolation(err))
	})

	t.Run("app errors pass through", func(t *testing.T) {
		err := apperror.FromRepository(apperror.ErrStaleVersion, errShiftNotFound)
		assert.ErrorIs(t, err, apperror.ErrStaleVersion)
	})

	t.Run("unknown errors are kept", func(t *testing.T) {
		raw := errors.New("connection reset")
		assert.Equal(t, raw, apperror.FromRepository(raw, nil))
	})
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, apperror.IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, apperror.IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, apperror.IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, apperror.IsUniqueViolation(errors.New("duplicate")))
}

func TestWithDetails(t *testing.T) {
	err := errShiftNotFound.WithDetails(map[string]string{"id": "x"})

	assert.ErrorIs(t, err, errShiftNotFound)
	assert.Nil(t, errShiftNotFound.Details)

	httpErr := apperror.ToHTTP(err)
	assert.Equal(t, "shift.not_found", httpErr.MessageID)
	assert.Equal(t, map[string]string{"id": "x"}, httpErr.Details)
}

func TestToHTTP_HidesUnknownErrors(t *testing.T) {
	httpErr := apperror.ToHTTP(errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
	assert.NotContains(t, httpErr.Message, "password")
}
