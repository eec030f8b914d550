package apperror

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// FromRepository translates storage errors into AppErrors. notFound is returned for
// gorm.ErrRecordNotFound so each feature keeps its own "x not found" message.
func FromRepository(err error, notFound *AppError) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if notFound != nil {
			return notFound
		}
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return Wrap(err, ErrForeignKeyViolation.Code, ErrForeignKeyViolation.Message, ErrForeignKeyViolation.HTTPStatus).
				WithMessageID(ErrForeignKeyViolation.MessageID)
		case pgUniqueViolation:
			return Wrap(err, ErrDuplicate.Code, ErrDuplicate.Message, ErrDuplicate.HTTPStatus).
				WithMessageID(ErrDuplicate.MessageID)
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "violates foreign key constraint") {
		return Wrap(err, ErrForeignKeyViolation.Code, ErrForeignKeyViolation.Message, ErrForeignKeyViolation.HTTPStatus).
			WithMessageID(ErrForeignKeyViolation.MessageID)
	}
	if strings.Contains(errMsg, "duplicate key value") {
		return Wrap(err, ErrDuplicate.Code, ErrDuplicate.Message, ErrDuplicate.HTTPStatus).
			WithMessageID(ErrDuplicate.MessageID)
	}

	return err
}

// IsUniqueViolation reports whether err came from a violated unique constraint.
func IsUniqueViolation(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.MessageID == ErrDuplicate.MessageID {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
