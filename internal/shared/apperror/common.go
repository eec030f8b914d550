package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	).WithMessageID("error.not_found")

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	).WithMessageID("error.forbidden")

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	).WithMessageID("error.internal")

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	).WithMessageID("error.unauthorized")

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	).WithMessageID("error.invalid_input")

	ErrForeignKeyViolation = New(
		CodeForeignKeyViolation,
		"A referenced branch, employee or shift does not exist",
		http.StatusUnprocessableEntity,
	).WithMessageID("error.foreign_key_violation")

	ErrDuplicate = New(
		CodeConflict,
		"The record already exists",
		http.StatusConflict,
	).WithMessageID("error.duplicate")

	ErrStaleVersion = New(
		CodeConflict,
		"The record was modified by someone else, reload and try again",
		http.StatusConflict,
	).WithMessageID("error.stale_version")

	ErrTooManyRequests = New(
		CodeTooManyRequests,
		"Too many requests",
		http.StatusTooManyRequests,
	).WithMessageID("error.too_many_requests")
)

func RequiredField(field string) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    fmt.Sprintf("%s is required", field),
		MessageID:  "error.required_field",
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]string{"field": field},
	}
}

func InvalidField(field string) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    fmt.Sprintf("%s is invalid", field),
		MessageID:  "error.invalid_field",
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]string{"field": field},
	}
}
