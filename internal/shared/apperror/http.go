package apperror

import (
	"errors"
	"net/http"
)

type HTTPError struct {
	Status    int
	Code      string
	Message   string
	MessageID string
	Details   any
}

// ToHTTP flattens any error into the payload written by response.Error.
// Errors that are not AppErrors are reported as INTERNAL_ERROR without their text.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		return HTTPError{
			Status:    status,
			Code:      appErr.Code,
			Message:   appErr.Message,
			MessageID: appErr.MessageID,
			Details:   appErr.Details,
		}
	}

	return HTTPError{
		Status:    ErrInternal.HTTPStatus,
		Code:      ErrInternal.Code,
		Message:   ErrInternal.Message,
		MessageID: ErrInternal.MessageID,
	}
}
