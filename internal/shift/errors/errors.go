package shifterrors

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var (
	ErrShiftNotFound = apperror.New(
		apperror.CodeNotFound,
		"shift not found",
		http.StatusNotFound,
	).WithMessageID("shift.not_found")
	ErrShiftInUse = apperror.New(
		apperror.CodeInvalidState,
		"shift is referenced by schedules and cannot be changed",
		http.StatusBadRequest,
	).WithMessageID("shift.in_use")
	ErrShiftInactive = apperror.New(
		apperror.CodeInvalidState,
		"shift is not active",
		http.StatusBadRequest,
	).WithMessageID("shift.inactive")
	ErrInvalidTimeOfDay = apperror.New(
		apperror.CodeInvalidInput,
		"start_time and end_time must use HH:MM",
		http.StatusBadRequest,
	).WithMessageID("shift.invalid_time")
	ErrBreakTooLong = apperror.New(
		apperror.CodeInvalidInput,
		"break must be shorter than the shift",
		http.StatusBadRequest,
	).WithMessageID("shift.break_too_long")
)
