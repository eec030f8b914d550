package scheduleerrors

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var (
	ErrScheduleNotFound = apperror.New(
		apperror.CodeNotFound,
		"schedule assignment not found",
		http.StatusNotFound,
	).WithMessageID("schedule.not_found")
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"schedule status cannot be changed from its current state",
		http.StatusBadRequest,
	).WithMessageID("schedule.invalid_transition")
	ErrDuplicateAssignment = apperror.New(
		apperror.CodeConflict,
		"employee is already assigned to this shift on that date",
		http.StatusConflict,
	).WithMessageID("schedule.duplicate")
	ErrDeleteCompleted = apperror.New(
		apperror.CodeInvalidState,
		"completed schedule assignments cannot be deleted",
		http.StatusBadRequest,
	).WithMessageID("schedule.delete_completed")
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	).WithMessageID("error.invalid_date")
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	).WithMessageID("error.invalid_date_range")
	ErrEmployeeNotInCompany = apperror.New(
		apperror.CodeInvalidInput,
		"employee does not belong to this company",
		http.StatusBadRequest,
	).WithMessageID("employee.not_in_company")
	ErrAttendanceMismatch = apperror.New(
		apperror.CodeConflict,
		"schedule assignment is already linked to another attendance record",
		http.StatusConflict,
	).WithMessageID("schedule.attendance_mismatch")
	ErrEmployeeMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"the attendance record belongs to another employee",
		http.StatusBadRequest,
	).WithMessageID("schedule.employee_mismatch")
)
