package attendanceerrors

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var (
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"attendance record not found",
		http.StatusNotFound,
	).WithMessageID("attendance.not_found")
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"attendance record is not pending",
		http.StatusBadRequest,
	).WithMessageID("attendance.invalid_transition")
	ErrAdjustmentReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"adjustment_reason is required for adjustment requests",
		http.StatusBadRequest,
	).WithMessageID("attendance.adjustment_reason_required")
	ErrCheckOutBeforeCheckIn = apperror.New(
		apperror.CodeInvalidInput,
		"check_out must not be earlier than check_in",
		http.StatusBadRequest,
	).WithMessageID("attendance.check_out_before_check_in")
	ErrShiftTooLong = apperror.New(
		apperror.CodeInvalidInput,
		"check_out must be within 24 hours of check_in",
		http.StatusBadRequest,
	).WithMessageID("attendance.shift_too_long")
	ErrInvalidTimestamp = apperror.New(
		apperror.CodeInvalidInput,
		"invalid timestamp, expected RFC3339",
		http.StatusBadRequest,
	).WithMessageID("error.invalid_timestamp")
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
	ErrInvalidNoteFlag = apperror.New(
		apperror.CodeInvalidInput,
		"notes may only contain late, early_leave and on_leave",
		http.StatusBadRequest,
	).WithMessageID("attendance.invalid_note_flag")
	ErrEmployeeNotInCompany = apperror.New(
		apperror.CodeInvalidInput,
		"employee does not belong to this company",
		http.StatusBadRequest,
	).WithMessageID("employee.not_in_company")
	ErrAdjustmentTargetNotFound = apperror.New(
		apperror.CodeNotFound,
		"the attendance record being adjusted was not found",
		http.StatusNotFound,
	).WithMessageID("attendance.adjustment_target_not_found")
	ErrAdjustmentTargetMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"an adjustment must target a record of the same employee",
		http.StatusBadRequest,
	).WithMessageID("attendance.adjustment_target_mismatch")
	ErrDeleteApproved = apperror.New(
		apperror.CodeInvalidState,
		"approved attendance records cannot be deleted",
		http.StatusBadRequest,
	).WithMessageID("attendance.delete_approved")
	ErrEmployeeShiftNotFound = apperror.New(
		apperror.CodeForeignKeyViolation,
		"the referenced shift assignment does not exist",
		http.StatusUnprocessableEntity,
	).WithMessageID("attendance.employee_shift_not_found")
	ErrEmployeeShiftMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"the shift assignment belongs to another employee or date",
		http.StatusBadRequest,
	).WithMessageID("attendance.employee_shift_mismatch")
)
