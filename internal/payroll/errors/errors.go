package payrollerrors

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var (
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll not found",
		http.StatusNotFound,
	).WithMessageID("payroll.not_found")
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	).WithMessageID("error.invalid_date")
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"period_start must be before or equal period_end",
		http.StatusBadRequest,
	).WithMessageID("error.invalid_date_range")
	ErrEmployeeNotInCompany = apperror.New(
		apperror.CodeInvalidInput,
		"employee does not belong to this company",
		http.StatusBadRequest,
	).WithMessageID("employee.not_in_company")
	ErrPayrollOverlap = apperror.New(
		apperror.CodeConflict,
		"payroll already exists in overlapping period",
		http.StatusConflict,
	).WithMessageID("payroll.overlap")
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid payroll status transition",
		http.StatusBadRequest,
	).WithMessageID("payroll.invalid_transition")
	ErrRecalculateOnlyDraft = apperror.New(
		apperror.CodeInvalidState,
		"payroll can only be recalculated while status is draft",
		http.StatusBadRequest,
	).WithMessageID("payroll.recalculate_only_draft")
	ErrDeletePaid = apperror.New(
		apperror.CodeInvalidState,
		"paid payrolls cannot be deleted",
		http.StatusBadRequest,
	).WithMessageID("payroll.delete_paid")
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"payroll amounts, hours and multipliers cannot be negative",
		http.StatusBadRequest,
	).WithMessageID("payroll.invalid_amount")
	ErrDeductionsExceedGross = apperror.New(
		apperror.CodeInvalidInput,
		"deductions exceed gross pay",
		http.StatusBadRequest,
	).WithMessageID("payroll.deductions_exceed_gross")
	ErrHourlyRateRequired = apperror.New(
		apperror.CodeInvalidInput,
		"hourly_rate is required when overtime or night shift hours are present",
		http.StatusBadRequest,
	).WithMessageID("payroll.hourly_rate_required")
)
