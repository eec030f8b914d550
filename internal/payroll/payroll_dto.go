package payroll

import "github.com/shopspring/decimal"

type CreatePayrollRequest struct {
	EmployeeID           string          `json:"employee_id" binding:"required,uuid"`
	BranchID             *string         `json:"branch_id" binding:"omitempty,uuid"`
	PeriodStart          string          `json:"period_start" binding:"required"`
	PeriodEnd            string          `json:"period_end" binding:"required"`
	PeriodType           string          `json:"period_type" binding:"required,oneof=monthly biweekly"`
	BaseSalary           decimal.Decimal `json:"base_salary"`
	HourlyRate           decimal.Decimal `json:"hourly_rate"`
	WorkingDays          int             `json:"working_days" binding:"gte=0"`
	TotalWorkingHours    decimal.Decimal `json:"total_working_hours"`
	OvertimeHours        decimal.Decimal `json:"overtime_hours"`
	OvertimeMultiplier   decimal.Decimal `json:"overtime_multiplier"`
	NightShiftHours      decimal.Decimal `json:"night_shift_hours"`
	NightShiftMultiplier decimal.Decimal `json:"night_shift_multiplier"`
	Allowances           Allowances      `json:"allowances"`
	Deductions           Deductions      `json:"deductions"`
	Notes                *string         `json:"notes" binding:"omitempty,max=1000"`
}

// GeneratePayrollRequest is CreatePayrollRequest without the worked time, which is read from
// approved attendance.
type GeneratePayrollRequest struct {
	EmployeeID           string          `json:"employee_id" binding:"required,uuid"`
	BranchID             *string         `json:"branch_id" binding:"omitempty,uuid"`
	PeriodStart          string          `json:"period_start" binding:"required"`
	PeriodEnd            string          `json:"period_end" binding:"required"`
	PeriodType           string          `json:"period_type" binding:"required,oneof=monthly biweekly"`
	BaseSalary           decimal.Decimal `json:"base_salary"`
	HourlyRate           decimal.Decimal `json:"hourly_rate"`
	OvertimeMultiplier   decimal.Decimal `json:"overtime_multiplier"`
	NightShiftMultiplier decimal.Decimal `json:"night_shift_multiplier"`
	Allowances           Allowances      `json:"allowances"`
	Deductions           Deductions      `json:"deductions"`
	Notes                *string         `json:"notes" binding:"omitempty,max=1000"`
}

type RecalculatePayrollRequest struct {
	BaseSalary           *decimal.Decimal `json:"base_salary"`
	HourlyRate           *decimal.Decimal `json:"hourly_rate"`
	OvertimeHours        *decimal.Decimal `json:"overtime_hours"`
	OvertimeMultiplier   *decimal.Decimal `json:"overtime_multiplier"`
	NightShiftHours      *decimal.Decimal `json:"night_shift_hours"`
	NightShiftMultiplier *decimal.Decimal `json:"night_shift_multiplier"`
	Allowances           *Allowances      `json:"allowances"`
	Deductions           *Deductions      `json:"deductions"`
	Notes                *string          `json:"notes" binding:"omitempty,max=1000"`
	Version              *int             `json:"version" binding:"omitempty,gte=1"`
}

type UpdateStatusRequest struct {
	Status  string `json:"status" binding:"required,oneof=finalized paid"`
	Version *int   `json:"version" binding:"omitempty,gte=1"`
}

type VersionRequest struct {
	Version *int `json:"version" binding:"omitempty,gte=1"`
}

type BulkStatusRequest struct {
	IDs    []string `json:"ids" binding:"required,min=1,max=200,dive,uuid"`
	Status string   `json:"status" binding:"required,oneof=finalized paid"`
}

type PayrollFilter struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	BranchID   string `form:"branch_id" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=draft finalized paid"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
}

type StatsFilter struct {
	StartDate    string `form:"start_date" binding:"required"`
	EndDate      string `form:"end_date" binding:"required"`
	DepartmentID string `form:"department_id" binding:"omitempty,uuid"`
	BranchID     string `form:"branch_id" binding:"omitempty,uuid"`
}

type PayrollResponse struct {
	ID                   string          `json:"id"`
	PayrollCode          string          `json:"payroll_code"`
	CompanyID            string          `json:"company_id"`
	EmployeeID           string          `json:"employee_id"`
	BranchID             *string         `json:"branch_id,omitempty"`
	PeriodStart          string          `json:"period_start"`
	PeriodEnd            string          `json:"period_end"`
	PeriodType           string          `json:"period_type"`
	BaseSalary           decimal.Decimal `json:"base_salary"`
	HourlyRate           decimal.Decimal `json:"hourly_rate"`
	WorkingDays          int             `json:"working_days"`
	TotalWorkingHours    decimal.Decimal `json:"total_working_hours"`
	OvertimeHours        decimal.Decimal `json:"overtime_hours"`
	OvertimeMultiplier   decimal.Decimal `json:"overtime_multiplier"`
	NightShiftHours      decimal.Decimal `json:"night_shift_hours"`
	NightShiftMultiplier decimal.Decimal `json:"night_shift_multiplier"`
	Allowances           Allowances      `json:"allowances"`
	Deductions           Deductions      `json:"deductions"`
	OvertimePay          decimal.Decimal `json:"overtime_pay"`
	NightShiftPay        decimal.Decimal `json:"night_shift_pay"`
	TotalAllowances      decimal.Decimal `json:"total_allowances"`
	TotalDeductions      decimal.Decimal `json:"total_deductions"`
	GrossPay             decimal.Decimal `json:"gross_pay"`
	NetPay               decimal.Decimal `json:"net_pay"`
	Status               string          `json:"status"`
	Notes                *string         `json:"notes,omitempty"`
	Warnings             []string        `json:"warnings,omitempty"`
	CreatedBy            string          `json:"created_by"`
	FinalizedBy          *string         `json:"finalized_by,omitempty"`
	FinalizedAt          *string         `json:"finalized_at,omitempty"`
	PaidBy               *string         `json:"paid_by,omitempty"`
	PaidAt               *string         `json:"paid_at,omitempty"`
	Version              int             `json:"version"`
	CreatedAt            string          `json:"created_at"`
	UpdatedAt            string          `json:"updated_at"`
}

type BreakdownResponse struct {
	PayrollID   string     `json:"payroll_id"`
	PayrollCode string     `json:"payroll_code"`
	Status      string     `json:"status"`
	Allowances  Allowances `json:"allowances"`
	Deductions  Deductions `json:"deductions"`
	Breakdown
}
