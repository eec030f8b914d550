package attendance

import "github.com/shopspring/decimal"

type CreateAttendanceRequest struct {
	EmployeeID          string   `json:"employee_id" binding:"required,uuid"`
	EmployeeShiftID     *string  `json:"employee_shift_id" binding:"omitempty,uuid"`
	Date                string   `json:"date" binding:"required"`
	CheckIn             string   `json:"check_in" binding:"required"`
	CheckOut            *string  `json:"check_out"`
	Type                string   `json:"type" binding:"required,oneof=normal overtime night_shift holiday"`
	IsAdjustment        bool     `json:"is_adjustment"`
	AdjustmentReason    *string  `json:"adjustment_reason" binding:"omitempty,max=1000"`
	AdjustsAttendanceID *string  `json:"adjusts_attendance_id" binding:"omitempty,uuid"`
	Notes               []string `json:"notes" binding:"omitempty,max=3"`
}

type UpdateStatusRequest struct {
	Status  string `json:"status" binding:"required,oneof=approved rejected"`
	Version *int   `json:"version" binding:"omitempty,gte=1"`
}

type VersionRequest struct {
	Version *int `json:"version" binding:"omitempty,gte=1"`
}

type BulkStatusRequest struct {
	IDs    []string `json:"ids" binding:"required,min=1,max=200,dive,uuid"`
	Status string   `json:"status" binding:"required,oneof=approved rejected"`
}

type AttendanceFilter struct {
	EmployeeID   string `form:"employee_id" binding:"omitempty,uuid"`
	DepartmentID string `form:"department_id" binding:"omitempty,uuid"`
	BranchID     string `form:"branch_id" binding:"omitempty,uuid"`
	StartDate    string `form:"start_date" binding:"required"`
	EndDate      string `form:"end_date" binding:"required"`
	Status       string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
	Type         string `form:"type" binding:"omitempty,oneof=normal overtime night_shift holiday"`
}

type AttendanceResponse struct {
	ID                  string           `json:"id"`
	CompanyID           string           `json:"company_id"`
	EmployeeID          string           `json:"employee_id"`
	EmployeeShiftID     *string          `json:"employee_shift_id,omitempty"`
	Date                string           `json:"date"`
	CheckIn             string           `json:"check_in"`
	CheckOut            *string          `json:"check_out,omitempty"`
	WorkingHours        *decimal.Decimal `json:"working_hours"`
	Type                string           `json:"type"`
	Status              string           `json:"status"`
	IsAdjustment        bool             `json:"is_adjustment"`
	AdjustmentReason    *string          `json:"adjustment_reason,omitempty"`
	AdjustsAttendanceID *string          `json:"adjusts_attendance_id,omitempty"`
	Notes               []string         `json:"notes"`
	CreatedBy           string           `json:"created_by"`
	ApprovedBy          *string          `json:"approved_by,omitempty"`
	ApprovedAt          *string          `json:"approved_at,omitempty"`
	Version             int              `json:"version"`
	CreatedAt           string           `json:"created_at"`
	UpdatedAt           string           `json:"updated_at"`
}
