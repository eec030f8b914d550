package schedule

type AssignShiftRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	ShiftID    string  `json:"shift_id" binding:"required,uuid"`
	Date       string  `json:"date" binding:"required"`
	Notes      *string `json:"notes" binding:"omitempty,max=500"`
}

type BulkAssignRequest struct {
	Assignments []AssignShiftRequest `json:"assignments" binding:"required,min=1,max=200,dive"`
}

type UpdateStatusRequest struct {
	Status  string `json:"status" binding:"required,oneof=pending confirmed completed"`
	Version *int   `json:"version" binding:"omitempty,gte=1"`
}

type ScheduleFilter struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	ShiftID    string `form:"shift_id" binding:"omitempty,uuid"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	Status     string `form:"status" binding:"omitempty,oneof=pending confirmed completed"`
}

type EmployeeShiftResponse struct {
	ID           string  `json:"id"`
	ScheduleCode string  `json:"schedule_code"`
	EmployeeID   string  `json:"employee_id"`
	ShiftID      string  `json:"shift_id"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	AttendanceID *string `json:"attendance_id,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	AssignedBy   string  `json:"assigned_by"`
	ConfirmedAt  *string `json:"confirmed_at,omitempty"`
	CompletedAt  *string `json:"completed_at,omitempty"`
	Version      int     `json:"version"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}
