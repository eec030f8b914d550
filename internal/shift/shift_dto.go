package shift

import "github.com/shopspring/decimal"

type CreateShiftRequest struct {
	ShiftCode    string `json:"shift_code" binding:"omitempty,max=30"`
	Name         string `json:"name" binding:"required,max=100"`
	Type         string `json:"type" binding:"required,oneof=morning afternoon evening night"`
	StartTime    string `json:"start_time" binding:"required"`
	EndTime      string `json:"end_time" binding:"required"`
	BreakMinutes int    `json:"break_minutes" binding:"gte=0,lte=720"`
	IsActive     *bool  `json:"is_active"`
}

// UpdateShiftRequest is a partial update. Version, when sent, must match the stored row.
type UpdateShiftRequest struct {
	Name         *string `json:"name" binding:"omitempty,max=100"`
	Type         *string `json:"type" binding:"omitempty,oneof=morning afternoon evening night"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	BreakMinutes *int    `json:"break_minutes" binding:"omitempty,gte=0,lte=720"`
	IsActive     *bool   `json:"is_active"`
	Version      *int    `json:"version" binding:"omitempty,gte=1"`
}

type ShiftFilter struct {
	ActiveOnly bool   `form:"active_only"`
	Type       string `form:"type" binding:"omitempty,oneof=morning afternoon evening night"`
}

type ShiftResponse struct {
	ID           string          `json:"id"`
	ShiftCode    string          `json:"shift_code"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	StartTime    string          `json:"start_time"`
	EndTime      string          `json:"end_time"`
	BreakMinutes int             `json:"break_minutes"`
	WorkingHours decimal.Decimal `json:"working_hours"`
	IsActive     bool            `json:"is_active"`
	Version      int             `json:"version"`
	CreatedAt    string          `json:"created_at"`
	UpdatedAt    string          `json:"updated_at"`
}
