package attendance

import (
	"time"

	"go-workforce/internal/shared/worktime"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const (
	TypeNormal     = "normal"
	TypeOvertime   = "overtime"
	TypeNightShift = "night_shift"
	TypeHoliday    = "holiday"
)

// Approved and rejected are terminal.
func CanTransition(from, to string) bool {
	return from == StatusPending && (to == StatusApproved || to == StatusRejected)
}

// Deletable reports whether a record in status may be removed. Approved records feed payroll.
func Deletable(status string) bool {
	return status == StatusPending || status == StatusRejected
}

type Attendance struct {
	ID                  uuid.UUID        `gorm:"column:id;type:uuid;primaryKey"`
	CompanyID           uuid.UUID        `gorm:"column:company_id;type:uuid;not null;index"`
	EmployeeID          uuid.UUID        `gorm:"column:employee_id;type:uuid;not null;index"`
	EmployeeShiftID     *uuid.UUID       `gorm:"column:employee_shift_id;type:uuid"`
	AttendanceDate      time.Time        `gorm:"column:attendance_date;type:date;not null;index"`
	CheckIn             time.Time        `gorm:"column:check_in;type:timestamptz;not null"`
	CheckOut            *time.Time       `gorm:"column:check_out;type:timestamptz"`
	WorkingHours        *decimal.Decimal `gorm:"column:working_hours;type:numeric(6,2)"`
	Type                string           `gorm:"column:type;type:varchar(20);not null"`
	Status              string           `gorm:"column:status;type:varchar(20);not null"`
	IsAdjustment        bool             `gorm:"column:is_adjustment;not null;default:false"`
	AdjustmentReason    *string          `gorm:"column:adjustment_reason;type:text"`
	AdjustsAttendanceID *uuid.UUID       `gorm:"column:adjusts_attendance_id;type:uuid"`
	Notes               NoteFlags        `gorm:"column:notes;type:text"`
	CreatedBy           uuid.UUID        `gorm:"column:created_by;type:uuid;not null"`
	ApprovedBy          *uuid.UUID       `gorm:"column:approved_by;type:uuid"`
	ApprovedAt          *time.Time       `gorm:"column:approved_at;type:timestamptz"`
	Version             int              `gorm:"column:version;not null;default:1"`
	CreatedAt           time.Time        `gorm:"column:created_at"`
	UpdatedAt           time.Time        `gorm:"column:updated_at"`
	DeletedAt           gorm.DeletedAt   `gorm:"column:deleted_at;index"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// Recompute derives working_hours; it stays null until check_out is known.
func (a *Attendance) Recompute() {
	if a.CheckOut == nil {
		a.WorkingHours = nil
		return
	}
	h := worktime.HoursBetween(a.CheckIn, *a.CheckOut)
	a.WorkingHours = &h
}

// WorkSummary aggregates approved attendance of one employee over a period.
type WorkSummary struct {
	WorkingDays       int             `gorm:"column:working_days"`
	TotalWorkingHours decimal.Decimal `gorm:"column:total_working_hours"`
	OvertimeHours     decimal.Decimal `gorm:"column:overtime_hours"`
	NightShiftHours   decimal.Decimal `gorm:"column:night_shift_hours"`
}

// ShiftAssignmentRef is the part of an employee_shifts row a record is checked against.
type ShiftAssignmentRef struct {
	EmployeeID   uuid.UUID `gorm:"column:employee_id"`
	ScheduleDate time.Time `gorm:"column:schedule_date"`
}
