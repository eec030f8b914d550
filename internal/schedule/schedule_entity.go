package schedule

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
)

// transitions only moves forward; pending may jump straight to completed.
var transitions = map[string]map[string]bool{
	StatusPending:   {StatusConfirmed: true, StatusCompleted: true},
	StatusConfirmed: {StatusCompleted: true},
}

func CanTransition(from, to string) bool {
	return transitions[from][to]
}

type EmployeeShift struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	ScheduleCode string     `gorm:"size:30;not null"`
	EmployeeID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	ShiftID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	ScheduleDate time.Time  `gorm:"type:date;not null"`
	Status       string     `gorm:"size:20;not null"`
	AttendanceID *uuid.UUID `gorm:"type:uuid"`
	Notes        *string
	AssignedBy   uuid.UUID `gorm:"type:uuid;not null"`
	ConfirmedAt  *time.Time
	CompletedAt  *time.Time
	Version      int `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (EmployeeShift) TableName() string {
	return "employee_shifts"
}
