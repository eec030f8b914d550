package shift

import (
	"time"

	"go-workforce/internal/shared/worktime"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TypeMorning   = "morning"
	TypeAfternoon = "afternoon"
	TypeEvening   = "evening"
	TypeNight     = "night"
)

type Shift struct {
	ID           uuid.UUID          `gorm:"type:uuid;primaryKey"`
	CompanyID    uuid.UUID          `gorm:"type:uuid;not null;index"`
	ShiftCode    string             `gorm:"size:30;not null"`
	Name         string             `gorm:"size:100;not null"`
	Type         string             `gorm:"size:20;not null"`
	StartTime    worktime.TimeOfDay `gorm:"type:time;not null"`
	EndTime      worktime.TimeOfDay `gorm:"type:time;not null"`
	BreakMinutes int                `gorm:"not null;default:0"`
	WorkingHours decimal.Decimal    `gorm:"type:numeric(5,2);not null"`
	IsActive     bool               `gorm:"not null;default:true"`
	Version      int                `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Shift) TableName() string {
	return "shifts"
}

// Recompute derives WorkingHours from the time block.
func (s *Shift) Recompute() {
	s.WorkingHours = worktime.ShiftHours(s.StartTime, s.EndTime, s.BreakMinutes)
}
