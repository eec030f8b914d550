package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	StatusDraft     = "draft"
	StatusFinalized = "finalized"
	StatusPaid      = "paid"
)

const (
	PeriodMonthly  = "monthly"
	PeriodBiweekly = "biweekly"
)

// Strictly forward; paid is terminal.
var transitions = map[string]string{
	StatusDraft:     StatusFinalized,
	StatusFinalized: StatusPaid,
}

func CanTransition(from, to string) bool {
	next, ok := transitions[from]
	return ok && next == to
}

func Deletable(status string) bool {
	return status == StatusDraft || status == StatusFinalized
}

type Payroll struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_payroll_company_status"`
	PayrollCode string     `gorm:"type:varchar(30);not null"`
	EmployeeID  uuid.UUID  `gorm:"type:uuid;not null;index:idx_payroll_employee_period"`
	BranchID    *uuid.UUID `gorm:"type:uuid"`

	PeriodStart time.Time `gorm:"type:date;not null;index:idx_payroll_employee_period"`
	PeriodEnd   time.Time `gorm:"type:date;not null;index:idx_payroll_employee_period"`
	PeriodType  string    `gorm:"type:varchar(20);not null"`

	BaseSalary           decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	HourlyRate           decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	WorkingDays          int             `gorm:"not null;default:0"`
	TotalWorkingHours    decimal.Decimal `gorm:"type:numeric(8,2);not null"`
	OvertimeHours        decimal.Decimal `gorm:"type:numeric(8,2);not null"`
	OvertimeMultiplier   decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	NightShiftHours      decimal.Decimal `gorm:"type:numeric(8,2);not null"`
	NightShiftMultiplier decimal.Decimal `gorm:"type:numeric(5,2);not null"`

	Allowances datatypes.JSONType[Allowances] `gorm:"type:jsonb;not null"`
	Deductions datatypes.JSONType[Deductions] `gorm:"type:jsonb;not null"`

	OvertimePay          decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	NightShiftPay        decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	TaxableAllowances    decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	NonTaxableAllowances decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	TotalAllowances      decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	TotalDeductions      decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	GrossPay             decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	NetPay               decimal.Decimal `gorm:"type:numeric(18,2);not null"`

	Status      string `gorm:"type:varchar(20);not null;index:idx_payroll_company_status"`
	Notes       *string
	CreatedBy   uuid.UUID  `gorm:"type:uuid;not null"`
	FinalizedBy *uuid.UUID `gorm:"type:uuid"`
	FinalizedAt *time.Time
	PaidBy      *uuid.UUID `gorm:"type:uuid"`
	PaidAt      *time.Time
	Version     int `gorm:"not null;default:1"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Payroll) TableName() string {
	return "payrolls"
}

// Input rebuilds the calculator input from the stored figures.
func (p *Payroll) Input() Input {
	return Input{
		BaseSalary:           p.BaseSalary,
		HourlyRate:           p.HourlyRate,
		OvertimeHours:        p.OvertimeHours,
		OvertimeMultiplier:   p.OvertimeMultiplier,
		NightShiftHours:      p.NightShiftHours,
		NightShiftMultiplier: p.NightShiftMultiplier,
		Allowances:           p.Allowances.Data(),
		Deductions:           p.Deductions.Data(),
	}
}

// Apply stores the normalized input and its breakdown on the row.
func (p *Payroll) Apply(in Input, b Breakdown) {
	in = in.Normalize()
	p.BaseSalary = in.BaseSalary
	p.HourlyRate = b.HourlyRate
	p.OvertimeHours = in.OvertimeHours
	p.OvertimeMultiplier = b.OvertimeMultiplier
	p.NightShiftHours = in.NightShiftHours
	p.NightShiftMultiplier = b.NightShiftMultiplier
	p.Allowances = datatypes.NewJSONType(in.Allowances)
	p.Deductions = datatypes.NewJSONType(in.Deductions)

	p.OvertimePay = b.OvertimePay
	p.NightShiftPay = b.NightShiftPay
	p.TaxableAllowances = b.TaxableAllowances
	p.NonTaxableAllowances = b.NonTaxableAllowances
	p.TotalAllowances = b.TotalAllowances
	p.TotalDeductions = b.TotalDeductions
	p.GrossPay = b.GrossPay
	p.NetPay = b.NetPay
}

type PayrollStatistics struct {
	TotalPayrolls      int64           `json:"total_payrolls" gorm:"column:total_payrolls"`
	DraftCount         int64           `json:"draft_count" gorm:"column:draft_count"`
	FinalizedCount     int64           `json:"finalized_count" gorm:"column:finalized_count"`
	PaidCount          int64           `json:"paid_count" gorm:"column:paid_count"`
	TotalBaseSalary    decimal.Decimal `json:"total_base_salary" gorm:"column:total_base_salary"`
	TotalOvertimePay   decimal.Decimal `json:"total_overtime_pay" gorm:"column:total_overtime_pay"`
	TotalNightShiftPay decimal.Decimal `json:"total_night_shift_pay" gorm:"column:total_night_shift_pay"`
	TotalAllowances    decimal.Decimal `json:"total_allowances" gorm:"column:total_allowances"`
	TotalDeductions    decimal.Decimal `json:"total_deductions" gorm:"column:total_deductions"`
	TotalGrossPay      decimal.Decimal `json:"total_gross_pay" gorm:"column:total_gross_pay"`
	TotalNetPay        decimal.Decimal `json:"total_net_pay" gorm:"column:total_net_pay"`
	AverageNetPay      decimal.Decimal `json:"average_net_pay" gorm:"column:average_net_pay"`
}
