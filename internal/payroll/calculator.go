package payroll

import (
	"fmt"

	payrollerrors "go-workforce/internal/payroll/errors"
	"go-workforce/internal/shared/money"

	"github.com/shopspring/decimal"
)

var (
	DefaultOvertimeMultiplier   = decimal.RequireFromString("1.50")
	DefaultNightShiftMultiplier = decimal.RequireFromString("1.30")

	// Advisory policy caps. Amounts above them are reported, never trimmed.
	MealAllowanceCap  = decimal.NewFromInt(730_000)
	PhoneAllowanceCap = decimal.NewFromInt(1_000_000)
)

type Allowances struct {
	Meal             decimal.Decimal `json:"meal"`
	Transport        decimal.Decimal `json:"transport"`
	Phone            decimal.Decimal `json:"phone"`
	Housing          decimal.Decimal `json:"housing"`
	Position         decimal.Decimal `json:"position"`
	Responsibility   decimal.Decimal `json:"responsibility"`
	AttendanceBonus  decimal.Decimal `json:"attendance_bonus"`
	PerformanceBonus decimal.Decimal `json:"performance_bonus"`
}

func (a Allowances) Taxable() decimal.Decimal {
	return money.Sum(a.Housing, a.Position, a.Responsibility, a.AttendanceBonus, a.PerformanceBonus)
}

func (a Allowances) NonTaxable() decimal.Decimal {
	return money.Sum(a.Meal, a.Transport, a.Phone)
}

type Deductions struct {
	Tax             decimal.Decimal `json:"tax"`
	Insurance       decimal.Decimal `json:"insurance"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`
}

func (d Deductions) Total() decimal.Decimal {
	return money.Sum(d.Tax, d.Insurance, d.OtherDeductions)
}

// Input holds the raw figures of one pay statement. Zero values mean absent; a zero
// multiplier falls back to its default.
type Input struct {
	BaseSalary           decimal.Decimal
	HourlyRate           decimal.Decimal
	OvertimeHours        decimal.Decimal
	OvertimeMultiplier   decimal.Decimal
	NightShiftHours      decimal.Decimal
	NightShiftMultiplier decimal.Decimal
	Allowances           Allowances
	Deductions           Deductions
}

// Normalize rounds every figure to the stored scale. The calculator and the row both work on
// the normalized values, so a stored payroll recomputes to the same figures.
func (in Input) Normalize() Input {
	in.BaseSalary = money.Round(in.BaseSalary)
	in.HourlyRate = money.Round(in.HourlyRate)
	in.OvertimeHours = money.Round(in.OvertimeHours)
	in.OvertimeMultiplier = money.Round(in.OvertimeMultiplier)
	in.NightShiftHours = money.Round(in.NightShiftHours)
	in.NightShiftMultiplier = money.Round(in.NightShiftMultiplier)
	in.Allowances = in.Allowances.normalize()
	in.Deductions = in.Deductions.normalize()
	return in
}

func (a Allowances) normalize() Allowances {
	return Allowances{
		Meal:             money.Round(a.Meal),
		Transport:        money.Round(a.Transport),
		Phone:            money.Round(a.Phone),
		Housing:          money.Round(a.Housing),
		Position:         money.Round(a.Position),
		Responsibility:   money.Round(a.Responsibility),
		AttendanceBonus:  money.Round(a.AttendanceBonus),
		PerformanceBonus: money.Round(a.PerformanceBonus),
	}
}

func (d Deductions) normalize() Deductions {
	return Deductions{
		Tax:             money.Round(d.Tax),
		Insurance:       money.Round(d.Insurance),
		OtherDeductions: money.Round(d.OtherDeductions),
	}
}

type Breakdown struct {
	HourlyRate           decimal.Decimal `json:"hourly_rate"`
	OvertimeMultiplier   decimal.Decimal `json:"overtime_multiplier"`
	NightShiftMultiplier decimal.Decimal `json:"night_shift_multiplier"`
	OvertimePay          decimal.Decimal `json:"overtime_pay"`
	NightShiftPay        decimal.Decimal `json:"night_shift_pay"`
	TaxableAllowances    decimal.Decimal `json:"taxable_allowances"`
	NonTaxableAllowances decimal.Decimal `json:"non_taxable_allowances"`
	TotalAllowances      decimal.Decimal `json:"total_allowances"`
	GrossPay             decimal.Decimal `json:"gross_pay"`
	TotalDeductions      decimal.Decimal `json:"total_deductions"`
	NetPay               decimal.Decimal `json:"net_pay"`
	Warnings             []string        `json:"warnings,omitempty"`
}

// Validate rejects negative figures. It runs on raw values so that a tiny negative never
// rounds to zero.
func (in Input) Validate() error {
	if field, ok := money.FirstNegative(map[string]decimal.Decimal{
		"base_salary":                  in.BaseSalary,
		"hourly_rate":                  in.HourlyRate,
		"overtime_hours":               in.OvertimeHours,
		"overtime_multiplier":          in.OvertimeMultiplier,
		"night_shift_hours":            in.NightShiftHours,
		"night_shift_multiplier":       in.NightShiftMultiplier,
		"allowances.meal":              in.Allowances.Meal,
		"allowances.transport":         in.Allowances.Transport,
		"allowances.phone":             in.Allowances.Phone,
		"allowances.housing":           in.Allowances.Housing,
		"allowances.position":          in.Allowances.Position,
		"allowances.responsibility":    in.Allowances.Responsibility,
		"allowances.attendance_bonus":  in.Allowances.AttendanceBonus,
		"allowances.performance_bonus": in.Allowances.PerformanceBonus,
		"deductions.tax":               in.Deductions.Tax,
		"deductions.insurance":         in.Deductions.Insurance,
		"deductions.other_deductions":  in.Deductions.OtherDeductions,
	}); ok {
		return payrollerrors.ErrInvalidAmount.WithDetails(map[string]string{"field": field})
	}
	return nil
}

// Calculate derives the pay statement from the normalized input. Each component is rounded to
// two places before it is summed, so gross and net always equal the sum of the reported parts.
func Calculate(in Input) (Breakdown, error) {
	if err := in.Validate(); err != nil {
		return Breakdown{}, err
	}

	in = in.Normalize()
	otMultiplier := money.OrDefault(&in.OvertimeMultiplier, DefaultOvertimeMultiplier)
	nightMultiplier := money.OrDefault(&in.NightShiftMultiplier, DefaultNightShiftMultiplier)

	b := Breakdown{
		HourlyRate:           in.HourlyRate,
		OvertimeMultiplier:   otMultiplier,
		NightShiftMultiplier: nightMultiplier,
		OvertimePay:          money.Round(in.OvertimeHours.Mul(in.HourlyRate).Mul(otMultiplier)),
		NightShiftPay:        money.Round(in.NightShiftHours.Mul(in.HourlyRate).Mul(nightMultiplier)),
		TaxableAllowances:    in.Allowances.Taxable(),
		NonTaxableAllowances: in.Allowances.NonTaxable(),
		TotalDeductions:      in.Deductions.Total(),
	}
	b.TotalAllowances = b.TaxableAllowances.Add(b.NonTaxableAllowances)
	b.GrossPay = money.Sum(in.BaseSalary, b.OvertimePay, b.NightShiftPay, b.TotalAllowances)
	b.NetPay = b.GrossPay.Sub(b.TotalDeductions)
	if b.NetPay.IsNegative() {
		return Breakdown{}, payrollerrors.ErrDeductionsExceedGross
	}

	if in.Allowances.Meal.GreaterThan(MealAllowanceCap) {
		b.Warnings = append(b.Warnings, fmt.Sprintf("meal allowance exceeds the advisory cap of %s", MealAllowanceCap))
	}
	if in.Allowances.Phone.GreaterThan(PhoneAllowanceCap) {
		b.Warnings = append(b.Warnings, fmt.Sprintf("phone allowance exceeds the advisory cap of %s", PhoneAllowanceCap))
	}
	return b, nil
}

// HourlyRateFor returns rate when set, otherwise base salary spread over the standard month.
func HourlyRateFor(rate, baseSalary decimal.Decimal, standardMonthlyHours int) decimal.Decimal {
	if rate.IsPositive() || standardMonthlyHours <= 0 {
		return rate
	}
	return money.Round(baseSalary.Div(decimal.NewFromInt(int64(standardMonthlyHours))))
}
