package payroll

import (
	"context"
	"database/sql"
	"time"

	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/connection"
	"go-workforce/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, payroll *Payroll) error
	FindAll(ctx context.Context, companyID string, filter PayrollFilter) ([]Payroll, error)
	FindByID(ctx context.Context, companyID, id string) (*Payroll, error)
	FindByIDForUpdate(ctx context.Context, companyID, id string) (*Payroll, error)
	UpdateFigures(ctx context.Context, payroll *Payroll, expectedVersion int) error
	UpdateStatus(ctx context.Context, payroll *Payroll, expectedVersion int) error
	Delete(ctx context.Context, companyID, id string) error
	EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error)
	HasOverlappingPeriod(ctx context.Context, companyID, employeeID string, periodStart, periodEnd time.Time, excludePayrollID *string) (bool, error)
	Stats(ctx context.Context, companyID string, filter StatsFilter) (PayrollStatistics, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.Bind(ctx, r.db, r.tx)
}

func (r *repository) Create(ctx context.Context, payroll *Payroll) error {
	return r.conn(ctx).Create(payroll).Error
}

func (r *repository) FindAll(ctx context.Context, companyID string, filter PayrollFilter) ([]Payroll, error) {
	var payrolls []Payroll
	q := r.conn(ctx).
		Scopes(tenant.Scope(companyID))
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.BranchID != "" {
		q = q.Where("branch_id = ?", filter.BranchID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	q = q.Scopes(tenant.Between("period_start", filter.StartDate, ""), tenant.Between("period_end", "", filter.EndDate))
	err := q.Order("period_start DESC, payroll_code ASC").Find(&payrolls).Error
	return payrolls, err
}

func (r *repository) FindByID(ctx context.Context, companyID, id string) (*Payroll, error) {
	var payroll Payroll
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&payroll, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &payroll, nil
}

func (r *repository) FindByIDForUpdate(ctx context.Context, companyID, id string) (*Payroll, error) {
	var payroll Payroll
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		First(&payroll, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &payroll, nil
}

func (r *repository) UpdateFigures(ctx context.Context, p *Payroll, expectedVersion int) error {
	return r.conditionalUpdate(ctx, p, expectedVersion, map[string]any{
		"base_salary":            p.BaseSalary,
		"hourly_rate":            p.HourlyRate,
		"overtime_hours":         p.OvertimeHours,
		"overtime_multiplier":    p.OvertimeMultiplier,
		"night_shift_hours":      p.NightShiftHours,
		"night_shift_multiplier": p.NightShiftMultiplier,
		"allowances":             p.Allowances,
		"deductions":             p.Deductions,
		"overtime_pay":           p.OvertimePay,
		"night_shift_pay":        p.NightShiftPay,
		"taxable_allowances":     p.TaxableAllowances,
		"non_taxable_allowances": p.NonTaxableAllowances,
		"total_allowances":       p.TotalAllowances,
		"total_deductions":       p.TotalDeductions,
		"gross_pay":              p.GrossPay,
		"net_pay":                p.NetPay,
		"notes":                  p.Notes,
	})
}

func (r *repository) UpdateStatus(ctx context.Context, p *Payroll, expectedVersion int) error {
	return r.conditionalUpdate(ctx, p, expectedVersion, map[string]any{
		"status":       p.Status,
		"finalized_by": p.FinalizedBy,
		"finalized_at": p.FinalizedAt,
		"paid_by":      p.PaidBy,
		"paid_at":      p.PaidAt,
	})
}

func (r *repository) conditionalUpdate(ctx context.Context, p *Payroll, expectedVersion int, values map[string]any) error {
	values["version"] = gorm.Expr("version + 1")
	res := r.conn(ctx).
		Model(&Payroll{}).
		Where("id = ? AND company_id = ? AND version = ?", p.ID, p.CompanyID, expectedVersion).
		Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.ErrStaleVersion
	}
	p.Version = expectedVersion + 1
	return nil
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Payroll{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Scopes(tenant.Scope(companyID)).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

func (r *repository) HasOverlappingPeriod(
	ctx context.Context,
	companyID string,
	employeeID string,
	periodStart time.Time,
	periodEnd time.Time,
	excludePayrollID *string,
) (bool, error) {
	db := r.conn(ctx).
		Model(&Payroll{}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("NOT (period_end < ? OR period_start > ?)", periodStart, periodEnd)

	if excludePayrollID != nil && *excludePayrollID != "" {
		db = db.Where("id <> ?", *excludePayrollID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

// Stats aggregates payrolls whose period lies inside the filter range. Department resolves
// through the employees table.
func (r *repository) Stats(ctx context.Context, companyID string, filter StatsFilter) (PayrollStatistics, error) {
	var stats PayrollStatistics
	q := r.conn(ctx).
		Table("payrolls p").
		Select(`
			COUNT(*) AS total_payrolls,
			COUNT(*) FILTER (WHERE p.status = ?) AS draft_count,
			COUNT(*) FILTER (WHERE p.status = ?) AS finalized_count,
			COUNT(*) FILTER (WHERE p.status = ?) AS paid_count,
			COALESCE(SUM(p.base_salary), 0) AS total_base_salary,
			COALESCE(SUM(p.overtime_pay), 0) AS total_overtime_pay,
			COALESCE(SUM(p.night_shift_pay), 0) AS total_night_shift_pay,
			COALESCE(SUM(p.total_allowances), 0) AS total_allowances,
			COALESCE(SUM(p.total_deductions), 0) AS total_deductions,
			COALESCE(SUM(p.gross_pay), 0) AS total_gross_pay,
			COALESCE(SUM(p.net_pay), 0) AS total_net_pay,
			COALESCE(ROUND(AVG(p.net_pay), 2), 0) AS average_net_pay`,
			StatusDraft, StatusFinalized, StatusPaid).
		Scopes(tenant.Scope(companyID, "p")).
		Where("p.deleted_at IS NULL").
		Where("p.period_start >= ? AND p.period_end <= ?", filter.StartDate, filter.EndDate)

	if filter.DepartmentID != "" {
		q = q.Joins("JOIN employees e ON e.id = p.employee_id AND e.company_id = p.company_id").
			Where("e.department_id = ?", filter.DepartmentID)
	}
	if filter.BranchID != "" {
		q = q.Where("p.branch_id = ?", filter.BranchID)
	}

	err := q.Scan(&stats).Error
	return stats, err
}
