package attendance

import (
	"context"
	"database/sql"
	"time"

	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/connection"
	"go-workforce/internal/shared/worktime"
	"go-workforce/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attendance) error
	FindByID(ctx context.Context, companyID, id string) (*Attendance, error)
	FindByIDForUpdate(ctx context.Context, companyID, id string) (*Attendance, error)
	FindAll(ctx context.Context, companyID string, filter AttendanceFilter) ([]Attendance, error)
	UpdateStatus(ctx context.Context, a *Attendance, expectedVersion int) error
	Delete(ctx context.Context, companyID, id string) error
	EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error)
	FindShiftAssignment(ctx context.Context, companyID, id string) (*ShiftAssignmentRef, error)
	SummarizeApproved(ctx context.Context, companyID, employeeID string, from, to time.Time) (WorkSummary, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.Bind(ctx, r.db, r.tx)
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.conn(ctx).Create(a).Error
}

func (r *repository) FindByID(ctx context.Context, companyID, id string) (*Attendance, error) {
	var a Attendance
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindByIDForUpdate(ctx context.Context, companyID, id string) (*Attendance, error) {
	var a Attendance
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// FindAll resolves department and branch through the employees table; attendance rows only
// hold the employee id.
func (r *repository) FindAll(ctx context.Context, companyID string, filter AttendanceFilter) ([]Attendance, error) {
	var rows []Attendance
	q := r.conn(ctx).
		Model(&Attendance{}).
		Scopes(
			tenant.Scope(companyID, "attendances"),
			tenant.Between("attendances.attendance_date", filter.StartDate, filter.EndDate),
		)

	if filter.DepartmentID != "" || filter.BranchID != "" {
		q = q.Joins("JOIN employees e ON e.id = attendances.employee_id AND e.company_id = attendances.company_id")
		if filter.DepartmentID != "" {
			q = q.Where("e.department_id = ?", filter.DepartmentID)
		}
		if filter.BranchID != "" {
			q = q.Where("e.branch_id = ?", filter.BranchID)
		}
	}
	if filter.EmployeeID != "" {
		q = q.Where("attendances.employee_id = ?", filter.EmployeeID)
	}
	if filter.Status != "" {
		q = q.Where("attendances.status = ?", filter.Status)
	}
	if filter.Type != "" {
		q = q.Where("attendances.type = ?", filter.Type)
	}

	err := q.Order("attendances.attendance_date DESC, attendances.check_in DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) UpdateStatus(ctx context.Context, a *Attendance, expectedVersion int) error {
	res := r.conn(ctx).
		Model(&Attendance{}).
		Where("id = ? AND company_id = ? AND version = ?", a.ID, a.CompanyID, expectedVersion).
		Updates(map[string]any{
			"status":      a.Status,
			"approved_by": a.ApprovedBy,
			"approved_at": a.ApprovedAt,
			"version":     gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.ErrStaleVersion
	}
	a.Version = expectedVersion + 1
	return nil
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&Attendance{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error) {
	var exists bool
	err := r.conn(ctx).Raw(`
		SELECT EXISTS (
			SELECT 1 FROM employees
			WHERE id = ? AND company_id = ? AND deleted_at IS NULL
		)`, employeeID, companyID).Scan(&exists).Error
	return exists, err
}

func (r *repository) FindShiftAssignment(ctx context.Context, companyID, id string) (*ShiftAssignmentRef, error) {
	var ref ShiftAssignmentRef
	err := r.conn(ctx).
		Table("employee_shifts").
		Select("employee_id, schedule_date").
		Where("id = ? AND company_id = ? AND deleted_at IS NULL", id, companyID).
		Take(&ref).Error
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

// SummarizeApproved totals approved attendance in [from, to]. A record corrected by an approved
// adjustment is superseded and only the adjustment counts.
func (r *repository) SummarizeApproved(ctx context.Context, companyID, employeeID string, from, to time.Time) (WorkSummary, error) {
	var s WorkSummary
	err := r.conn(ctx).Raw(`
		SELECT
			COUNT(DISTINCT a.attendance_date) AS working_days,
			COALESCE(SUM(a.working_hours), 0) AS total_working_hours,
			COALESCE(SUM(CASE WHEN a.type = ? THEN a.working_hours END), 0) AS overtime_hours,
			COALESCE(SUM(CASE WHEN a.type = ? THEN a.working_hours END), 0) AS night_shift_hours
		FROM attendances a
		WHERE a.company_id = ?
			AND a.employee_id = ?
			AND a.status = ?
			AND a.attendance_date BETWEEN ? AND ?
			AND a.deleted_at IS NULL
			AND NOT EXISTS (
				SELECT 1 FROM attendances adj
				WHERE adj.adjusts_attendance_id = a.id
					AND adj.company_id = a.company_id
					AND adj.is_adjustment
					AND adj.status = ?
					AND adj.deleted_at IS NULL
			)`,
		TypeOvertime, TypeNightShift,
		companyID, employeeID, StatusApproved,
		from.Format(worktime.DateLayout), to.Format(worktime.DateLayout),
		StatusApproved,
	).Scan(&s).Error
	return s, err
}
