package schedule

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

//go:generate mockgen -source=schedule_repo.go -destination=mock/schedule_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, es *EmployeeShift) error
	FindByID(ctx context.Context, companyID, id string) (*EmployeeShift, error)
	FindByIDForUpdate(ctx context.Context, companyID, id string) (*EmployeeShift, error)
	FindAll(ctx context.Context, companyID string, filter ScheduleFilter) ([]EmployeeShift, error)
	UpdateStatus(ctx context.Context, es *EmployeeShift, expectedVersion int) error
	Delete(ctx context.Context, companyID, id string) error
	ExistsAssignment(ctx context.Context, companyID, employeeID, shiftID string, date time.Time) (bool, error)
	EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error)
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

func (r *repository) Create(ctx context.Context, es *EmployeeShift) error {
	return r.conn(ctx).Create(es).Error
}

func (r *repository) FindByID(ctx context.Context, companyID, id string) (*EmployeeShift, error) {
	var es EmployeeShift
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		First(&es).Error
	if err != nil {
		return nil, err
	}
	return &es, nil
}

func (r *repository) FindByIDForUpdate(ctx context.Context, companyID, id string) (*EmployeeShift, error) {
	var es EmployeeShift
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		First(&es).Error
	if err != nil {
		return nil, err
	}
	return &es, nil
}

func (r *repository) FindAll(ctx context.Context, companyID string, filter ScheduleFilter) ([]EmployeeShift, error) {
	var rows []EmployeeShift
	q := r.conn(ctx).
		Scopes(tenant.Scope(companyID), tenant.Between("schedule_date", filter.StartDate, filter.EndDate))
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.ShiftID != "" {
		q = q.Where("shift_id = ?", filter.ShiftID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	err := q.Order("schedule_date ASC, created_at ASC").Find(&rows).Error
	return rows, err
}

// UpdateStatus is a compare-and-set on version; a concurrent writer makes it fail with
// ErrStaleVersion instead of overwriting.
func (r *repository) UpdateStatus(ctx context.Context, es *EmployeeShift, expectedVersion int) error {
	res := r.conn(ctx).
		Model(&EmployeeShift{}).
		Where("id = ? AND company_id = ? AND version = ?", es.ID, es.CompanyID, expectedVersion).
		Updates(map[string]any{
			"status":        es.Status,
			"attendance_id": es.AttendanceID,
			"confirmed_at":  es.ConfirmedAt,
			"completed_at":  es.CompletedAt,
			"version":       gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.ErrStaleVersion
	}
	es.Version = expectedVersion + 1
	return nil
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&EmployeeShift{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ExistsAssignment(ctx context.Context, companyID, employeeID, shiftID string, date time.Time) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&EmployeeShift{}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ? AND shift_id = ? AND schedule_date = ?", employeeID, shiftID, date.Format(worktime.DateLayout)).
		Count(&count).Error
	return count > 0, err
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
