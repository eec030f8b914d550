package shift

import (
	"context"
	"database/sql"

	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/connection"
	"go-workforce/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=shift_repo.go -destination=mock/shift_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *Shift) error
	FindByID(ctx context.Context, companyID, id string) (*Shift, error)
	FindByIDForUpdate(ctx context.Context, companyID, id string) (*Shift, error)
	FindAll(ctx context.Context, companyID string, filter ShiftFilter) ([]Shift, error)
	Update(ctx context.Context, s *Shift, expectedVersion int) error
	Delete(ctx context.Context, companyID, id string) error
	IsReferenced(ctx context.Context, companyID, id string) (bool, error)
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

func (r *repository) Create(ctx context.Context, s *Shift) error {
	return r.conn(ctx).Create(s).Error
}

func (r *repository) FindByID(ctx context.Context, companyID, id string) (*Shift, error) {
	var s Shift
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindByIDForUpdate(ctx context.Context, companyID, id string) (*Shift, error) {
	var s Shift
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindAll(ctx context.Context, companyID string, filter ShiftFilter) ([]Shift, error) {
	var rows []Shift
	q := r.conn(ctx).Scopes(tenant.Scope(companyID))
	if filter.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	err := q.Order("start_time ASC, name ASC").Find(&rows).Error
	return rows, err
}

// Update writes s only if the stored version still equals expectedVersion and bumps it.
func (r *repository) Update(ctx context.Context, s *Shift, expectedVersion int) error {
	res := r.conn(ctx).
		Model(&Shift{}).
		Where("id = ? AND company_id = ? AND version = ?", s.ID, s.CompanyID, expectedVersion).
		Updates(map[string]any{
			"name":          s.Name,
			"type":          s.Type,
			"start_time":    s.StartTime,
			"end_time":      s.EndTime,
			"break_minutes": s.BreakMinutes,
			"working_hours": s.WorkingHours,
			"is_active":     s.IsActive,
			"version":       gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.ErrStaleVersion
	}
	s.Version = expectedVersion + 1
	return nil
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&Shift{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) IsReferenced(ctx context.Context, companyID, id string) (bool, error) {
	var exists bool
	err := r.conn(ctx).Raw(`
		SELECT EXISTS (
			SELECT 1 FROM employee_shifts
			WHERE company_id = ? AND shift_id = ? AND deleted_at IS NULL
		)`, companyID, id).Scan(&exists).Error
	return exists, err
}
