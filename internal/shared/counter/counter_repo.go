package counter

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

const (
	TypePayroll  = "payroll_code"
	TypeShift    = "shift_code"
	TypeSchedule = "schedule_code"
)

var prefixes = map[string]string{
	TypePayroll:  "PRL",
	TypeShift:    "SHF",
	TypeSchedule: "SCH",
}

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	GetNextValue(ctx context.Context, companyID string, counterType string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetNextValue(ctx context.Context, companyID string, counterType string) (int64, error) {
	var nextValue int64

	// Atomic upsert so concurrent requests of one tenant never share a value.
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO company_counters (company_id, counter_type, last_value, updated_at)
		VALUES (?, ?, 1, now())
		ON CONFLICT (company_id, counter_type) DO UPDATE
		SET last_value = company_counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, companyID, counterType).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}

// NextCode renders the next value of counterType as a human readable code, e.g. PRL-000042.
func NextCode(ctx context.Context, repo Repository, companyID, counterType string) (string, error) {
	n, err := repo.GetNextValue(ctx, companyID, counterType)
	if err != nil {
		return "", err
	}
	prefix, ok := prefixes[counterType]
	if !ok {
		prefix = "GEN"
	}
	return fmt.Sprintf("%s-%06d", prefix, n), nil
}
