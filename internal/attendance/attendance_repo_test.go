package attendance_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"go-workforce/internal/attendance"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return gdb, mock
}

func TestRepository_SummarizeApproved_SkipsSupersededRecords(t *testing.T) {
	gdb, mock := newGormMock(t)
	repo := attendance.NewRepository(gdb)

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM attendances a\s+WHERE a\.company_id = \$3.*`+
		regexp.QuoteMeta("NOT EXISTS")+`.*adj\.adjusts_attendance_id = a\.id.*adj\.is_adjustment.*adj\.status = \$8`).
		WithArgs(attendance.TypeOvertime, attendance.TypeNightShift,
			"company-1", "employee-1", attendance.StatusApproved,
			"2025-03-01", "2025-03-31", attendance.StatusApproved).
		WillReturnRows(sqlmock.NewRows([]string{"working_days", "total_working_hours", "overtime_hours", "night_shift_hours"}).
			AddRow(1, "9.00", "0", "0"))

	s, err := repo.SummarizeApproved(context.Background(), "company-1", "employee-1", from, to)
	assert.NoError(t, err)
	assert.Equal(t, 1, s.WorkingDays)
	assert.Equal(t, "9", s.TotalWorkingHours.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
