package shift_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-workforce/internal/shared/apperror"
	counterMock "go-workforce/internal/shared/counter/mock"
	"go-workforce/internal/shared/worktime"
	"go-workforce/internal/shift"
	shifterrors "go-workforce/internal/shift/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeShiftRepository struct {
	CreateFn            func(ctx context.Context, s *shift.Shift) error
	FindByIDFn          func(ctx context.Context, companyID, id string) (*shift.Shift, error)
	FindByIDForUpdateFn func(ctx context.Context, companyID, id string) (*shift.Shift, error)
	FindAllFn           func(ctx context.Context, companyID string, filter shift.ShiftFilter) ([]shift.Shift, error)
	UpdateFn            func(ctx context.Context, s *shift.Shift, expectedVersion int) error
	DeleteFn            func(ctx context.Context, companyID, id string) error
	IsReferencedFn      func(ctx context.Context, companyID, id string) (bool, error)
}

func (f *fakeShiftRepository) WithTx(tx *sql.Tx) shift.Repository { return f }
func (f *fakeShiftRepository) Create(ctx context.Context, s *shift.Shift) error {
	return f.CreateFn(ctx, s)
}
func (f *fakeShiftRepository) FindByID(ctx context.Context, companyID, id string) (*shift.Shift, error) {
	return f.FindByIDFn(ctx, companyID, id)
}
func (f *fakeShiftRepository) FindByIDForUpdate(ctx context.Context, companyID, id string) (*shift.Shift, error) {
	return f.FindByIDForUpdateFn(ctx, companyID, id)
}
func (f *fakeShiftRepository) FindAll(ctx context.Context, companyID string, filter shift.ShiftFilter) ([]shift.Shift, error) {
	return f.FindAllFn(ctx, companyID, filter)
}
func (f *fakeShiftRepository) Update(ctx context.Context, s *shift.Shift, expectedVersion int) error {
	return f.UpdateFn(ctx, s, expectedVersion)
}
func (f *fakeShiftRepository) Delete(ctx context.Context, companyID, id string) error {
	return f.DeleteFn(ctx, companyID, id)
}
func (f *fakeShiftRepository) IsReferenced(ctx context.Context, companyID, id string) (bool, error) {
	return f.IsReferencedFn(ctx, companyID, id)
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func mustTime(t *testing.T, v string) worktime.TimeOfDay {
	t.Helper()
	tod, err := worktime.ParseTimeOfDay(v)
	assert.NoError(t, err)
	return tod
}

func storedShift(t *testing.T, companyID, id string) *shift.Shift {
	s := &shift.Shift{
		ID:           uuid.MustParse(id),
		CompanyID:    uuid.MustParse(companyID),
		ShiftCode:    "SHF-000001",
		Name:         "Night",
		Type:         shift.TypeNight,
		StartTime:    mustTime(t, "22:00"),
		EndTime:      mustTime(t, "06:00"),
		BreakMinutes: 60,
		IsActive:     true,
		Version:      3,
	}
	s.Recompute()
	return s
}

func TestShiftService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()

	t.Run("generates code and derives working hours across midnight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		counterRepo := counterMock.NewMockRepository(ctrl)
		var created *shift.Shift
		repo := &fakeShiftRepository{
			CreateFn: func(ctx context.Context, s *shift.Shift) error {
				created = s
				return nil
			},
		}
		svc := shift.NewService(nil, repo, counterRepo, nil, zap.NewNop())

		counterRepo.EXPECT().GetNextValue(ctx, companyID, "shift_code").Return(int64(7), nil)

		resp, err := svc.Create(ctx, companyID, shift.CreateShiftRequest{
			Name:         "Night",
			Type:         shift.TypeNight,
			StartTime:    "22:00",
			EndTime:      "06:30",
			BreakMinutes: 30,
		})

		assert.NoError(t, err)
		assert.Equal(t, "SHF-000007", resp.ShiftCode)
		assert.True(t, decimal.NewFromInt(8).Equal(resp.WorkingHours))
		assert.True(t, resp.IsActive)
		assert.Equal(t, 1, created.Version)
		assert.Equal(t, "22:00", resp.StartTime)
	})

	t.Run("invalid time", func(t *testing.T) {
		svc := shift.NewService(nil, &fakeShiftRepository{}, nil, nil, zap.NewNop())

		_, err := svc.Create(ctx, companyID, shift.CreateShiftRequest{
			ShiftCode: "N1", Name: "Night", Type: shift.TypeNight, StartTime: "25:00", EndTime: "06:00",
		})
		assert.ErrorIs(t, err, shifterrors.ErrInvalidTimeOfDay)
	})

	t.Run("break longer than shift", func(t *testing.T) {
		svc := shift.NewService(nil, &fakeShiftRepository{}, nil, nil, zap.NewNop())

		_, err := svc.Create(ctx, companyID, shift.CreateShiftRequest{
			ShiftCode: "M1", Name: "Short", Type: shift.TypeMorning, StartTime: "08:00", EndTime: "09:00", BreakMinutes: 60,
		})
		assert.ErrorIs(t, err, shifterrors.ErrBreakTooLong)
	})
}

func TestShiftService_Update(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	id := uuid.NewString()

	t.Run("rename allowed while referenced", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		var gotVersion int
		repo := &fakeShiftRepository{
			FindByIDForUpdateFn: func(ctx context.Context, cid, sid string) (*shift.Shift, error) {
				return storedShift(t, cid, sid), nil
			},
			IsReferencedFn: func(ctx context.Context, cid, sid string) (bool, error) {
				t.Fatal("reference check is only needed when the block changes")
				return false, nil
			},
			UpdateFn: func(ctx context.Context, s *shift.Shift, expectedVersion int) error {
				gotVersion = expectedVersion
				s.Version = expectedVersion + 1
				return nil
			},
		}
		svc := shift.NewService(db, repo, nil, nil, zap.NewNop())

		expectTx(t, mock, true)
		name := "Graveyard"
		inactive := false
		resp, err := svc.Update(ctx, companyID, id, shift.UpdateShiftRequest{Name: &name, IsActive: &inactive})

		assert.NoError(t, err)
		assert.Equal(t, "Graveyard", resp.Name)
		assert.False(t, resp.IsActive)
		assert.Equal(t, 3, gotVersion)
		assert.Equal(t, 4, resp.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("time change rejected while referenced", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		repo := &fakeShiftRepository{
			FindByIDForUpdateFn: func(ctx context.Context, cid, sid string) (*shift.Shift, error) {
				return storedShift(t, cid, sid), nil
			},
			IsReferencedFn: func(ctx context.Context, cid, sid string) (bool, error) {
				return true, nil
			},
		}
		svc := shift.NewService(db, repo, nil, nil, zap.NewNop())

		expectTx(t, mock, false)
		start := "21:00"
		_, err := svc.Update(ctx, companyID, id, shift.UpdateShiftRequest{StartTime: &start})

		assert.ErrorIs(t, err, shifterrors.ErrShiftInUse)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stale version", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		repo := &fakeShiftRepository{
			FindByIDForUpdateFn: func(ctx context.Context, cid, sid string) (*shift.Shift, error) {
				return storedShift(t, cid, sid), nil
			},
		}
		svc := shift.NewService(db, repo, nil, nil, zap.NewNop())

		expectTx(t, mock, false)
		v := 2
		name := "x"
		_, err := svc.Update(ctx, companyID, id, shift.UpdateShiftRequest{Name: &name, Version: &v})

		assert.ErrorIs(t, err, apperror.ErrStaleVersion)
	})
}

func TestShiftService_Delete(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	id := uuid.NewString()

	t.Run("unreferenced shift is deleted", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		deleted := false
		repo := &fakeShiftRepository{
			FindByIDForUpdateFn: func(ctx context.Context, cid, sid string) (*shift.Shift, error) {
				return storedShift(t, cid, sid), nil
			},
			IsReferencedFn: func(ctx context.Context, cid, sid string) (bool, error) { return false, nil },
			DeleteFn: func(ctx context.Context, cid, sid string) error {
				deleted = true
				return nil
			},
		}
		svc := shift.NewService(db, repo, nil, nil, zap.NewNop())

		expectTx(t, mock, true)
		assert.NoError(t, svc.Delete(ctx, companyID, id))
		assert.True(t, deleted)
	})

	t.Run("referenced shift is kept", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		repo := &fakeShiftRepository{
			FindByIDForUpdateFn: func(ctx context.Context, cid, sid string) (*shift.Shift, error) {
				return storedShift(t, cid, sid), nil
			},
			IsReferencedFn: func(ctx context.Context, cid, sid string) (bool, error) { return true, nil },
		}
		svc := shift.NewService(db, repo, nil, nil, zap.NewNop())

		expectTx(t, mock, false)
		assert.ErrorIs(t, svc.Delete(ctx, companyID, id), shifterrors.ErrShiftInUse)
	})

	t.Run("reference check failure", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		repo := &fakeShiftRepository{
			FindByIDForUpdateFn: func(ctx context.Context, cid, sid string) (*shift.Shift, error) {
				return storedShift(t, cid, sid), nil
			},
			IsReferencedFn: func(ctx context.Context, cid, sid string) (bool, error) {
				return false, errors.New("db down")
			},
		}
		svc := shift.NewService(db, repo, nil, nil, zap.NewNop())

		expectTx(t, mock, false)
		assert.EqualError(t, svc.Delete(ctx, companyID, id), "db down")
	})

	t.Run("invalid id", func(t *testing.T) {
		svc := shift.NewService(nil, &fakeShiftRepository{}, nil, nil, zap.NewNop())
		err := svc.Delete(ctx, companyID, "42")

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
	})
}
