package attendance_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go-workforce/internal/attendance"
	attendanceerrors "go-workforce/internal/attendance/errors"
	"go-workforce/internal/config"
	"go-workforce/internal/events"
	"go-workforce/internal/messaging/kafka"
	outboxMock "go-workforce/internal/messaging/kafka/mock"
	"go-workforce/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeAttendanceRepository struct {
	CreateFn                   func(ctx context.Context, a *attendance.Attendance) error
	FindByIDFn                 func(ctx context.Context, companyID, id string) (*attendance.Attendance, error)
	FindByIDForUpdateFn        func(ctx context.Context, companyID, id string) (*attendance.Attendance, error)
	FindAllFn                  func(ctx context.Context, companyID string, filter attendance.AttendanceFilter) ([]attendance.Attendance, error)
	UpdateStatusFn             func(ctx context.Context, a *attendance.Attendance, expectedVersion int) error
	DeleteFn                   func(ctx context.Context, companyID, id string) error
	EmployeeBelongsToCompanyFn func(ctx context.Context, companyID, employeeID string) (bool, error)
	SummarizeApprovedFn        func(ctx context.Context, companyID, employeeID string, from, to time.Time) (attendance.WorkSummary, error)
	FindShiftAssignmentFn      func(ctx context.Context, companyID, id string) (*attendance.ShiftAssignmentRef, error)
}

func (f *fakeAttendanceRepository) WithTx(tx *sql.Tx) attendance.Repository { return f }
func (f *fakeAttendanceRepository) Create(ctx context.Context, a *attendance.Attendance) error {
	return f.CreateFn(ctx, a)
}
func (f *fakeAttendanceRepository) FindByID(ctx context.Context, companyID, id string) (*attendance.Attendance, error) {
	return f.FindByIDFn(ctx, companyID, id)
}
func (f *fakeAttendanceRepository) FindByIDForUpdate(ctx context.Context, companyID, id string) (*attendance.Attendance, error) {
	return f.FindByIDForUpdateFn(ctx, companyID, id)
}
func (f *fakeAttendanceRepository) FindAll(ctx context.Context, companyID string, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	return f.FindAllFn(ctx, companyID, filter)
}
func (f *fakeAttendanceRepository) UpdateStatus(ctx context.Context, a *attendance.Attendance, expectedVersion int) error {
	return f.UpdateStatusFn(ctx, a, expectedVersion)
}
func (f *fakeAttendanceRepository) Delete(ctx context.Context, companyID, id string) error {
	return f.DeleteFn(ctx, companyID, id)
}
func (f *fakeAttendanceRepository) EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error) {
	return f.EmployeeBelongsToCompanyFn(ctx, companyID, employeeID)
}
func (f *fakeAttendanceRepository) SummarizeApproved(ctx context.Context, companyID, employeeID string, from, to time.Time) (attendance.WorkSummary, error) {
	return f.SummarizeApprovedFn(ctx, companyID, employeeID, from, to)
}

func (f *fakeAttendanceRepository) FindShiftAssignment(ctx context.Context, companyID, id string) (*attendance.ShiftAssignmentRef, error) {
	return f.FindShiftAssignmentFn(ctx, companyID, id)
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

func strPtr(s string) *string { return &s }

func pendingRecord(companyID, id string) *attendance.Attendance {
	return &attendance.Attendance{
		ID:             uuid.MustParse(id),
		CompanyID:      uuid.MustParse(companyID),
		EmployeeID:     uuid.New(),
		AttendanceDate: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		CheckIn:        time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC),
		Type:           attendance.TypeNormal,
		Status:         attendance.StatusPending,
		CreatedBy:      uuid.New(),
		Version:        4,
	}
}

func createRequest() attendance.CreateAttendanceRequest {
	return attendance.CreateAttendanceRequest{
		EmployeeID: uuid.NewString(),
		Date:       "2025-03-03",
		CheckIn:    "2025-03-03T08:00:00Z",
		CheckOut:   strPtr("2025-03-03T16:45:00Z"),
		Type:       attendance.TypeNormal,
		Notes:      []string{"late"},
	}
}

func belongs(ok bool) func(ctx context.Context, cid, eid string) (bool, error) {
	return func(ctx context.Context, cid, eid string) (bool, error) { return ok, nil }
}

func TestAttendanceService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	actorID := uuid.NewString()

	t.Run("review mode creates pending record with derived hours", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		var created *attendance.Attendance
		repo := &fakeAttendanceRepository{
			EmployeeBelongsToCompanyFn: belongs(true),
			CreateFn: func(ctx context.Context, a *attendance.Attendance) error {
				created = a
				return nil
			},
		}
		svc := attendance.NewService(db, repo, nil, nil, config.WorkflowModeReview, zap.NewNop())

		expectTx(t, mock, true)
		resp, err := svc.Create(ctx, companyID, actorID, createRequest())

		assert.NoError(t, err)
		assert.Equal(t, attendance.StatusPending, resp.Status)
		assert.True(t, decimal.RequireFromString("8.75").Equal(*resp.WorkingHours))
		assert.Equal(t, []string{"late"}, resp.Notes)
		assert.Nil(t, resp.ApprovedBy)
		assert.Equal(t, 1, created.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("direct mode approves and writes outbox event", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()
		ctrl := gomock.NewController(t)
		outbox := outboxMock.NewMockOutboxRepository(ctrl)

		repo := &fakeAttendanceRepository{
			EmployeeBelongsToCompanyFn: belongs(true),
			CreateFn:                   func(ctx context.Context, a *attendance.Attendance) error { return nil },
		}
		svc := attendance.NewService(db, repo, outbox, nil, config.WorkflowModeDirect, zap.NewNop())

		expectTx(t, mock, true)
		outbox.EXPECT().WithTx(gomock.Any()).Return(outbox)
		outbox.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, e kafka.OutboxEvent) error {
			assert.Equal(t, events.AttendanceStatusChangedTopic, e.Topic)
			assert.Contains(t, string(e.Payload), `"to_status":"approved"`)
			return nil
		})

		resp, err := svc.Create(ctx, companyID, actorID, createRequest())

		assert.NoError(t, err)
		assert.Equal(t, attendance.StatusApproved, resp.Status)
		assert.Equal(t, actorID, *resp.ApprovedBy)
	})

	t.Run("direct mode still queues adjustments for review", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		repo := &fakeAttendanceRepository{
			EmployeeBelongsToCompanyFn: belongs(true),
			CreateFn:                   func(ctx context.Context, a *attendance.Attendance) error { return nil },
		}
		svc := attendance.NewService(db, repo, nil, nil, config.WorkflowModeDirect, zap.NewNop())

		expectTx(t, mock, true)
		req := createRequest()
		req.IsAdjustment = true
		req.AdjustmentReason = strPtr("  forgot to clock out ")

		resp, err := svc.Create(ctx, companyID, actorID, req)

		assert.NoError(t, err)
		assert.Equal(t, attendance.StatusPending, resp.Status)
		assert.Equal(t, "forgot to clock out", *resp.AdjustmentReason)
	})

	t.Run("adjustment without reason is rejected before persistence", func(t *testing.T) {
		// no repository function is set: any call would panic
		svc := attendance.NewService(nil, &fakeAttendanceRepository{}, nil, nil, config.WorkflowModeReview, zap.NewNop())

		req := createRequest()
		req.IsAdjustment = true
		req.AdjustmentReason = strPtr("   ")

		_, err := svc.Create(ctx, companyID, actorID, req)

		assert.ErrorIs(t, err, attendanceerrors.ErrAdjustmentReasonRequired)
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
	})

	t.Run("check out before check in", func(t *testing.T) {
		svc := attendance.NewService(nil, &fakeAttendanceRepository{}, nil, nil, "", zap.NewNop())

		req := createRequest()
		req.CheckOut = strPtr("2025-03-03T07:59:00Z")

		_, err := svc.Create(ctx, companyID, actorID, req)
		assert.ErrorIs(t, err, attendanceerrors.ErrCheckOutBeforeCheckIn)
	})

	t.Run("night shift crossing midnight", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		repo := &fakeAttendanceRepository{
			EmployeeBelongsToCompanyFn: belongs(true),
			CreateFn:                   func(ctx context.Context, a *attendance.Attendance) error { return nil },
		}
		svc := attendance.NewService(db, repo, nil, nil, "", zap.NewNop())

		expectTx(t, mock, true)
		req := createRequest()
		req.Type = attendance.TypeNightShift
		req.CheckIn = "2025-03-03T22:00:00Z"
		req.CheckOut = strPtr("2025-03-04T06:00:00Z")

		resp, err := svc.Create(ctx, companyID, actorID, req)
		assert.NoError(t, err)
		assert.True(t, decimal.NewFromInt(8).Equal(*resp.WorkingHours))
	})

	t.Run("unknown note flag", func(t *testing.T) {
		svc := attendance.NewService(nil, &fakeAttendanceRepository{}, nil, nil, "", zap.NewNop())

		req := createRequest()
		req.Notes = []string{"sick"}

		_, err := svc.Create(ctx, companyID, actorID, req)
		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidNoteFlag)
	})

	t.Run("employee of another company", func(t *testing.T) {
		repo := &fakeAttendanceRepository{EmployeeBelongsToCompanyFn: belongs(false)}
		svc := attendance.NewService(nil, repo, nil, nil, "", zap.NewNop())

		_, err := svc.Create(ctx, companyID, actorID, createRequest())
		assert.ErrorIs(t, err, attendanceerrors.ErrEmployeeNotInCompany)
	})

	t.Run("re-adjustment must target same employee", func(t *testing.T) {
		repo := &fakeAttendanceRepository{
			EmployeeBelongsToCompanyFn: belongs(true),
			FindByIDFn: func(ctx context.Context, cid, id string) (*attendance.Attendance, error) {
				return pendingRecord(cid, id), nil
			},
		}
		svc := attendance.NewService(nil, repo, nil, nil, "", zap.NewNop())

		req := createRequest()
		req.IsAdjustment = true
		req.AdjustmentReason = strPtr("wrong clock out")
		req.AdjustsAttendanceID = strPtr(uuid.NewString())

		_, err := svc.Create(ctx, companyID, actorID, req)
		assert.ErrorIs(t, err, attendanceerrors.ErrAdjustmentTargetMismatch)
	})

	t.Run("shift assignment must exist", func(t *testing.T) {
		repo := &fakeAttendanceRepository{
			EmployeeBelongsToCompanyFn: belongs(true),
			FindShiftAssignmentFn: func(ctx context.Context, cid, id string) (*attendance.ShiftAssignmentRef, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := attendance.NewService(nil, repo, nil, nil, "", zap.NewNop())

		req := createRequest()
		req.EmployeeShiftID = strPtr(uuid.NewString())

		_, err := svc.Create(ctx, companyID, actorID, req)
		assert.ErrorIs(t, err, attendanceerrors.ErrEmployeeShiftNotFound)
		assert.Equal(t, apperror.CodeForeignKeyViolation, apperror.ToHTTP(err).Code)
	})

	t.Run("shift assignment of another employee or date is rejected", func(t *testing.T) {
		req := createRequest()
		req.EmployeeShiftID = strPtr(uuid.NewString())
		owner := uuid.MustParse(req.EmployeeID)
		shiftDate := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

		refs := []attendance.ShiftAssignmentRef{
			{EmployeeID: uuid.New(), ScheduleDate: shiftDate},
			{EmployeeID: owner, ScheduleDate: shiftDate.AddDate(0, 0, 1)},
		}
		for _, ref := range refs {
			repo := &fakeAttendanceRepository{
				EmployeeBelongsToCompanyFn: belongs(true),
				FindShiftAssignmentFn: func(ctx context.Context, cid, id string) (*attendance.ShiftAssignmentRef, error) {
					return &ref, nil
				},
				CreateFn: func(ctx context.Context, a *attendance.Attendance) error {
					t.Fatal("no row expected")
					return nil
				},
			}
			svc := attendance.NewService(nil, repo, nil, nil, "", zap.NewNop())

			_, err := svc.Create(ctx, companyID, actorID, req)
			assert.ErrorIs(t, err, attendanceerrors.ErrEmployeeShiftMismatch)
		}
	})

	t.Run("own shift assignment is linked", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		req := createRequest()
		shiftID := uuid.NewString()
		req.EmployeeShiftID = strPtr(shiftID)

		repo := &fakeAttendanceRepository{
			EmployeeBelongsToCompanyFn: belongs(true),
			FindShiftAssignmentFn: func(ctx context.Context, cid, id string) (*attendance.ShiftAssignmentRef, error) {
				assert.Equal(t, shiftID, id)
				return &attendance.ShiftAssignmentRef{
					EmployeeID:   uuid.MustParse(req.EmployeeID),
					ScheduleDate: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
				}, nil
			},
			CreateFn: func(ctx context.Context, a *attendance.Attendance) error { return nil },
		}
		svc := attendance.NewService(db, repo, nil, nil, config.WorkflowModeReview, zap.NewNop())

		expectTx(t, mock, true)
		resp, err := svc.Create(ctx, companyID, actorID, req)
		assert.NoError(t, err)
		assert.Equal(t, shiftID, *resp.EmployeeShiftID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAttendanceService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	id := uuid.NewString()
	actorID := uuid.NewString()

	t.Run("approve stamps approver and writes event", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()
		ctrl := gomock.NewController(t)
		outbox := outboxMock.NewMockOutboxRepository(ctrl)

		shiftID := uuid.New()
		var gotVersion int
		repo := &fakeAttendanceRepository{
			FindByIDForUpdateFn: func(ctx context.Context, cid, aid string) (*attendance.Attendance, error) {
				row := pendingRecord(cid, aid)
				row.EmployeeShiftID = &shiftID
				return row, nil
			},
			UpdateStatusFn: func(ctx context.Context, a *attendance.Attendance, expectedVersion int) error {
				gotVersion = expectedVersion
				a.Version = expectedVersion + 1
				return nil
			},
		}
		svc := attendance.NewService(db, repo, outbox, nil, "", zap.NewNop())

		expectTx(t, mock, true)
		outbox.EXPECT().WithTx(gomock.Any()).Return(outbox)
		outbox.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, e kafka.OutboxEvent) error {
			assert.Equal(t, id, e.AggregateID)
			assert.Equal(t, events.AttendanceStatusChangedType, e.EventType)
			assert.Contains(t, string(e.Payload), shiftID.String())
			assert.Contains(t, string(e.Payload), `"from_status":"pending"`)
			return nil
		})

		version := 4
		resp, err := svc.Approve(ctx, companyID, actorID, id, &version)

		assert.NoError(t, err)
		assert.Equal(t, attendance.StatusApproved, resp.Status)
		assert.Equal(t, actorID, *resp.ApprovedBy)
		assert.NotNil(t, resp.ApprovedAt)
		assert.Equal(t, 4, gotVersion)
		assert.Equal(t, 5, resp.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second approval is an invalid transition", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		repo := &fakeAttendanceRepository{
			FindByIDForUpdateFn: func(ctx context.Context, cid, aid string) (*attendance.Attendance, error) {
				row := pendingRecord(cid, aid)
				row.Status = attendance.StatusApproved
				return row, nil
			},
		}
		svc := attendance.NewService(db, repo, nil, nil, "", zap.NewNop())

		expectTx(t, mock, false)
		_, err := svc.Reject(ctx, companyID, actorID, id, nil)

		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidTransition)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("concurrent writer wins the version race", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		repo := &fakeAttendanceRepository{
			FindByIDForUpdateFn: func(ctx context.Context, cid, aid string) (*attendance.Attendance, error) {
				return pendingRecord(cid, aid), nil
			},
			UpdateStatusFn: func(ctx context.Context, a *attendance.Attendance, expectedVersion int) error {
				return apperror.ErrStaleVersion
			},
		}
		svc := attendance.NewService(db, repo, nil, nil, "", zap.NewNop())

		expectTx(t, mock, false)
		_, err := svc.Approve(ctx, companyID, actorID, id, nil)

		assert.ErrorIs(t, err, apperror.ErrStaleVersion)
	})

	t.Run("outbox failure rolls back", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()
		ctrl := gomock.NewController(t)
		outbox := outboxMock.NewMockOutboxRepository(ctrl)

		repo := &fakeAttendanceRepository{
			FindByIDForUpdateFn: func(ctx context.Context, cid, aid string) (*attendance.Attendance, error) {
				return pendingRecord(cid, aid), nil
			},
			UpdateStatusFn: func(ctx context.Context, a *attendance.Attendance, expectedVersion int) error { return nil },
		}
		svc := attendance.NewService(db, repo, outbox, nil, "", zap.NewNop())

		expectTx(t, mock, false)
		outbox.EXPECT().WithTx(gomock.Any()).Return(outbox)
		outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

		_, err := svc.Approve(ctx, companyID, actorID, id, nil)
		assert.EqualError(t, err, "insert failed")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAttendanceService_BulkUpdateStatus(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	okID, missingID := uuid.NewString(), uuid.NewString()

	db, mock, _ := sqlmock.New()
	defer db.Close()
	mock.MatchExpectationsInOrder(false)
	ctrl := gomock.NewController(t)
	outbox := outboxMock.NewMockOutboxRepository(ctrl)
	outbox.EXPECT().WithTx(gomock.Any()).Return(outbox)
	outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	repo := &fakeAttendanceRepository{
		FindByIDForUpdateFn: func(ctx context.Context, cid, aid string) (*attendance.Attendance, error) {
			if aid == missingID {
				return nil, attendanceerrors.ErrAttendanceNotFound
			}
			return pendingRecord(cid, aid), nil
		},
		UpdateStatusFn: func(ctx context.Context, a *attendance.Attendance, expectedVersion int) error { return nil },
	}
	svc := attendance.NewService(db, repo, outbox, nil, "", zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectRollback()

	summary := svc.BulkUpdateStatus(ctx, companyID, uuid.NewString(), attendance.BulkStatusRequest{
		IDs:    []string{okID, missingID},
		Status: attendance.StatusApproved,
	})

	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, okID, summary.Results[0].ID)
	assert.True(t, summary.Results[0].Success)
	assert.Equal(t, apperror.CodeNotFound, summary.Results[1].Error.Code)
}

func TestAttendanceService_Delete(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	id := uuid.NewString()

	t.Run("approved record is locked", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		repo := &fakeAttendanceRepository{
			FindByIDForUpdateFn: func(ctx context.Context, cid, aid string) (*attendance.Attendance, error) {
				row := pendingRecord(cid, aid)
				row.Status = attendance.StatusApproved
				return row, nil
			},
		}
		svc := attendance.NewService(db, repo, nil, nil, "", zap.NewNop())

		expectTx(t, mock, false)
		assert.ErrorIs(t, svc.Delete(ctx, companyID, id), attendanceerrors.ErrDeleteApproved)
	})

	t.Run("rejected record is deleted", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		deleted := false
		repo := &fakeAttendanceRepository{
			FindByIDForUpdateFn: func(ctx context.Context, cid, aid string) (*attendance.Attendance, error) {
				row := pendingRecord(cid, aid)
				row.Status = attendance.StatusRejected
				return row, nil
			},
			DeleteFn: func(ctx context.Context, cid, aid string) error {
				deleted = true
				return nil
			},
		}
		svc := attendance.NewService(db, repo, nil, nil, "", zap.NewNop())

		expectTx(t, mock, true)
		assert.NoError(t, svc.Delete(ctx, companyID, id))
		assert.True(t, deleted)
	})
}

func TestAttendanceService_GetAll(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()

	t.Run("inverted range", func(t *testing.T) {
		svc := attendance.NewService(nil, &fakeAttendanceRepository{}, nil, nil, "", zap.NewNop())
		_, err := svc.GetAll(ctx, companyID, attendance.AttendanceFilter{StartDate: "2025-03-31", EndDate: "2025-03-01"})
		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDateRange)
	})

	t.Run("transient read failure is retried", func(t *testing.T) {
		calls := 0
		repo := &fakeAttendanceRepository{
			FindAllFn: func(ctx context.Context, cid string, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
				calls++
				if calls == 1 {
					return nil, errors.New("connection reset")
				}
				return []attendance.Attendance{*pendingRecord(cid, uuid.NewString())}, nil
			},
		}
		svc := attendance.NewService(nil, repo, nil, nil, "", zap.NewNop())

		res, err := svc.GetAll(ctx, companyID, attendance.AttendanceFilter{StartDate: "2025-03-01", EndDate: "2025-03-31"})
		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, 2, calls)
	})

	t.Run("not found is not retried", func(t *testing.T) {
		calls := 0
		repo := &fakeAttendanceRepository{
			FindByIDFn: func(ctx context.Context, cid, id string) (*attendance.Attendance, error) {
				calls++
				return nil, attendanceerrors.ErrAttendanceNotFound
			},
		}
		svc := attendance.NewService(nil, repo, nil, nil, "", zap.NewNop())

		_, err := svc.GetByID(ctx, companyID, uuid.NewString())
		assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceNotFound)
		assert.Equal(t, 1, calls)
	})
}
