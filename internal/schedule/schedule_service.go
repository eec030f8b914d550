package schedule

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"go-workforce/internal/audit"
	scheduleerrors "go-workforce/internal/schedule/errors"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/bulk"
	"go-workforce/internal/shared/contextutil"
	"go-workforce/internal/shared/counter"
	"go-workforce/internal/shared/ids"
	"go-workforce/internal/shared/worktime"
	"go-workforce/internal/shift"
	shifterrors "go-workforce/internal/shift/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=schedule_service.go -destination=mock/schedule_service_mock.go -package=mock
type Service interface {
	Assign(ctx context.Context, companyID, actorID string, req AssignShiftRequest) (EmployeeShiftResponse, error)
	BulkAssign(ctx context.Context, companyID, actorID string, req BulkAssignRequest) bulk.Summary
	GetAll(ctx context.Context, companyID string, filter ScheduleFilter) ([]EmployeeShiftResponse, error)
	GetByID(ctx context.Context, companyID, id string) (EmployeeShiftResponse, error)
	UpdateStatus(ctx context.Context, companyID, actorID, id string, req UpdateStatusRequest) (EmployeeShiftResponse, error)
	Delete(ctx context.Context, companyID, id string) error
	CompleteFromAttendance(ctx context.Context, companyID, employeeShiftID, employeeID, attendanceID string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	shifts  shift.Repository
	counter counter.Repository
	audit   audit.Logger
	logger  *zap.Logger
	now     func() time.Time
}

func NewService(db *sql.DB, repo Repository, shifts shift.Repository, counter counter.Repository, auditLogger audit.Logger, logger ...*zap.Logger) Service {
	l := zap.L().Named("schedule.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("schedule.service")
	}
	if auditLogger == nil {
		auditLogger = audit.Nop()
	}
	return &service{
		db:      db,
		repo:    repo,
		shifts:  shifts,
		counter: counter,
		audit:   auditLogger,
		logger:  l,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Assign(ctx context.Context, companyID, actorID string, req AssignShiftRequest) (EmployeeShiftResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("assign shift requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("shift_id", req.ShiftID),
	)

	companyUUID, err := ids.Parse("company_id", companyID)
	if err != nil {
		return EmployeeShiftResponse{}, err
	}
	actorUUID, err := ids.Parse("actor_id", actorID)
	if err != nil {
		return EmployeeShiftResponse{}, err
	}
	employeeUUID, err := ids.Parse("employee_id", req.EmployeeID)
	if err != nil {
		return EmployeeShiftResponse{}, err
	}
	shiftUUID, err := ids.Parse("shift_id", req.ShiftID)
	if err != nil {
		return EmployeeShiftResponse{}, err
	}
	date, err := worktime.ParseDate(req.Date)
	if err != nil {
		return EmployeeShiftResponse{}, scheduleerrors.ErrInvalidDate
	}

	ok, err := s.repo.EmployeeBelongsToCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		return EmployeeShiftResponse{}, err
	}
	if !ok {
		return EmployeeShiftResponse{}, scheduleerrors.ErrEmployeeNotInCompany
	}

	sh, err := s.shifts.FindByID(ctx, companyID, req.ShiftID)
	if err != nil {
		return EmployeeShiftResponse{}, apperror.FromRepository(err, shifterrors.ErrShiftNotFound)
	}
	if !sh.IsActive {
		return EmployeeShiftResponse{}, shifterrors.ErrShiftInactive
	}

	exists, err := s.repo.ExistsAssignment(ctx, companyID, req.EmployeeID, req.ShiftID, date)
	if err != nil {
		return EmployeeShiftResponse{}, err
	}
	if exists {
		return EmployeeShiftResponse{}, scheduleerrors.ErrDuplicateAssignment
	}

	code, err := counter.NextCode(ctx, s.counter, companyID, counter.TypeSchedule)
	if err != nil {
		s.logger.Error("assign shift generate code failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeShiftResponse{}, err
	}

	row := &EmployeeShift{
		ID:           uuid.New(),
		CompanyID:    companyUUID,
		ScheduleCode: code,
		EmployeeID:   employeeUUID,
		ShiftID:      shiftUUID,
		ScheduleDate: date,
		Status:       StatusPending,
		Notes:        req.Notes,
		AssignedBy:   actorUUID,
		Version:      1,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		// the unique index still catches a race between the check above and the insert
		if apperror.IsUniqueViolation(err) {
			return EmployeeShiftResponse{}, scheduleerrors.ErrDuplicateAssignment
		}
		s.logger.Error("assign shift persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeShiftResponse{}, apperror.FromRepository(err, nil)
	}

	s.audit.Log(ctx, audit.Entry{
		Action:     audit.ActionRecordCreated,
		Resource:   "employee_shift",
		ResourceID: row.ID.String(),
		Message:    "shift assigned",
		Meta: map[string]any{
			"employee_id": req.EmployeeID,
			"shift_id":    req.ShiftID,
			"date":        req.Date,
		},
	})
	s.logger.Info("assign shift success", zap.String("request_id", rid), zap.String("employee_shift_id", row.ID.String()))
	return mapToResponse(*row), nil
}

// BulkAssign reports each item under its position in the request ("0", "1", ...).
func (s *service) BulkAssign(ctx context.Context, companyID, actorID string, req BulkAssignRequest) bulk.Summary {
	keys := make([]string, len(req.Assignments))
	for i := range req.Assignments {
		keys[i] = strconv.Itoa(i)
	}

	return bulk.Run(ctx, keys, bulk.DefaultConcurrency, func(ctx context.Context, key string) (any, error) {
		i, _ := strconv.Atoi(key)
		return s.Assign(ctx, companyID, actorID, req.Assignments[i])
	})
}

func (s *service) GetAll(ctx context.Context, companyID string, filter ScheduleFilter) ([]EmployeeShiftResponse, error) {
	if err := validateRange(filter.StartDate, filter.EndDate); err != nil {
		return nil, err
	}
	rows, err := s.repo.FindAll(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	res := make([]EmployeeShiftResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (EmployeeShiftResponse, error) {
	if _, err := ids.Parse("id", id); err != nil {
		return EmployeeShiftResponse{}, err
	}
	row, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return EmployeeShiftResponse{}, apperror.FromRepository(err, scheduleerrors.ErrScheduleNotFound)
	}
	return mapToResponse(*row), nil
}

func (s *service) UpdateStatus(ctx context.Context, companyID, actorID, id string, req UpdateStatusRequest) (EmployeeShiftResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if _, err := ids.Parse("id", id); err != nil {
		return EmployeeShiftResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeShiftResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByIDForUpdate(ctx, companyID, id)
	if err != nil {
		return EmployeeShiftResponse{}, apperror.FromRepository(err, scheduleerrors.ErrScheduleNotFound)
	}
	if req.Version != nil && *req.Version != row.Version {
		return EmployeeShiftResponse{}, apperror.ErrStaleVersion
	}
	from := row.Status
	if !CanTransition(from, req.Status) {
		s.logger.Warn("schedule status transition rejected",
			zap.String("request_id", rid),
			zap.String("employee_shift_id", id),
			zap.String("from", from),
			zap.String("to", req.Status),
		)
		return EmployeeShiftResponse{}, scheduleerrors.ErrInvalidTransition
	}
	s.applyStatus(row, req.Status)

	if err := qtx.UpdateStatus(ctx, row, row.Version); err != nil {
		return EmployeeShiftResponse{}, apperror.FromRepository(err, scheduleerrors.ErrScheduleNotFound)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update schedule status commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeShiftResponse{}, err
	}

	s.audit.Log(ctx, audit.Entry{
		Action:     audit.ActionStatusChanged,
		Resource:   "employee_shift",
		ResourceID: id,
		ActorID:    actorID,
		Message:    "schedule status changed",
		Meta:       map[string]any{"from": from, "to": row.Status},
	})
	s.logger.Info("update schedule status success",
		zap.String("request_id", rid),
		zap.String("employee_shift_id", id),
		zap.String("status", row.Status),
	)
	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	if _, err := ids.Parse("id", id); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByIDForUpdate(ctx, companyID, id)
	if err != nil {
		return apperror.FromRepository(err, scheduleerrors.ErrScheduleNotFound)
	}
	if row.Status == StatusCompleted {
		return scheduleerrors.ErrDeleteCompleted
	}
	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return apperror.FromRepository(err, scheduleerrors.ErrScheduleNotFound)
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.audit.Log(ctx, audit.Entry{
		Action:     audit.ActionRecordDeleted,
		Resource:   "employee_shift",
		ResourceID: id,
		Message:    "schedule assignment deleted",
	})
	return nil
}

// CompleteFromAttendance marks the assignment completed and links the approved attendance
// record of the same employee. Redelivery of the same event is a no-op.
func (s *service) CompleteFromAttendance(ctx context.Context, companyID, employeeShiftID, employeeID, attendanceID string) error {
	attendanceUUID, err := ids.Parse("attendance_id", attendanceID)
	if err != nil {
		return err
	}
	if _, err := ids.Parse("employee_shift_id", employeeShiftID); err != nil {
		return err
	}
	employeeUUID, err := ids.Parse("employee_id", employeeID)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByIDForUpdate(ctx, companyID, employeeShiftID)
	if err != nil {
		return apperror.FromRepository(err, scheduleerrors.ErrScheduleNotFound)
	}
	if row.EmployeeID != employeeUUID {
		s.logger.Warn("complete from attendance rejected",
			zap.String("employee_shift_id", employeeShiftID),
			zap.String("attendance_id", attendanceID),
			zap.Error(scheduleerrors.ErrEmployeeMismatch),
		)
		return scheduleerrors.ErrEmployeeMismatch
	}

	if row.AttendanceID != nil {
		if *row.AttendanceID != attendanceUUID {
			return scheduleerrors.ErrAttendanceMismatch
		}
		if row.Status == StatusCompleted {
			return nil
		}
	}

	from := row.Status
	if from != StatusCompleted {
		s.applyStatus(row, StatusCompleted)
	}
	row.AttendanceID = &attendanceUUID

	if err := qtx.UpdateStatus(ctx, row, row.Version); err != nil {
		return apperror.FromRepository(err, scheduleerrors.ErrScheduleNotFound)
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.audit.Log(ctx, audit.Entry{
		Action:     audit.ActionStatusChanged,
		Resource:   "employee_shift",
		ResourceID: employeeShiftID,
		CompanyID:  companyID,
		Message:    "schedule completed from approved attendance",
		Meta:       map[string]any{"from": from, "to": StatusCompleted, "attendance_id": attendanceID},
	})
	s.logger.Info("schedule completed from attendance",
		zap.String("employee_shift_id", employeeShiftID),
		zap.String("attendance_id", attendanceID),
	)
	return nil
}

func (s *service) applyStatus(row *EmployeeShift, to string) {
	now := s.now()
	switch to {
	case StatusConfirmed:
		row.ConfirmedAt = &now
	case StatusCompleted:
		row.CompletedAt = &now
	}
	row.Status = to
}

func validateRange(start, end string) error {
	var from, to time.Time
	var err error
	if start != "" {
		if from, err = worktime.ParseDate(start); err != nil {
			return scheduleerrors.ErrInvalidDate
		}
	}
	if end != "" {
		if to, err = worktime.ParseDate(end); err != nil {
			return scheduleerrors.ErrInvalidDate
		}
	}
	if start != "" && end != "" && from.After(to) {
		return scheduleerrors.ErrInvalidDateRange
	}
	return nil
}

func formatOptionalTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format(time.RFC3339)
	return &v
}

func mapToResponse(es EmployeeShift) EmployeeShiftResponse {
	var attendanceID *string
	if es.AttendanceID != nil {
		v := es.AttendanceID.String()
		attendanceID = &v
	}
	return EmployeeShiftResponse{
		ID:           es.ID.String(),
		ScheduleCode: es.ScheduleCode,
		EmployeeID:   es.EmployeeID.String(),
		ShiftID:      es.ShiftID.String(),
		Date:         es.ScheduleDate.Format(worktime.DateLayout),
		Status:       es.Status,
		AttendanceID: attendanceID,
		Notes:        es.Notes,
		AssignedBy:   es.AssignedBy.String(),
		ConfirmedAt:  formatOptionalTime(es.ConfirmedAt),
		CompletedAt:  formatOptionalTime(es.CompletedAt),
		Version:      es.Version,
		CreatedAt:    es.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    es.UpdatedAt.Format(time.RFC3339),
	}
}
