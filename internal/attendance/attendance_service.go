package attendance

import (
	"context"
	"database/sql"
	"strings"
	"time"

	attendanceerrors "go-workforce/internal/attendance/errors"
	"go-workforce/internal/audit"
	"go-workforce/internal/config"
	"go-workforce/internal/events"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/bulk"
	"go-workforce/internal/shared/contextutil"
	"go-workforce/internal/shared/ids"
	"go-workforce/internal/shared/retry"
	"go-workforce/internal/shared/worktime"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID, actorID string, req CreateAttendanceRequest) (AttendanceResponse, error)
	GetAll(ctx context.Context, companyID string, filter AttendanceFilter) ([]AttendanceResponse, error)
	GetByID(ctx context.Context, companyID, id string) (AttendanceResponse, error)
	UpdateStatus(ctx context.Context, companyID, actorID, id string, req UpdateStatusRequest) (AttendanceResponse, error)
	Approve(ctx context.Context, companyID, actorID, id string, version *int) (AttendanceResponse, error)
	Reject(ctx context.Context, companyID, actorID, id string, version *int) (AttendanceResponse, error)
	BulkUpdateStatus(ctx context.Context, companyID, actorID string, req BulkStatusRequest) bulk.Summary
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db           *sql.DB
	repo         Repository
	outbox       kafka.OutboxRepository
	audit        audit.Logger
	workflowMode string
	logger       *zap.Logger
	now          func() time.Time
}

func NewService(db *sql.DB, repo Repository, outbox kafka.OutboxRepository, auditLogger audit.Logger, workflowMode string, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	if auditLogger == nil {
		auditLogger = audit.Nop()
	}
	if workflowMode == "" {
		workflowMode = config.WorkflowModeReview
	}
	return &service{
		db:           db,
		repo:         repo,
		outbox:       outbox,
		audit:        auditLogger,
		workflowMode: workflowMode,
		logger:       l,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Create submits a record. Every field is validated before the first query so a rejected
// request never leaves a partial row behind.
func (s *service) Create(ctx context.Context, companyID, actorID string, req CreateAttendanceRequest) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create attendance requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("employee_id", req.EmployeeID),
		zap.Bool("is_adjustment", req.IsAdjustment),
	)

	row, err := buildRecord(companyID, actorID, req)
	if err != nil {
		s.logger.Warn("create attendance rejected", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}

	ok, err := s.repo.EmployeeBelongsToCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		return AttendanceResponse{}, err
	}
	if !ok {
		return AttendanceResponse{}, attendanceerrors.ErrEmployeeNotInCompany
	}

	if row.AdjustsAttendanceID != nil {
		target, err := s.repo.FindByID(ctx, companyID, row.AdjustsAttendanceID.String())
		if err != nil {
			return AttendanceResponse{}, apperror.FromRepository(err, attendanceerrors.ErrAdjustmentTargetNotFound)
		}
		if target.EmployeeID != row.EmployeeID {
			return AttendanceResponse{}, attendanceerrors.ErrAdjustmentTargetMismatch
		}
	}

	if row.EmployeeShiftID != nil {
		ref, err := s.repo.FindShiftAssignment(ctx, companyID, row.EmployeeShiftID.String())
		if err != nil {
			return AttendanceResponse{}, apperror.FromRepository(err, attendanceerrors.ErrEmployeeShiftNotFound)
		}
		if ref.EmployeeID != row.EmployeeID ||
			ref.ScheduleDate.Format(worktime.DateLayout) != row.AttendanceDate.Format(worktime.DateLayout) {
			s.logger.Warn("create attendance rejected", zap.String("request_id", rid),
				zap.String("employee_shift_id", row.EmployeeShiftID.String()), zap.Error(attendanceerrors.ErrEmployeeShiftMismatch))
			return AttendanceResponse{}, attendanceerrors.ErrEmployeeShiftMismatch
		}
	}

	// adjustment requests always wait for a manager
	if s.workflowMode == config.WorkflowModeDirect && !row.IsAdjustment {
		now := s.now()
		row.Status = StatusApproved
		row.ApprovedBy = &row.CreatedBy
		row.ApprovedAt = &now
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, row); err != nil {
		s.logger.Error("create attendance persist failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, apperror.FromRepository(err, nil)
	}
	if row.Status == StatusApproved {
		if err := s.writeStatusEvent(ctx, tx, row, "", actorID); err != nil {
			return AttendanceResponse{}, err
		}
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("create attendance commit failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.audit.Log(ctx, audit.Entry{
		Action:     audit.ActionRecordCreated,
		Resource:   "attendance",
		ResourceID: row.ID.String(),
		ActorID:    actorID,
		Message:    "attendance submitted",
		Meta: map[string]any{
			"employee_id":   req.EmployeeID,
			"status":        row.Status,
			"is_adjustment": row.IsAdjustment,
		},
	})
	s.logger.Info("create attendance success",
		zap.String("request_id", rid),
		zap.String("attendance_id", row.ID.String()),
		zap.String("status", row.Status),
	)
	return mapToResponse(*row), nil
}

func buildRecord(companyID, actorID string, req CreateAttendanceRequest) (*Attendance, error) {
	companyUUID, err := ids.Parse("company_id", companyID)
	if err != nil {
		return nil, err
	}
	actorUUID, err := ids.Parse("actor_id", actorID)
	if err != nil {
		return nil, err
	}
	employeeUUID, err := ids.Parse("employee_id", req.EmployeeID)
	if err != nil {
		return nil, err
	}
	shiftUUID, err := ids.ParseOptional("employee_shift_id", req.EmployeeShiftID)
	if err != nil {
		return nil, err
	}
	adjustsUUID, err := ids.ParseOptional("adjusts_attendance_id", req.AdjustsAttendanceID)
	if err != nil {
		return nil, err
	}

	date, err := worktime.ParseDate(req.Date)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidDate
	}
	checkIn, err := time.Parse(time.RFC3339, req.CheckIn)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidTimestamp
	}
	var checkOut *time.Time
	if req.CheckOut != nil && strings.TrimSpace(*req.CheckOut) != "" {
		out, err := time.Parse(time.RFC3339, *req.CheckOut)
		if err != nil {
			return nil, attendanceerrors.ErrInvalidTimestamp
		}
		if out.Before(checkIn) {
			return nil, attendanceerrors.ErrCheckOutBeforeCheckIn
		}
		if out.Sub(checkIn) > 24*time.Hour {
			return nil, attendanceerrors.ErrShiftTooLong
		}
		out = out.UTC()
		checkOut = &out
	}

	notes, err := ParseNoteFlags(req.Notes)
	if err != nil {
		return nil, err
	}

	var reason *string
	if req.IsAdjustment {
		if req.AdjustmentReason == nil || strings.TrimSpace(*req.AdjustmentReason) == "" {
			return nil, attendanceerrors.ErrAdjustmentReasonRequired
		}
		r := strings.TrimSpace(*req.AdjustmentReason)
		reason = &r
	} else if adjustsUUID != nil {
		return nil, apperror.InvalidField("adjusts_attendance_id")
	}

	row := &Attendance{
		ID:                  uuid.New(),
		CompanyID:           companyUUID,
		EmployeeID:          employeeUUID,
		EmployeeShiftID:     shiftUUID,
		AttendanceDate:      date,
		CheckIn:             checkIn.UTC(),
		CheckOut:            checkOut,
		Type:                req.Type,
		Status:              StatusPending,
		IsAdjustment:        req.IsAdjustment,
		AdjustmentReason:    reason,
		AdjustsAttendanceID: adjustsUUID,
		Notes:               notes,
		CreatedBy:           actorUUID,
		Version:             1,
	}
	row.Recompute()
	return row, nil
}

func (s *service) GetAll(ctx context.Context, companyID string, filter AttendanceFilter) ([]AttendanceResponse, error) {
	from, err := worktime.ParseDate(filter.StartDate)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidDate
	}
	to, err := worktime.ParseDate(filter.EndDate)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidDate
	}
	if from.After(to) {
		return nil, attendanceerrors.ErrInvalidDateRange
	}

	rows, err := retry.Do(ctx, retry.DefaultReadPolicy, s.logger, func(ctx context.Context) ([]Attendance, error) {
		return s.repo.FindAll(ctx, companyID, filter)
	})
	if err != nil {
		return nil, err
	}
	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (AttendanceResponse, error) {
	if _, err := ids.Parse("id", id); err != nil {
		return AttendanceResponse{}, err
	}
	row, err := retry.Do(ctx, retry.DefaultReadPolicy, s.logger, func(ctx context.Context) (*Attendance, error) {
		row, err := s.repo.FindByID(ctx, companyID, id)
		return row, apperror.FromRepository(err, attendanceerrors.ErrAttendanceNotFound)
	})
	if err != nil {
		return AttendanceResponse{}, err
	}
	return mapToResponse(*row), nil
}

// UpdateStatus approves or rejects a pending record. The row is locked, checked and written
// inside one transaction, and the write is conditional on the version that was read.
func (s *service) UpdateStatus(ctx context.Context, companyID, actorID, id string, req UpdateStatusRequest) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if _, err := ids.Parse("id", id); err != nil {
		return AttendanceResponse{}, err
	}
	actorUUID, err := ids.Parse("actor_id", actorID)
	if err != nil {
		return AttendanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByIDForUpdate(ctx, companyID, id)
	if err != nil {
		return AttendanceResponse{}, apperror.FromRepository(err, attendanceerrors.ErrAttendanceNotFound)
	}
	if req.Version != nil && *req.Version != row.Version {
		return AttendanceResponse{}, apperror.ErrStaleVersion
	}
	from := row.Status
	if !CanTransition(from, req.Status) {
		s.logger.Warn("attendance status transition rejected",
			zap.String("request_id", rid),
			zap.String("attendance_id", id),
			zap.String("from", from),
			zap.String("to", req.Status),
		)
		return AttendanceResponse{}, attendanceerrors.ErrInvalidTransition
	}

	now := s.now()
	row.Status = req.Status
	row.ApprovedBy = &actorUUID
	row.ApprovedAt = &now
	row.UpdatedAt = now

	if err := qtx.UpdateStatus(ctx, row, row.Version); err != nil {
		return AttendanceResponse{}, apperror.FromRepository(err, attendanceerrors.ErrAttendanceNotFound)
	}
	if err := s.writeStatusEvent(ctx, tx, row, from, actorID); err != nil {
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update attendance status commit failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.audit.Log(ctx, audit.Entry{
		Action:     audit.ActionStatusChanged,
		Resource:   "attendance",
		ResourceID: id,
		ActorID:    actorID,
		Message:    "attendance " + row.Status,
		Meta:       map[string]any{"from": from, "to": row.Status},
	})
	s.logger.Info("update attendance status success",
		zap.String("request_id", rid),
		zap.String("attendance_id", id),
		zap.String("status", row.Status),
	)
	return mapToResponse(*row), nil
}

func (s *service) Approve(ctx context.Context, companyID, actorID, id string, version *int) (AttendanceResponse, error) {
	return s.UpdateStatus(ctx, companyID, actorID, id, UpdateStatusRequest{Status: StatusApproved, Version: version})
}

func (s *service) Reject(ctx context.Context, companyID, actorID, id string, version *int) (AttendanceResponse, error) {
	return s.UpdateStatus(ctx, companyID, actorID, id, UpdateStatusRequest{Status: StatusRejected, Version: version})
}

func (s *service) BulkUpdateStatus(ctx context.Context, companyID, actorID string, req BulkStatusRequest) bulk.Summary {
	summary := bulk.Run(ctx, req.IDs, bulk.DefaultConcurrency, func(ctx context.Context, id string) (any, error) {
		return s.UpdateStatus(ctx, companyID, actorID, id, UpdateStatusRequest{Status: req.Status})
	})
	s.logger.Info("bulk attendance status finished",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("status", req.Status),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed),
	)
	return summary
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
		return apperror.FromRepository(err, attendanceerrors.ErrAttendanceNotFound)
	}
	if !Deletable(row.Status) {
		return attendanceerrors.ErrDeleteApproved
	}
	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return apperror.FromRepository(err, attendanceerrors.ErrAttendanceNotFound)
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.audit.Log(ctx, audit.Entry{
		Action:     audit.ActionRecordDeleted,
		Resource:   "attendance",
		ResourceID: id,
		Message:    "attendance deleted",
		Meta:       map[string]any{"status": row.Status},
	})
	return nil
}

func (s *service) writeStatusEvent(ctx context.Context, tx *sql.Tx, row *Attendance, from, actorID string) error {
	rid := contextutil.GetRequestID(ctx)
	payload := events.AttendanceStatusChangedEvent{
		EventType:    events.AttendanceStatusChangedType,
		RequestID:    rid,
		AttendanceID: row.ID.String(),
		CompanyID:    row.CompanyID.String(),
		EmployeeID:   row.EmployeeID.String(),
		FromStatus:   from,
		ToStatus:     row.Status,
		ActorID:      actorID,
		OccurredAt:   s.now(),
	}
	if row.EmployeeShiftID != nil {
		v := row.EmployeeShiftID.String()
		payload.EmployeeShiftID = &v
	}

	event, err := kafka.NewOutboxEvent(rid, "attendance", row.ID.String(),
		events.AttendanceStatusChangedType, events.AttendanceStatusChangedTopic, payload)
	if err != nil {
		return err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		s.logger.Error("attendance outbox write failed",
			zap.String("request_id", rid),
			zap.String("attendance_id", row.ID.String()),
			zap.Error(err),
		)
		return err
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

func formatOptionalID(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	v := id.String()
	return &v
}

func mapToResponse(a Attendance) AttendanceResponse {
	notes := a.Notes.Strings()
	return AttendanceResponse{
		ID:                  a.ID.String(),
		CompanyID:           a.CompanyID.String(),
		EmployeeID:          a.EmployeeID.String(),
		EmployeeShiftID:     formatOptionalID(a.EmployeeShiftID),
		Date:                a.AttendanceDate.Format(worktime.DateLayout),
		CheckIn:             a.CheckIn.Format(time.RFC3339),
		CheckOut:            formatOptionalTime(a.CheckOut),
		WorkingHours:        a.WorkingHours,
		Type:                a.Type,
		Status:              a.Status,
		IsAdjustment:        a.IsAdjustment,
		AdjustmentReason:    a.AdjustmentReason,
		AdjustsAttendanceID: formatOptionalID(a.AdjustsAttendanceID),
		Notes:               notes,
		CreatedBy:           a.CreatedBy.String(),
		ApprovedBy:          formatOptionalID(a.ApprovedBy),
		ApprovedAt:          formatOptionalTime(a.ApprovedAt),
		Version:             a.Version,
		CreatedAt:           a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           a.UpdatedAt.Format(time.RFC3339),
	}
}
