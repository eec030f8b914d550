package shift

import (
	"context"
	"database/sql"
	"time"

	"go-workforce/internal/audit"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/contextutil"
	"go-workforce/internal/shared/counter"
	"go-workforce/internal/shared/ids"
	"go-workforce/internal/shared/worktime"
	shifterrors "go-workforce/internal/shift/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=shift_service.go -destination=mock/shift_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateShiftRequest) (ShiftResponse, error)
	GetAll(ctx context.Context, companyID string, filter ShiftFilter) ([]ShiftResponse, error)
	GetByID(ctx context.Context, companyID, id string) (ShiftResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateShiftRequest) (ShiftResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	audit   audit.Logger
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counter counter.Repository, auditLogger audit.Logger, logger ...*zap.Logger) Service {
	l := zap.L().Named("shift.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("shift.service")
	}
	if auditLogger == nil {
		auditLogger = audit.Nop()
	}
	return &service{db: db, repo: repo, counter: counter, audit: auditLogger, logger: l}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateShiftRequest) (ShiftResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create shift requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("type", req.Type),
	)

	companyUUID, err := ids.Parse("company_id", companyID)
	if err != nil {
		return ShiftResponse{}, err
	}
	start, end, err := parseBlock(req.StartTime, req.EndTime)
	if err != nil {
		return ShiftResponse{}, err
	}
	if req.BreakMinutes >= worktime.SpanMinutes(start, end) {
		return ShiftResponse{}, shifterrors.ErrBreakTooLong
	}

	code := req.ShiftCode
	if code == "" {
		code, err = counter.NextCode(ctx, s.counter, companyID, counter.TypeShift)
		if err != nil {
			s.logger.Error("create shift generate code failed", zap.String("request_id", rid), zap.Error(err))
			return ShiftResponse{}, err
		}
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	row := &Shift{
		ID:           uuid.New(),
		CompanyID:    companyUUID,
		ShiftCode:    code,
		Name:         req.Name,
		Type:         req.Type,
		StartTime:    start,
		EndTime:      end,
		BreakMinutes: req.BreakMinutes,
		IsActive:     active,
		Version:      1,
	}
	row.Recompute()

	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Error("create shift persist failed", zap.String("request_id", rid), zap.Error(err))
		return ShiftResponse{}, apperror.FromRepository(err, nil)
	}

	s.audit.Log(ctx, audit.Entry{
		Action:     audit.ActionRecordCreated,
		Resource:   "shift",
		ResourceID: row.ID.String(),
		Message:    "shift created",
		Meta:       map[string]any{"shift_code": row.ShiftCode},
	})
	s.logger.Info("create shift success", zap.String("request_id", rid), zap.String("shift_id", row.ID.String()))
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, companyID string, filter ShiftFilter) ([]ShiftResponse, error) {
	rows, err := s.repo.FindAll(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	res := make([]ShiftResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (ShiftResponse, error) {
	if _, err := ids.Parse("id", id); err != nil {
		return ShiftResponse{}, err
	}
	row, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return ShiftResponse{}, apperror.FromRepository(err, shifterrors.ErrShiftNotFound)
	}
	return mapToResponse(*row), nil
}

// Update applies a partial change. Once any assignment references the shift only its name
// and active flag may change.
func (s *service) Update(ctx context.Context, companyID, id string, req UpdateShiftRequest) (ShiftResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if _, err := ids.Parse("id", id); err != nil {
		return ShiftResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ShiftResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByIDForUpdate(ctx, companyID, id)
	if err != nil {
		return ShiftResponse{}, apperror.FromRepository(err, shifterrors.ErrShiftNotFound)
	}
	if req.Version != nil && *req.Version != row.Version {
		return ShiftResponse{}, apperror.ErrStaleVersion
	}
	readVersion := row.Version

	blockChanged := false
	if req.Type != nil && *req.Type != row.Type {
		row.Type = *req.Type
		blockChanged = true
	}
	if req.StartTime != nil || req.EndTime != nil {
		startRaw, endRaw := row.StartTime.String(), row.EndTime.String()
		if req.StartTime != nil {
			startRaw = *req.StartTime
		}
		if req.EndTime != nil {
			endRaw = *req.EndTime
		}
		start, end, err := parseBlock(startRaw, endRaw)
		if err != nil {
			return ShiftResponse{}, err
		}
		if start != row.StartTime || end != row.EndTime {
			row.StartTime, row.EndTime = start, end
			blockChanged = true
		}
	}
	if req.BreakMinutes != nil && *req.BreakMinutes != row.BreakMinutes {
		row.BreakMinutes = *req.BreakMinutes
		blockChanged = true
	}
	if row.BreakMinutes >= worktime.SpanMinutes(row.StartTime, row.EndTime) {
		return ShiftResponse{}, shifterrors.ErrBreakTooLong
	}
	if req.Name != nil {
		row.Name = *req.Name
	}
	if req.IsActive != nil {
		row.IsActive = *req.IsActive
	}

	if blockChanged {
		referenced, err := qtx.IsReferenced(ctx, companyID, id)
		if err != nil {
			return ShiftResponse{}, err
		}
		if referenced {
			s.logger.Warn("update shift rejected, shift in use",
				zap.String("request_id", rid),
				zap.String("shift_id", id),
			)
			return ShiftResponse{}, shifterrors.ErrShiftInUse
		}
	}
	row.Recompute()

	if err := qtx.Update(ctx, row, readVersion); err != nil {
		return ShiftResponse{}, apperror.FromRepository(err, shifterrors.ErrShiftNotFound)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update shift commit failed", zap.String("request_id", rid), zap.Error(err))
		return ShiftResponse{}, err
	}

	s.logger.Info("update shift success", zap.String("request_id", rid), zap.String("shift_id", id))
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

	if _, err := qtx.FindByIDForUpdate(ctx, companyID, id); err != nil {
		return apperror.FromRepository(err, shifterrors.ErrShiftNotFound)
	}
	referenced, err := qtx.IsReferenced(ctx, companyID, id)
	if err != nil {
		return err
	}
	if referenced {
		return shifterrors.ErrShiftInUse
	}
	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return apperror.FromRepository(err, shifterrors.ErrShiftNotFound)
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.audit.Log(ctx, audit.Entry{
		Action:     audit.ActionRecordDeleted,
		Resource:   "shift",
		ResourceID: id,
		Message:    "shift deleted",
	})
	return nil
}

func parseBlock(startRaw, endRaw string) (worktime.TimeOfDay, worktime.TimeOfDay, error) {
	start, err := worktime.ParseTimeOfDay(startRaw)
	if err != nil {
		return 0, 0, shifterrors.ErrInvalidTimeOfDay
	}
	end, err := worktime.ParseTimeOfDay(endRaw)
	if err != nil {
		return 0, 0, shifterrors.ErrInvalidTimeOfDay
	}
	return start, end, nil
}

func mapToResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:           s.ID.String(),
		ShiftCode:    s.ShiftCode,
		Name:         s.Name,
		Type:         s.Type,
		StartTime:    s.StartTime.String(),
		EndTime:      s.EndTime.String(),
		BreakMinutes: s.BreakMinutes,
		WorkingHours: s.WorkingHours,
		IsActive:     s.IsActive,
		Version:      s.Version,
		CreatedAt:    s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    s.UpdatedAt.Format(time.RFC3339),
	}
}
