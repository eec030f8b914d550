package payroll

import (
	"context"
	"database/sql"
	"time"

	"go-workforce/internal/attendance"
	"go-workforce/internal/audit"
	"go-workforce/internal/events"
	"go-workforce/internal/messaging/kafka"
	payrollerrors "go-workforce/internal/payroll/errors"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/bulk"
	"go-workforce/internal/shared/contextutil"
	"go-workforce/internal/shared/counter"
	"go-workforce/internal/shared/ids"
	"go-workforce/internal/shared/money"
	"go-workforce/internal/shared/retry"
	"go-workforce/internal/shared/worktime"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID, actorID string, req CreatePayrollRequest) (PayrollResponse, error)
	Generate(ctx context.Context, companyID, actorID string, req GeneratePayrollRequest) (PayrollResponse, error)
	GetAll(ctx context.Context, companyID string, filter PayrollFilter) ([]PayrollResponse, error)
	GetByID(ctx context.Context, companyID, id string) (PayrollResponse, error)
	Breakdown(ctx context.Context, companyID, id string) (BreakdownResponse, error)
	Recalculate(ctx context.Context, companyID, actorID, id string, req RecalculatePayrollRequest) (PayrollResponse, error)
	UpdateStatus(ctx context.Context, companyID, actorID, id string, req UpdateStatusRequest) (PayrollResponse, error)
	Finalize(ctx context.Context, companyID, actorID, id string, version *int) (PayrollResponse, error)
	MarkPaid(ctx context.Context, companyID, actorID, id string, version *int) (PayrollResponse, error)
	BulkUpdateStatus(ctx context.Context, companyID, actorID string, req BulkStatusRequest) bulk.Summary
	Delete(ctx context.Context, companyID, actorID, id string) error
	Stats(ctx context.Context, companyID string, filter StatsFilter) (PayrollStatistics, error)
}

// AttendanceSource supplies the approved worked time of an employee.
type AttendanceSource interface {
	SummarizeApproved(ctx context.Context, companyID, employeeID string, from, to time.Time) (attendance.WorkSummary, error)
}

type Options struct {
	// StandardMonthlyHours derives the hourly rate from the base salary; zero disables it.
	StandardMonthlyHours int
}

type service struct {
	db         *sql.DB
	repo       Repository
	attendance AttendanceSource
	outbox     kafka.OutboxRepository
	counter    counter.Repository
	cache      *StatsCache
	audit      audit.Logger
	opts       Options
	logger     *zap.Logger
	now        func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	source AttendanceSource,
	outbox kafka.OutboxRepository,
	counter counter.Repository,
	cache *StatsCache,
	auditLogger audit.Logger,
	opts Options,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	if auditLogger == nil {
		auditLogger = audit.Nop()
	}
	return &service{
		db:         db,
		repo:       repo,
		attendance: source,
		outbox:     outbox,
		counter:    counter,
		cache:      cache,
		audit:      auditLogger,
		opts:       opts,
		logger:     l,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func parsePeriod(start, end string) (time.Time, time.Time, error) {
	from, err := worktime.ParseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, payrollerrors.ErrInvalidDateFormat
	}
	to, err := worktime.ParseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, payrollerrors.ErrInvalidDateFormat
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, payrollerrors.ErrInvalidDateRange
	}
	return from, to, nil
}

// compute resolves the hourly rate and runs the calculator.
func (s *service) compute(in Input) (Input, Breakdown, error) {
	if err := in.Validate(); err != nil {
		return in, Breakdown{}, err
	}
	in.HourlyRate = HourlyRateFor(in.HourlyRate, in.BaseSalary, s.opts.StandardMonthlyHours)
	in = in.Normalize()
	if !in.HourlyRate.IsPositive() && (in.OvertimeHours.IsPositive() || in.NightShiftHours.IsPositive()) {
		return in, Breakdown{}, payrollerrors.ErrHourlyRateRequired
	}
	b, err := Calculate(in)
	return in, b, err
}

func (s *service) Create(ctx context.Context, companyID, actorID string, req CreatePayrollRequest) (PayrollResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create payroll requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("period_start", req.PeriodStart),
		zap.String("period_end", req.PeriodEnd),
	)

	companyUUID, err := ids.Parse("company_id", companyID)
	if err != nil {
		return PayrollResponse{}, err
	}
	actorUUID, err := ids.Parse("actor_id", actorID)
	if err != nil {
		return PayrollResponse{}, err
	}
	employeeUUID, err := ids.Parse("employee_id", req.EmployeeID)
	if err != nil {
		return PayrollResponse{}, err
	}
	branchUUID, err := ids.ParseOptional("branch_id", req.BranchID)
	if err != nil {
		return PayrollResponse{}, err
	}
	start, end, err := parsePeriod(req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return PayrollResponse{}, err
	}
	if req.WorkingDays < 0 {
		return PayrollResponse{}, payrollerrors.ErrInvalidAmount.WithDetails(map[string]string{"field": "working_days"})
	}
	if req.TotalWorkingHours.IsNegative() {
		return PayrollResponse{}, payrollerrors.ErrInvalidAmount.WithDetails(map[string]string{"field": "total_working_hours"})
	}

	in, b, err := s.compute(Input{
		BaseSalary:           req.BaseSalary,
		HourlyRate:           req.HourlyRate,
		OvertimeHours:        req.OvertimeHours,
		OvertimeMultiplier:   req.OvertimeMultiplier,
		NightShiftHours:      req.NightShiftHours,
		NightShiftMultiplier: req.NightShiftMultiplier,
		Allowances:           req.Allowances,
		Deductions:           req.Deductions,
	})
	if err != nil {
		s.logger.Warn("create payroll rejected", zap.String("request_id", rid), zap.Error(err))
		return PayrollResponse{}, err
	}

	ok, err := s.repo.EmployeeBelongsToCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		return PayrollResponse{}, err
	}
	if !ok {
		return PayrollResponse{}, payrollerrors.ErrEmployeeNotInCompany
	}

	code, err := counter.NextCode(ctx, s.counter, companyID, counter.TypePayroll)
	if err != nil {
		s.logger.Error("generate payroll code failed", zap.String("request_id", rid), zap.Error(err))
		return PayrollResponse{}, err
	}

	row := &Payroll{
		ID:                uuid.New(),
		CompanyID:         companyUUID,
		PayrollCode:       code,
		EmployeeID:        employeeUUID,
		BranchID:          branchUUID,
		PeriodStart:       start,
		PeriodEnd:         end,
		PeriodType:        req.PeriodType,
		WorkingDays:       req.WorkingDays,
		TotalWorkingHours: money.Round(req.TotalWorkingHours),
		Status:            StatusDraft,
		Notes:             req.Notes,
		CreatedBy:         actorUUID,
		Version:           1,
	}
	row.Apply(in, b)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	overlap, err := qtx.HasOverlappingPeriod(ctx, companyID, req.EmployeeID, start, end, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	if overlap {
		return PayrollResponse{}, payrollerrors.ErrPayrollOverlap
	}
	if err := qtx.Create(ctx, row); err != nil {
		if apperror.IsUniqueViolation(err) {
			return PayrollResponse{}, payrollerrors.ErrPayrollOverlap
		}
		s.logger.Error("create payroll persist failed", zap.String("request_id", rid), zap.Error(err))
		return PayrollResponse{}, apperror.FromRepository(err, nil)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("create payroll commit failed", zap.String("request_id", rid), zap.Error(err))
		return PayrollResponse{}, err
	}

	s.cache.Invalidate(ctx, companyID)
	s.audit.Log(ctx, audit.Entry{
		Action:     audit.ActionRecordCreated,
		Resource:   "payroll",
		ResourceID: row.ID.String(),
		ActorID:    actorID,
		Message:    "payroll drafted",
		Meta: map[string]any{
			"payroll_code": code,
			"employee_id":  req.EmployeeID,
			"net_pay":      row.NetPay.StringFixed(2),
		},
	})
	s.logger.Info("create payroll success",
		zap.String("request_id", rid),
		zap.String("payroll_id", row.ID.String()),
		zap.String("payroll_code", code),
	)

	res := mapToResponse(*row)
	res.Warnings = b.Warnings
	return res, nil
}

// Generate drafts a payroll whose worked time comes from the employee's approved attendance
// in the period.
func (s *service) Generate(ctx context.Context, companyID, actorID string, req GeneratePayrollRequest) (PayrollResponse, error) {
	start, end, err := parsePeriod(req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return PayrollResponse{}, err
	}
	if _, err := ids.Parse("employee_id", req.EmployeeID); err != nil {
		return PayrollResponse{}, err
	}

	summary, err := retry.Do(ctx, retry.DefaultReadPolicy, s.logger, func(ctx context.Context) (attendance.WorkSummary, error) {
		return s.attendance.SummarizeApproved(ctx, companyID, req.EmployeeID, start, end)
	})
	if err != nil {
		s.logger.Error("summarize attendance failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return PayrollResponse{}, err
	}

	return s.Create(ctx, companyID, actorID, CreatePayrollRequest{
		EmployeeID:           req.EmployeeID,
		BranchID:             req.BranchID,
		PeriodStart:          req.PeriodStart,
		PeriodEnd:            req.PeriodEnd,
		PeriodType:           req.PeriodType,
		BaseSalary:           req.BaseSalary,
		HourlyRate:           req.HourlyRate,
		WorkingDays:          summary.WorkingDays,
		TotalWorkingHours:    summary.TotalWorkingHours,
		OvertimeHours:        summary.OvertimeHours,
		OvertimeMultiplier:   req.OvertimeMultiplier,
		NightShiftHours:      summary.NightShiftHours,
		NightShiftMultiplier: req.NightShiftMultiplier,
		Allowances:           req.Allowances,
		Deductions:           req.Deductions,
		Notes:                req.Notes,
	})
}

func (s *service) GetAll(ctx context.Context, companyID string, filter PayrollFilter) ([]PayrollResponse, error) {
	for _, v := range []string{filter.StartDate, filter.EndDate} {
		if _, err := worktime.ParseDate(v); v != "" && err != nil {
			return nil, payrollerrors.ErrInvalidDateFormat
		}
	}
	if filter.StartDate != "" && filter.EndDate != "" && filter.StartDate > filter.EndDate {
		return nil, payrollerrors.ErrInvalidDateRange
	}
	rows, err := retry.Do(ctx, retry.DefaultReadPolicy, s.logger, func(ctx context.Context) ([]Payroll, error) {
		return s.repo.FindAll(ctx, companyID, filter)
	})
	if err != nil {
		return nil, err
	}
	res := make([]PayrollResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) find(ctx context.Context, companyID, id string) (*Payroll, error) {
	if _, err := ids.Parse("id", id); err != nil {
		return nil, err
	}
	return retry.Do(ctx, retry.DefaultReadPolicy, s.logger, func(ctx context.Context) (*Payroll, error) {
		row, err := s.repo.FindByID(ctx, companyID, id)
		return row, apperror.FromRepository(err, payrollerrors.ErrPayrollNotFound)
	})
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (PayrollResponse, error) {
	row, err := s.find(ctx, companyID, id)
	if err != nil {
		return PayrollResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Breakdown(ctx context.Context, companyID, id string) (BreakdownResponse, error) {
	row, err := s.find(ctx, companyID, id)
	if err != nil {
		return BreakdownResponse{}, err
	}
	b, err := Calculate(row.Input())
	if err != nil {
		return BreakdownResponse{}, err
	}
	return BreakdownResponse{
		PayrollID:   row.ID.String(),
		PayrollCode: row.PayrollCode,
		Status:      row.Status,
		Allowances:  row.Allowances.Data(),
		Deductions:  row.Deductions.Data(),
		Breakdown:   b,
	}, nil
}

// Recalculate overlays the request on the stored figures of a draft and recomputes every
// derived amount.
func (s *service) Recalculate(ctx context.Context, companyID, actorID, id string, req RecalculatePayrollRequest) (PayrollResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if _, err := ids.Parse("id", id); err != nil {
		return PayrollResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByIDForUpdate(ctx, companyID, id)
	if err != nil {
		return PayrollResponse{}, apperror.FromRepository(err, payrollerrors.ErrPayrollNotFound)
	}
	if req.Version != nil && *req.Version != row.Version {
		return PayrollResponse{}, apperror.ErrStaleVersion
	}
	if row.Status != StatusDraft {
		return PayrollResponse{}, payrollerrors.ErrRecalculateOnlyDraft
	}

	in := row.Input()
	if req.BaseSalary != nil {
		in.BaseSalary = *req.BaseSalary
		if req.HourlyRate == nil && s.opts.StandardMonthlyHours > 0 {
			in.HourlyRate = decimal.Zero
		}
	}
	if req.HourlyRate != nil {
		in.HourlyRate = *req.HourlyRate
	}
	if req.OvertimeHours != nil {
		in.OvertimeHours = *req.OvertimeHours
	}
	if req.OvertimeMultiplier != nil {
		in.OvertimeMultiplier = *req.OvertimeMultiplier
	}
	if req.NightShiftHours != nil {
		in.NightShiftHours = *req.NightShiftHours
	}
	if req.NightShiftMultiplier != nil {
		in.NightShiftMultiplier = *req.NightShiftMultiplier
	}
	if req.Allowances != nil {
		in.Allowances = *req.Allowances
	}
	if req.Deductions != nil {
		in.Deductions = *req.Deductions
	}

	in, b, err := s.compute(in)
	if err != nil {
		s.logger.Warn("recalculate payroll rejected", zap.String("request_id", rid), zap.String("payroll_id", id), zap.Error(err))
		return PayrollResponse{}, err
	}
	row.Apply(in, b)
	if req.Notes != nil {
		row.Notes = req.Notes
	}
	row.UpdatedAt = s.now()

	if err := qtx.UpdateFigures(ctx, row, row.Version); err != nil {
		return PayrollResponse{}, apperror.FromRepository(err, payrollerrors.ErrPayrollNotFound)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("recalculate payroll commit failed", zap.String("request_id", rid), zap.Error(err))
		return PayrollResponse{}, err
	}

	s.cache.Invalidate(ctx, companyID)
	s.audit.Log(ctx, audit.Entry{
		Action:     audit.ActionRecordRecomputed,
		Resource:   "payroll",
		ResourceID: id,
		ActorID:    actorID,
		Message:    "payroll recalculated",
		Meta:       map[string]any{"net_pay": row.NetPay.StringFixed(2)},
	})
	s.logger.Info("recalculate payroll success", zap.String("request_id", rid), zap.String("payroll_id", id))

	res := mapToResponse(*row)
	res.Warnings = b.Warnings
	return res, nil
}

// UpdateStatus moves a payroll one step forward. Rejected transitions leave the row untouched.
func (s *service) UpdateStatus(ctx context.Context, companyID, actorID, id string, req UpdateStatusRequest) (PayrollResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if _, err := ids.Parse("id", id); err != nil {
		return PayrollResponse{}, err
	}
	actorUUID, err := ids.Parse("actor_id", actorID)
	if err != nil {
		return PayrollResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByIDForUpdate(ctx, companyID, id)
	if err != nil {
		return PayrollResponse{}, apperror.FromRepository(err, payrollerrors.ErrPayrollNotFound)
	}
	if req.Version != nil && *req.Version != row.Version {
		return PayrollResponse{}, apperror.ErrStaleVersion
	}
	from := row.Status
	if !CanTransition(from, req.Status) {
		s.logger.Warn("payroll status transition rejected",
			zap.String("request_id", rid),
			zap.String("payroll_id", id),
			zap.String("from", from),
			zap.String("to", req.Status),
		)
		return PayrollResponse{}, payrollerrors.ErrInvalidTransition
	}

	now := s.now()
	row.Status = req.Status
	switch req.Status {
	case StatusFinalized:
		row.FinalizedBy = &actorUUID
		row.FinalizedAt = &now
	case StatusPaid:
		row.PaidBy = &actorUUID
		row.PaidAt = &now
	}
	row.UpdatedAt = now

	if err := qtx.UpdateStatus(ctx, row, row.Version); err != nil {
		return PayrollResponse{}, apperror.FromRepository(err, payrollerrors.ErrPayrollNotFound)
	}
	if err := s.writeStatusEvent(ctx, tx, row, from, actorID); err != nil {
		return PayrollResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update payroll status commit failed", zap.String("request_id", rid), zap.Error(err))
		return PayrollResponse{}, err
	}

	s.cache.Invalidate(ctx, companyID)
	s.audit.Log(ctx, audit.Entry{
		Action:     audit.ActionStatusChanged,
		Resource:   "payroll",
		ResourceID: id,
		ActorID:    actorID,
		Message:    "payroll " + row.Status,
		Meta:       map[string]any{"from": from, "to": row.Status},
	})
	s.logger.Info("update payroll status success",
		zap.String("request_id", rid),
		zap.String("payroll_id", id),
		zap.String("status", row.Status),
	)
	return mapToResponse(*row), nil
}

func (s *service) Finalize(ctx context.Context, companyID, actorID, id string, version *int) (PayrollResponse, error) {
	return s.UpdateStatus(ctx, companyID, actorID, id, UpdateStatusRequest{Status: StatusFinalized, Version: version})
}

func (s *service) MarkPaid(ctx context.Context, companyID, actorID, id string, version *int) (PayrollResponse, error) {
	return s.UpdateStatus(ctx, companyID, actorID, id, UpdateStatusRequest{Status: StatusPaid, Version: version})
}

func (s *service) BulkUpdateStatus(ctx context.Context, companyID, actorID string, req BulkStatusRequest) bulk.Summary {
	summary := bulk.Run(ctx, req.IDs, bulk.DefaultConcurrency, func(ctx context.Context, id string) (any, error) {
		return s.UpdateStatus(ctx, companyID, actorID, id, UpdateStatusRequest{Status: req.Status})
	})
	s.logger.Info("bulk payroll status finished",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("status", req.Status),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed),
	)
	return summary
}

func (s *service) Delete(ctx context.Context, companyID, actorID, id string) error {
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
		return apperror.FromRepository(err, payrollerrors.ErrPayrollNotFound)
	}
	if !Deletable(row.Status) {
		return payrollerrors.ErrDeletePaid
	}
	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return apperror.FromRepository(err, payrollerrors.ErrPayrollNotFound)
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, companyID)
	s.audit.Log(ctx, audit.Entry{
		Action:     audit.ActionRecordDeleted,
		Resource:   "payroll",
		ResourceID: id,
		ActorID:    actorID,
		Message:    "payroll deleted",
		Meta:       map[string]any{"status": row.Status, "payroll_code": row.PayrollCode},
	})
	return nil
}

func (s *service) Stats(ctx context.Context, companyID string, filter StatsFilter) (PayrollStatistics, error) {
	if _, _, err := parsePeriod(filter.StartDate, filter.EndDate); err != nil {
		return PayrollStatistics{}, err
	}
	return s.cache.Get(ctx, companyID, filter, func(ctx context.Context) (PayrollStatistics, error) {
		return retry.Do(ctx, retry.DefaultReadPolicy, s.logger, func(ctx context.Context) (PayrollStatistics, error) {
			return s.repo.Stats(ctx, companyID, filter)
		})
	})
}

func (s *service) writeStatusEvent(ctx context.Context, tx *sql.Tx, row *Payroll, from, actorID string) error {
	rid := contextutil.GetRequestID(ctx)
	payload := events.PayrollStatusChangedEvent{
		EventType:   events.PayrollStatusChangedType,
		RequestID:   rid,
		PayrollID:   row.ID.String(),
		PayrollCode: row.PayrollCode,
		CompanyID:   row.CompanyID.String(),
		EmployeeID:  row.EmployeeID.String(),
		FromStatus:  from,
		ToStatus:    row.Status,
		NetPay:      row.NetPay.StringFixed(2),
		ActorID:     actorID,
		OccurredAt:  s.now(),
	}

	event, err := kafka.NewOutboxEvent(rid, "payroll", row.ID.String(),
		events.PayrollStatusChangedType, events.PayrollStatusChangedTopic, payload)
	if err != nil {
		return err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		s.logger.Error("payroll outbox write failed",
			zap.String("request_id", rid),
			zap.String("payroll_id", row.ID.String()),
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

func mapToResponse(p Payroll) PayrollResponse {
	return PayrollResponse{
		ID:                   p.ID.String(),
		PayrollCode:          p.PayrollCode,
		CompanyID:            p.CompanyID.String(),
		EmployeeID:           p.EmployeeID.String(),
		BranchID:             formatOptionalID(p.BranchID),
		PeriodStart:          p.PeriodStart.Format(worktime.DateLayout),
		PeriodEnd:            p.PeriodEnd.Format(worktime.DateLayout),
		PeriodType:           p.PeriodType,
		BaseSalary:           p.BaseSalary,
		HourlyRate:           p.HourlyRate,
		WorkingDays:          p.WorkingDays,
		TotalWorkingHours:    p.TotalWorkingHours,
		OvertimeHours:        p.OvertimeHours,
		OvertimeMultiplier:   p.OvertimeMultiplier,
		NightShiftHours:      p.NightShiftHours,
		NightShiftMultiplier: p.NightShiftMultiplier,
		Allowances:           p.Allowances.Data(),
		Deductions:           p.Deductions.Data(),
		OvertimePay:          p.OvertimePay,
		NightShiftPay:        p.NightShiftPay,
		TotalAllowances:      p.TotalAllowances,
		TotalDeductions:      p.TotalDeductions,
		GrossPay:             p.GrossPay,
		NetPay:               p.NetPay,
		Status:               p.Status,
		Notes:                p.Notes,
		CreatedBy:            p.CreatedBy.String(),
		FinalizedBy:          formatOptionalID(p.FinalizedBy),
		FinalizedAt:          formatOptionalTime(p.FinalizedAt),
		PaidBy:               formatOptionalID(p.PaidBy),
		PaidAt:               formatOptionalTime(p.PaidAt),
		Version:              p.Version,
		CreatedAt:            p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            p.UpdatedAt.Format(time.RFC3339),
	}
}
