package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"go-workforce/internal/events"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/contextutil"

	"go.uber.org/zap"
)

const attendanceStatusApproved = "approved"

// ScheduleCompleter closes the shift assignment an approved attendance record belongs to.
type ScheduleCompleter interface {
	CompleteFromAttendance(ctx context.Context, companyID, employeeShiftID, employeeID, attendanceID string) error
}

func ConsumeAttendanceStatusChanged(
	ctx context.Context,
	reader MessageReader,
	completer ScheduleCompleter,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.attendance_status")
	log.Info("attendance status consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("attendance status consumer stopped")
				return
			}
			log.Error("fetch attendance status message failed", zap.Error(err))
			continue
		}

		var event events.AttendanceStatusChangedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode attendance status event failed", zap.Int64("offset", msg.Offset), zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if event.ToStatus != attendanceStatusApproved || event.EmployeeShiftID == nil || *event.EmployeeShiftID == "" {
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		eventCtx := contextutil.WithRequestID(ctx, event.RequestID)
		eventCtx = contextutil.WithActor(eventCtx, event.ActorID, event.CompanyID, "")

		evLog := log.With(
			zap.String("request_id", event.RequestID),
			zap.String("attendance_id", event.AttendanceID),
			zap.String("employee_shift_id", *event.EmployeeShiftID),
			zap.String("employee_id", event.EmployeeID),
			zap.String("company_id", event.CompanyID),
		)

		err = completer.CompleteFromAttendance(eventCtx, event.CompanyID, *event.EmployeeShiftID, event.EmployeeID, event.AttendanceID)
		if err != nil {
			var appErr *apperror.AppError
			if !errors.As(err, &appErr) {
				evLog.Error("complete employee shift failed", zap.Error(err))
				continue
			}
			// Domain rejections will not change on redelivery.
			evLog.Warn("employee shift not completed, skipping", zap.String("code", appErr.Code), zap.Error(err))
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			evLog.Error("commit attendance status message failed", zap.Error(err))
			continue
		}

		if err == nil {
			evLog.Info("employee shift completed from approved attendance")
		}
	}
}
