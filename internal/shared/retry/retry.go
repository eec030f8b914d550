// Package retry re-runs idempotent reads on infrastructure failures. Mutations must not use it.
package retry

import (
	"context"
	"errors"
	"time"

	"go-workforce/internal/shared/apperror"

	"go.uber.org/zap"
)

type Policy struct {
	Attempts  int
	BaseDelay time.Duration
	MaxDelay  time.Duration
}

var DefaultReadPolicy = Policy{Attempts: 3, BaseDelay: 100 * time.Millisecond, MaxDelay: time.Second}

// Do calls fn until it succeeds or attempts run out. An AppError is returned without retrying.
func Do[T any](ctx context.Context, p Policy, logger *zap.Logger, fn func(ctx context.Context) (T, error)) (T, error) {
	var (
		zero    T
		lastErr error
	)
	if p.Attempts <= 0 {
		p.Attempts = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	delay := p.BaseDelay
	for attempt := 1; attempt <= p.Attempts; attempt++ {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) || attempt == p.Attempts {
			break
		}

		logger.Warn("read failed, retrying",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", p.Attempts),
			zap.Duration("backoff", delay),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}

		delay *= 2
		if p.MaxDelay > 0 && delay > p.MaxDelay {
			delay = p.MaxDelay
		}
	}
	return zero, lastErr
}
