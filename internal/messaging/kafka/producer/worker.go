package producer

import (
	"context"
	"time"

	"go-workforce/internal/messaging/kafka"

	"go.uber.org/zap"
)

const batchSize = 50

// RelayOptions tunes the outbox relay. Zero values fall back to defaults.
type RelayOptions struct {
	PollInterval time.Duration
	Lease        time.Duration
	// Retention is how long sent rows are kept. Zero disables purging.
	Retention     time.Duration
	PurgeInterval time.Duration
}

func (o RelayOptions) withDefaults() RelayOptions {
	if o.PollInterval <= 0 {
		o.PollInterval = 3 * time.Second
	}
	if o.Lease <= 0 {
		o.Lease = 30 * time.Second
	}
	if o.PurgeInterval <= 0 {
		o.PurgeInterval = time.Hour
	}
	return o
}

// ProcessOutboxEvents polls the outbox until ctx is cancelled.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	opts RelayOptions,
) {
	opts = opts.withDefaults()

	log := logger.Named("kafka.producer.worker")
	ticker := time.NewTicker(opts.PollInterval)
	defer ticker.Stop()

	log.Info("outbox relay started",
		zap.Duration("poll_interval", opts.PollInterval),
		zap.Duration("lease", opts.Lease),
		zap.Duration("retention", opts.Retention),
	)

	var lastPurge time.Time
	for {
		select {
		case <-ctx.Done():
			log.Info("outbox relay stopped")
			return
		case now := <-ticker.C:
			if _, err := ProcessPending(ctx, repo, writer, log, opts.Lease); err != nil {
				log.Error("process outbox events failed", zap.Error(err))
			}
			if opts.Retention > 0 && now.Sub(lastPurge) >= opts.PurgeInterval {
				lastPurge = now
				PurgeSent(ctx, repo, log, now.Add(-opts.Retention))
			}
		}
	}
}

// ProcessPending relays one claimed batch and reports how many events were sent.
func ProcessPending(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	lease time.Duration,
) (int, error) {
	events, err := repo.ClaimPending(ctx, batchSize, lease)
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	logger.Debug("claimed outbox batch", zap.Int("count", len(events)))

	sent := 0
	for _, event := range events {
		log := logger.With(
			zap.String("outbox_id", event.ID),
			zap.String("request_id", event.RequestID),
			zap.String("event_type", event.EventType),
		)

		if err := publishEvent(ctx, writer, event); err != nil {
			log.Warn("publish outbox event failed", zap.Int("retry_count", event.RetryCount), zap.Error(err))
			if markErr := repo.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
				log.Error("reschedule outbox event failed", zap.Error(markErr))
			}
			continue
		}

		// The message is already on the topic; if this fails the lease expires and it is sent again.
		if err := repo.MarkSent(ctx, event.ID); err != nil {
			log.Error("mark outbox sent failed", zap.Error(err))
			continue
		}
		sent++
	}

	logger.Info("outbox batch relayed", zap.Int("claimed", len(events)), zap.Int("sent", sent))
	return sent, nil
}

// PurgeSent deletes sent rows processed before cutoff. Failures are logged only.
func PurgeSent(ctx context.Context, repo kafka.OutboxRepository, logger *zap.Logger, cutoff time.Time) {
	n, err := repo.PurgeSent(ctx, cutoff)
	if err != nil {
		logger.Error("purge sent outbox events failed", zap.Error(err))
		return
	}
	if n > 0 {
		logger.Info("purged sent outbox events", zap.Int64("count", n), zap.Time("cutoff", cutoff))
	}
}
