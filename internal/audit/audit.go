// Package audit records who changed what. Entries are best effort: a failing sink never fails
// the request that produced the entry.
package audit

import (
	"context"
	"time"

	"go-workforce/internal/shared/contextutil"
)

const (
	ActionServerShutdown   = "SERVER_SHUTDOWN"
	ActionStatusChanged    = "STATUS_CHANGED"
	ActionRecordCreated    = "RECORD_CREATED"
	ActionRecordDeleted    = "RECORD_DELETED"
	ActionRecordRecomputed = "RECORD_RECOMPUTED"
)

type Entry struct {
	Action     string         `bson:"action" json:"action"`
	Resource   string         `bson:"resource,omitempty" json:"resource,omitempty"`
	ResourceID string         `bson:"resource_id,omitempty" json:"resource_id,omitempty"`
	Message    string         `bson:"message" json:"message"`
	CompanyID  string         `bson:"company_id,omitempty" json:"company_id,omitempty"`
	ActorID    string         `bson:"actor_id,omitempty" json:"actor_id,omitempty"`
	RequestID  string         `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Meta       map[string]any `bson:"meta,omitempty" json:"meta,omitempty"`
	OccurredAt time.Time      `bson:"occurred_at" json:"occurred_at"`
}

type Logger interface {
	Log(ctx context.Context, entry Entry)
}

// Enrich fills request metadata and the timestamp when the caller left them empty.
func Enrich(ctx context.Context, entry Entry) Entry {
	md := contextutil.ExtractMetadata(ctx)
	if entry.RequestID == "" {
		entry.RequestID = md.RequestID
	}
	if entry.ActorID == "" {
		entry.ActorID = md.ActorID
	}
	if entry.CompanyID == "" {
		entry.CompanyID = md.CompanyID
	}
	if entry.OccurredAt.IsZero() {
		entry.OccurredAt = time.Now().UTC()
	}
	return entry
}

type nopLogger struct{}

func (nopLogger) Log(context.Context, Entry) {}

// Nop discards every entry.
func Nop() Logger { return nopLogger{} }
