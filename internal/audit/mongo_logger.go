package audit

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

const CollectionName = "audit_logs"

const writeTimeout = 3 * time.Second

// Inserter is the subset of *mongo.Collection used by MongoLogger.
type Inserter interface {
	InsertOne(ctx context.Context, document any, opts ...options.Lister[options.InsertOneOptions]) (*mongo.InsertOneResult, error)
}

// MongoLogger stores entries in MongoDB and hands them to fallback when the insert fails.
type MongoLogger struct {
	coll     Inserter
	fallback Logger
	logger   *zap.Logger
}

func NewMongoLogger(coll Inserter, fallback Logger, logger ...*zap.Logger) *MongoLogger {
	l := zap.L().Named("audit.mongo")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.mongo")
	}
	if fallback == nil {
		fallback = Nop()
	}
	return &MongoLogger{coll: coll, fallback: fallback, logger: l}
}

// EnsureIndexes creates the lookup indexes used by audit queries.
func EnsureIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "company_id", Value: 1}, {Key: "occurred_at", Value: -1}}},
		{Keys: bson.D{{Key: "resource", Value: 1}, {Key: "resource_id", Value: 1}}},
	})
	return err
}

func (l *MongoLogger) Log(ctx context.Context, entry Entry) {
	entry = Enrich(ctx, entry)

	// The request may already be finished; the write gets its own deadline.
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
	defer cancel()

	if _, err := l.coll.InsertOne(writeCtx, entry); err != nil {
		l.logger.Warn("audit insert failed, using fallback",
			zap.String("action", entry.Action),
			zap.String("resource_id", entry.ResourceID),
			zap.Error(err),
		)
		l.fallback.Log(ctx, entry)
	}
}
