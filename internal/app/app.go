package app

import (
	"context"
	"database/sql"

	"go-workforce/internal/audit"
	"go-workforce/internal/config"
	"go-workforce/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Infra holds the shared connections of one process.
type Infra struct {
	GormDB *gorm.DB
	DB     *sql.DB
	Redis  *redis.Client
	Mongo  *mongo.Client
	Audit  audit.Logger
}

// Connect opens the database and the optional stores. Redis and MongoDB failures only
// degrade the process: idempotency and stats caching are skipped, audit stays on zap.
func Connect(ctx context.Context, cfg *config.Config, withRedis bool) (*Infra, error) {
	logger := zap.L().Named("app.infra")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	infra := &Infra{GormDB: gormDB, DB: sqlDB, Audit: audit.NewStdoutLogger()}

	if withRedis {
		rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, 5)
		if err != nil {
			logger.Warn("redis unavailable, idempotency and stats cache disabled", zap.Error(err))
		} else {
			infra.Redis = rdb
		}
	}

	if cfg.Mongo.URI != "" {
		client, err := connection.ConnectMongo(ctx, cfg.Mongo.URI)
		if err != nil {
			logger.Warn("mongodb unavailable, audit entries stay on the log", zap.Error(err))
		} else {
			coll := client.Database(cfg.Mongo.Database).Collection(audit.CollectionName)
			if err := audit.EnsureIndexes(ctx, coll); err != nil {
				logger.Warn("create audit indexes failed", zap.Error(err))
			}
			infra.Mongo = client
			infra.Audit = audit.NewMongoLogger(coll, infra.Audit)
		}
	}
	return infra, nil
}

func (i *Infra) Close(ctx context.Context) {
	if i.Mongo != nil {
		_ = i.Mongo.Disconnect(ctx)
	}
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
	if i.DB != nil {
		_ = i.DB.Close()
	}
}

func BuildApp(router *gin.Engine, cfg *config.Config, infra *Infra) error {
	return registerModules(router, cfg, infra)
}
