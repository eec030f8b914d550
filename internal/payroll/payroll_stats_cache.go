package payroll

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	statsKeyPrefix    = "payroll:stats:"
	statsGenKeyPrefix = "payroll:stats:gen:"
)

// StatsCache keeps aggregated statistics per tenant and filter. Entries are never deleted one
// by one: bumping the tenant generation makes every older key unreachable until it expires.
type StatsCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	sf     singleflight.Group
	logger *zap.Logger
}

// NewStatsCache returns a cache backed by rdb. A nil client disables caching but keeps
// concurrent loads collapsed.
func NewStatsCache(rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) *StatsCache {
	l := zap.L().Named("payroll.stats_cache")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.stats_cache")
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &StatsCache{rdb: rdb, ttl: ttl, logger: l}
}

func statsGenKey(companyID string) string {
	return statsGenKeyPrefix + companyID
}

func statsKey(companyID string, gen int64, f StatsFilter) string {
	return fmt.Sprintf("%s%s:v%d:%s:%s:%s:%s", statsKeyPrefix, companyID, gen, f.StartDate, f.EndDate, f.DepartmentID, f.BranchID)
}

func (c *StatsCache) generation(ctx context.Context, companyID string) int64 {
	gen, err := c.rdb.Get(ctx, statsGenKey(companyID)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		c.logger.Warn("read stats generation failed", zap.String("company_id", companyID), zap.Error(err))
	}
	return gen
}

// Get returns the cached statistics or calls load once for all concurrent callers asking for
// the same key. Cache failures only cost a reload.
func (c *StatsCache) Get(ctx context.Context, companyID string, f StatsFilter, load func(ctx context.Context) (PayrollStatistics, error)) (PayrollStatistics, error) {
	if c == nil {
		return load(ctx)
	}

	var gen int64
	if c.rdb != nil {
		gen = c.generation(ctx, companyID)
	}
	key := statsKey(companyID, gen, f)

	if c.rdb != nil {
		if cached, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
			var stats PayrollStatistics
			if json.Unmarshal(cached, &stats) == nil {
				return stats, nil
			}
		}
	}

	v, err, _ := c.sf.Do(key, func() (any, error) {
		stats, err := load(ctx)
		if err != nil {
			return PayrollStatistics{}, err
		}
		if c.rdb != nil {
			if data, err := json.Marshal(stats); err == nil {
				if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
					c.logger.Warn("store payroll stats failed", zap.String("key", key), zap.Error(err))
				}
			}
		}
		return stats, nil
	})
	if err != nil {
		return PayrollStatistics{}, err
	}
	return v.(PayrollStatistics), nil
}

// Invalidate retires every cached entry of the tenant.
func (c *StatsCache) Invalidate(ctx context.Context, companyID string) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Incr(ctx, statsGenKey(companyID)).Err(); err != nil {
		c.logger.Error("invalidate payroll stats failed", zap.String("company_id", companyID), zap.Error(err))
	}
}
