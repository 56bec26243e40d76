package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"club-booking/internal/data/entity"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	clubsKey      = "catalog:clubs"
	coursesPrefix = "catalog:courses:"
)

// CatalogCache stores catalog listings. A miss returns (nil, nil).
type CatalogCache interface {
	GetClubs(ctx context.Context) ([]*entity.Club, error)
	SetClubs(ctx context.Context, clubs []*entity.Club) error
	// GetCourses and SetCourses key on scope: a club ID or "all".
	GetCourses(ctx context.Context, scope string) ([]*entity.Course, error)
	SetCourses(ctx context.Context, scope string, courses []*entity.Course) error
}

type redisCatalog struct {
	rdb redis.UniversalClient
	ttl time.Duration
	log *zap.Logger
}

func NewRedisCatalog(rdb redis.UniversalClient, ttl time.Duration, log *zap.Logger) CatalogCache {
	return &redisCatalog{
		rdb: rdb,
		ttl: ttl,
		log: log.With(zap.String("cache", "catalog")),
	}
}

func (c *redisCatalog) GetClubs(ctx context.Context) ([]*entity.Club, error) {
	var clubs []*entity.Club
	ok, err := c.get(ctx, clubsKey, &clubs)
	if err != nil || !ok {
		return nil, err
	}
	return clubs, nil
}

func (c *redisCatalog) SetClubs(ctx context.Context, clubs []*entity.Club) error {
	return c.set(ctx, clubsKey, clubs)
}

func (c *redisCatalog) GetCourses(ctx context.Context, scope string) ([]*entity.Course, error) {
	var courses []*entity.Course
	ok, err := c.get(ctx, coursesPrefix+scope, &courses)
	if err != nil || !ok {
		return nil, err
	}
	return courses, nil
}

func (c *redisCatalog) SetCourses(ctx context.Context, scope string, courses []*entity.Course) error {
	return c.set(ctx, coursesPrefix+scope, courses)
}

func (c *redisCatalog) get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		c.log.Warn("Catalog cache read failed", zap.Error(err), zap.String("key", key))
		return false, fmt.Errorf("get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		// stale layout; treat as a miss and let the next write replace it
		c.log.Warn("Discarding undecodable catalog entry", zap.Error(err), zap.String("key", key))
		return false, nil
	}
	return true, nil
}

func (c *redisCatalog) set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn("Catalog cache write failed", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// NoopCatalog is used when Redis is not configured; every read misses.
type NoopCatalog struct{}

func (NoopCatalog) GetClubs(context.Context) ([]*entity.Club, error) {
	return nil, nil
}

func (NoopCatalog) SetClubs(context.Context, []*entity.Club) error {
	return nil
}

func (NoopCatalog) GetCourses(context.Context, string) ([]*entity.Course, error) {
	return nil, nil
}

func (NoopCatalog) SetCourses(context.Context, string, []*entity.Course) error {
	return nil
}
