package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// MaxRecentSearches bounds the per-user search history.
const MaxRecentSearches = 5

// RecentSearches keeps a per-user, most-recent-first, de-duplicated list of
// search queries.
type RecentSearches interface {
	Add(ctx context.Context, userID uuid.UUID, query string) error
	List(ctx context.Context, userID uuid.UUID) ([]string, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}

type redisSearches struct {
	rdb redis.UniversalClient
}

func NewRedisSearches(rdb redis.UniversalClient) RecentSearches {
	return &redisSearches{rdb: rdb}
}

func searchesKey(userID uuid.UUID) string {
	return "searches:" + userID.String()
}

func (s *redisSearches) Add(ctx context.Context, userID uuid.UUID, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	key := searchesKey(userID)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LRem(ctx, key, 0, query)
		pipe.LPush(ctx, key, query)
		pipe.LTrim(ctx, key, 0, MaxRecentSearches-1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("add recent search: %w", err)
	}
	return nil
}

func (s *redisSearches) List(ctx context.Context, userID uuid.UUID) ([]string, error) {
	items, err := s.rdb.LRange(ctx, searchesKey(userID), 0, MaxRecentSearches-1).Result()
	if err != nil {
		return nil, fmt.Errorf("list recent searches: %w", err)
	}
	return items, nil
}

func (s *redisSearches) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.rdb.Del(ctx, searchesKey(userID)).Err(); err != nil {
		return fmt.Errorf("clear recent searches: %w", err)
	}
	return nil
}

type memorySearches struct {
	mu     sync.Mutex
	byUser map[uuid.UUID][]string
}

// NewMemorySearches keeps history in process memory; it is lost on restart.
func NewMemorySearches() RecentSearches {
	return &memorySearches{byUser: make(map[uuid.UUID][]string)}
}

func (s *memorySearches) Add(_ context.Context, userID uuid.UUID, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]string, 0, MaxRecentSearches)
	list = append(list, query)
	for _, q := range s.byUser[userID] {
		if q != query && len(list) < MaxRecentSearches {
			list = append(list, q)
		}
	}
	s.byUser[userID] = list
	return nil
}

func (s *memorySearches) List(_ context.Context, userID uuid.UUID) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.byUser[userID]))
	copy(out, s.byUser[userID])
	return out, nil
}

func (s *memorySearches) Clear(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	delete(s.byUser, userID)
	s.mu.Unlock()
	return nil
}
