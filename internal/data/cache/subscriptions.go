// Package cache holds the process-local subscription cache and the
// Redis-backed catalog cache and recent-search history.
package cache

import (
	"sync"

	"club-booking/internal/data/entity"

	"github.com/google/uuid"
)

// SubscriptionCache keeps the last known subscriptions per child.
// Values are copied in and out so callers never share memory with the cache.
type SubscriptionCache struct {
	mu      sync.RWMutex
	byChild map[uuid.UUID][]entity.Subscription
	loaded  map[uuid.UUID]bool
}

func NewSubscriptionCache() *SubscriptionCache {
	return &SubscriptionCache{
		byChild: make(map[uuid.UUID][]entity.Subscription),
		loaded:  make(map[uuid.UUID]bool),
	}
}

// Replace overwrites the child's entry with subs and marks it loaded.
func (c *SubscriptionCache) Replace(childID uuid.UUID, subs []*entity.Subscription) {
	entry := make([]entity.Subscription, 0, len(subs))
	for _, s := range subs {
		entry = append(entry, *s)
	}

	c.mu.Lock()
	c.byChild[childID] = entry
	c.loaded[childID] = true
	c.mu.Unlock()
}

// Add appends sub to its child's entry, replacing any entry with the same ID.
// It does not mark the child as loaded.
func (c *SubscriptionCache) Add(sub *entity.Subscription) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := c.byChild[sub.ChildID]
	for i := range entry {
		if entry[i].ID == sub.ID {
			entry[i] = *sub
			return
		}
	}
	c.byChild[sub.ChildID] = append(entry, *sub)
}

// UpdateStatus sets the status of the cached subscription with the given ID.
// It reports whether the subscription was cached.
func (c *SubscriptionCache) UpdateStatus(id uuid.UUID, status entity.SubscriptionStatus) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, entry := range c.byChild {
		for i := range entry {
			if entry[i].ID == id {
				entry[i].Status = status
				return true
			}
		}
	}
	return false
}

// FindForCourse returns the child's cached subscription to courseID, or nil.
func (c *SubscriptionCache) FindForCourse(childID, courseID uuid.UUID) *entity.Subscription {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, s := range c.byChild[childID] {
		if s.CourseID == courseID {
			found := s
			return &found
		}
	}
	return nil
}

// ForChild returns copies of the child's cached subscriptions, never nil.
func (c *SubscriptionCache) ForChild(childID uuid.UUID) []*entity.Subscription {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry := c.byChild[childID]
	out := make([]*entity.Subscription, len(entry))
	for i := range entry {
		s := entry[i]
		out[i] = &s
	}
	return out
}

// Loaded reports whether the child's entry mirrors a full database read.
func (c *SubscriptionCache) Loaded(childID uuid.UUID) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.loaded[childID]
}

// Invalidate drops the child's entry.
func (c *SubscriptionCache) Invalidate(childID uuid.UUID) {
	c.mu.Lock()
	delete(c.byChild, childID)
	delete(c.loaded, childID)
	c.mu.Unlock()
}
