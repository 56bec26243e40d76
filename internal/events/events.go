// Package events publishes subscription lifecycle events to a RabbitMQ topic exchange.
package events

import (
	"time"

	"club-booking/internal/data/entity"

	"github.com/google/uuid"
)

// Routing keys.
const (
	SubscriptionCreated       = "subscription.created"
	SubscriptionCancelled     = "subscription.cancelled"
	SubscriptionStatusChanged = "subscription.status_changed"
)

type SubscriptionEvent struct {
	SubscriptionID uuid.UUID                 `json:"subscription_id"`
	ChildID        uuid.UUID                 `json:"child_id"`
	CourseID       uuid.UUID                 `json:"course_id"`
	Type           entity.SubscriptionType   `json:"subscription_type"`
	Status         entity.SubscriptionStatus `json:"status"`
	BookingCount   int                       `json:"booking_count,omitempty"`
	Amount         float64                   `json:"amount,omitempty"`
	OccurredAt     time.Time                 `json:"occurred_at"`
}

func NewSubscriptionEvent(sub *entity.Subscription, bookingCount int, at time.Time) SubscriptionEvent {
	return SubscriptionEvent{
		SubscriptionID: sub.ID,
		ChildID:        sub.ChildID,
		CourseID:       sub.CourseID,
		Type:           sub.Type,
		Status:         sub.Status,
		BookingCount:   bookingCount,
		OccurredAt:     at.UTC(),
	}
}
