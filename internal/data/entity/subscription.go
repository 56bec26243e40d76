package entity

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionType string

const (
	SubscriptionDropIn    SubscriptionType = "drop_in"
	SubscriptionMonthly   SubscriptionType = "monthly"
	SubscriptionQuarterly SubscriptionType = "quarterly"
)

func (t SubscriptionType) Valid() bool {
	switch t {
	case SubscriptionDropIn, SubscriptionMonthly, SubscriptionQuarterly:
		return true
	}
	return false
}

// SubscriptionStatus values. Only active and expired are produced by this
// service; expiring and on_hold are set externally.
type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusExpiring SubscriptionStatus = "expiring"
	SubscriptionStatusExpired  SubscriptionStatus = "expired"
	SubscriptionStatusOnHold   SubscriptionStatus = "on_hold"
)

func (s SubscriptionStatus) Valid() bool {
	switch s {
	case SubscriptionStatusActive, SubscriptionStatusExpiring, SubscriptionStatusExpired, SubscriptionStatusOnHold:
		return true
	}
	return false
}

type Subscription struct {
	Base
	ChildID       uuid.UUID          `db:"child_id"`
	CourseID      uuid.UUID          `db:"course_id"`
	Type          SubscriptionType   `db:"subscription_type"`
	Status        SubscriptionStatus `db:"status"`
	StartDate     time.Time          `db:"start_date"`
	EndDate       time.Time          `db:"end_date"`
	NextSession   *time.Time         `db:"next_session"`
	RenewalDate   time.Time          `db:"renewal_date"`
	PaymentMethod string             `db:"payment_method"`
}
