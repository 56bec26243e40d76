package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusBooked    BookingStatus = "booked"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is one concrete session of a subscription's course.
type Booking struct {
	BaseSimple
	SubscriptionID uuid.UUID     `db:"subscription_id"`
	SessionDate    time.Time     `db:"session_date"`
	Status         BookingStatus `db:"status"`
	CanReschedule  bool          `db:"can_reschedule"`
}
