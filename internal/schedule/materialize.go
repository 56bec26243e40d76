package schedule

import (
	"time"

	"club-booking/internal/data/entity"

	"github.com/google/uuid"
)

// MaterializeBookings maps each session to a booked, reschedulable booking
// of the subscription. IDs are left zero and assigned on insert.
func MaterializeBookings(subscriptionID uuid.UUID, sessions []time.Time) []*entity.Booking {
	bookings := make([]*entity.Booking, len(sessions))
	for i, s := range sessions {
		bookings[i] = &entity.Booking{
			SubscriptionID: subscriptionID,
			SessionDate:    s,
			Status:         entity.BookingStatusBooked,
			CanReschedule:  true,
		}
	}
	return bookings
}
