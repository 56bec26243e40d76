package schedule_test

import (
	"testing"
	"time"

	"club-booking/internal/data/entity"
	"club-booking/internal/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterializeBookings(t *testing.T) {
	subID := uuid.New()
	sessions := []time.Time{
		time.Date(2024, 1, 1, 16, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 16, 0, 0, 0, time.UTC),
	}

	bookings := schedule.MaterializeBookings(subID, sessions)

	require.Len(t, bookings, 2)
	for i, b := range bookings {
		assert.Equal(t, subID, b.SubscriptionID)
		assert.Equal(t, sessions[i], b.SessionDate)
		assert.Equal(t, entity.BookingStatusBooked, b.Status)
		assert.True(t, b.CanReschedule)
		assert.Equal(t, uuid.Nil, b.ID)
	}
}

func TestMaterializeBookings_NoSessions(t *testing.T) {
	assert.Empty(t, schedule.MaterializeBookings(uuid.New(), nil))
}
