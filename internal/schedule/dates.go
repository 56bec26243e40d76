// Package schedule turns a subscription type and a course's weekly pattern
// into a billing period and the concrete sessions inside it.
package schedule

import (
	"errors"
	"fmt"
	"time"

	"club-booking/internal/data/entity"
)

var ErrInvalidSubscriptionType = errors.New("invalid subscription type")

// Period is the validity window of a subscription.
type Period struct {
	Start   time.Time
	End     time.Time
	Renewal time.Time
}

var periodMonths = map[entity.SubscriptionType]int{
	entity.SubscriptionMonthly:   1,
	entity.SubscriptionQuarterly: 3,
	// drop-in only uses End as a validity bound
	entity.SubscriptionDropIn: 6,
}

// ComputeDates derives the period of a subscription starting at now.
//
// Month arithmetic is time.AddDate, which normalizes overflow: Jan 31 plus one
// month is Mar 2 in a leap year (Mar 3 otherwise). All returned instants are UTC.
func ComputeDates(t entity.SubscriptionType, now time.Time) (Period, error) {
	months, ok := periodMonths[t]
	if !ok {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidSubscriptionType, t)
	}

	start := now.UTC()
	end := start.AddDate(0, months, 0)

	return Period{
		Start:   start,
		End:     end,
		Renewal: end,
	}, nil
}
