package schedule

import (
	"time"

	"club-booking/internal/data/entity"
)

// Options controls how a weekly pattern is laid over a period.
type Options struct {
	// Location is the zone whose calendar days and wall-clock times the
	// schedule is written in. Nil means UTC.
	Location *time.Location
	// IncludeEndDay makes the last calendar day of the period eligible.
	// The day range is [start, end] when true and [start, end) when false.
	IncludeEndDay bool
}

// DefaultOptions are UTC with the end day included.
var DefaultOptions = Options{Location: time.UTC, IncludeEndDay: true}

// Expand enumerates the session instants of entries between start and end.
//
// Days are visited in ascending order. Within a day, sessions follow the
// declaration order of entries, not their time of day. Instants are UTC.
func Expand(entries []entity.ScheduleEntry, start, end time.Time, opts Options) []time.Time {
	if len(entries) == 0 || end.Before(start) {
		return nil
	}

	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	day := midnight(start, loc)
	last := midnight(end, loc)

	var sessions []time.Time
	for ; day.Before(last) || (opts.IncludeEndDay && day.Equal(last)); day = day.AddDate(0, 0, 1) {
		wd := day.Weekday()
		for _, e := range entries {
			if e.Includes(wd) {
				sessions = append(sessions, e.Time.On(day, loc).UTC())
			}
		}
	}

	return sessions
}

func midnight(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
