package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday accepts "0".."6" (Sunday = 0), full English day names and
// three-letter abbreviations, case-insensitive.
func ParseWeekday(s string) (time.Weekday, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(v); err == nil {
		if n < 0 || n > 6 {
			return 0, fmt.Errorf("invalid weekday %q", s)
		}
		return time.Weekday(n), nil
	}
	if d, ok := weekdayNames[v]; ok {
		return d, nil
	}
	if len(v) == 3 {
		for name, d := range weekdayNames {
			if strings.HasPrefix(name, v) {
				return d, nil
			}
		}
	}
	return 0, fmt.Errorf("invalid weekday %q", s)
}

// TimeOfDay is a wall-clock time without a date or zone.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

var timeOfDayLayouts = []string{"15:04:05", "15:04", "3:04 PM", "3:04PM", "3 PM"}

// ParseTimeOfDay accepts HH:MM:SS, HH:MM and 12-hour "h:MM AM" forms.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range timeOfDayLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// On returns the instant at this time of day on the calendar date of d, in loc.
func (t TimeOfDay) On(d time.Time, loc *time.Location) time.Time {
	y, m, day := d.In(loc).Date()
	return time.Date(y, m, day, t.Hour, t.Minute, t.Second, 0, loc)
}

// ScheduleEntry is one weekly recurrence of a course: a set of weekdays at one time.
type ScheduleEntry struct {
	Days []time.Weekday
	Time TimeOfDay
}

// Includes reports whether the entry recurs on the given weekday.
func (e ScheduleEntry) Includes(d time.Weekday) bool {
	for _, day := range e.Days {
		if day == d {
			return true
		}
	}
	return false
}

type scheduleEntryJSON struct {
	Days []string `json:"days"`
	Time string   `json:"time"`
}

// MarshalJSON stores days as "0".."6" strings and the time as HH:MM:SS.
func (e ScheduleEntry) MarshalJSON() ([]byte, error) {
	raw := scheduleEntryJSON{Days: make([]string, len(e.Days)), Time: e.Time.String()}
	for i, d := range e.Days {
		raw.Days[i] = strconv.Itoa(int(d))
	}
	return json.Marshal(raw)
}

func (e *ScheduleEntry) UnmarshalJSON(b []byte) error {
	var raw scheduleEntryJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	days := make([]time.Weekday, 0, len(raw.Days))
	for _, s := range raw.Days {
		d, err := ParseWeekday(s)
		if err != nil {
			return err
		}
		days = append(days, d)
	}

	tod, err := ParseTimeOfDay(raw.Time)
	if err != nil {
		return err
	}

	e.Days = days
	e.Time = tod
	return nil
}
