package chrono

import (
	"cmp"
	"fmt"
	"time"
)

const day = 24 * time.Hour

// TimeOfDay is a wall-clock time within a single day, stored as the offset from midnight.
// Valid values lie in [00:00, 24:00).
type TimeOfDay struct {
	sinceMidnight time.Duration
}

// TimeOf returns the time of day for the given clock fields. Values outside their usual
// range carry over and the result wraps around midnight.
func TimeOf(hour, min, sec, nsec int) TimeOfDay {
	d := time.Duration(hour)*time.Hour +
		time.Duration(min)*time.Minute +
		time.Duration(sec)*time.Second +
		time.Duration(nsec)
	return Midnight().Add(d)
}

// TimeOfDayFromTime returns the wall-clock time of t in t's own location.
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	return TimeOf(t.Hour(), t.Minute(), t.Second(), t.Nanosecond())
}

func Midnight() TimeOfDay {
	return TimeOfDay{}
}

func (t TimeOfDay) Hour() int { return int(t.sinceMidnight / time.Hour) }

func (t TimeOfDay) Minute() int { return int(t.sinceMidnight % time.Hour / time.Minute) }

func (t TimeOfDay) Second() int { return int(t.sinceMidnight % time.Minute / time.Second) }

func (t TimeOfDay) Nanosecond() int { return int(t.sinceMidnight % time.Second) }

// SinceMidnight returns the offset of t from the start of the day.
func (t TimeOfDay) SinceMidnight() time.Duration {
	return t.sinceMidnight
}

func (t TimeOfDay) Compare(other TimeOfDay) int {
	return cmp.Compare(t.sinceMidnight, other.sinceMidnight)
}

func (t TimeOfDay) Before(other TimeOfDay) bool { return t.sinceMidnight < other.sinceMidnight }

func (t TimeOfDay) After(other TimeOfDay) bool { return t.sinceMidnight > other.sinceMidnight }

// Add returns t moved by d, wrapping around midnight in either direction.
func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	v := (t.sinceMidnight + d%day) % day
	if v < 0 {
		v += day
	}
	return TimeOfDay{sinceMidnight: v}
}

// On combines t with a date into an instant in loc.
func (t TimeOfDay) On(d Date, loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

func (t TimeOfDay) String() string {
	if ns := t.Nanosecond(); ns != 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%09d", t.Hour(), t.Minute(), t.Second(), ns)
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}
