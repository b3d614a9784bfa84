// Package chrono provides the zone-agnostic point types that ranges are built from.
//
// A Date is a calendar day and a TimeOfDay is a wall-clock time within a day. Instants are
// represented by time.Time directly; callers are expected to have resolved them into a single
// consistent zone.
package chrono

import (
	"cmp"
	"fmt"
	"time"
)

// Date is a calendar date with no time or zone component.
type Date struct {
	year  int
	month time.Month
	day   int
}

// DateOf returns the date for the given year, month and day. Out of range values are
// normalized the same way time.Date does, e.g. October 32 becomes November 1.
func DateOf(year int, month time.Month, day int) Date {
	return DateFromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateFromTime returns the calendar date of t in t's own location.
func DateFromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

func (d Date) Year() int { return d.year }

func (d Date) Month() time.Month { return d.month }

func (d Date) Day() int { return d.day }

func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }

// IsZero reports whether d is the zero Date, which is not a valid calendar date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns midnight UTC at the start of d.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d Date) Compare(other Date) int {
	switch {
	case d.year != other.year:
		return cmp.Compare(d.year, other.year)
	case d.month != other.month:
		return cmp.Compare(d.month, other.month)
	default:
		return cmp.Compare(d.day, other.day)
	}
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

func (d Date) Equal(other Date) bool { return d == other }

func (d Date) AddDays(n int) Date {
	return DateOf(d.year, d.month, d.day+n)
}

// AddMonths moves d by n months. The day is clamped to the last day of the target month, so
// January 31 plus one month is the last day of February.
func (d Date) AddMonths(n int) Date {
	first := DateOf(d.year, d.month+time.Month(n), 1)
	last := first.LastOfMonth()
	if d.day > last.day {
		return last
	}
	return Date{year: first.year, month: first.month, day: d.day}
}

// AddYears moves d by n years, clamping February 29 to February 28 in non-leap years.
func (d Date) AddYears(n int) Date {
	return d.AddMonths(12 * n)
}

func (d Date) FirstOfMonth() Date {
	return Date{year: d.year, month: d.month, day: 1}
}

func (d Date) LastOfMonth() Date {
	return DateOf(d.year, d.month+1, 0)
}

// DaysUntil returns the number of days from d to other, negative if other is earlier.
func (d Date) DaysUntil(other Date) int {
	return int(other.Time().Sub(d.Time()) / (24 * time.Hour))
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// WeekdayOffset returns how many days lie between d and the next occurrence of end, counting
// d itself, so the result is in [0, 6].
func WeekdayOffset(d Date, end time.Weekday) int {
	offset := int(end) - int(d.Weekday())
	if offset < 0 {
		offset += 7
	}
	return offset
}

