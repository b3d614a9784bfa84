// Package period provides closed date ranges that know how to step to the period before and
// after them: weeks, half months, months, quarters, half years and years.
package period

import (
	"iter"
	"slices"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/garethgeorge/timespan/chrono"
	"github.com/garethgeorge/timespan/interval"
	"github.com/garethgeorge/timespan/rangeset"
)

// Period is the closed date range [Start, End] together with the cadence used to find its
// neighbours. Periods are values; navigation always returns a new Period.
type Period struct {
	start   chrono.Date
	end     chrono.Date
	cadence cadence
}

// Custom returns the period [start, end]. Its neighbours are found by shifting it by its own
// length.
func Custom(start, end chrono.Date) (Period, error) {
	if end.Before(start) {
		return Period{}, errors.Wrapf(interval.ErrInvalidRange, "period ends %v before it starts %v", end, start)
	}
	return Period{start: start, end: end}, nil
}

func (p Period) with(start, end chrono.Date) Period {
	return Period{start: start, end: end, cadence: p.cadence}
}

func (p Period) Start() chrono.Date {
	return p.start
}

func (p Period) End() chrono.Date {
	return p.end
}

// Len returns the number of days in p, counting both ends.
func (p Period) Len() int {
	return p.start.DaysUntil(p.end) + 1
}

// Range returns p as a closed range of dates.
func (p Period) Range() interval.Range[chrono.Date] {
	return interval.Must(interval.Closed(p.start, p.end))
}

// Dates iterates over every date in p in order.
func (p Period) Dates() iter.Seq[chrono.Date] {
	return func(yield func(chrono.Date) bool) {
		for d := p.start; !d.After(p.end); d = d.AddDays(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// DateAt returns the date i days into p.
func (p Period) DateAt(i int) (chrono.Date, bool) {
	if i < 0 || i >= p.Len() {
		return chrono.Date{}, false
	}
	return p.start.AddDays(i), true
}

// DatesOn returns the dates in p that fall on weekday.
func (p Period) DatesOn(weekday time.Weekday) []chrono.Date {
	var dates []chrono.Date
	first := p.start.AddDays(chrono.WeekdayOffset(p.start, weekday))
	for d := first; !d.After(p.end); d = d.AddDays(7) {
		dates = append(dates, d)
	}
	return dates
}

func (p Period) Contains(d chrono.Date) bool {
	return !d.Before(p.start) && !d.After(p.end)
}

// Encloses reports whether every date of other lies in p.
func (p Period) Encloses(other Period) bool {
	return p.Range().Encloses(other.Range())
}

func (p Period) Overlaps(other Period) bool {
	return p.Range().Overlaps(other.Range())
}

func (p Period) OverlapsAny(others ...Period) bool {
	for _, o := range others {
		if p.Overlaps(o) {
			return true
		}
	}
	return false
}

// Equal reports whether p and other cover the same dates, regardless of cadence.
func (p Period) Equal(other Period) bool {
	return p.start == other.start && p.end == other.end
}

// Compare orders periods by start date and then by end date.
func (p Period) Compare(other Period) int {
	if c := p.start.Compare(other.start); c != 0 {
		return c
	}
	return p.end.Compare(other.end)
}

func (p Period) String() string {
	return p.Range().String()
}

// Prior returns the period immediately before p.
func (p Period) Prior() Period {
	if p.cadence == nil {
		n := p.Len()
		return p.with(p.start.AddDays(-n), p.end.AddDays(-n))
	}
	return p.cadence.prior(p)
}

// Next returns the period immediately after p.
func (p Period) Next() Period {
	if p.cadence == nil {
		n := p.Len()
		return p.with(p.start.AddDays(n), p.end.AddDays(n))
	}
	return p.cadence.next(p)
}

// PriorN steps back n periods. A negative n steps forward.
func (p Period) PriorN(n int) Period {
	if n < 0 {
		return p.NextN(-n)
	}
	for range n {
		p = p.Prior()
	}
	return p
}

// NextN steps forward n periods. A negative n steps back.
func (p Period) NextN(n int) Period {
	if n < 0 {
		return p.PriorN(-n)
	}
	for range n {
		p = p.Next()
	}
	return p
}

// Before returns the n periods preceding p, earliest first.
func (p Period) Before(n int) []Period {
	return p.before(n, false)
}

// BeforeInclusive returns the n periods preceding p followed by p itself.
func (p Period) BeforeInclusive(n int) []Period {
	return p.before(n, true)
}

// After returns the n periods following p, earliest first.
func (p Period) After(n int) []Period {
	return p.after(n, false)
}

// AfterInclusive returns p followed by the n periods after it.
func (p Period) AfterInclusive(n int) []Period {
	return p.after(n, true)
}

// Window returns the before periods preceding p, p itself and the after periods following it,
// in order.
func (p Period) Window(before, after int) []Period {
	return append(p.before(before, true), p.after(after, false)...)
}

func (p Period) before(n int, self bool) []Period {
	out := make([]Period, 0, max(n, 0)+1)
	if self {
		out = append(out, p)
	}
	cur := p
	for range n {
		cur = cur.Prior()
		out = append(out, cur)
	}
	slices.Reverse(out)
	return out
}

func (p Period) after(n int, self bool) []Period {
	out := make([]Period, 0, max(n, 0)+1)
	if self {
		out = append(out, p)
	}
	cur := p
	for range n {
		cur = cur.Next()
		out = append(out, cur)
	}
	return out
}

// Containing walks from p to the period of the same cadence that contains d.
func (p Period) Containing(d chrono.Date) Period {
	cur := p
	for !cur.Contains(d) {
		if d.After(cur.end) {
			cur = cur.Next()
		} else {
			cur = cur.Prior()
		}
	}
	return cur
}

// Covering returns, in order, the periods of p's cadence that together cover every date from
// from to to.
func (p Period) Covering(from, to chrono.Date) ([]Period, error) {
	if to.Before(from) {
		return nil, errors.Wrapf(interval.ErrInvalidRange, "covering %v to %v", from, to)
	}
	cur := p.Containing(from)
	out := []Period{cur}
	for cur.end.Before(to) {
		cur = cur.Next()
		out = append(out, cur)
	}
	return out, nil
}

// Set aggregates the dates of periods into a range set. Each period is stored as the half-open
// range [Start, End+1) so that back-to-back periods merge into a single entry.
func Set(periods ...Period) *rangeset.Set[chrono.Date] {
	s := rangeset.New[chrono.Date]()
	for _, p := range periods {
		s.Insert(interval.Must(interval.ClosedOpen(p.start, p.end.AddDays(1))))
	}
	return s
}
