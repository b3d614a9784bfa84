// Package schedule books non-overlapping time ranges inside a bounded window.
package schedule

import (
	"iter"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/garethgeorge/timespan/interval"
	"github.com/garethgeorge/timespan/rangeset"
	"github.com/google/btree"
)

// Booking is a reserved range of time and the data attached to it.
type Booking[D any] struct {
	interval.Range[time.Time]
	Data D
}

// Calendar tracks bookings over a fixed domain. Free time is kept as a minimal range set
// alongside the bookings so that lookups of either never scan the other. It is not thread-safe.
type Calendar[D any] struct {
	domain interval.Range[time.Time]

	// The list of bookings, ordered by range.
	bookings *btree.BTreeG[Booking[D]]
	// The parts of the domain not covered by any booking.
	free *rangeset.Set[time.Time]
}

func New[D any](domain interval.Range[time.Time]) (*Calendar[D], error) {
	if domain.IsEmpty() || !domain.IsBounded() {
		return nil, errors.Wrapf(ErrUnboundedDomain, "domain %v", domain)
	}
	free := rangeset.New[time.Time]()
	free.Insert(domain)
	return &Calendar[D]{
		domain: domain,
		bookings: btree.NewG(32, func(a, b Booking[D]) bool {
			return a.Range.Compare(b.Range) < 0
		}),
		free: free,
	}, nil
}

func (c *Calendar[D]) Domain() interval.Range[time.Time] {
	return c.domain
}

// Book reserves exactly r. It fails with ErrOutOfDomain if r is not inside the domain and with
// ErrConflict if any part of r is already booked.
func (c *Calendar[D]) Book(r interval.Range[time.Time], data D) error {
	if r.IsEmpty() {
		return errors.Wrap(interval.ErrInvalidRange, "cannot book the empty range")
	}
	if !c.domain.Encloses(r) {
		return errors.Wrapf(ErrOutOfDomain, "booking %v in %v", r, c.domain)
	}
	if !c.free.Encloses(r) {
		return errors.Wrapf(ErrConflict, "booking %v overlaps %v", r, c.Overlapping(r))
	}
	c.markBooked(Booking[D]{Range: r, Data: data})
	return nil
}

func (c *Calendar[D]) markBooked(b Booking[D]) {
	c.free.Subtract(b.Range)
	c.bookings.ReplaceOrInsert(b)
}

// Reserve books the first free slot of length d, starting at the beginning of the earliest free
// range that can hold it.
func (c *Calendar[D]) Reserve(d time.Duration, data D) (Booking[D], error) {
	if d <= 0 {
		return Booking[D]{}, errors.Wrapf(interval.ErrInvalidRange, "reserve duration %v must be positive", d)
	}

	var slot interval.Range[time.Time]
	var found bool
	for gap := range c.free.All() {
		start, _ := gap.Start()
		// Keep the gap's own lower bound: a gap that opens just after a closed booking can only
		// start after that booking's end.
		candidate := interval.Must(interval.FromBounds(gap.Lower(), interval.Exclusive(start.Add(d))))
		if gap.Encloses(candidate) {
			slot = candidate
			found = true
			break
		}
	}
	if !found {
		return Booking[D]{}, errors.Wrapf(ErrNoCapacity, "reserve %v with %v free", d, c.FreeTime())
	}

	b := Booking[D]{Range: slot, Data: data}
	c.markBooked(b)
	return b, nil
}

// Cancel removes the booking whose range is exactly r and returns its time to the free list.
func (c *Calendar[D]) Cancel(r interval.Range[time.Time]) bool {
	b, found := c.bookings.Delete(Booking[D]{Range: r})
	if !found {
		return false
	}
	c.free.Insert(b.Range)
	return true
}

// Lookup returns the booking covering t.
func (c *Calendar[D]) Lookup(t time.Time) (Booking[D], bool) {
	var booking Booking[D]
	var found bool
	c.bookings.DescendLessOrEqual(Booking[D]{Range: interval.AtLeast(t)}, func(b Booking[D]) bool {
		booking, found = b, b.Contains(t)
		return false
	})
	return booking, found
}

// Overlapping returns the bookings that share time with r, in order.
func (c *Calendar[D]) Overlapping(r interval.Range[time.Time]) []Booking[D] {
	var out []Booking[D]
	for b := range c.Bookings() {
		if b.Overlaps(r) {
			out = append(out, b)
		}
	}
	return out
}

// Bookings iterates over the bookings in order.
func (c *Calendar[D]) Bookings() iter.Seq[Booking[D]] {
	return func(yield func(Booking[D]) bool) {
		c.bookings.Ascend(func(b Booking[D]) bool {
			return yield(b)
		})
	}
}

func (c *Calendar[D]) Len() int {
	return c.bookings.Len()
}

// Free returns a copy of the unbooked parts of the domain.
func (c *Calendar[D]) Free() *rangeset.Set[time.Time] {
	return c.free.Clone()
}

// FreeTime returns the total unbooked time in the domain.
func (c *Calendar[D]) FreeTime() time.Duration {
	var total time.Duration
	for r := range c.free.All() {
		total += length(r)
	}
	return total
}

// BookedTime returns the total booked time.
func (c *Calendar[D]) BookedTime() time.Duration {
	var total time.Duration
	for b := range c.Bookings() {
		total += length(b.Range)
	}
	return total
}

func length(r interval.Range[time.Time]) time.Duration {
	start, _ := r.Start()
	end, _ := r.End()
	return end.Sub(start)
}
