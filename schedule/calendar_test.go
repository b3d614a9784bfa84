package schedule

import (
	"slices"
	"testing"
	"time"

	"github.com/garethgeorge/timespan/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)

func at(hour, min int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

func slot(from, to time.Time) interval.Range[time.Time] {
	return interval.Must(interval.ClosedOpen(from, to))
}

func workday(t *testing.T) *Calendar[string] {
	t.Helper()
	c, err := New[string](slot(at(9, 0), at(17, 0)))
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	_, err := New[string](interval.AtLeast(at(9, 0)))
	require.ErrorIs(t, err, ErrUnboundedDomain)

	_, err = New[string](interval.Empty[time.Time]())
	require.ErrorIs(t, err, ErrUnboundedDomain)

	c := workday(t)
	assert.Equal(t, 8*time.Hour, c.FreeTime())
	assert.Zero(t, c.BookedTime())
	assert.Zero(t, c.Len())
}

func TestBook(t *testing.T) {
	c := workday(t)
	require.NoError(t, c.Book(slot(at(10, 0), at(11, 0)), "standup"))
	// Back to back with the previous booking.
	require.NoError(t, c.Book(slot(at(11, 0), at(12, 0)), "review"))

	err := c.Book(slot(at(10, 30), at(10, 45)), "clash")
	require.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "10:00:00")

	err = c.Book(slot(at(16, 0), at(18, 0)), "late")
	require.ErrorIs(t, err, ErrOutOfDomain)

	err = c.Book(interval.Empty[time.Time](), "nothing")
	require.ErrorIs(t, err, interval.ErrInvalidRange)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 2*time.Hour, c.BookedTime())
	assert.Equal(t, 6*time.Hour, c.FreeTime())
	assert.Equal(t, []interval.Range[time.Time]{
		slot(at(9, 0), at(10, 0)),
		slot(at(12, 0), at(17, 0)),
	}, c.Free().Ranges())
}

func TestReserve(t *testing.T) {
	c := workday(t)
	require.NoError(t, c.Book(slot(at(9, 0), at(10, 0)), "first"))

	b, err := c.Reserve(30*time.Minute, "a")
	require.NoError(t, err)
	assert.Equal(t, slot(at(10, 0), at(10, 30)), b.Range)
	assert.Equal(t, "a", b.Data)

	require.NoError(t, c.Book(slot(at(11, 0), at(17, 0)), "rest"))

	_, err = c.Reserve(time.Hour, "too long")
	require.ErrorIs(t, err, ErrNoCapacity)

	b, err = c.Reserve(30*time.Minute, "b")
	require.NoError(t, err)
	assert.Equal(t, slot(at(10, 30), at(11, 0)), b.Range)
	assert.Zero(t, c.FreeTime())

	_, err = c.Reserve(0, "zero")
	require.ErrorIs(t, err, interval.ErrInvalidRange)
	_, err = c.Reserve(-time.Minute, "negative")
	require.ErrorIs(t, err, interval.ErrInvalidRange)
}

func TestReserveAfterClosedBooking(t *testing.T) {
	c := workday(t)
	closed := interval.Must(interval.Closed(at(9, 0), at(10, 0)))
	require.NoError(t, c.Book(closed, "closed"))

	b, err := c.Reserve(15*time.Minute, "next")
	require.NoError(t, err)
	assert.False(t, b.StartInclusive())
	assert.False(t, b.Contains(at(10, 0)))
	assert.True(t, b.Contains(at(10, 1)))
	assert.False(t, b.Overlaps(closed))
}

func TestCancel(t *testing.T) {
	c := workday(t)
	require.NoError(t, c.Book(slot(at(10, 0), at(11, 0)), "a"))
	require.NoError(t, c.Book(slot(at(11, 0), at(12, 0)), "b"))

	assert.False(t, c.Cancel(slot(at(10, 0), at(10, 30))))
	assert.True(t, c.Cancel(slot(at(10, 0), at(11, 0))))
	assert.False(t, c.Cancel(slot(at(10, 0), at(11, 0))))
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, []interval.Range[time.Time]{
		slot(at(9, 0), at(11, 0)),
		slot(at(12, 0), at(17, 0)),
	}, c.Free().Ranges())

	assert.True(t, c.Cancel(slot(at(11, 0), at(12, 0))))
	assert.Equal(t, []interval.Range[time.Time]{c.Domain()}, c.Free().Ranges())
	assert.Equal(t, 8*time.Hour, c.FreeTime())
}

func TestLookup(t *testing.T) {
	c := workday(t)
	require.NoError(t, c.Book(slot(at(10, 0), at(11, 0)), "a"))
	require.NoError(t, c.Book(slot(at(13, 0), at(14, 0)), "b"))

	b, ok := c.Lookup(at(10, 0))
	require.True(t, ok)
	assert.Equal(t, "a", b.Data)

	b, ok = c.Lookup(at(13, 59))
	require.True(t, ok)
	assert.Equal(t, "b", b.Data)

	_, ok = c.Lookup(at(11, 0))
	assert.False(t, ok)
	_, ok = c.Lookup(at(8, 0))
	assert.False(t, ok)

	assert.Len(t, c.Overlapping(slot(at(10, 30), at(13, 30))), 2)
	assert.Empty(t, c.Overlapping(slot(at(11, 0), at(13, 0))))
}

func TestBookingsInOrder(t *testing.T) {
	c := workday(t)
	for _, h := range []int{15, 9, 12} {
		require.NoError(t, c.Book(slot(at(h, 0), at(h+1, 0)), "meeting"))
	}

	var starts []int
	for b := range c.Bookings() {
		start, _ := b.Start()
		starts = append(starts, start.Hour())
	}
	assert.Equal(t, []int{9, 12, 15}, starts)

	// Free is a copy.
	free := c.Free()
	free.Clear()
	assert.Equal(t, 5*time.Hour, c.FreeTime())
	assert.True(t, slices.IsSortedFunc(c.Free().Ranges(), func(a, b interval.Range[time.Time]) int { return a.Compare(b) }))
}
