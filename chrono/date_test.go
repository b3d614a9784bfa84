package chrono

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	t.Run("normalizes like time.Date", func(t *testing.T) {
		assert.Equal(t, DateOf(2024, time.November, 1), DateOf(2024, time.October, 32))
		assert.Equal(t, DateOf(2023, time.December, 31), DateOf(2024, time.January, 0))
	})

	t.Run("from time keeps the local calendar day", func(t *testing.T) {
		loc := time.FixedZone("UTC-5", -5*60*60)
		tm := time.Date(2024, time.March, 1, 22, 0, 0, 0, loc)
		assert.Equal(t, DateOf(2024, time.March, 1), DateFromTime(tm))
	})

	t.Run("compare", func(t *testing.T) {
		a := DateOf(2024, time.January, 31)
		b := DateOf(2024, time.February, 1)
		assert.Equal(t, -1, a.Compare(b))
		assert.Equal(t, 1, b.Compare(a))
		assert.Equal(t, 0, a.Compare(DateOf(2024, time.January, 31)))
		assert.True(t, a.Before(b))
		assert.True(t, b.After(a))
		assert.True(t, DateOf(2023, time.December, 31).Before(a))
	})

	t.Run("add months clamps to month end", func(t *testing.T) {
		testCases := []struct {
			name     string
			d        Date
			months   int
			expected Date
		}{
			{"leap february", DateOf(2024, time.January, 31), 1, DateOf(2024, time.February, 29)},
			{"common february", DateOf(2023, time.January, 31), 1, DateOf(2023, time.February, 28)},
			{"backwards", DateOf(2024, time.March, 31), -1, DateOf(2024, time.February, 29)},
			{"across years", DateOf(2024, time.November, 30), 3, DateOf(2025, time.February, 28)},
			{"no clamp needed", DateOf(2024, time.May, 15), 6, DateOf(2024, time.November, 15)},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Equal(t, tc.expected, tc.d.AddMonths(tc.months))
			})
		}
	})

	t.Run("add years from leap day", func(t *testing.T) {
		assert.Equal(t, DateOf(2025, time.February, 28), DateOf(2024, time.February, 29).AddYears(1))
		assert.Equal(t, DateOf(2028, time.February, 29), DateOf(2024, time.February, 29).AddYears(4))
	})

	t.Run("month bounds", func(t *testing.T) {
		d := DateOf(2024, time.February, 10)
		assert.Equal(t, DateOf(2024, time.February, 1), d.FirstOfMonth())
		assert.Equal(t, DateOf(2024, time.February, 29), d.LastOfMonth())
		assert.Equal(t, DateOf(2024, time.December, 31), DateOf(2024, time.December, 5).LastOfMonth())
	})

	t.Run("days until", func(t *testing.T) {
		a := DateOf(2024, time.February, 27)
		assert.Equal(t, 3, a.DaysUntil(DateOf(2024, time.March, 1)))
		assert.Equal(t, -3, DateOf(2024, time.March, 1).DaysUntil(a))
		assert.Equal(t, DateOf(2024, time.March, 1), a.AddDays(3))
	})

	t.Run("weekday offset", func(t *testing.T) {
		wed := DateOf(2024, time.January, 3)
		assert.Equal(t, time.Wednesday, wed.Weekday())
		assert.Equal(t, 0, WeekdayOffset(wed, time.Wednesday))
		assert.Equal(t, 3, WeekdayOffset(wed, time.Saturday))
		assert.Equal(t, 5, WeekdayOffset(wed, time.Monday))
	})

	t.Run("string and zero", func(t *testing.T) {
		assert.Equal(t, "2024-01-03", DateOf(2024, time.January, 3).String())
		assert.True(t, Date{}.IsZero())
		assert.False(t, DateOf(1, time.January, 1).IsZero())
	})
}

func TestTimeOfDay(t *testing.T) {
	t.Run("fields", func(t *testing.T) {
		tod := TimeOf(13, 45, 30, 500)
		assert.Equal(t, 13, tod.Hour())
		assert.Equal(t, 45, tod.Minute())
		assert.Equal(t, 30, tod.Second())
		assert.Equal(t, 500, tod.Nanosecond())
		assert.Equal(t, "13:45:30.000000500", tod.String())
		assert.Equal(t, "07:05:00", TimeOf(7, 5, 0, 0).String())
	})

	t.Run("wraps around midnight", func(t *testing.T) {
		assert.Equal(t, TimeOf(1, 0, 0, 0), TimeOf(23, 0, 0, 0).Add(2*time.Hour))
		assert.Equal(t, TimeOf(23, 0, 0, 0), Midnight().Add(-time.Hour))
		assert.Equal(t, Midnight(), TimeOf(24, 0, 0, 0))
	})

	t.Run("compare", func(t *testing.T) {
		assert.Equal(t, -1, TimeOf(9, 0, 0, 0).Compare(TimeOf(9, 0, 0, 1)))
		assert.True(t, TimeOf(10, 0, 0, 0).After(TimeOf(9, 59, 59, 0)))
		assert.True(t, TimeOf(9, 0, 0, 0).Before(TimeOf(9, 0, 1, 0)))
	})

	t.Run("combine with date", func(t *testing.T) {
		got := TimeOf(8, 30, 0, 0).On(DateOf(2024, time.May, 2), time.UTC)
		assert.True(t, got.Equal(time.Date(2024, time.May, 2, 8, 30, 0, 0, time.UTC)))
		assert.Equal(t, TimeOf(8, 30, 0, 0), TimeOfDayFromTime(got))
	})
}

func TestSteps(t *testing.T) {
	d := DateOf(2024, time.January, 31)
	assert.Equal(t, DateOf(2024, time.February, 2), Days(2)(d))
	assert.Equal(t, DateOf(2024, time.February, 14), Weeks(2)(d))
	assert.Equal(t, DateOf(2024, time.February, 29), Months(1)(d))

	t0 := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, Every(time.Minute)(t0).Equal(t0.Add(time.Minute)))

	assert.Equal(t, TimeOf(0, 15, 0, 0), EveryTimeOfDay(15*time.Minute)(Midnight()))
	assert.Equal(t, Midnight(), EveryTimeOfDay(-time.Hour)(Midnight()))
}
