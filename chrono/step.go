package chrono

import "time"

// The step constructors below return successor functions for range iteration. A non-positive
// step yields a function that does not move its argument forward; range iteration rejects
// such steps.

// Days steps a Date forward by n days.
func Days(n int) func(Date) Date {
	return func(d Date) Date { return d.AddDays(n) }
}

// Weeks steps a Date forward by n weeks.
func Weeks(n int) func(Date) Date {
	return Days(7 * n)
}

// Months steps a Date forward by n months. Each step is applied to the previous result, so a
// sequence starting on the 31st settles on shorter month ends once it has been clamped.
func Months(n int) func(Date) Date {
	return func(d Date) Date { return d.AddMonths(n) }
}

// Every steps an instant forward by d.
func Every(d time.Duration) func(time.Time) time.Time {
	return func(t time.Time) time.Time { return t.Add(d) }
}

// EveryTimeOfDay steps a wall-clock time forward by d. Stepping past midnight wraps around,
// which ends iteration.
func EveryTimeOfDay(d time.Duration) func(TimeOfDay) TimeOfDay {
	if d <= 0 {
		// Add wraps, so a negative step would otherwise look like a forward one.
		return func(t TimeOfDay) TimeOfDay { return t }
	}
	return func(t TimeOfDay) TimeOfDay { return t.Add(d) }
}
