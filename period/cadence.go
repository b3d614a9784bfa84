package period

import (
	"time"

	"github.com/garethgeorge/timespan/chrono"
)

// cadence finds the neighbours of a period. A Period with no cadence shifts by its own length.
type cadence interface {
	prior(p Period) Period
	next(p Period) Period
}

// WeeklyStarting returns the seven days beginning at start.
func WeeklyStarting(start chrono.Date) Period {
	return Period{start: start, end: start.AddDays(6)}
}

// WeeklyEnding returns the seven days ending at end.
func WeeklyEnding(end chrono.Date) Period {
	return Period{start: end.AddDays(-6), end: end}
}

// WeeklyContaining returns the week holding target whose last day falls on endDay.
func WeeklyContaining(target chrono.Date, endDay time.Weekday) Period {
	return WeeklyEnding(target.AddDays(chrono.WeekdayOffset(target, endDay)))
}

// BiWeeklyStarting returns the fourteen days beginning at start.
func BiWeeklyStarting(start chrono.Date) Period {
	return Period{start: start, end: start.AddDays(13)}
}

// BiWeeklyEnding returns the fourteen days ending at end.
func BiWeeklyEnding(end chrono.Date) Period {
	return Period{start: end.AddDays(-13), end: end}
}

// BiWeeklyContaining returns the fortnight holding target whose last day is the first endDay on
// or after target.
func BiWeeklyContaining(target chrono.Date, endDay time.Weekday) Period {
	return BiWeeklyEnding(target.AddDays(chrono.WeekdayOffset(target, endDay)))
}

const midMonth = 15

type semiMonthly struct{}

// SemiMonthlyEnding returns the half month ending at end. An end on the 15th gives the 1st to
// the 15th; any other end gives the 16th to end.
func SemiMonthlyEnding(end chrono.Date) Period {
	start := chrono.DateOf(end.Year(), end.Month(), midMonth+1)
	if end.Day() == midMonth {
		start = end.FirstOfMonth()
	}
	return Period{start: start, end: end, cadence: semiMonthly{}}
}

// SemiMonthlyContaining returns the half month, 1st to 15th or 16th to month end, holding d.
func SemiMonthlyContaining(d chrono.Date) Period {
	if d.Day() <= midMonth {
		return SemiMonthlyEnding(chrono.DateOf(d.Year(), d.Month(), midMonth))
	}
	return SemiMonthlyEnding(d.LastOfMonth())
}

func (semiMonthly) prior(p Period) Period {
	end := p.start.AddDays(-1)
	start := end.FirstOfMonth()
	if p.start.Day() == 1 {
		start = chrono.DateOf(end.Year(), end.Month(), midMonth+1)
	}
	return p.with(start, end)
}

func (semiMonthly) next(p Period) Period {
	if p.end.Day() == midMonth {
		start := chrono.DateOf(p.end.Year(), p.end.Month(), midMonth+1)
		return p.with(start, start.LastOfMonth())
	}
	start := p.end.AddMonths(1).FirstOfMonth()
	return p.with(start, chrono.DateOf(start.Year(), start.Month(), midMonth))
}

type monthly struct {
	startDay int
}

// MonthlyEnding returns the month ending at end. With a startDay of 1 (or less) periods are
// calendar months and end should be a month end. Any other startDay anchors periods on end
// instead: the period runs from the day after end one month earlier up to end, and each step
// moves the end by a month.
func MonthlyEnding(end chrono.Date, startDay int) Period {
	if startDay <= 1 {
		return Period{start: end.FirstOfMonth(), end: end, cadence: monthly{startDay: 1}}
	}
	return Period{start: end.AddDays(1).AddMonths(-1), end: end, cadence: monthly{startDay: startDay}}
}

func (m monthly) prior(p Period) Period {
	end := p.start.AddDays(-1)
	if m.startDay == 1 {
		return p.with(end.FirstOfMonth(), end)
	}
	return p.with(p.start.AddMonths(-1), end)
}

func (m monthly) next(p Period) Period {
	start := p.end.AddDays(1)
	if m.startDay == 1 {
		return p.with(start, start.LastOfMonth())
	}
	return p.with(start, p.end.AddMonths(1))
}

type quarterly struct{}

// QuarterlyStarting returns the three calendar months beginning with the month of start.
func QuarterlyStarting(start chrono.Date) Period {
	first := start.FirstOfMonth()
	return Period{start: first, end: first.AddMonths(2).LastOfMonth(), cadence: quarterly{}}
}

// QuarterlyEnding returns the three calendar months ending with the month of end.
func QuarterlyEnding(end chrono.Date) Period {
	return Period{start: end.FirstOfMonth().AddMonths(-2), end: end.LastOfMonth(), cadence: quarterly{}}
}

func (quarterly) prior(p Period) Period {
	return p.with(p.start.AddMonths(-3), p.end.FirstOfMonth().AddMonths(-3).LastOfMonth())
}

func (quarterly) next(p Period) Period {
	return p.with(p.start.AddMonths(3), p.end.FirstOfMonth().AddMonths(3).LastOfMonth())
}

type semiAnnual struct{}

// SemiAnnualStarting returns the six months beginning at start.
func SemiAnnualStarting(start chrono.Date) Period {
	return Period{start: start, end: start.AddMonths(6).AddDays(-1), cadence: semiAnnual{}}
}

// SemiAnnualEnding returns the six months ending at end.
func SemiAnnualEnding(end chrono.Date) Period {
	return Period{start: end.AddMonths(-6).AddDays(1), end: end, cadence: semiAnnual{}}
}

func (semiAnnual) prior(p Period) Period {
	return p.with(p.start.AddMonths(-6), p.start.AddDays(-1))
}

func (semiAnnual) next(p Period) Period {
	start := p.end.AddDays(1)
	return p.with(start, start.AddMonths(6).AddDays(-1))
}

type annual struct{}

// AnnualStarting returns the year beginning at start. A year starting on Feb 29 ends on Feb 28
// of the following year.
func AnnualStarting(start chrono.Date) Period {
	return Period{start: start, end: annualEnd(start), cadence: annual{}}
}

// AnnualEnding returns the year ending at end.
func AnnualEnding(end chrono.Date) Period {
	return Period{start: end.AddYears(-1).AddDays(1), end: end, cadence: annual{}}
}

func annualEnd(start chrono.Date) chrono.Date {
	if start.Month() == time.February && start.Day() == 29 {
		return chrono.DateOf(start.Year()+1, time.February, 28)
	}
	return start.AddYears(1).AddDays(-1)
}

func (annual) prior(p Period) Period {
	end := p.start.AddDays(-1)
	return p.with(end.AddYears(-1).AddDays(1), end)
}

func (annual) next(p Period) Period {
	start := p.end.AddDays(1)
	return p.with(start, annualEnd(start))
}
