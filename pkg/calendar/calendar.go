// Package calendar computes the 13th-to-13th periods a plan covers and the
// weekday column each day falls in.
//
// All dates are calendar days at midnight UTC; the time of day is ignored.
package calendar

import (
	"fmt"
	"time"

	perr "github.com/matzehuels/dbdplan/pkg/errors"
)

// DayWhenPeriodChanges is the day of month on which a new period begins.
const DayWhenPeriodChanges = 13

// DaysInWeek is the number of columns in a plan.
const DaysInWeek = 7

var weekdays = [DaysInWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Weekdays returns the header labels, Monday first.
func Weekdays() []string {
	out := make([]string, len(weekdays))
	copy(out, weekdays[:])
	return out
}

// WeekdayColumn returns the plan column of t: 0 for Monday through 6 for Sunday.
func WeekdayColumn(t time.Time) int {
	return (int(t.Weekday()) + 6) % DaysInWeek
}

// Date returns midnight UTC of the given day. Out-of-range months and days
// are normalised the way time.Date does.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses an ISO date (YYYY-MM-DD).
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, perr.Wrap(perr.ErrCodeInvalidInput, err, "invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}

// Today returns the current local calendar day as a UTC date.
func Today() time.Time {
	y, m, d := time.Now().Date()
	return Date(y, m, d)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return Date(year, month+1, 0).Day()
}

// Period is one plan window. It starts on the 13th of a month and lasts as
// many days as that start month has, so it always ends the day before the
// 13th of the following month.
type Period struct {
	Start time.Time
	Days  int
}

// PeriodFor returns the period containing date. Days before the 13th belong
// to the period that started in the previous month.
func PeriodFor(date time.Time) Period {
	y, m, d := date.Date()
	if d < DayWhenPeriodChanges {
		m--
	}
	start := Date(y, m, DayWhenPeriodChanges)
	return Period{Start: start, Days: DaysIn(start.Year(), start.Month())}
}

// Day returns the i-th day of the period, starting at 0.
func (p Period) Day(i int) time.Time { return p.Start.AddDate(0, 0, i) }

// Last returns the final day that belongs to the period.
func (p Period) Last() time.Time { return p.Day(p.Days - 1) }

// End returns the first day after the period: the 13th of the next month.
func (p Period) End() time.Time { return p.Day(p.Days) }

// Contains reports whether t falls inside the period.
func (p Period) Contains(t time.Time) bool {
	day := Date(t.Date())
	return !day.Before(p.Start) && day.Before(p.End())
}

// Next returns the period that follows p.
func (p Period) Next() Period { return PeriodFor(p.End()) }

// Prev returns the period before p.
func (p Period) Prev() Period { return PeriodFor(p.Start.AddDate(0, 0, -1)) }

// StartMonth returns the English name of the month the period starts in.
func (p Period) StartMonth() string { return p.Start.Month().String() }

// EndMonth returns the English name of the month the period ends in.
func (p Period) EndMonth() string { return p.End().Month().String() }

// Year returns the year the period starts in.
func (p Period) Year() int { return p.Start.Year() }

// FirstColumn returns the weekday column of the first day.
func (p Period) FirstColumn() int { return WeekdayColumn(p.Start) }

// String returns the period as "September-October 2026".
func (p Period) String() string {
	return fmt.Sprintf("%s-%s %d", p.StartMonth(), p.EndMonth(), p.Year())
}
