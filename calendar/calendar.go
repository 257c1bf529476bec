/*
Package calendar provides day-granularity date arithmetic for the rent engine.

PURPOSE:
  Rent schedules live entirely in local calendar dates: due days, months,
  clamping to month ends, leap years. This package is the single source of
  truth for that arithmetic so that every code path clamps and advances
  dates identically.

KEY CONCEPTS:
  - Date: A calendar day (no time of day, no timezone beyond UTC storage)
  - DaysIn: Actual length of a month (leap-year aware)
  - DueDate: A requested day-of-month clamped to the month's real length
  - Period: An inclusive [Start, End] observation window

CLAMPING INVARIANT:
  DueDate(y, m, d) never exceeds the month's last day, and equals the last
  day exactly when d exceeds it. Both the initial due-date computation and
  month-to-month advancement go through DueDate, so the invariant holds
  identically in both paths.

SEE ALSO:
  - rent/engine.go: Consumes these helpers for due-date iteration
*/
package calendar

import "time"

// =============================================================================
// DATE - Calendar day
// =============================================================================

type Date struct {
	Time time.Time
}

// New constructs a Date. Out-of-range months and days are normalized the
// way time.Date normalizes them (month 13 of 2023 is January 2024).
func New(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Parse reads a Date in "2006-01-02" form.
func Parse(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t.UTC()}, nil
}

// Comparison
func (d Date) Before(other Date) bool        { return d.normalize().Before(other.normalize()) }
func (d Date) Equal(other Date) bool         { return d.normalize().Equal(other.normalize()) }
func (d Date) After(other Date) bool         { return d.normalize().After(other.normalize()) }
func (d Date) BeforeOrEqual(other Date) bool { return d.Before(other) || d.Equal(other) }
func (d Date) AfterOrEqual(other Date) bool  { return d.After(other) || d.Equal(other) }

func (d Date) normalize() time.Time {
	return time.Date(d.Time.Year(), d.Time.Month(), d.Time.Day(), 0, 0, 0, 0, time.UTC)
}

// Properties
func (d Date) Year() int         { return d.Time.Year() }
func (d Date) Month() time.Month { return d.Time.Month() }
func (d Date) Day() int          { return d.Time.Day() }
func (d Date) IsZero() bool      { return d.Time.IsZero() }

func (d Date) String() string {
	return d.Time.Format("2006-01-02")
}

// =============================================================================
// MONTH ARITHMETIC
// =============================================================================

// DaysIn returns the number of days in the given month. Month overflow is
// normalized first, so DaysIn(2023, 14) is the length of February 2024.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstOfMonth returns the 1st of the given month, normalizing overflow.
func FirstOfMonth(year int, month time.Month) Date {
	return New(year, month, 1)
}

// DueDate returns the requested day of the given month, clamped to the
// month's actual last day. Month overflow is normalized before clamping.
func DueDate(year int, month time.Month, day int) Date {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	if last := DaysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	return New(first.Year(), first.Month(), day)
}

// =============================================================================
// PERIOD - Inclusive observation window
// =============================================================================

// Period is an inclusive [Start, End] window of calendar dates.
// A Period with Start after End contains nothing.
type Period struct {
	Start Date
	End   Date
}

// Contains returns true if the date is within the period [Start, End].
func (p Period) Contains(d Date) bool {
	return d.AfterOrEqual(p.Start) && d.BeforeOrEqual(p.End)
}

// String returns a string representation of the period.
func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}
