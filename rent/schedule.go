package rent

import (
	"time"

	"github.com/warp/rent-engine/calendar"
)

// =============================================================================
// RENT-CHANGE SCHEDULE - Dates on which the rate may move
// =============================================================================

// ChangeSchedule returns the ordered rent-change dates within the window.
// The first candidate is the 1st of the month frequencyMonths after the
// window start's month; subsequent candidates advance by the same step.
// Every candidate is the 1st of a month, so no clamping is needed.
// A frequency of zero or less disables changes and yields an empty schedule.
func ChangeSchedule(window calendar.Period, frequencyMonths int) []calendar.Date {
	if frequencyMonths <= 0 {
		return nil
	}

	var dates []calendar.Date
	current := calendar.FirstOfMonth(window.Start.Year(), window.Start.Month()+time.Month(frequencyMonths))
	for current.BeforeOrEqual(window.End) {
		dates = append(dates, current)
		current = calendar.FirstOfMonth(current.Year(), current.Month()+time.Month(frequencyMonths))
	}
	return dates
}
