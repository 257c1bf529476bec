package rent

import (
	"github.com/warp/rent-engine/calendar"
)

// maxDueDates bounds the recurring loop as a defensive termination guard
// against malformed inputs, not a business limit. Windows longer than
// roughly 41 years of monthly due dates are truncated.
const maxDueDates = 500

// =============================================================================
// ENGINE - The single entry point
// =============================================================================

// CalculateMonthlyRent returns the rent-due records for a lease within the
// inclusive observation window, in strictly increasing due-date order.
//
// Degenerate inputs are handled by policy, never by failure:
//   - an inverted window yields no records;
//   - a lease starting after the window yields no records;
//   - a non-positive change frequency disables rent changes but base
//     payments still compute.
func CalculateMonthlyRent(terms Terms, window calendar.Period) []RentRecord {
	if window.Start.After(window.End) {
		return nil
	}
	if terms.LeaseStart.After(window.End) {
		return nil
	}

	applier := changeApplier{
		Schedule:   ChangeSchedule(window, terms.ChangeFrequencyMonths),
		Rate:       terms.ChangeRate,
		LeaseStart: terms.LeaseStart,
	}

	// The first payment is always computed to seed the loop, but only
	// recorded when its date lands in the window. Changes accrued before
	// it, including vacancy-period decreases, are baked in first.
	first := firstPaymentFor(terms.LeaseStart, terms.DueDay)
	rent := applier.applyThrough(terms.BaseMonthlyRent, calendar.Date{}, first.Date)

	var records []RentRecord
	if window.Contains(first.Date) {
		records = append(records, RentRecord{
			RentAmount:  rent.Mul(first.Fraction).Round(2),
			RentDueDate: first.Date,
		})
	}

	previousDue := first.Date
	due := first.SecondDate
	for i := 0; i < maxDueDates && due.BeforeOrEqual(window.End); i++ {
		rent = applier.applyThrough(rent, previousDue, due)
		if window.Contains(due) {
			records = append(records, RentRecord{
				RentAmount:  rent.Round(2),
				RentDueDate: due,
			})
		}
		previousDue = due
		due = calendar.DueDate(due.Year(), due.Month()+1, terms.DueDay)
	}

	return records
}
