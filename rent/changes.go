package rent

import (
	"github.com/shopspring/decimal"
	"github.com/warp/rent-engine/calendar"
)

var one = decimal.NewFromInt(1)

// =============================================================================
// CHANGE APPLIER - Occupancy-gated rate application
// =============================================================================

// changeApplier decides which scheduled changes actually move the rent.
// A positive rate only applies while the unit is occupied; a negative
// rate only applies while it is vacant. Every other combination is a
// no-op, so application has no failure modes.
type changeApplier struct {
	Schedule   []calendar.Date
	Rate       decimal.Decimal
	LeaseStart calendar.Date
}

// applyThrough compounds every qualifying change dated in (after, upTo]
// onto rent, in chronological order. A zero `after` means the interval is
// open on the left, which is how changes accrued before the first payment
// (including during vacancy) get baked into the move-in amount.
func (a changeApplier) applyThrough(rent decimal.Decimal, after, upTo calendar.Date) decimal.Decimal {
	for _, changeDate := range a.Schedule {
		if !after.IsZero() && changeDate.BeforeOrEqual(after) {
			continue
		}
		if changeDate.After(upTo) {
			break // schedule is ordered
		}

		switch OccupancyAt(changeDate, a.LeaseStart) {
		case Occupied:
			if a.Rate.IsPositive() {
				rent = rent.Mul(one.Add(a.Rate))
			}
		case Vacant:
			if a.Rate.IsNegative() {
				rent = rent.Mul(one.Add(a.Rate))
			}
		}
	}
	return rent
}
