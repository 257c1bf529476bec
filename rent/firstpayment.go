package rent

import (
	"github.com/shopspring/decimal"
	"github.com/warp/rent-engine/calendar"
)

// Proration always divides by a constant 30, never the actual month length.
var prorationDenominator = decimal.NewFromInt(30)

// =============================================================================
// FIRST PAYMENT - Move-in proration and loop seeding
// =============================================================================

// firstPayment describes the lease's initial payment: when it falls due,
// what fraction of a month's rent it covers, and when the second payment
// follows. The amount itself is derived later, after vacancy-period
// changes have been applied to the rent level.
type firstPayment struct {
	Date       calendar.Date
	SecondDate calendar.Date
	Fraction   decimal.Decimal
}

// firstPaymentFor derives the first payment from the move-in date and the
// configured due day:
//   - moving in before the due day owes a stub covering [startDay, dueDay),
//     with the second payment later the same month;
//   - moving in on the due day owes a full month immediately;
//   - moving in after the due day owes the remainder of the month, with
//     the second payment the following month.
// Second-payment dates clamp to the target month's last day.
func firstPaymentFor(leaseStart calendar.Date, dueDay int) firstPayment {
	startDay := leaseStart.Day()

	switch {
	case startDay < dueDay:
		return firstPayment{
			Date:       leaseStart,
			SecondDate: calendar.DueDate(leaseStart.Year(), leaseStart.Month(), dueDay),
			Fraction:   decimal.NewFromInt(int64(dueDay - startDay)).Div(prorationDenominator),
		}

	case startDay == dueDay:
		return firstPayment{
			Date:       leaseStart,
			SecondDate: calendar.DueDate(leaseStart.Year(), leaseStart.Month()+1, dueDay),
			Fraction:   one,
		}

	default: // startDay > dueDay
		return firstPayment{
			Date:       leaseStart,
			SecondDate: calendar.DueDate(leaseStart.Year(), leaseStart.Month()+1, dueDay),
			Fraction:   one.Sub(decimal.NewFromInt(int64(startDay - dueDay)).Div(prorationDenominator)),
		}
	}
}
