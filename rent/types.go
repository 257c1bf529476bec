/*
Package rent computes rent-due schedules for leased units.

PURPOSE:
  Given a lease's terms and an observation window, produce the ordered
  sequence of rent-due records the occupant owes: a possibly prorated
  move-in payment followed by monthly payments on a configured due day,
  with periodic rent-rate changes applied along the way.

KEY CONCEPTS IN THIS FILE (types.go):
  - Terms: The seven scalar/date inputs that fully determine a schedule
  - RentRecord: One rent-due line (amount, due date, vacancy flag)
  - Occupancy: The unit's state at a point in time (VACANT or OCCUPIED)
  - Lease / LeaseStore: A named, persistable set of terms

DESIGN PRINCIPLES:
  1. Purity: The computation is deterministic and never fails; degenerate
     inputs yield empty results rather than errors
  2. Precision: Uses decimal.Decimal for money; rounding to two places
     happens only when a record is emitted
  3. Calendar fidelity: All date movement goes through the calendar
     package so month-end clamping behaves identically everywhere

USAGE:
  records := rent.CalculateMonthlyRent(rent.Terms{
      BaseMonthlyRent:       decimal.NewFromInt(1200),
      LeaseStart:            calendar.New(2023, time.January, 15),
      DueDay:                1,
      ChangeFrequencyMonths: 12,
      ChangeRate:            decimal.NewFromFloat(0.05),
  }, calendar.Period{Start: windowStart, End: windowEnd})

SEE ALSO:
  - schedule.go: Rent-change schedule generator
  - firstpayment.go: Move-in proration
  - changes.go: Occupancy-gated rate application
  - engine.go: The recurring due-date iterator tying it together
*/
package rent

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/rent-engine/calendar"
)

// =============================================================================
// TERMS - Inputs that determine a schedule
// =============================================================================

// Terms holds the inputs of a rent schedule computation.
type Terms struct {
	// BaseMonthlyRent is the rent level before any schedule changes.
	BaseMonthlyRent decimal.Decimal

	// LeaseStart is the move-in date. The unit is VACANT strictly before
	// it and OCCUPIED from it onward; no lease end is modeled.
	LeaseStart calendar.Date

	// DueDay is the intended day-of-month rent is due (1-31). When a
	// month is shorter, the effective due date clamps to its last day.
	DueDay int

	// ChangeFrequencyMonths spaces rent-change dates, anchored to the
	// 1st of a month. Zero or negative disables changes entirely.
	ChangeFrequencyMonths int

	// ChangeRate is the fractional rate of each change. Positive rates
	// apply only while occupied, negative rates only while vacant.
	ChangeRate decimal.Decimal
}

// =============================================================================
// RENT RECORD - One rent-due line
// =============================================================================

// RentRecord is a single rent-due entry. Immutable once produced.
// Vacancy is always false in the current behavior: the unit only emits
// records once occupied. Vacancy-period rate decreases surface indirectly
// in the first occupied payment's amount.
type RentRecord struct {
	Vacancy     bool
	RentAmount  decimal.Decimal
	RentDueDate calendar.Date
}

// =============================================================================
// OCCUPANCY - Two-state machine derived from the lease start
// =============================================================================

// Occupancy is the unit's state at a point in time. It transitions from
// Vacant to Occupied exactly once, at the lease start, and never reverses.
type Occupancy int

const (
	Vacant Occupancy = iota
	Occupied
)

func (o Occupancy) String() string {
	if o == Occupied {
		return "occupied"
	}
	return "vacant"
}

// OccupancyAt returns the unit's state on a given date.
func OccupancyAt(date, leaseStart calendar.Date) Occupancy {
	if date.AfterOrEqual(leaseStart) {
		return Occupied
	}
	return Vacant
}

// =============================================================================
// LEASE - Persistable named terms
// =============================================================================

type LeaseID string

// Lease is a stored lease definition. Computed schedules are never
// persisted; they are derived from the lease's terms on demand.
type Lease struct {
	ID        LeaseID
	UnitName  string
	Terms     Terms
	CreatedAt time.Time
}

// LeaseStore persists lease definitions.
type LeaseStore interface {
	Save(ctx context.Context, lease Lease) error
	Get(ctx context.Context, id LeaseID) (*Lease, error)
	List(ctx context.Context) ([]Lease, error)
	Delete(ctx context.Context, id LeaseID) error
}
