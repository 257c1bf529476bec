/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific validation
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

CONVENTIONS:
  Dates travel as "YYYY-MM-DD" strings; money travels as JSON numbers
  already rounded to two decimal places.

SEE ALSO:
  - handlers.go: Uses these types
  - rent/types.go: The domain types they mirror
*/
package api

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/warp/rent-engine/calendar"
	"github.com/warp/rent-engine/rent"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// TermsDTO carries lease terms over the wire.
type TermsDTO struct {
	BaseMonthlyRent       float64 `json:"base_monthly_rent"`
	LeaseStart            string  `json:"lease_start"`
	DueDay                int     `json:"due_day"`
	ChangeFrequencyMonths int     `json:"change_frequency_months"`
	ChangeRate            float64 `json:"change_rate"`
}

// ScheduleRequest asks for a stateless schedule computation.
type ScheduleRequest struct {
	Terms       TermsDTO `json:"terms"`
	WindowStart string   `json:"window_start"`
	WindowEnd   string   `json:"window_end"`
}

// RentRecordDTO is one rent-due line in a response.
type RentRecordDTO struct {
	Vacancy     bool    `json:"vacancy"`
	RentAmount  float64 `json:"rent_amount"`
	RentDueDate string  `json:"rent_due_date"`
}

// ScheduleDTO is the computed schedule for a window.
type ScheduleDTO struct {
	WindowStart string          `json:"window_start"`
	WindowEnd   string          `json:"window_end"`
	Records     []RentRecordDTO `json:"records"`
}

// LeaseDTO represents a stored lease in API responses.
type LeaseDTO struct {
	ID        string   `json:"id"`
	UnitName  string   `json:"unit_name"`
	Terms     TermsDTO `json:"terms"`
	CreatedAt string   `json:"created_at,omitempty"`
}

// CreateLeaseRequest is the request to create or replace a lease.
type CreateLeaseRequest struct {
	ID       string   `json:"id"`
	UnitName string   `json:"unit_name"`
	Terms    TermsDTO `json:"terms"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION & VALIDATION
// =============================================================================

// toTerms validates a TermsDTO and converts it to domain terms. The core
// computation is total, so out-of-range inputs are rejected here at the
// boundary instead.
func (dto TermsDTO) toTerms() (rent.Terms, error) {
	if dto.BaseMonthlyRent <= 0 {
		return rent.Terms{}, fmt.Errorf("base_monthly_rent must be positive, got %v", dto.BaseMonthlyRent)
	}
	if dto.DueDay < 1 || dto.DueDay > 31 {
		return rent.Terms{}, fmt.Errorf("due_day must be between 1 and 31, got %d", dto.DueDay)
	}

	leaseStart, err := calendar.Parse(dto.LeaseStart)
	if err != nil {
		return rent.Terms{}, fmt.Errorf("invalid lease_start: %w", err)
	}

	return rent.Terms{
		BaseMonthlyRent:       decimal.NewFromFloat(dto.BaseMonthlyRent),
		LeaseStart:            leaseStart,
		DueDay:                dto.DueDay,
		ChangeFrequencyMonths: dto.ChangeFrequencyMonths,
		ChangeRate:            decimal.NewFromFloat(dto.ChangeRate),
	}, nil
}

func toTermsDTO(t rent.Terms) TermsDTO {
	return TermsDTO{
		BaseMonthlyRent:       t.BaseMonthlyRent.InexactFloat64(),
		LeaseStart:            t.LeaseStart.String(),
		DueDay:                t.DueDay,
		ChangeFrequencyMonths: t.ChangeFrequencyMonths,
		ChangeRate:            t.ChangeRate.InexactFloat64(),
	}
}

func toLeaseDTO(lease rent.Lease) LeaseDTO {
	dto := LeaseDTO{
		ID:       string(lease.ID),
		UnitName: lease.UnitName,
		Terms:    toTermsDTO(lease.Terms),
	}
	if !lease.CreatedAt.IsZero() {
		dto.CreatedAt = lease.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
	}
	return dto
}

func toScheduleDTO(window calendar.Period, records []rent.RentRecord) ScheduleDTO {
	dtos := make([]RentRecordDTO, 0, len(records))
	for _, r := range records {
		dtos = append(dtos, RentRecordDTO{
			Vacancy:     r.Vacancy,
			RentAmount:  r.RentAmount.InexactFloat64(),
			RentDueDate: r.RentDueDate.String(),
		})
	}
	return ScheduleDTO{
		WindowStart: window.Start.String(),
		WindowEnd:   window.End.String(),
		Records:     dtos,
	}
}
