// Package booking contains the pure business logic for booking records.
// This is part of the Functional Core - no I/O, only pure functions.
package booking

import "fmt"

// IDPrefix is prepended to the room id to form a booking id.
const IDPrefix = "BK"

// Stay length bounds, inclusive.
const (
	MinDays = 1
	MaxDays = 365
)

// MinCheckInYear is the earliest year a check-in date may fall in.
const MinCheckInYear = 2025

// DeriveID derives a booking id from the room id. The scheme is
// deterministic: booking ids repeat if the same room were ever re-booked.
// No checkout operation exists, so that cannot happen within a session.
func DeriveID(roomID string) string {
	return IDPrefix + roomID
}

// TotalCost computes the frozen cost of a stay. It is captured once at
// check-in and never recomputed, even if the room's price changes later.
func TotalCost(pricePerDay float64, days int) float64 {
	return pricePerDay * float64(days)
}

// DenialKind identifies why a guard refused an operation.
type DenialKind string

const (
	DenialInvalidDate    DenialKind = "invalid_date"
	DenialDaysOutOfRange DenialKind = "days_out_of_range"
	DenialLedgerFull     DenialKind = "ledger_full"
)

// Denial is the error form of a refused guard.
type Denial struct {
	Kind   DenialKind
	Reason string
}

func (d *Denial) Error() string {
	return d.Reason
}

// GuardResult represents the outcome of a guard evaluation.
// Redeclared here rather than shared with core/room so each core package
// stays self-contained.
type GuardResult struct {
	Allowed bool
	Kind    DenialKind
	Reason  string
}

// Err converts the guard result to an error if not allowed, nil otherwise.
func (r GuardResult) Err() error {
	if r.Allowed {
		return nil
	}
	return &Denial{Kind: r.Kind, Reason: r.Reason}
}

// StayContext provides context for stay validation at check-in.
// DateValid is the result of validate.IsDate, pre-computed by the caller.
type StayContext struct {
	CheckInDate string
	DateValid   bool
	Year        int
	Days        int
}

// RecordContext provides context for the ledger append guard.
type RecordContext struct {
	LedgerCount    int
	LedgerCapacity int
}

// CanStay evaluates whether the requested stay is acceptable.
// Rules:
// - check-in date must be a valid DD/MM/YYYY calendar date
// - check-in year must be at least MinCheckInYear
// - days must fall within MinDays..MaxDays
func CanStay(ctx StayContext) GuardResult {
	if !ctx.DateValid || ctx.Year < MinCheckInYear {
		return GuardResult{
			Kind:   DenialInvalidDate,
			Reason: fmt.Sprintf("check-in date %q is not a valid date on or after %d", ctx.CheckInDate, MinCheckInYear),
		}
	}
	if ctx.Days < MinDays || ctx.Days > MaxDays {
		return GuardResult{
			Kind:   DenialDaysOutOfRange,
			Reason: fmt.Sprintf("stay length must be between %d and %d days (got %d)", MinDays, MaxDays, ctx.Days),
		}
	}
	return GuardResult{Allowed: true}
}

// CanRecord evaluates whether the ledger can take another booking.
func CanRecord(ctx RecordContext) GuardResult {
	if ctx.LedgerCount >= ctx.LedgerCapacity {
		return GuardResult{
			Kind:   DenialLedgerFull,
			Reason: fmt.Sprintf("booking ledger is full (%d bookings)", ctx.LedgerCapacity),
		}
	}
	return GuardResult{Allowed: true}
}
