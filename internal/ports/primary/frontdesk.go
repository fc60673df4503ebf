package primary

import "context"

// FrontDeskService defines the primary port for booking operations: the
// check-in transaction and the rental history view.
type FrontDeskService interface {
	// CheckIn runs the check-in transaction: it validates the room and the
	// stay, flips the room to occupied and appends a booking, atomically.
	// On success it returns the created booking together with a snapshot
	// of the room for invoice rendering.
	CheckIn(ctx context.Context, req CheckInRequest) (*CheckInResponse, error)

	// RentalHistory lists a room's bookings in insertion order. An empty
	// ledger (or an unknown room) yields an empty slice, never an error.
	RentalHistory(ctx context.Context, roomID string) ([]*Booking, error)
}

// CheckInRequest contains parameters for a check-in.
// CheckInDate is the raw DD/MM/YYYY text as typed by the guest clerk;
// the service validates it.
type CheckInRequest struct {
	RoomID       string
	CustomerName string
	CheckInDate  string
	Days         int
}

// CheckInResponse contains the result of a successful check-in.
type CheckInResponse struct {
	Booking *Booking
	Room    *Room
}

// Booking represents a booking entity at the port boundary.
type Booking struct {
	BookingID    string
	RoomID       string
	CustomerName string
	CheckInDate  string
	Days         int
	TotalCost    float64
}
