// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application drives
// external systems.
package secondary

import "context"

// RoomRepository defines the secondary port for room inventory persistence.
// Rooms carry a display position; List and ListByType return rooms in
// position order so the console always sees a stable storage order.
type RoomRepository interface {
	// Create persists a new room at the end of the display order.
	Create(ctx context.Context, room *RoomRecord) error

	// GetByID retrieves a room by its id (exact, case-sensitive match).
	// Returns ErrNotFound when no such room exists.
	GetByID(ctx context.Context, id string) (*RoomRecord, error)

	// Exists reports whether a room with the given id exists.
	Exists(ctx context.Context, id string) (bool, error)

	// List retrieves all rooms in display order.
	List(ctx context.Context) ([]*RoomRecord, error)

	// ListByType retrieves rooms of one type, preserving display order.
	ListByType(ctx context.Context, roomType string) ([]*RoomRecord, error)

	// Count returns the number of rooms in the inventory.
	Count(ctx context.Context) (int, error)

	// UpdateTypePrice overwrites a room's type and price in place.
	// Status and id are untouched.
	UpdateTypePrice(ctx context.Context, id, roomType string, price float64) error

	// UpdateStatus sets a room's status.
	UpdateStatus(ctx context.Context, id, status string) error

	// SortByPriceDescending reorders the display order by price, highest
	// first. Rooms with equal prices keep their relative order.
	SortByPriceDescending(ctx context.Context) error
}

// RoomRecord represents a room as stored in persistence.
type RoomRecord struct {
	ID        string
	Type      string
	Price     float64
	Status    string
	Position  int
	CreatedAt string
	UpdatedAt string
}

// BookingRepository defines the secondary port for the booking ledger.
// The ledger is append-only: there is no update or delete.
type BookingRepository interface {
	// ListByRoom retrieves a room's bookings in insertion order.
	// An unknown room yields an empty slice, not an error.
	ListByRoom(ctx context.Context, roomID string) ([]*BookingRecord, error)

	// Count returns the number of bookings in the ledger.
	Count(ctx context.Context) (int, error)
}

// CheckInStore defines the secondary port for the check-in transaction.
// RecordCheckIn must flip the room to occupied and append the booking in a
// single transaction: either both happen or neither does. The room's
// availability is re-checked inside the transaction; ErrRoomConflict is
// returned when the room is no longer available.
type CheckInStore interface {
	RecordCheckIn(ctx context.Context, booking *BookingRecord) error
}

// BookingRecord represents a booking as stored in persistence.
// BookingID is derived from the room id and is deliberately not unique
// across the ledger; Seq is the ledger's own insertion sequence.
type BookingRecord struct {
	Seq          int64
	BookingID    string
	RoomID       string
	CustomerName string
	CheckInDate  string
	Days         int
	TotalCost    float64
	CreatedAt    string
}
