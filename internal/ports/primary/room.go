// Package primary defines the primary ports (driving adapters) for the
// application. These are the interfaces through which the outside world
// drives the application.
package primary

import (
	"context"

	"github.com/example/frontdesk/internal/core/room"
)

// RoomService defines the primary port for room inventory operations.
type RoomService interface {
	// AddRoom adds a new room to the inventory. The room always starts
	// available, whatever the caller intended.
	AddRoom(ctx context.Context, req AddRoomRequest) (*Room, error)

	// UpdateRoom overwrites a room's type and price. Occupied rooms are
	// refused.
	UpdateRoom(ctx context.Context, req UpdateRoomRequest) (*Room, error)

	// SetMaintenance takes a room out of service. Occupied rooms are
	// refused.
	SetMaintenance(ctx context.Context, roomID string) (*Room, error)

	// GetRoom retrieves a room by id.
	GetRoom(ctx context.Context, roomID string) (*Room, error)

	// ListRooms lists all rooms in storage order.
	ListRooms(ctx context.Context) ([]*Room, error)

	// FilterByType lists rooms of one type, preserving storage order.
	FilterByType(ctx context.Context, roomType room.Type) ([]*Room, error)

	// SortByPriceDescending reorders the inventory by price, highest
	// first, and returns the new order.
	SortByPriceDescending(ctx context.Context) ([]*Room, error)
}

// AddRoomRequest contains parameters for adding a room.
type AddRoomRequest struct {
	RoomID string
	Type   room.Type
	Price  float64
}

// UpdateRoomRequest contains parameters for updating a room.
type UpdateRoomRequest struct {
	RoomID string
	Type   room.Type
	Price  float64
}

// Room represents a room entity at the port boundary.
type Room struct {
	ID     string
	Type   room.Type
	Price  float64
	Status room.Status
}
