package room

import "fmt"

// DenialKind identifies why a guard refused an operation. The console keys
// user feedback off the kind; Reason carries the ready-made message.
type DenialKind string

const (
	DenialRoomNotFound     DenialKind = "room_not_found"
	DenialRoomIDEmpty      DenialKind = "room_id_empty"
	DenialRoomIDExists     DenialKind = "room_id_exists"
	DenialRoomOccupied     DenialKind = "room_occupied"
	DenialUnderMaintenance DenialKind = "room_under_maintenance"
	DenialInventoryFull    DenialKind = "inventory_full"
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

func deny(kind DenialKind, format string, args ...any) GuardResult {
	return GuardResult{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// AddContext provides context for room creation guards.
// Populated by the caller with pre-fetched inventory facts.
type AddContext struct {
	RoomID   string
	IDExists bool
	Count    int
	Capacity int
}

// MutateContext provides context for guards on existing rooms
// (update, maintenance).
type MutateContext struct {
	RoomID string
	Found  bool
	Status Status
}

// CheckInContext provides context for the room side of a check-in.
type CheckInContext struct {
	RoomID string
	Found  bool
	Status Status
}

// CanAdd evaluates whether a room can be added to the inventory.
// Rules:
// - inventory must not be at capacity
// - room id must be non-empty
// - room id must not already exist
func CanAdd(ctx AddContext) GuardResult {
	if ctx.Count >= ctx.Capacity {
		return deny(DenialInventoryFull, "inventory is full (%d rooms)", ctx.Capacity)
	}
	if ctx.RoomID == "" {
		return deny(DenialRoomIDEmpty, "room id must not be empty")
	}
	if ctx.IDExists {
		return deny(DenialRoomIDExists, "room %s already exists", ctx.RoomID)
	}
	return GuardResult{Allowed: true}
}

// CanUpdate evaluates whether a room's type and price can be changed.
// Rules:
// - room must exist
// - an occupied room cannot be modified
func CanUpdate(ctx MutateContext) GuardResult {
	if !ctx.Found {
		return deny(DenialRoomNotFound, "room %s not found", ctx.RoomID)
	}
	if ctx.Status == StatusOccupied {
		return deny(DenialRoomOccupied, "room %s is occupied and cannot be modified", ctx.RoomID)
	}
	return GuardResult{Allowed: true}
}

// CanSetMaintenance evaluates whether a room can be taken out of service.
// Same rules as CanUpdate: occupied rooms are off limits.
func CanSetMaintenance(ctx MutateContext) GuardResult {
	if !ctx.Found {
		return deny(DenialRoomNotFound, "room %s not found", ctx.RoomID)
	}
	if ctx.Status == StatusOccupied {
		return deny(DenialRoomOccupied, "room %s is occupied and cannot be modified", ctx.RoomID)
	}
	return GuardResult{Allowed: true}
}

// CanCheckIn evaluates whether a guest can check in to the room.
// Rules:
// - room must exist
// - room must be available (occupied and maintenance are reported
//   distinctly for user feedback)
func CanCheckIn(ctx CheckInContext) GuardResult {
	if !ctx.Found {
		return deny(DenialRoomNotFound, "room %s not found", ctx.RoomID)
	}
	switch ctx.Status {
	case StatusOccupied:
		return deny(DenialRoomOccupied, "room %s already has a guest", ctx.RoomID)
	case StatusMaintenance:
		return deny(DenialUnderMaintenance, "room %s is under maintenance", ctx.RoomID)
	}
	return GuardResult{Allowed: true}
}
