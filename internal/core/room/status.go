// Package room contains the pure business logic for room inventory
// operations. This is part of the Functional Core - no I/O, only pure
// functions.
package room

// Status represents the availability state of a room.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusOccupied    Status = "occupied"
	StatusMaintenance Status = "maintenance"
)

// Type represents the category of a room.
type Type string

const (
	TypeSingle Type = "single"
	TypeDouble Type = "double"
)

// InitialStatus returns the status every newly created room starts in.
// Rooms are always added as available, regardless of any status supplied.
func InitialStatus() Status {
	return StatusAvailable
}

// ParseType maps the console's numeric room-type choice (1 or 2) to a Type.
func ParseType(choice int) (Type, bool) {
	switch choice {
	case 1:
		return TypeSingle, true
	case 2:
		return TypeDouble, true
	default:
		return "", false
	}
}

// TypeLabel returns the display name for a room type.
func TypeLabel(t Type) string {
	if t == TypeDouble {
		return "Double"
	}
	return "Single"
}

// StatusLabel returns the display name for a room status.
func StatusLabel(s Status) string {
	switch s {
	case StatusAvailable:
		return "Available"
	case StatusOccupied:
		return "Occupied"
	case StatusMaintenance:
		return "Maintenance"
	default:
		return "Unknown"
	}
}
