package secondary

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("persistence: not found")

	// ErrRoomConflict is returned by RecordCheckIn when the room stopped
	// being available between the guard check and the transaction.
	ErrRoomConflict = errors.New("persistence: room no longer available")
)
