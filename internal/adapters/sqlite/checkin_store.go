package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/frontdesk/internal/ports/secondary"
)

// CheckInStore implements secondary.CheckInStore with SQLite.
type CheckInStore struct {
	db *sql.DB
}

// NewCheckInStore creates a new SQLite check-in store.
func NewCheckInStore(db *sql.DB) *CheckInStore {
	return &CheckInStore{db: db}
}

// RecordCheckIn flips the room to occupied and appends the booking in one
// transaction. The UPDATE re-checks availability, so a room that stopped
// being available since the service's guard ran is refused with
// ErrRoomConflict and nothing is written.
func (s *CheckInStore) RecordCheckIn(ctx context.Context, booking *secondary.BookingRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin check-in: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"UPDATE rooms SET status = 'occupied', updated_at = CURRENT_TIMESTAMP WHERE room_id = ? AND status = 'available'",
		booking.RoomID,
	)
	if err != nil {
		return fmt.Errorf("failed to occupy room: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return secondary.ErrRoomConflict
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO bookings (booking_id, room_id, customer_name, check_in_date, days, total_cost)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		booking.BookingID, booking.RoomID, booking.CustomerName,
		booking.CheckInDate, booking.Days, booking.TotalCost,
	); err != nil {
		return fmt.Errorf("failed to append booking: %w", err)
	}

	return tx.Commit()
}
