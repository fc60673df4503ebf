package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/frontdesk/internal/ports/secondary"
)

// BookingRepository implements secondary.BookingRepository with SQLite.
// The bookings table is append-only; this repository has no write methods,
// writes happen only through the CheckInStore.
type BookingRepository struct {
	db *sql.DB
}

// NewBookingRepository creates a new SQLite booking repository.
func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

const bookingSelectCols = "seq, booking_id, room_id, customer_name, check_in_date, days, total_cost, created_at"

// scanBooking scans a booking row into a BookingRecord.
func scanBooking(scanner interface {
	Scan(dest ...any) error
}) (*secondary.BookingRecord, error) {
	var createdAt time.Time

	record := &secondary.BookingRecord{}
	err := scanner.Scan(
		&record.Seq, &record.BookingID, &record.RoomID, &record.CustomerName,
		&record.CheckInDate, &record.Days, &record.TotalCost, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)
	return record, nil
}

// ListByRoom retrieves a room's bookings in insertion order.
func (r *BookingRepository) ListByRoom(ctx context.Context, roomID string) ([]*secondary.BookingRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+bookingSelectCols+" FROM bookings WHERE room_id = ? ORDER BY seq",
		roomID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var records []*secondary.BookingRecord
	for rows.Next() {
		record, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Count returns the number of bookings in the ledger.
func (r *BookingRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM bookings").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}
