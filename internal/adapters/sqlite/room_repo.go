// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/example/frontdesk/internal/ports/secondary"
)

// RoomRepository implements secondary.RoomRepository with SQLite.
type RoomRepository struct {
	db *sql.DB
}

// NewRoomRepository creates a new SQLite room repository.
func NewRoomRepository(db *sql.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

const roomSelectCols = "room_id, type, price, status, position, created_at, updated_at"

// scanRoom scans a room row into a RoomRecord.
func scanRoom(scanner interface {
	Scan(dest ...any) error
}) (*secondary.RoomRecord, error) {
	var (
		createdAt time.Time
		updatedAt time.Time
	)

	record := &secondary.RoomRecord{}
	err := scanner.Scan(
		&record.ID, &record.Type, &record.Price, &record.Status, &record.Position,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)
	return record, nil
}

// Create persists a new room at the end of the display order.
func (r *RoomRepository) Create(ctx context.Context, room *secondary.RoomRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO rooms (room_id, type, price, status, position)
		 VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM rooms))`,
		room.ID, room.Type, room.Price, room.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

// GetByID retrieves a room by its id.
func (r *RoomRepository) GetByID(ctx context.Context, id string) (*secondary.RoomRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+roomSelectCols+" FROM rooms WHERE room_id = ?",
		id,
	)

	record, err := scanRoom(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, secondary.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	return record, nil
}

// Exists reports whether a room with the given id exists.
func (r *RoomRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM rooms WHERE room_id = ?", id,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check room existence: %w", err)
	}
	return count > 0, nil
}

// List retrieves all rooms in display order.
func (r *RoomRepository) List(ctx context.Context) ([]*secondary.RoomRecord, error) {
	return r.query(ctx, "SELECT "+roomSelectCols+" FROM rooms ORDER BY position")
}

// ListByType retrieves rooms of one type, preserving display order.
func (r *RoomRepository) ListByType(ctx context.Context, roomType string) ([]*secondary.RoomRecord, error) {
	return r.query(ctx,
		"SELECT "+roomSelectCols+" FROM rooms WHERE type = ? ORDER BY position",
		roomType,
	)
}

func (r *RoomRepository) query(ctx context.Context, q string, args ...any) ([]*secondary.RoomRecord, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	defer rows.Close()

	var records []*secondary.RoomRecord
	for rows.Next() {
		record, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Count returns the number of rooms in the inventory.
func (r *RoomRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM rooms").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rooms: %w", err)
	}
	return count, nil
}

// UpdateTypePrice overwrites a room's type and price in place.
func (r *RoomRepository) UpdateTypePrice(ctx context.Context, id, roomType string, price float64) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE rooms SET type = ?, price = ?, updated_at = CURRENT_TIMESTAMP WHERE room_id = ?",
		roomType, price, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}
	return requireRow(result)
}

// UpdateStatus sets a room's status.
func (r *RoomRepository) UpdateStatus(ctx context.Context, id, status string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE rooms SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE room_id = ?",
		status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update room status: %w", err)
	}
	return requireRow(result)
}

// SortByPriceDescending rewrites display positions so the inventory reads
// highest price first. Equal prices keep their current relative order.
func (r *RoomRepository) SortByPriceDescending(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin sort: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx,
		"SELECT room_id FROM rooms ORDER BY price DESC, position ASC",
	)
	if err != nil {
		return fmt.Errorf("failed to order rooms: %w", err)
	}

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan room id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()

	for i, id := range ids {
		if _, err := tx.ExecContext(ctx,
			"UPDATE rooms SET position = ? WHERE room_id = ?", i+1, id,
		); err != nil {
			return fmt.Errorf("failed to reposition room %s: %w", id, err)
		}
	}

	return tx.Commit()
}

// requireRow maps a zero-row UPDATE to ErrNotFound.
func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return secondary.ErrNotFound
	}
	return nil
}
