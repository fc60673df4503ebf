// Package sqlite_test contains integration tests for SQLite repositories.
//
// All test setup uses db.GetSchemaSQL() so tests run against the
// authoritative schema. Do not hardcode CREATE TABLE statements here.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/frontdesk/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedRoom inserts a test room and returns its id.
func seedRoom(t *testing.T, database *sql.DB, id, roomType string, price float64, status string, position int) string {
	t.Helper()
	if status == "" {
		status = "available"
	}
	_, err := database.Exec(
		"INSERT INTO rooms (room_id, type, price, status, position) VALUES (?, ?, ?, ?, ?)",
		id, roomType, price, status, position,
	)
	if err != nil {
		t.Fatalf("failed to seed room: %v", err)
	}
	return id
}

// seedBooking inserts a test booking for a room.
func seedBooking(t *testing.T, database *sql.DB, bookingID, roomID, customer, date string, days int, total float64) {
	t.Helper()
	_, err := database.Exec(
		"INSERT INTO bookings (booking_id, room_id, customer_name, check_in_date, days, total_cost) VALUES (?, ?, ?, ?, ?, ?)",
		bookingID, roomID, customer, date, days, total,
	)
	if err != nil {
		t.Fatalf("failed to seed booking: %v", err)
	}
}
