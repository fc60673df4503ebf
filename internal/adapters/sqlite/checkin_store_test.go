package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/example/frontdesk/internal/adapters/sqlite"
	"github.com/example/frontdesk/internal/ports/secondary"
)

func TestCheckInStoreRecordCheckIn(t *testing.T) {
	database := setupTestDB(t)
	store := sqlite.NewCheckInStore(database)
	rooms := sqlite.NewRoomRepository(database)
	bookings := sqlite.NewBookingRepository(database)
	ctx := context.Background()

	seedRoom(t, database, "101", "single", 150000, "", 1)

	err := store.RecordCheckIn(ctx, &secondary.BookingRecord{
		BookingID:    "BK101",
		RoomID:       "101",
		CustomerName: "A",
		CheckInDate:  "10/03/2025",
		Days:         3,
		TotalCost:    450000,
	})
	if err != nil {
		t.Fatalf("RecordCheckIn failed: %v", err)
	}

	room, err := rooms.GetByID(ctx, "101")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if room.Status != "occupied" {
		t.Errorf("Status = %q, want occupied", room.Status)
	}

	history, err := bookings.ListByRoom(ctx, "101")
	if err != nil {
		t.Fatalf("ListByRoom failed: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("len = %d, want 1", len(history))
	}
	if history[0].BookingID != "BK101" || history[0].TotalCost != 450000 {
		t.Errorf("unexpected booking: %+v", history[0])
	}
}

func TestCheckInStoreRefusesUnavailableRoom(t *testing.T) {
	tests := []struct {
		name   string
		status string
	}{
		{name: "occupied room", status: "occupied"},
		{name: "room under maintenance", status: "maintenance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			database := setupTestDB(t)
			store := sqlite.NewCheckInStore(database)
			bookings := sqlite.NewBookingRepository(database)
			ctx := context.Background()

			seedRoom(t, database, "101", "single", 150000, tt.status, 1)

			err := store.RecordCheckIn(ctx, &secondary.BookingRecord{
				BookingID: "BK101", RoomID: "101", CustomerName: "A",
				CheckInDate: "10/03/2025", Days: 3, TotalCost: 450000,
			})
			if !errors.Is(err, secondary.ErrRoomConflict) {
				t.Fatalf("expected ErrRoomConflict, got %v", err)
			}

			// Nothing may be written on refusal.
			count, _ := bookings.Count(ctx)
			if count != 0 {
				t.Errorf("ledger gained %d bookings on refused check-in", count)
			}
		})
	}
}

func TestCheckInStoreRollsBackOnBadBooking(t *testing.T) {
	database := setupTestDB(t)
	store := sqlite.NewCheckInStore(database)
	rooms := sqlite.NewRoomRepository(database)
	ctx := context.Background()

	seedRoom(t, database, "101", "single", 150000, "", 1)

	// days=0 violates the bookings CHECK constraint, so the insert fails
	// after the room update succeeded; the transaction must undo both.
	err := store.RecordCheckIn(ctx, &secondary.BookingRecord{
		BookingID: "BK101", RoomID: "101", CustomerName: "A",
		CheckInDate: "10/03/2025", Days: 0, TotalCost: 0,
	})
	if err == nil {
		t.Fatal("expected constraint violation")
	}

	room, _ := rooms.GetByID(ctx, "101")
	if room.Status != "available" {
		t.Errorf("Status = %q after rollback, want available", room.Status)
	}
}
