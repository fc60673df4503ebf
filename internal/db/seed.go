package db

import (
	"database/sql"
	"fmt"
)

// starterRooms is the fixed inventory every session starts with.
var starterRooms = []struct {
	id       string
	roomType string
	price    float64
}{
	{"101", "single", 150000},
	{"102", "double", 500000},
	{"103", "single", 280000},
	{"104", "double", 550000},
	{"105", "single", 320000},
	{"106", "double", 600000},
	{"107", "single", 290000},
}

// SeedStarterRooms inserts the preset rooms, all available, in display
// order 1..n. Call once per process, right after Open.
func SeedStarterRooms(database *sql.DB) error {
	for i, r := range starterRooms {
		if _, err := database.Exec(
			"INSERT INTO rooms (room_id, type, price, status, position) VALUES (?, ?, ?, 'available', ?)",
			r.id, r.roomType, r.price, i+1,
		); err != nil {
			return fmt.Errorf("seed room %s: %w", r.id, err)
		}
	}
	return nil
}
