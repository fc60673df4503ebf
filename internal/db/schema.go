package db

// SchemaSQL is the complete schema for the front-desk store.
//
// This is the single source of truth for the database schema. Repository
// tests load it via GetSchemaSQL() instead of hardcoding CREATE TABLE
// statements, so a column referenced by repository code but missing here
// fails immediately with "no such column".
const SchemaSQL = `
-- Rooms (the inventory). position is the display order the console shows;
-- sorting by price rewrites positions rather than touching row identity.
CREATE TABLE IF NOT EXISTS rooms (
	room_id TEXT PRIMARY KEY,
	type TEXT NOT NULL CHECK(type IN ('single', 'double')),
	price REAL NOT NULL CHECK(price > 0),
	status TEXT NOT NULL CHECK(status IN ('available', 'occupied', 'maintenance')) DEFAULT 'available',
	position INTEGER NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_rooms_position ON rooms(position);
CREATE INDEX IF NOT EXISTS idx_rooms_type ON rooms(type);

-- Bookings (the ledger). Append-only: no update or delete anywhere in the
-- code. booking_id is derived from room_id and is NOT unique; seq is the
-- ledger's insertion order.
CREATE TABLE IF NOT EXISTS bookings (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	booking_id TEXT NOT NULL,
	room_id TEXT NOT NULL,
	customer_name TEXT NOT NULL,
	check_in_date TEXT NOT NULL,
	days INTEGER NOT NULL CHECK(days BETWEEN 1 AND 365),
	total_cost REAL NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (room_id) REFERENCES rooms(room_id)
);

CREATE INDEX IF NOT EXISTS idx_bookings_room ON bookings(room_id);
`

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
