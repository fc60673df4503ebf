// Package config holds the front-desk configuration. Values come from the
// environment, optionally primed from a .env file in the working directory.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults. Capacities bound the in-memory store; 100 of each is the
// shipped value.
const (
	DefaultPageSize       = 10
	DefaultRoomCapacity   = 100
	DefaultLedgerCapacity = 100
	DefaultCurrency       = "VND"
	DefaultLogLevel       = "warn"
)

// Config carries the knobs of a front-desk session.
type Config struct {
	PageSize       int    // rooms per page in the list view
	RoomCapacity   int    // max rooms in the inventory
	LedgerCapacity int    // max bookings in the ledger
	Currency       string // label shown next to amounts
	LogLevel       string // zerolog level for stderr diagnostics
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		PageSize:       envInt("FRONTDESK_PAGE_SIZE", DefaultPageSize),
		RoomCapacity:   envInt("FRONTDESK_ROOM_CAPACITY", DefaultRoomCapacity),
		LedgerCapacity: envInt("FRONTDESK_LEDGER_CAPACITY", DefaultLedgerCapacity),
		Currency:       env("FRONTDESK_CURRENCY", DefaultCurrency),
		LogLevel:       env("FRONTDESK_LOG", DefaultLogLevel),
	}
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
