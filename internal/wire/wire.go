// Package wire provides dependency injection for the front-desk
// application. It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/example/frontdesk/internal/adapters/sqlite"
	"github.com/example/frontdesk/internal/app"
	"github.com/example/frontdesk/internal/config"
	"github.com/example/frontdesk/internal/console"
	"github.com/example/frontdesk/internal/db"
	"github.com/example/frontdesk/internal/ports/primary"
)

var (
	cfg       config.Config
	roomSvc   primary.RoomService
	deskSvc   primary.FrontDeskService
	initErr   error
	once      sync.Once
)

// RoomService returns the singleton RoomService instance.
func RoomService() (primary.RoomService, error) {
	once.Do(initServices)
	return roomSvc, initErr
}

// FrontDeskService returns the singleton FrontDeskService instance.
func FrontDeskService() (primary.FrontDeskService, error) {
	once.Do(initServices)
	return deskSvc, initErr
}

// Session returns a new interactive session over the singleton services,
// reading from in and writing to out.
func Session(in io.Reader, out io.Writer) (*console.Session, error) {
	once.Do(initServices)
	if initErr != nil {
		return nil, initErr
	}
	return console.NewSession(roomSvc, deskSvc, in, out, cfg.Currency, cfg.PageSize), nil
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	cfg = config.Load()
	log := newLogger(cfg.LogLevel)

	// Open the in-memory store and seed the starter inventory.
	database, err := db.Open()
	if err != nil {
		initErr = err
		return
	}
	if err := db.SeedStarterRooms(database); err != nil {
		initErr = err
		return
	}

	// Create repository adapters (secondary ports) with the injected DB.
	roomRepo := sqlite.NewRoomRepository(database)
	bookingRepo := sqlite.NewBookingRepository(database)
	checkInStore := sqlite.NewCheckInStore(database)

	// Create services (primary ports implementation).
	roomSvc = app.NewRoomService(roomRepo, cfg.RoomCapacity, log)
	deskSvc = app.NewFrontDeskService(roomRepo, bookingRepo, checkInStore, cfg.LedgerCapacity, log)
}

// newLogger builds the stderr diagnostic logger. Console output must stay
// clean, so diagnostics never go to stdout.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()
}
