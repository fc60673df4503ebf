package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	corebooking "github.com/example/frontdesk/internal/core/booking"
	coreroom "github.com/example/frontdesk/internal/core/room"
	"github.com/example/frontdesk/internal/ports/primary"
	"github.com/example/frontdesk/internal/ports/secondary"
	"github.com/example/frontdesk/internal/validate"
)

// FrontDeskServiceImpl implements the FrontDeskService interface.
type FrontDeskServiceImpl struct {
	roomRepo       secondary.RoomRepository
	bookingRepo    secondary.BookingRepository
	checkInStore   secondary.CheckInStore
	ledgerCapacity int
	log            zerolog.Logger
}

// NewFrontDeskService creates a new FrontDeskService with injected
// dependencies. ledgerCapacity bounds the booking ledger.
func NewFrontDeskService(
	roomRepo secondary.RoomRepository,
	bookingRepo secondary.BookingRepository,
	checkInStore secondary.CheckInStore,
	ledgerCapacity int,
	log zerolog.Logger,
) *FrontDeskServiceImpl {
	return &FrontDeskServiceImpl{
		roomRepo:       roomRepo,
		bookingRepo:    bookingRepo,
		checkInStore:   checkInStore,
		ledgerCapacity: ledgerCapacity,
		log:            log,
	}
}

// CheckIn runs the check-in transaction. All guards are evaluated before
// anything is written; the room flip and the ledger append then happen in
// one storage transaction.
func (s *FrontDeskServiceImpl) CheckIn(ctx context.Context, req primary.CheckInRequest) (*primary.CheckInResponse, error) {
	// 1. Room must exist and be available.
	record, err := s.roomRepo.GetByID(ctx, req.RoomID)
	found := err == nil
	if err != nil && !errors.Is(err, secondary.ErrNotFound) {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	roomGuard := coreroom.CanCheckIn(coreroom.CheckInContext{
		RoomID: req.RoomID,
		Found:  found,
		Status: recordStatus(record),
	})
	if !roomGuard.Allowed {
		return nil, roomGuard.Err()
	}

	// 2. The stay must be acceptable.
	year, dateValid := validate.DateYear(req.CheckInDate)
	stayGuard := corebooking.CanStay(corebooking.StayContext{
		CheckInDate: req.CheckInDate,
		DateValid:   dateValid,
		Year:        year,
		Days:        req.Days,
	})
	if !stayGuard.Allowed {
		return nil, stayGuard.Err()
	}

	// 3. The ledger must have room for one more booking.
	count, err := s.bookingRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}
	recordGuard := corebooking.CanRecord(corebooking.RecordContext{
		LedgerCount:    count,
		LedgerCapacity: s.ledgerCapacity,
	})
	if !recordGuard.Allowed {
		return nil, recordGuard.Err()
	}

	// 4. Derive the booking and apply both mutations atomically. The cost
	// is frozen here; later price changes do not touch it.
	booking := &secondary.BookingRecord{
		BookingID:    corebooking.DeriveID(record.ID),
		RoomID:       record.ID,
		CustomerName: req.CustomerName,
		CheckInDate:  req.CheckInDate,
		Days:         req.Days,
		TotalCost:    corebooking.TotalCost(record.Price, req.Days),
	}
	if err := s.checkInStore.RecordCheckIn(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to record check-in: %w", err)
	}

	record.Status = string(coreroom.StatusOccupied)
	s.log.Info().Str("room", record.ID).Str("booking", booking.BookingID).
		Int("days", booking.Days).Float64("total", booking.TotalCost).
		Msg("check-in recorded")

	return &primary.CheckInResponse{
		Booking: bookingToPort(booking),
		Room:    recordToRoom(record),
	}, nil
}

// RentalHistory lists a room's bookings in insertion order.
func (s *FrontDeskServiceImpl) RentalHistory(ctx context.Context, roomID string) ([]*primary.Booking, error) {
	records, err := s.bookingRepo.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rental history: %w", err)
	}

	bookings := make([]*primary.Booking, len(records))
	for i, r := range records {
		bookings[i] = bookingToPort(r)
	}
	return bookings, nil
}

func bookingToPort(record *secondary.BookingRecord) *primary.Booking {
	return &primary.Booking{
		BookingID:    record.BookingID,
		RoomID:       record.RoomID,
		CustomerName: record.CustomerName,
		CheckInDate:  record.CheckInDate,
		Days:         record.Days,
		TotalCost:    record.TotalCost,
	}
}
