// Package app implements the primary ports over the secondary ports.
// Services run guards from the functional core, then drive persistence.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	coreroom "github.com/example/frontdesk/internal/core/room"
	"github.com/example/frontdesk/internal/ports/primary"
	"github.com/example/frontdesk/internal/ports/secondary"
)

// RoomServiceImpl implements the RoomService interface.
type RoomServiceImpl struct {
	roomRepo secondary.RoomRepository
	capacity int
	log      zerolog.Logger
}

// NewRoomService creates a new RoomService with injected dependencies.
// capacity bounds the inventory size.
func NewRoomService(roomRepo secondary.RoomRepository, capacity int, log zerolog.Logger) *RoomServiceImpl {
	return &RoomServiceImpl{
		roomRepo: roomRepo,
		capacity: capacity,
		log:      log,
	}
}

// AddRoom adds a new room to the inventory.
func (s *RoomServiceImpl) AddRoom(ctx context.Context, req primary.AddRoomRequest) (*primary.Room, error) {
	count, err := s.roomRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count rooms: %w", err)
	}

	exists := false
	if req.RoomID != "" {
		exists, err = s.roomRepo.Exists(ctx, req.RoomID)
		if err != nil {
			return nil, fmt.Errorf("failed to check room id: %w", err)
		}
	}

	guard := coreroom.CanAdd(coreroom.AddContext{
		RoomID:   req.RoomID,
		IDExists: exists,
		Count:    count,
		Capacity: s.capacity,
	})
	if !guard.Allowed {
		return nil, guard.Err()
	}

	// Whatever the caller asked for, a new room starts available.
	record := &secondary.RoomRecord{
		ID:     req.RoomID,
		Type:   string(req.Type),
		Price:  req.Price,
		Status: string(coreroom.InitialStatus()),
	}
	if err := s.roomRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	s.log.Debug().Str("room", record.ID).Str("type", record.Type).
		Float64("price", record.Price).Msg("room added")
	return recordToRoom(record), nil
}

// UpdateRoom overwrites a room's type and price.
func (s *RoomServiceImpl) UpdateRoom(ctx context.Context, req primary.UpdateRoomRequest) (*primary.Room, error) {
	record, err := s.fetch(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}

	guard := coreroom.CanUpdate(coreroom.MutateContext{
		RoomID: req.RoomID,
		Found:  record != nil,
		Status: recordStatus(record),
	})
	if !guard.Allowed {
		return nil, guard.Err()
	}

	if err := s.roomRepo.UpdateTypePrice(ctx, req.RoomID, string(req.Type), req.Price); err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}

	record.Type = string(req.Type)
	record.Price = req.Price
	s.log.Debug().Str("room", record.ID).Msg("room updated")
	return recordToRoom(record), nil
}

// SetMaintenance takes a room out of service.
func (s *RoomServiceImpl) SetMaintenance(ctx context.Context, roomID string) (*primary.Room, error) {
	record, err := s.fetch(ctx, roomID)
	if err != nil {
		return nil, err
	}

	guard := coreroom.CanSetMaintenance(coreroom.MutateContext{
		RoomID: roomID,
		Found:  record != nil,
		Status: recordStatus(record),
	})
	if !guard.Allowed {
		return nil, guard.Err()
	}

	if err := s.roomRepo.UpdateStatus(ctx, roomID, string(coreroom.StatusMaintenance)); err != nil {
		return nil, fmt.Errorf("failed to set maintenance: %w", err)
	}

	record.Status = string(coreroom.StatusMaintenance)
	s.log.Debug().Str("room", roomID).Msg("room sent to maintenance")
	return recordToRoom(record), nil
}

// GetRoom retrieves a room by id.
func (s *RoomServiceImpl) GetRoom(ctx context.Context, roomID string) (*primary.Room, error) {
	record, err := s.fetch(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, &coreroom.Denial{
			Kind:   coreroom.DenialRoomNotFound,
			Reason: fmt.Sprintf("room %s not found", roomID),
		}
	}
	return recordToRoom(record), nil
}

// ListRooms lists all rooms in storage order.
func (s *RoomServiceImpl) ListRooms(ctx context.Context) ([]*primary.Room, error) {
	records, err := s.roomRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return recordsToRooms(records), nil
}

// FilterByType lists rooms of one type, preserving storage order.
func (s *RoomServiceImpl) FilterByType(ctx context.Context, roomType coreroom.Type) ([]*primary.Room, error) {
	records, err := s.roomRepo.ListByType(ctx, string(roomType))
	if err != nil {
		return nil, fmt.Errorf("failed to filter rooms: %w", err)
	}
	return recordsToRooms(records), nil
}

// SortByPriceDescending reorders the inventory by price, highest first.
func (s *RoomServiceImpl) SortByPriceDescending(ctx context.Context) ([]*primary.Room, error) {
	if err := s.roomRepo.SortByPriceDescending(ctx); err != nil {
		return nil, fmt.Errorf("failed to sort rooms: %w", err)
	}
	s.log.Debug().Msg("inventory sorted by price")
	return s.ListRooms(ctx)
}

// fetch loads a room, mapping a repository miss to a nil record so guards
// can report room_not_found themselves.
func (s *RoomServiceImpl) fetch(ctx context.Context, roomID string) (*secondary.RoomRecord, error) {
	record, err := s.roomRepo.GetByID(ctx, roomID)
	if errors.Is(err, secondary.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	return record, nil
}

func recordStatus(record *secondary.RoomRecord) coreroom.Status {
	if record == nil {
		return ""
	}
	return coreroom.Status(record.Status)
}

func recordToRoom(record *secondary.RoomRecord) *primary.Room {
	return &primary.Room{
		ID:     record.ID,
		Type:   coreroom.Type(record.Type),
		Price:  record.Price,
		Status: coreroom.Status(record.Status),
	}
}

func recordsToRooms(records []*secondary.RoomRecord) []*primary.Room {
	rooms := make([]*primary.Room, len(records))
	for i, r := range records {
		rooms[i] = recordToRoom(r)
	}
	return rooms
}
