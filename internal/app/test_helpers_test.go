package app

import (
	"context"
	"sort"

	"github.com/example/frontdesk/internal/ports/secondary"
)

// Ensure the mocks implement the secondary ports.
var (
	_ secondary.RoomRepository    = (*mockRoomRepository)(nil)
	_ secondary.BookingRepository = (*mockBookingRepository)(nil)
	_ secondary.CheckInStore      = (*mockCheckInStore)(nil)
)

// mockRoomRepository implements secondary.RoomRepository for testing.
// Rooms are kept in a slice so display order behaves like the real store.
type mockRoomRepository struct {
	rooms     []*secondary.RoomRecord
	createErr error
	getErr    error
	listErr   error
	updateErr error
	sortErr   error
}

func newMockRoomRepository() *mockRoomRepository {
	return &mockRoomRepository{}
}

func (m *mockRoomRepository) find(id string) *secondary.RoomRecord {
	for _, r := range m.rooms {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func (m *mockRoomRepository) Create(ctx context.Context, room *secondary.RoomRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	cp := *room
	cp.Position = len(m.rooms) + 1
	m.rooms = append(m.rooms, &cp)
	return nil
}

func (m *mockRoomRepository) GetByID(ctx context.Context, id string) (*secondary.RoomRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if r := m.find(id); r != nil {
		cp := *r
		return &cp, nil
	}
	return nil, secondary.ErrNotFound
}

func (m *mockRoomRepository) Exists(ctx context.Context, id string) (bool, error) {
	return m.find(id) != nil, nil
}

func (m *mockRoomRepository) List(ctx context.Context) ([]*secondary.RoomRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]*secondary.RoomRecord, len(m.rooms))
	copy(out, m.rooms)
	return out, nil
}

func (m *mockRoomRepository) ListByType(ctx context.Context, roomType string) ([]*secondary.RoomRecord, error) {
	var out []*secondary.RoomRecord
	for _, r := range m.rooms {
		if r.Type == roomType {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockRoomRepository) Count(ctx context.Context) (int, error) {
	return len(m.rooms), nil
}

func (m *mockRoomRepository) UpdateTypePrice(ctx context.Context, id, roomType string, price float64) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	r := m.find(id)
	if r == nil {
		return secondary.ErrNotFound
	}
	r.Type = roomType
	r.Price = price
	return nil
}

func (m *mockRoomRepository) UpdateStatus(ctx context.Context, id, status string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	r := m.find(id)
	if r == nil {
		return secondary.ErrNotFound
	}
	r.Status = status
	return nil
}

func (m *mockRoomRepository) SortByPriceDescending(ctx context.Context) error {
	if m.sortErr != nil {
		return m.sortErr
	}
	sort.SliceStable(m.rooms, func(i, j int) bool {
		return m.rooms[i].Price > m.rooms[j].Price
	})
	for i, r := range m.rooms {
		r.Position = i + 1
	}
	return nil
}

// seedRoom adds a room directly, bypassing guards.
func (m *mockRoomRepository) seedRoom(id, roomType string, price float64, status string) {
	m.rooms = append(m.rooms, &secondary.RoomRecord{
		ID: id, Type: roomType, Price: price, Status: status,
		Position: len(m.rooms) + 1,
	})
}

// mockBookingRepository implements secondary.BookingRepository for testing.
type mockBookingRepository struct {
	bookings []*secondary.BookingRecord
	countErr error
	listErr  error
}

func newMockBookingRepository() *mockBookingRepository {
	return &mockBookingRepository{}
}

func (m *mockBookingRepository) ListByRoom(ctx context.Context, roomID string) ([]*secondary.BookingRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []*secondary.BookingRecord
	for _, b := range m.bookings {
		if b.RoomID == roomID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockBookingRepository) Count(ctx context.Context) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return len(m.bookings), nil
}

// mockCheckInStore implements secondary.CheckInStore for testing, applying
// the same both-or-neither rule as the SQLite store.
type mockCheckInStore struct {
	rooms     *mockRoomRepository
	ledger    *mockBookingRepository
	recordErr error
}

func newMockCheckInStore(rooms *mockRoomRepository, ledger *mockBookingRepository) *mockCheckInStore {
	return &mockCheckInStore{rooms: rooms, ledger: ledger}
}

func (m *mockCheckInStore) RecordCheckIn(ctx context.Context, booking *secondary.BookingRecord) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	r := m.rooms.find(booking.RoomID)
	if r == nil || r.Status != "available" {
		return secondary.ErrRoomConflict
	}
	r.Status = "occupied"
	cp := *booking
	cp.Seq = int64(len(m.ledger.bookings) + 1)
	m.ledger.bookings = append(m.ledger.bookings, &cp)
	return nil
}
