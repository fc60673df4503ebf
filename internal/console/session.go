package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	corebooking "github.com/example/frontdesk/internal/core/booking"
	coreroom "github.com/example/frontdesk/internal/core/room"
	"github.com/example/frontdesk/internal/ports/primary"
)

// Menu choices, numbered as presented.
const (
	choiceAddRoom = iota + 1
	choiceUpdateRoom
	choiceMaintenance
	choiceListRooms
	choiceSearchByType
	choiceSortByPrice
	choiceCheckIn
	choiceHistory
	choiceQuit
)

// Session is one interactive front-desk sitting: a menu loop over the room
// and front-desk services.
type Session struct {
	rooms    primary.RoomService
	desk     primary.FrontDeskService
	prompt   *Prompter
	render   *Renderer
	out      io.Writer
	pageSize int
}

// NewSession wires a session over the given services and streams.
func NewSession(
	rooms primary.RoomService,
	desk primary.FrontDeskService,
	in io.Reader,
	out io.Writer,
	currency string,
	pageSize int,
) *Session {
	return &Session{
		rooms:    rooms,
		desk:     desk,
		prompt:   NewPrompter(in, out),
		render:   NewRenderer(out, currency),
		out:      out,
		pageSize: pageSize,
	}
}

// Run drives the menu until the clerk quits or the input stream ends.
func (s *Session) Run(ctx context.Context) error {
	for {
		s.printMenu()

		choice, err := s.prompt.ReadInt("Choose an option: ", choiceAddRoom, choiceQuit)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if choice == choiceQuit {
			fmt.Fprintln(s.out, "Thank you, see you next time!")
			return nil
		}

		if err := s.dispatch(ctx, choice); errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
	}
}

func (s *Session) dispatch(ctx context.Context, choice int) error {
	switch choice {
	case choiceAddRoom:
		return s.addRoom(ctx)
	case choiceUpdateRoom:
		return s.updateRoom(ctx)
	case choiceMaintenance:
		return s.maintenance(ctx)
	case choiceListRooms:
		return s.listRooms(ctx)
	case choiceSearchByType:
		return s.searchByType(ctx)
	case choiceSortByPrice:
		return s.sortByPrice(ctx)
	case choiceCheckIn:
		return s.checkIn(ctx)
	case choiceHistory:
		return s.history(ctx)
	}
	return nil
}

func (s *Session) printMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "----------------------------------------------")
	fmt.Fprintln(s.out, "|             HOTEL FRONT DESK               |")
	fmt.Fprintln(s.out, "----------------------------------------------")
	fmt.Fprintln(s.out, "| 1. Add a room                              |")
	fmt.Fprintln(s.out, "| 2. Update a room                           |")
	fmt.Fprintln(s.out, "| 3. Send a room to maintenance              |")
	fmt.Fprintln(s.out, "| 4. List rooms                              |")
	fmt.Fprintln(s.out, "| 5. Search rooms by type                    |")
	fmt.Fprintln(s.out, "| 6. Sort rooms by price                     |")
	fmt.Fprintln(s.out, "| 7. Check-in                                |")
	fmt.Fprintln(s.out, "| 8. Rental history                          |")
	fmt.Fprintln(s.out, "| 9. Quit                                    |")
	fmt.Fprintln(s.out, "----------------------------------------------")
}

// readRoomType prompts for the 1/2 room type choice.
func (s *Session) readRoomType() (coreroom.Type, error) {
	choice, err := s.prompt.ReadInt("Room type (1: Single, 2: Double): ", 1, 2)
	if err != nil {
		return "", err
	}
	t, _ := coreroom.ParseType(choice)
	return t, nil
}

func (s *Session) addRoom(ctx context.Context) error {
	fmt.Fprintln(s.out, "\n===== ADD ROOM =====")

	// The id retry loop lives here, not in the core: keep asking until
	// the id is non-empty and unused.
	var roomID string
	for {
		id, err := s.prompt.ReadString("Room id: ")
		if err != nil {
			return err
		}
		if id == "" {
			fmt.Fprintln(s.out, "Error: room id must not be empty.")
			continue
		}
		if _, err := s.rooms.GetRoom(ctx, id); err == nil {
			fmt.Fprintf(s.out, "Error: room %s already exists.\n", id)
			continue
		}
		roomID = id
		break
	}

	roomType, err := s.readRoomType()
	if err != nil {
		return err
	}
	price, err := s.prompt.ReadFloat("Price per day: ", 0.01)
	if err != nil {
		return err
	}

	created, err := s.rooms.AddRoom(ctx, primary.AddRoomRequest{
		RoomID: roomID,
		Type:   roomType,
		Price:  price,
	})
	if err != nil {
		return s.report(err)
	}

	fmt.Fprintf(s.out, "\nRoom %s added.\n", created.ID)
	return nil
}

func (s *Session) updateRoom(ctx context.Context) error {
	fmt.Fprintln(s.out, "\n===== UPDATE ROOM =====")

	id, err := s.prompt.ReadString("Room id to update: ")
	if err != nil {
		return err
	}

	current, err := s.rooms.GetRoom(ctx, id)
	if err != nil {
		return s.report(err)
	}
	if current.Status == coreroom.StatusOccupied {
		fmt.Fprintf(s.out, "Error: room %s is occupied and cannot be modified.\n", id)
		return nil
	}

	fmt.Fprintln(s.out, "\nCurrent details:")
	s.render.RoomDetails(current)

	fmt.Fprintln(s.out, "\n--- New details ---")
	roomType, err := s.readRoomType()
	if err != nil {
		return err
	}
	price, err := s.prompt.ReadFloat("Price per day: ", 0.01)
	if err != nil {
		return err
	}

	updated, err := s.rooms.UpdateRoom(ctx, primary.UpdateRoomRequest{
		RoomID: id,
		Type:   roomType,
		Price:  price,
	})
	if err != nil {
		return s.report(err)
	}

	fmt.Fprintf(s.out, "\nRoom %s updated.\n", updated.ID)
	return nil
}

func (s *Session) maintenance(ctx context.Context) error {
	fmt.Fprintln(s.out, "\n===== ROOM MAINTENANCE =====")

	id, err := s.prompt.ReadString("Room id for maintenance: ")
	if err != nil {
		return err
	}

	room, err := s.rooms.SetMaintenance(ctx, id)
	if err != nil {
		return s.report(err)
	}

	fmt.Fprintf(s.out, "Room %s is now under maintenance.\n", room.ID)
	return nil
}

func (s *Session) listRooms(ctx context.Context) error {
	rooms, err := s.rooms.ListRooms(ctx)
	if err != nil {
		return s.report(err)
	}
	if len(rooms) == 0 {
		fmt.Fprintln(s.out, "No rooms in the inventory.")
		return nil
	}

	totalPages := (len(rooms) + s.pageSize - 1) / s.pageSize
	page := 0
	for {
		fmt.Fprintf(s.out, "\n===== ROOMS (page %d/%d) =====\n\n", page+1, totalPages)

		start := page * s.pageSize
		end := start + s.pageSize
		if end > len(rooms) {
			end = len(rooms)
		}
		s.render.RoomTable(rooms[start:end])

		input, err := s.prompt.ReadString(
			fmt.Sprintf("\nPage (1-%d), Enter = next, q = back: ", totalPages))
		if err != nil {
			return err
		}

		switch {
		case input == "q":
			return nil
		case input == "":
			if page < totalPages-1 {
				page++
			} else {
				fmt.Fprintln(s.out, "Already on the last page.")
				return nil
			}
		default:
			n := 0
			if _, err := fmt.Sscanf(input, "%d", &n); err == nil && n >= 1 && n <= totalPages {
				page = n - 1
			} else {
				fmt.Fprintln(s.out, "Error: no such page.")
			}
		}
	}
}

func (s *Session) searchByType(ctx context.Context) error {
	fmt.Fprintln(s.out, "\n===== SEARCH BY TYPE =====")

	roomType, err := s.readRoomType()
	if err != nil {
		return err
	}

	rooms, err := s.rooms.FilterByType(ctx, roomType)
	if err != nil {
		return s.report(err)
	}
	if len(rooms) == 0 {
		fmt.Fprintln(s.out, "No matching rooms found.")
		return nil
	}

	fmt.Fprintln(s.out)
	s.render.RoomTable(rooms)
	return nil
}

func (s *Session) sortByPrice(ctx context.Context) error {
	rooms, err := s.rooms.SortByPriceDescending(ctx)
	if err != nil {
		return s.report(err)
	}

	fmt.Fprintln(s.out, "\n===== ROOMS BY PRICE (DESCENDING) =====")
	s.render.RoomTable(rooms)
	return nil
}

func (s *Session) checkIn(ctx context.Context) error {
	fmt.Fprintln(s.out, "\n===== CHECK-IN =====")

	id, err := s.prompt.ReadString("Room id: ")
	if err != nil {
		return err
	}

	// Check the room up front so the clerk is not asked for guest details
	// on a room that cannot take them.
	room, err := s.rooms.GetRoom(ctx, id)
	if err != nil {
		return s.report(err)
	}
	switch room.Status {
	case coreroom.StatusOccupied:
		fmt.Fprintf(s.out, "Error: room %s already has a guest.\n", id)
		return nil
	case coreroom.StatusMaintenance:
		fmt.Fprintf(s.out, "Error: room %s is under maintenance.\n", id)
		return nil
	}

	name, err := s.prompt.ReadString("Customer name: ")
	if err != nil {
		return err
	}
	date, err := s.prompt.ReadDate("Check-in date (DD/MM/YYYY): ", corebooking.MinCheckInYear)
	if err != nil {
		return err
	}
	days, err := s.prompt.ReadInt(
		fmt.Sprintf("Number of days (%d-%d): ", corebooking.MinDays, corebooking.MaxDays),
		corebooking.MinDays, corebooking.MaxDays)
	if err != nil {
		return err
	}

	resp, err := s.desk.CheckIn(ctx, primary.CheckInRequest{
		RoomID:       id,
		CustomerName: name,
		CheckInDate:  date,
		Days:         days,
	})
	if err != nil {
		return s.report(err)
	}

	fmt.Fprintln(s.out, "\nCheck-in complete!")
	s.render.Invoice(resp)
	return nil
}

func (s *Session) history(ctx context.Context) error {
	fmt.Fprintln(s.out, "\n===== RENTAL HISTORY =====")

	id, err := s.prompt.ReadString("Room id: ")
	if err != nil {
		return err
	}

	bookings, err := s.desk.RentalHistory(ctx, id)
	if err != nil {
		return s.report(err)
	}
	if len(bookings) == 0 {
		fmt.Fprintf(s.out, "Room %s has no rental history.\n", id)
		return nil
	}

	fmt.Fprintln(s.out)
	s.render.BookingTable(bookings)
	return nil
}

// report prints a business denial and swallows it; anything else (storage
// failure, broken pipe) is returned and ends the session.
func (s *Session) report(err error) error {
	var roomDenial *coreroom.Denial
	var bookingDenial *corebooking.Denial
	if errors.As(err, &roomDenial) || errors.As(err, &bookingDenial) {
		fmt.Fprintf(s.out, "Error: %s.\n", err.Error())
		return nil
	}
	return err
}
