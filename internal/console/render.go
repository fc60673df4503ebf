package console

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	coreroom "github.com/example/frontdesk/internal/core/room"
	"github.com/example/frontdesk/internal/ports/primary"
)

// Renderer formats rooms, bookings and invoices for the console.
type Renderer struct {
	out      io.Writer
	currency string
}

// NewRenderer creates a Renderer writing to out, labelling amounts with
// the given currency.
func NewRenderer(out io.Writer, currency string) *Renderer {
	return &Renderer{out: out, currency: currency}
}

// RoomTable renders rooms as a table in the order given.
func (r *Renderer) RoomTable(rooms []*primary.Room) {
	w := tabwriter.NewWriter(r.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ROOM\tTYPE\tPRICE\tSTATUS")
	fmt.Fprintln(w, "----\t----\t-----\t------")
	for _, room := range rooms {
		fmt.Fprintf(w, "%s\t%s\t%.2f %s\t%s\n",
			room.ID,
			coreroom.TypeLabel(room.Type),
			room.Price, r.currency,
			statusMarker(room.Status),
		)
	}
	w.Flush()
}

// BookingTable renders a room's rental history with sequence numbers.
func (r *Renderer) BookingTable(bookings []*primary.Booking) {
	w := tabwriter.NewWriter(r.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "#\tBOOKING\tROOM\tCUSTOMER\tDATE\tDAYS\tTOTAL")
	fmt.Fprintln(w, "-\t-------\t----\t--------\t----\t----\t-----")
	for i, b := range bookings {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%.2f %s\n",
			i+1, b.BookingID, b.RoomID, b.CustomerName,
			b.CheckInDate, b.Days, b.TotalCost, r.currency,
		)
	}
	w.Flush()
}

// Invoice renders the check-in invoice.
func (r *Renderer) Invoice(resp *primary.CheckInResponse) {
	line := strings.Repeat("=", 40)
	thin := strings.Repeat("-", 40)

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, line)
	fmt.Fprintln(r.out, "          CHECK-IN INVOICE")
	fmt.Fprintln(r.out, line)
	fmt.Fprintf(r.out, "Booking   : %s\n", resp.Booking.BookingID)
	fmt.Fprintf(r.out, "Room      : %s\n", resp.Room.ID)
	fmt.Fprintf(r.out, "Type      : %s\n", coreroom.TypeLabel(resp.Room.Type))
	fmt.Fprintf(r.out, "Customer  : %s\n", resp.Booking.CustomerName)
	fmt.Fprintf(r.out, "Check-in  : %s\n", resp.Booking.CheckInDate)
	fmt.Fprintf(r.out, "Days      : %d\n", resp.Booking.Days)
	fmt.Fprintf(r.out, "Rate      : %.2f %s\n", resp.Room.Price, r.currency)
	fmt.Fprintln(r.out, thin)
	fmt.Fprintf(r.out, "TOTAL     : %s\n",
		color.New(color.Bold).Sprintf("%.2f %s", resp.Booking.TotalCost, r.currency))
	fmt.Fprintln(r.out, line)
}

// RoomDetails renders a single room, used before an update.
func (r *Renderer) RoomDetails(room *primary.Room) {
	fmt.Fprintf(r.out, "Room   : %s\n", room.ID)
	fmt.Fprintf(r.out, "Type   : %s\n", coreroom.TypeLabel(room.Type))
	fmt.Fprintf(r.out, "Price  : %.2f %s\n", room.Price, r.currency)
	fmt.Fprintf(r.out, "Status : %s\n", statusMarker(room.Status))
}

func statusMarker(s coreroom.Status) string {
	label := coreroom.StatusLabel(s)
	switch s {
	case coreroom.StatusAvailable:
		return color.New(color.FgHiGreen).Sprint(label)
	case coreroom.StatusOccupied:
		return color.New(color.FgRed).Sprint(label)
	case coreroom.StatusMaintenance:
		return color.New(color.FgYellow).Sprint(label)
	default:
		return label
	}
}
