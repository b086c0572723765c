package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/sanketrautel17-hash/Home-Cleaning-Service/models"
)

// runBook is the booking form: validate locally, fetch the service to
// resolve its cleaner, submit the booking.
func (a *App) runBook(ctx context.Context, args []string) error {
	if err := a.requireUser(); err != nil {
		return err
	}

	fs := flag.NewFlagSet("book", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	serviceID := fs.String("service", "", "service ID to book")
	date := fs.String("date", "", "scheduled date (YYYY-MM-DD)")
	start := fs.String("time", "", "start time (HH:MM)")
	street := fs.String("street", "", "street address")
	city := fs.String("city", "", "city")
	state := fs.String("state", "", "state")
	pincode := fs.String("pincode", "", "6-digit pincode")
	notes := fs.String("notes", "", "special instructions")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *serviceID == "" {
		return fmt.Errorf("-service is required")
	}
	if err := validateScheduledDate(*date); err != nil {
		return err
	}
	if err := validateStartTime(*start); err != nil {
		return err
	}
	address := models.Address{Street: *street, City: *city, State: *state, Pincode: *pincode}
	if err := validateAddress(address); err != nil {
		return err
	}
	if len(*notes) > 500 {
		return fmt.Errorf("special instructions must be at most 500 characters")
	}

	service, err := a.API.GetService(ctx, *serviceID)
	if err != nil {
		return err
	}

	booking, err := a.API.CreateBooking(ctx, models.CreateBookingInput{
		ServiceID:           service.ID,
		CleanerID:           service.CleanerID,
		ScheduledDate:       *date,
		StartTime:           *start,
		Address:             address,
		SpecialInstructions: *notes,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "Booked %s on %s at %s, total %.2f (%s)\n",
		booking.ServiceSnapshot.Name, booking.ScheduledDate, booking.StartTime,
		booking.TotalPrice, booking.Status)
	fmt.Fprintf(a.Out, "Booking ID: %s\n", booking.ID)
	return nil
}

func (a *App) runBookings(ctx context.Context, args []string) error {
	if err := a.requireUser(); err != nil {
		return err
	}

	fs := flag.NewFlagSet("bookings", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	status := fs.String("status", "", "filter by status")
	limit := fs.Int("limit", 20, "max results")
	skip := fs.Int("skip", 0, "result offset")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user := a.Session.User()
	var (
		list *models.BookingList
		err  error
	)
	if user.IsCleaner() {
		list, err = a.API.CleanerBookings(ctx, *status, *skip, *limit)
	} else {
		list, err = a.API.MyBookings(ctx, *status, *skip, *limit)
	}
	if err != nil {
		return err
	}
	if len(list.Bookings) == 0 {
		fmt.Fprintln(a.Out, "No bookings found.")
		return nil
	}
	a.renderBookingTable(list.Bookings, user.Role)
	return nil
}

func (a *App) runBookingDetail(ctx context.Context, args []string) error {
	if err := a.requireUser(); err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: cleanhome booking <id>")
	}

	b, err := a.API.GetBooking(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "Booking %s\n", b.ID)
	fmt.Fprintf(a.Out, "  Service:   %s (%s, %.1fh)\n", b.ServiceSnapshot.Name, b.ServiceSnapshot.Category, b.DurationHours)
	fmt.Fprintf(a.Out, "  Cleaner:   %s\n", b.CleanerSnapshot.FullName)
	fmt.Fprintf(a.Out, "  Customer:  %s\n", b.CustomerSnapshot.FullName)
	fmt.Fprintf(a.Out, "  When:      %s %s-%s\n", b.ScheduledDate, b.StartTime, b.EndTime)
	fmt.Fprintf(a.Out, "  Where:     %s, %s, %s %s\n", b.Address.Street, b.Address.City, b.Address.State, b.Address.Pincode)
	fmt.Fprintf(a.Out, "  Price:     %.2f\n", b.TotalPrice)
	fmt.Fprintf(a.Out, "  Status:    %s (payment: %s)\n", b.Status, b.PaymentStatus)
	if b.SpecialInstructions != "" {
		fmt.Fprintf(a.Out, "  Notes:     %s\n", b.SpecialInstructions)
	}
	if actions := models.BookingActions(b.Status, a.Session.User().Role); len(actions) > 0 {
		fmt.Fprintf(a.Out, "  Actions:   %s\n", formatActions(actions))
	}
	return nil
}

// runBookingStatus requests a transition and re-renders the affected
// row from the server's echo, without refetching the whole list.
func (a *App) runBookingStatus(ctx context.Context, args []string) error {
	if err := a.requireUser(); err != nil {
		return err
	}

	fs := flag.NewFlagSet("booking-status", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	reason := fs.String("reason", "", "reason for cancellation/rejection")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 2 {
		return fmt.Errorf("usage: cleanhome booking-status <id> <status> [-reason ...]")
	}
	id, status := rest[0], rest[1]

	updated, err := a.API.UpdateBookingStatus(ctx, id, models.UpdateBookingStatusInput{
		Status: status,
		Reason: *reason,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "Booking %s is now %s\n", updated.ID, updated.Status)
	if actions := models.BookingActions(updated.Status, a.Session.User().Role); len(actions) > 0 {
		fmt.Fprintf(a.Out, "Next: %s\n", formatActions(actions))
	}
	return nil
}

// applyStatusUpdate replaces the matching booking in place, the local
// equivalent of updating one row after a confirmed transition.
func applyStatusUpdate(bookings []models.Booking, updated *models.Booking) []models.Booking {
	for i := range bookings {
		if bookings[i].ID == updated.ID {
			bookings[i] = *updated
			break
		}
	}
	return bookings
}
