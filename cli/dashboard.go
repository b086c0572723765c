package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/sanketrautel17-hash/Home-Cleaning-Service/models"
)

// runDashboard renders the role-appropriate overview: upcoming bookings
// for customers, incoming job requests for cleaners.
func (a *App) runDashboard(ctx context.Context, args []string) error {
	if err := a.requireUser(); err != nil {
		return err
	}
	user := a.Session.User()
	fmt.Fprintf(a.Out, "Dashboard: %s (%s)\n\n", user.FullName, user.Role)

	var (
		list *models.BookingList
		err  error
	)
	if user.IsCleaner() {
		list, err = a.API.CleanerBookings(ctx, "", 0, 10)
	} else {
		list, err = a.API.MyBookings(ctx, "", 0, 10)
	}
	if err != nil {
		return err
	}

	if len(list.Bookings) == 0 {
		if user.IsCleaner() {
			fmt.Fprintln(a.Out, "No job requests yet.")
		} else {
			fmt.Fprintln(a.Out, "No bookings yet. Try: cleanhome search")
		}
		return nil
	}

	a.renderBookingTable(list.Bookings, user.Role)
	return nil
}

func (a *App) renderBookingTable(bookings []models.Booking, role string) {
	w := tabwriter.NewWriter(a.Out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSERVICE\tDATE\tTIME\tPRICE\tSTATUS\tPAYMENT\tACTIONS")
	for _, b := range bookings {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%s\t%s\t%s\n",
			b.ID,
			b.ServiceSnapshot.Name,
			b.ScheduledDate,
			b.StartTime,
			b.TotalPrice,
			b.Status,
			b.PaymentStatus,
			formatActions(models.BookingActions(b.Status, role)),
		)
	}
	w.Flush()
}

func formatActions(actions []string) string {
	if len(actions) == 0 {
		return "-"
	}
	out := actions[0]
	for _, action := range actions[1:] {
		out += "," + action
	}
	return out
}
