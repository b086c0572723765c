package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/sanketrautel17-hash/Home-Cleaning-Service/models"
)

// runReview submits feedback for a completed booking. The cleaner ID is
// taken from the booking's snapshot so the caller only names the
// booking.
func (a *App) runReview(ctx context.Context, args []string) error {
	if err := a.requireUser(); err != nil {
		return err
	}

	fs := flag.NewFlagSet("review", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	rating := fs.Int("rating", 0, "star rating 1-5")
	comment := fs.String("comment", "", "feedback text")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 1 {
		return fmt.Errorf("usage: cleanhome review <booking-id> -rating N [-comment ...]")
	}
	if err := validateRating(*rating); err != nil {
		return err
	}
	if len(*comment) > 1000 {
		return fmt.Errorf("comment must be at most 1000 characters")
	}

	booking, err := a.API.GetBooking(ctx, rest[0])
	if err != nil {
		return err
	}
	if booking.Status != models.BookingCompleted {
		return fmt.Errorf("only completed bookings can be reviewed (status: %s)", booking.Status)
	}

	review, err := a.API.CreateReview(ctx, models.CreateReviewInput{
		BookingID: booking.ID,
		CleanerID: booking.CleanerSnapshot.ID,
		Rating:    *rating,
		Comment:   *comment,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "Thanks! You rated %s %d/5.\n", booking.CleanerSnapshot.FullName, review.Rating)
	return a.runBookings(ctx, nil)
}

func (a *App) runReviews(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reviews", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	limit := fs.Int("limit", 20, "max results")
	skip := fs.Int("skip", 0, "result offset")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 1 {
		return fmt.Errorf("usage: cleanhome reviews <cleaner-id>")
	}

	list, err := a.API.CleanerReviews(ctx, rest[0], *skip, *limit)
	if err != nil {
		return err
	}
	if len(list.Reviews) == 0 {
		fmt.Fprintln(a.Out, "No reviews yet.")
		return nil
	}

	if list.AverageRating > 0 {
		fmt.Fprintf(a.Out, "Average rating: %.1f/5 (%d reviews)\n\n", list.AverageRating, list.Total)
	}
	for _, r := range list.Reviews {
		fmt.Fprintf(a.Out, "%s %s\n", strings.Repeat("★", r.Rating)+strings.Repeat("☆", 5-r.Rating), r.Comment)
	}
	return nil
}
