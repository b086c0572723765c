package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/sanketrautel17-hash/Home-Cleaning-Service/models"
)

// runPay drives the mock payment flow for a booking: initiate, verify,
// then confirm the settlement status.
func (a *App) runPay(ctx context.Context, args []string) error {
	if err := a.requireUser(); err != nil {
		return err
	}

	fs := flag.NewFlagSet("pay", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	method := fs.String("method", "card", "payment method: card, upi")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 1 {
		return fmt.Errorf("usage: cleanhome pay <booking-id> [-method card|upi]")
	}
	bookingID := rest[0]

	payment, err := a.API.InitiatePayment(ctx, models.InitiatePaymentInput{
		BookingID: bookingID,
		Method:    *method,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Payment %s created (%.2f %s via %s)\n",
		payment.ID, payment.Amount, payment.Currency, payment.Method)
	if payment.PaymentURL != "" {
		fmt.Fprintf(a.Out, "Gateway: %s\n", payment.PaymentURL)
	}

	verified, err := a.API.VerifyPayment(ctx, payment.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Verification: %s\n", verified.Status)

	status, err := a.API.PaymentStatus(ctx, bookingID)
	if err != nil {
		return err
	}
	if status.BookingPaid {
		fmt.Fprintln(a.Out, "Booking is paid.")
	} else {
		fmt.Fprintf(a.Out, "Booking not settled yet (payment status: %s)\n", status.Status)
	}
	return nil
}
