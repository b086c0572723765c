// Package cli holds one command per page of the application: commands
// parse flags, validate input locally, call the API client, and render
// the response. Backend error messages are printed verbatim.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/sanketrautel17-hash/Home-Cleaning-Service/client"
	"github.com/sanketrautel17-hash/Home-Cleaning-Service/session"
)

// App is the command shell: the routing table plus everything a command
// needs to run.
type App struct {
	Session *session.Manager
	API     *client.APIClient
	Out     io.Writer
	In      io.Reader
	Logger  *zap.Logger

	// CallbackAddr is where the Google OAuth loopback listener binds.
	CallbackAddr string
}

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, args []string) error
}

func (a *App) commands() []command {
	return []command{
		{"login", "Sign in with email and password", a.runLogin},
		{"register", "Create a customer or cleaner account", a.runRegister},
		{"google-login", "Sign in with Google", a.runGoogleLogin},
		{"logout", "Sign out and discard stored tokens", a.runLogout},
		{"status", "Show the current session and token expiry", a.runStatus},
		{"verify-email", "Confirm an email address with a mailed token", a.runVerifyEmail},
		{"forgot-password", "Request a password reset mail", a.runForgotPassword},
		{"reset-password", "Set a new password with a reset token", a.runResetPassword},
		{"change-password", "Change the signed-in account's password", a.runChangePassword},
		{"dashboard", "Overview of your bookings or job requests", a.runDashboard},
		{"search", "Search cleaning services", a.runSearch},
		{"cleaners", "Browse cleaner profiles", a.runCleaners},
		{"book", "Book a service", a.runBook},
		{"bookings", "List your bookings", a.runBookings},
		{"booking", "Show one booking", a.runBookingDetail},
		{"booking-status", "Request a booking status change", a.runBookingStatus},
		{"pay", "Pay for a completed booking (mock gateway)", a.runPay},
		{"review", "Review a completed booking", a.runReview},
		{"reviews", "List a cleaner's reviews", a.runReviews},
		{"cleaner", "Cleaner tools: onboard, profile, services, jobs", a.runCleaner},
	}
}

// Run dispatches args[0] to its command. Unknown or missing commands
// print usage.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return nil
	}
	name := args[0]
	if name == "help" || name == "-h" || name == "--help" {
		a.printUsage()
		return nil
	}
	for _, cmd := range a.commands() {
		if cmd.name == name {
			err := cmd.run(ctx, args[1:])
			if errors.Is(err, client.ErrSessionExpired) {
				// Forced back to login: tokens are already gone.
				return fmt.Errorf("%w (run `cleanhome login`)", err)
			}
			return err
		}
	}
	a.printUsage()
	return fmt.Errorf("unknown command %q", name)
}

func (a *App) printUsage() {
	fmt.Fprintln(a.Out, "cleanhome: home-cleaning marketplace client")
	fmt.Fprintln(a.Out, "\nUsage: cleanhome <command> [flags]")
	fmt.Fprintln(a.Out, "\nCommands:")

	cmds := a.commands()
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].name < cmds[j].name })

	w := tabwriter.NewWriter(a.Out, 2, 4, 2, ' ', 0)
	for _, cmd := range cmds {
		fmt.Fprintf(w, "  %s\t%s\n", cmd.name, cmd.summary)
	}
	w.Flush()
}

// requireUser gates authenticated pages, mirroring how routed pages
// only render when the session context holds a user.
func (a *App) requireUser() error {
	if a.Session.State() != session.StateAuthenticated {
		return fmt.Errorf("not signed in (run `cleanhome login`)")
	}
	return nil
}
