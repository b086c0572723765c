package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/sanketrautel17-hash/Home-Cleaning-Service/models"
	"github.com/sanketrautel17-hash/Home-Cleaning-Service/utils"
)

func (a *App) runLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	email := fs.String("email", "", "account email")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" {
		var err error
		if *email, err = a.promptLine("Email"); err != nil {
			return err
		}
	}
	if err := validateEmail(*email); err != nil {
		return err
	}
	password, err := a.promptPassword("Password")
	if err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password is required")
	}

	user, err := a.Session.Login(ctx, *email, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Signed in as %s (%s)\n", user.FullName, user.Role)
	return nil
}

func (a *App) runRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	email := fs.String("email", "", "account email")
	name := fs.String("name", "", "full name")
	phone := fs.String("phone", "", "contact phone (optional)")
	role := fs.String("role", models.RoleCustomer, "account role: customer or cleaner")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" {
		var err error
		if *email, err = a.promptLine("Email"); err != nil {
			return err
		}
	}
	if *name == "" {
		var err error
		if *name, err = a.promptLine("Full name"); err != nil {
			return err
		}
	}

	// Validation blocks the request entirely; nothing is sent until the
	// form is well-formed.
	if err := validateEmail(*email); err != nil {
		return err
	}
	if len(*name) < 2 {
		return fmt.Errorf("full name must be at least 2 characters")
	}
	if err := validateRole(*role); err != nil {
		return err
	}
	password, err := a.promptPassword("Password")
	if err != nil {
		return err
	}
	if err := validatePassword(password); err != nil {
		return err
	}

	user, message, err := a.Session.Register(ctx, models.RegisterInput{
		Email:    *email,
		Password: password,
		FullName: *name,
		Phone:    *phone,
		Role:     *role,
	})
	if err != nil {
		return err
	}
	if user == nil {
		// Verification-first backend: account exists but the session
		// stays anonymous until the mailed token is confirmed.
		fmt.Fprintln(a.Out, message)
		fmt.Fprintln(a.Out, "Confirm with: cleanhome verify-email -token <token>")
		return nil
	}
	fmt.Fprintf(a.Out, "Welcome, %s! You are signed in.\n", user.FullName)
	return nil
}

func (a *App) runGoogleLogin(ctx context.Context, args []string) error {
	flow, authURL, err := a.Session.StartGoogleLogin(ctx, a.CallbackAddr)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.Out, "Open this URL in your browser to sign in with Google:")
	fmt.Fprintf(a.Out, "\n  %s\n\n", authURL)
	fmt.Fprintln(a.Out, "Waiting for the sign-in to complete...")

	user, err := flow.Wait(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Signed in as %s (%s)\n", user.FullName, user.Role)
	return nil
}

func (a *App) runLogout(ctx context.Context, args []string) error {
	if err := a.Session.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(a.Out, "Signed out.")
	return nil
}

func (a *App) runStatus(ctx context.Context, args []string) error {
	user := a.Session.User()
	if user == nil {
		fmt.Fprintln(a.Out, "Not signed in.")
		return nil
	}
	fmt.Fprintf(a.Out, "Signed in as %s <%s> (%s)\n", user.FullName, user.Email, user.Role)

	if access, _ := a.API.StoredTokens(); access != "" {
		if claims, err := utils.InspectToken(access); err == nil {
			if claims.TokenExpired() {
				fmt.Fprintln(a.Out, "Access token expired; the next request will refresh it.")
			} else {
				fmt.Fprintf(a.Out, "Access token valid until %s\n", claims.ExpiresAt.Local().Format("2006-01-02 15:04:05"))
			}
		}
	}
	return nil
}

func (a *App) runVerifyEmail(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("verify-email", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	token := fs.String("token", "", "verification token from the mail")
	resend := fs.Bool("resend", false, "send a fresh verification mail")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *resend {
		resp, err := a.API.SendVerification(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.Out, resp.Message)
		return nil
	}
	if *token == "" {
		return fmt.Errorf("-token is required")
	}
	message, err := a.Session.VerifyEmail(ctx, *token)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.Out, message)
	return nil
}

func (a *App) runForgotPassword(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("forgot-password", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	email := fs.String("email", "", "account email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := validateEmail(*email); err != nil {
		return err
	}
	resp, err := a.API.ForgotPassword(ctx, *email)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.Out, resp.Message)
	return nil
}

func (a *App) runResetPassword(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reset-password", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	token := fs.String("token", "", "reset token from the mail")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *token == "" {
		return fmt.Errorf("-token is required")
	}
	password, err := a.promptPassword("New password")
	if err != nil {
		return err
	}
	if err := validatePassword(password); err != nil {
		return err
	}
	resp, err := a.API.ResetPassword(ctx, *token, password)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.Out, resp.Message)
	return nil
}

func (a *App) runChangePassword(ctx context.Context, args []string) error {
	if err := a.requireUser(); err != nil {
		return err
	}
	current, err := a.promptPassword("Current password")
	if err != nil {
		return err
	}
	updated, err := a.promptPassword("New password")
	if err != nil {
		return err
	}
	if err := validatePassword(updated); err != nil {
		return err
	}
	resp, err := a.API.ChangePassword(ctx, current, updated)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.Out, resp.Message)
	return nil
}
