package cli

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/sanketrautel17-hash/Home-Cleaning-Service/models"
)

// Client-side form validation. These checks block submission before any
// request is made; everything else is the backend's call.

var (
	emailPattern     = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	startTimePattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)
	pincodePattern   = regexp.MustCompile(`^[0-9]{6}$`)
)

func validateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// validatePassword enforces the backend's strength rules locally: at
// least 8 characters with uppercase, lowercase, digit and special.
func validatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(`!@#$%^&*(),.?":{}|<>`, r):
			special = true
		}
	}
	if !upper || !lower || !digit || !special {
		return fmt.Errorf("password must include uppercase, lowercase, a number and a special character")
	}
	return nil
}

func validateRole(role string) error {
	if role != models.RoleCustomer && role != models.RoleCleaner {
		return fmt.Errorf("role must be %q or %q", models.RoleCustomer, models.RoleCleaner)
	}
	return nil
}

func validateStartTime(value string) error {
	if !startTimePattern.MatchString(value) {
		return fmt.Errorf("start time must be HH:MM (24h)")
	}
	return nil
}

func validateScheduledDate(value string) error {
	day, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD")
	}
	// Compare against local midnight; a same-day booking is valid right
	// up to the end of the day regardless of timezone offset.
	y, m, d := time.Now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	if day.Before(today) {
		return fmt.Errorf("booking date cannot be in the past")
	}
	return nil
}

func validateAddress(addr models.Address) error {
	if len(addr.Street) < 5 {
		return fmt.Errorf("street must be at least 5 characters")
	}
	if len(addr.City) < 2 {
		return fmt.Errorf("city is required")
	}
	if len(addr.State) < 2 {
		return fmt.Errorf("state is required")
	}
	if !pincodePattern.MatchString(addr.Pincode) {
		return fmt.Errorf("pincode must be exactly 6 digits")
	}
	return nil
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	return nil
}
