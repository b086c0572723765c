// models/booking.go
package models

import "time"

// Booking statuses. Transitions are server-authoritative; the client
// only requests a transition and reflects the echoed value.
const (
	BookingPending    = "pending"
	BookingConfirmed  = "confirmed"
	BookingInProgress = "in_progress"
	BookingCompleted  = "completed"
	BookingCancelled  = "cancelled"
)

// Payment statuses carried on a booking.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

// ServiceSnapshot is the denormalized copy of the service taken at
// booking time. It never changes after creation, even if the cleaner
// later edits or deletes the listing.
type ServiceSnapshot struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	PriceType     string  `json:"price_type"`
	DurationHours float64 `json:"duration_hours"`
}

// PartySnapshot is the denormalized copy of a customer or cleaner
// captured on the booking record.
type PartySnapshot struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// Booking is a scheduled cleaning job.
type Booking struct {
	ID                  string          `json:"id"`
	ServiceSnapshot     ServiceSnapshot `json:"service_snapshot"`
	CustomerSnapshot    PartySnapshot   `json:"customer_snapshot"`
	CleanerSnapshot     PartySnapshot   `json:"cleaner_snapshot"`
	ScheduledDate       string          `json:"scheduled_date"`
	StartTime           string          `json:"start_time"`
	EndTime             string          `json:"end_time,omitempty"`
	DurationHours       float64         `json:"duration_hours"`
	Address             Address         `json:"address"`
	TotalPrice          float64         `json:"total_price"`
	Status              string          `json:"status"`
	PaymentStatus       string          `json:"payment_status"`
	SpecialInstructions string          `json:"special_instructions,omitempty"`
	CreatedAt           time.Time       `json:"created_at,omitempty"`
	UpdatedAt           time.Time       `json:"updated_at,omitempty"`
}

// CreateBookingInput is the payload for creating a booking.
type CreateBookingInput struct {
	ServiceID           string  `json:"service_id"`
	CleanerID           string  `json:"cleaner_id"`
	ScheduledDate       string  `json:"scheduled_date"`
	StartTime           string  `json:"start_time"`
	Address             Address `json:"address"`
	SpecialInstructions string  `json:"special_instructions,omitempty"`
}

// UpdateBookingStatusInput requests a status transition.
type UpdateBookingStatusInput struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// BookingList is the paginated list envelope.
type BookingList struct {
	Bookings []Booking `json:"bookings"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	Size     int       `json:"size"`
}

// BookingActions returns the actions a user of the given role may
// request for a booking in the given status. Purely a function of the
// current status field; the backend still has the final say.
func BookingActions(status, role string) []string {
	switch role {
	case RoleCleaner:
		switch status {
		case BookingPending:
			return []string{BookingConfirmed, BookingCancelled}
		case BookingConfirmed:
			return []string{BookingInProgress, BookingCancelled}
		case BookingInProgress:
			return []string{BookingCompleted}
		}
	case RoleCustomer:
		switch status {
		case BookingPending, BookingConfirmed:
			return []string{BookingCancelled}
		case BookingCompleted:
			return []string{"pay", "review"}
		}
	}
	return nil
}
