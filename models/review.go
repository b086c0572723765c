// models/review.go
package models

import "time"

// Review is customer feedback tied to a completed booking.
type Review struct {
	ID         string    `json:"id"`
	BookingID  string    `json:"booking_id"`
	CleanerID  string    `json:"cleaner_id"`
	CustomerID string    `json:"customer_id,omitempty"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
}

// CreateReviewInput is the review submission payload.
type CreateReviewInput struct {
	BookingID string `json:"booking_id"`
	CleanerID string `json:"cleaner_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
}
