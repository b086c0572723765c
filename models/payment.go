// models/payment.go
package models

import "time"

// Payment is a settlement record for a booking. The gateway behind it
// is mocked by the backend.
type Payment struct {
	ID            string    `json:"id"`
	BookingID     string    `json:"booking_id"`
	CustomerID    string    `json:"customer_id,omitempty"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency,omitempty"`
	Status        string    `json:"status"`
	Method        string    `json:"method"`
	TransactionID string    `json:"transaction_id,omitempty"`
	PaymentURL    string    `json:"payment_url,omitempty"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
}

// InitiatePaymentInput starts a payment for a booking. The backend
// derives the amount from the booking itself.
type InitiatePaymentInput struct {
	BookingID string `json:"booking_id"`
	Method    string `json:"method"`
}

// PaymentStatus is returned by GET /payments/status/{booking_id}.
type PaymentStatus struct {
	PaymentID   string `json:"payment_id"`
	Status      string `json:"status"`
	BookingPaid bool   `json:"booking_paid"`
}
