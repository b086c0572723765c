package client

import (
	"context"
	"net/http"

	"github.com/sanketrautel17-hash/Home-Cleaning-Service/models"
)

// InitiatePayment starts the mock payment flow for a booking. The
// returned record carries the gateway transaction ID used for
// verification.
func (c *APIClient) InitiatePayment(ctx context.Context, input models.InitiatePaymentInput) (*models.Payment, error) {
	var out models.Payment
	if err := c.do(ctx, http.MethodPost, "/payments/initiate", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyPayment confirms a previously initiated payment.
func (c *APIClient) VerifyPayment(ctx context.Context, paymentID string) (*models.Payment, error) {
	var out models.Payment
	if err := c.do(ctx, http.MethodPost, "/payments/verify/"+paymentID, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PaymentStatus reports the settlement state of a booking.
func (c *APIClient) PaymentStatus(ctx context.Context, bookingID string) (*models.PaymentStatus, error) {
	var out models.PaymentStatus
	if err := c.do(ctx, http.MethodGet, "/payments/status/"+bookingID, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
