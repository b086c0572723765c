package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sanketrautel17-hash/Home-Cleaning-Service/models"
)

// CreateBooking books a service. The backend snapshots the service and
// both parties onto the booking record.
func (c *APIClient) CreateBooking(ctx context.Context, input models.CreateBookingInput) (*models.Booking, error) {
	var out models.Booking
	if err := c.do(ctx, http.MethodPost, "/bookings", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetBooking fetches a single booking by ID.
func (c *APIClient) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	var out models.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyBookings lists the authenticated customer's bookings, optionally
// filtered by status.
func (c *APIClient) MyBookings(ctx context.Context, status string, skip, limit int) (*models.BookingList, error) {
	return c.listBookings(ctx, "/bookings/my-bookings", status, skip, limit)
}

// CleanerBookings lists job requests for the authenticated cleaner.
func (c *APIClient) CleanerBookings(ctx context.Context, status string, skip, limit int) (*models.BookingList, error) {
	return c.listBookings(ctx, "/bookings/cleaner", status, skip, limit)
}

func (c *APIClient) listBookings(ctx context.Context, path, status string, skip, limit int) (*models.BookingList, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}
	if skip > 0 {
		query.Set("skip", strconv.Itoa(skip))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var out models.BookingList
	if err := c.do(ctx, http.MethodGet, path, query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateBookingStatus requests a status transition and returns the
// booking with the server's echoed status.
func (c *APIClient) UpdateBookingStatus(ctx context.Context, id string, input models.UpdateBookingStatusInput) (*models.Booking, error) {
	var out models.Booking
	if err := c.do(ctx, http.MethodPatch, "/bookings/"+id+"/status", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
