package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sanketrautel17-hash/Home-Cleaning-Service/models"
)

// CleanerList is the search envelope for cleaner profiles.
type CleanerList struct {
	Cleaners []models.CleanerProfile `json:"cleaners"`
	Total    int                     `json:"total,omitempty"`
}

// CreateCleanerProfile creates the authenticated cleaner's business
// profile. A cleaner can hold only one.
func (c *APIClient) CreateCleanerProfile(ctx context.Context, input models.CleanerProfileInput) (*models.CleanerProfile, error) {
	var out models.CleanerProfile
	if err := c.do(ctx, http.MethodPost, "/cleaners/profile", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyCleanerProfile fetches the authenticated cleaner's profile.
func (c *APIClient) MyCleanerProfile(ctx context.Context) (*models.CleanerProfile, error) {
	var out models.CleanerProfile
	if err := c.do(ctx, http.MethodGet, "/cleaners/profile/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCleanerProfile replaces the authenticated cleaner's profile.
func (c *APIClient) UpdateCleanerProfile(ctx context.Context, input models.CleanerProfileInput) (*models.CleanerProfile, error) {
	var out models.CleanerProfile
	if err := c.do(ctx, http.MethodPut, "/cleaners/profile", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCleanerProfile fetches a cleaner's public profile by user ID.
func (c *APIClient) GetCleanerProfile(ctx context.Context, userID string) (*models.CleanerProfile, error) {
	var out models.CleanerProfile
	if err := c.do(ctx, http.MethodGet, "/cleaners/"+userID, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// NearbyCleaners finds cleaners around a point, sorted by distance.
// The backend caps radius_km at 50 and limit at 50.
func (c *APIClient) NearbyCleaners(ctx context.Context, latitude, longitude, radiusKm float64, limit int) (*CleanerList, error) {
	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	if radiusKm > 0 {
		query.Set("radius_km", strconv.FormatFloat(radiusKm, 'f', -1, 64))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var out CleanerList
	if err := c.do(ctx, http.MethodGet, "/cleaners/nearby", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchCleaners searches profiles by city and optional specialization.
func (c *APIClient) SearchCleaners(ctx context.Context, city, specialization string, skip, limit int) (*CleanerList, error) {
	query := url.Values{}
	if city != "" {
		query.Set("city", city)
	}
	if specialization != "" {
		query.Set("specialization", specialization)
	}
	if skip > 0 {
		query.Set("skip", strconv.Itoa(skip))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var out CleanerList
	if err := c.do(ctx, http.MethodGet, "/cleaners/search", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
