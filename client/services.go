package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sanketrautel17-hash/Home-Cleaning-Service/models"
)

// ServiceList is the search/list envelope for service packages.
type ServiceList struct {
	Services []models.Service `json:"services"`
	Total    int              `json:"total,omitempty"`
}

// CreateService publishes a new listing for the authenticated cleaner.
func (c *APIClient) CreateService(ctx context.Context, input models.CreateServiceInput) (*models.Service, error) {
	var out models.Service
	if err := c.do(ctx, http.MethodPost, "/services/", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyServices lists the authenticated cleaner's own listings, active or
// not.
func (c *APIClient) MyServices(ctx context.Context) (*ServiceList, error) {
	var out ServiceList
	if err := c.do(ctx, http.MethodGet, "/services/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchServices runs a filtered search. Only filters the caller set
// appear in the query string.
func (c *APIClient) SearchServices(ctx context.Context, filter models.ServiceSearchFilter) (*ServiceList, error) {
	query := url.Values{}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.HasMin {
		query.Set("min_price", strconv.FormatFloat(filter.MinPrice, 'f', -1, 64))
	}
	if filter.HasMax {
		query.Set("max_price", strconv.FormatFloat(filter.MaxPrice, 'f', -1, 64))
	}
	if filter.PriceType != "" {
		query.Set("price_type", filter.PriceType)
	}
	if filter.SortBy != "" {
		query.Set("sort_by", filter.SortBy)
	}
	if filter.Skip > 0 {
		query.Set("skip", strconv.Itoa(filter.Skip))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	var out ServiceList
	if err := c.do(ctx, http.MethodGet, "/services/search", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CleanerServices lists the active listings of one cleaner.
func (c *APIClient) CleanerServices(ctx context.Context, userID string) (*ServiceList, error) {
	var out ServiceList
	if err := c.do(ctx, http.MethodGet, "/services/cleaner/"+userID, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetService fetches one listing by ID.
func (c *APIClient) GetService(ctx context.Context, id string) (*models.Service, error) {
	var out models.Service
	if err := c.do(ctx, http.MethodGet, "/services/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateService applies a partial update to a listing.
func (c *APIClient) UpdateService(ctx context.Context, id string, input models.UpdateServiceInput) (*models.Service, error) {
	var out models.Service
	if err := c.do(ctx, http.MethodPut, "/services/"+id, nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteService removes a listing.
func (c *APIClient) DeleteService(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/services/"+id, nil, nil, nil)
}
