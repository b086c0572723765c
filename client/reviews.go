package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sanketrautel17-hash/Home-Cleaning-Service/models"
)

// ReviewList is the list envelope for a cleaner's reviews.
type ReviewList struct {
	Reviews       []models.Review `json:"reviews"`
	Total         int             `json:"total,omitempty"`
	AverageRating float64         `json:"average_rating,omitempty"`
}

// CreateReview submits feedback for a completed booking.
func (c *APIClient) CreateReview(ctx context.Context, input models.CreateReviewInput) (*models.Review, error) {
	var out models.Review
	if err := c.do(ctx, http.MethodPost, "/reviews", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CleanerReviews lists reviews left for one cleaner.
func (c *APIClient) CleanerReviews(ctx context.Context, cleanerID string, skip, limit int) (*ReviewList, error) {
	query := url.Values{}
	if skip > 0 {
		query.Set("skip", strconv.Itoa(skip))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var out ReviewList
	if err := c.do(ctx, http.MethodGet, "/reviews/cleaner/"+cleanerID, query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
