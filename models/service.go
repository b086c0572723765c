// models/service.go
package models

import "time"

// Service categories accepted by the backend.
var ServiceCategories = []string{"regular", "deep", "move_in_out", "office", "specialized"}

// Pricing models accepted by the backend.
var PriceTypes = []string{"flat", "per_hour", "per_sqft"}

// Service is a cleaning service package listed by a cleaner.
type Service struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Category      string    `json:"category"`
	Price         float64   `json:"price"`
	PriceType     string    `json:"price_type"`
	DurationHours float64   `json:"duration_hours"`
	IsActive      bool      `json:"is_active"`
	CleanerID     string    `json:"cleaner_id"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
	UpdatedAt     time.Time `json:"updated_at,omitempty"`
}

// CreateServiceInput is the payload for creating a listing.
type CreateServiceInput struct {
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	PriceType     string  `json:"price_type"`
	DurationHours float64 `json:"duration_hours"`
}

// UpdateServiceInput carries only the fields being changed; nil fields
// are left untouched by the backend.
type UpdateServiceInput struct {
	Name          *string  `json:"name,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Category      *string  `json:"category,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	PriceType     *string  `json:"price_type,omitempty"`
	DurationHours *float64 `json:"duration_hours,omitempty"`
	IsActive      *bool    `json:"is_active,omitempty"`
}

// ServiceSearchFilter mirrors the /services/search query parameters.
// Zero values mean "not set" and are omitted from the request.
type ServiceSearchFilter struct {
	Category  string
	MinPrice  float64
	HasMin    bool
	MaxPrice  float64
	HasMax    bool
	PriceType string
	SortBy    string
	Skip      int
	Limit     int
}

// ValidCategory reports whether c is an accepted service category.
func ValidCategory(c string) bool {
	for _, v := range ServiceCategories {
		if v == c {
			return true
		}
	}
	return false
}

// ValidPriceType reports whether p is an accepted pricing model.
func ValidPriceType(p string) bool {
	for _, v := range PriceTypes {
		if v == p {
			return true
		}
	}
	return false
}
