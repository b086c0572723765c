// models/cleaner.go
package models

import "time"

// CleanerProfile is a cleaner's public business profile. A cleaner
// account holds at most one profile.
type CleanerProfile struct {
	UserID          string    `json:"user_id,omitempty"`
	Bio             string    `json:"bio,omitempty"`
	ExperienceYears int       `json:"experience_years"`
	Specializations []string  `json:"specializations,omitempty"`
	Address         string    `json:"address,omitempty"`
	City            string    `json:"city"`
	State           string    `json:"state,omitempty"`
	Pincode         string    `json:"pincode,omitempty"`
	Latitude        float64   `json:"latitude,omitempty"`
	Longitude       float64   `json:"longitude,omitempty"`
	ServiceRadiusKm float64   `json:"service_radius_km,omitempty"`
	Rating          float64   `json:"rating,omitempty"`
	TotalReviews    int       `json:"total_reviews,omitempty"`
	CreatedAt       time.Time `json:"created_at,omitempty"`
}

// CleanerProfileInput is the payload for creating or updating a
// profile. City is the only required field.
type CleanerProfileInput struct {
	Bio             string   `json:"bio,omitempty"`
	ExperienceYears int      `json:"experience_years"`
	Specializations []string `json:"specializations,omitempty"`
	Address         string   `json:"address,omitempty"`
	City            string   `json:"city"`
	State           string   `json:"state,omitempty"`
	Pincode         string   `json:"pincode,omitempty"`
	Latitude        float64  `json:"latitude,omitempty"`
	Longitude       float64  `json:"longitude,omitempty"`
	ServiceRadiusKm float64  `json:"service_radius_km,omitempty"`
}
