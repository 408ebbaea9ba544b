package model

import "time"

// Mechanic mirrors the `mechanics` table. Specialties is an ordered
// list of free-text tags persisted as a JSON-encoded string in a text
// column; the repository handles the round trip.
type Mechanic struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	City           string    `json:"city"`
	State          string    `json:"state"`
	ZipCode        string    `json:"zipCode"`
	Phone          string    `json:"phone"`
	Email          *string   `json:"email,omitempty"`
	Website        *string   `json:"website,omitempty"`
	Specialties    []string  `json:"specialties"`
	OperatingHours *string   `json:"operatingHours,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// MechanicWithRating is a Mechanic plus rating data derived from the
// reviews table on every read. AverageRating is 0.0 and TotalReviews 0
// for a mechanic with no reviews; the values are never cached.
type MechanicWithRating struct {
	Mechanic
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int     `json:"totalReviews"`
}
