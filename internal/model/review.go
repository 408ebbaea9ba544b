package model

import "time"

// Review mirrors the `reviews` table. Rating and the optional
// price/quality/service sub-ratings are 1-5 stars. Images holds URL
// strings stored JSON-encoded in a nullable text column; an empty list
// is stored as NULL, and both NULL and an empty array read back as an
// empty slice.
type Review struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	MechanicID    string    `json:"mechanicId"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	ServiceType   *string   `json:"serviceType,omitempty"`
	ServiceDate   *string   `json:"serviceDate,omitempty"`
	PricePaid     *float64  `json:"pricePaid,omitempty"`
	PriceRating   *int      `json:"priceRating,omitempty"`
	QualityRating *int      `json:"qualityRating,omitempty"`
	ServiceRating *int      `json:"serviceRating,omitempty"`
	Images        []string  `json:"images"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ReviewWithUserDetails is a Review joined with the reviewing user's
// username, used for mechanic-scoped listings.
type ReviewWithUserDetails struct {
	ID            string    `json:"id"`
	MechanicID    string    `json:"mechanicId"`
	Username      string    `json:"username"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	ServiceType   *string   `json:"serviceType,omitempty"`
	ServiceDate   *string   `json:"serviceDate,omitempty"`
	PricePaid     *float64  `json:"pricePaid,omitempty"`
	PriceRating   *int      `json:"priceRating,omitempty"`
	QualityRating *int      `json:"qualityRating,omitempty"`
	ServiceRating *int      `json:"serviceRating,omitempty"`
	Images        []string  `json:"images"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// UpdateReview is the partial-update shape for a review. No update
// endpoint is currently wired; the validator for it still runs in tests.
type UpdateReview struct {
	Rating        *int     `json:"rating,omitempty"`
	Comment       *string  `json:"comment,omitempty"`
	ServiceType   *string  `json:"serviceType,omitempty"`
	ServiceDate   *string  `json:"serviceDate,omitempty"`
	PricePaid     *float64 `json:"pricePaid,omitempty"`
	PriceRating   *int     `json:"priceRating,omitempty"`
	QualityRating *int     `json:"qualityRating,omitempty"`
	ServiceRating *int     `json:"serviceRating,omitempty"`
	Images        []string `json:"images,omitempty"`
}
