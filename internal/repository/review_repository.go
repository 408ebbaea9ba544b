package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/openwrench/mechanic-review/internal/model"
)

type ReviewRepo struct{ DB *sql.DB }

func NewReviewRepo(db *sql.DB) *ReviewRepo { return &ReviewRepo{DB: db} }

const reviewColumns = "id,user_id,mechanic_id,rating,comment,service_type,service_date,price_paid,price_rating,quality_rating,service_rating,images,created_at,updated_at"

// Create inserts a review with a generated UUID and current timestamps.
// Images are JSON-encoded only when non-empty; an empty list is stored
// as NULL, and both read back as an empty slice.
func (r *ReviewRepo) Create(ctx context.Context, rv model.Review) (model.Review, error) {
	rv.ID = uuid.NewString()
	now := time.Now().UTC().Truncate(time.Second)
	rv.CreatedAt, rv.UpdatedAt = now, now

	var images any
	if len(rv.Images) > 0 {
		images = encodeStringList(rv.Images)
	}
	if rv.Images == nil {
		rv.Images = []string{}
	}

	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO reviews ("+reviewColumns+") VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)",
		rv.ID, rv.UserID, rv.MechanicID, rv.Rating, rv.Comment,
		rv.ServiceType, rv.ServiceDate, rv.PricePaid,
		rv.PriceRating, rv.QualityRating, rv.ServiceRating,
		images, rv.CreatedAt, rv.UpdatedAt)
	if err != nil {
		return model.Review{}, err
	}
	return rv, nil
}

// GetByID fetches a review by primary key.
func (r *ReviewRepo) GetByID(ctx context.Context, id string) (model.Review, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+reviewColumns+" FROM reviews WHERE id=? LIMIT 1", id)
	return scanReview(row)
}

// GetByMechanicID lists a mechanic's reviews joined with each
// reviewer's username. The inner join means a review whose user row is
// gone is excluded here while still reachable via GetByID.
func (r *ReviewRepo) GetByMechanicID(ctx context.Context, mechanicID string) ([]model.ReviewWithUserDetails, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT r.id, r.mechanic_id, u.username, r.rating, r.comment,
			r.service_type, r.service_date, r.price_paid,
			r.price_rating, r.quality_rating, r.service_rating,
			r.images, r.created_at, r.updated_at
		FROM reviews r
		INNER JOIN users u ON u.id = r.user_id
		WHERE r.mechanic_id = ?`, mechanicID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.ReviewWithUserDetails{}
	for rows.Next() {
		var rv model.ReviewWithUserDetails
		var serviceType, serviceDate, images sql.NullString
		var pricePaid sql.NullFloat64
		var priceRating, qualityRating, serviceRating sql.NullInt64
		if err := rows.Scan(&rv.ID, &rv.MechanicID, &rv.Username, &rv.Rating, &rv.Comment,
			&serviceType, &serviceDate, &pricePaid,
			&priceRating, &qualityRating, &serviceRating,
			&images, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
			return nil, err
		}
		rv.ServiceType = strPtr(serviceType)
		rv.ServiceDate = strPtr(serviceDate)
		rv.PricePaid = floatPtr(pricePaid)
		rv.PriceRating = intPtr(priceRating)
		rv.QualityRating = intPtr(qualityRating)
		rv.ServiceRating = intPtr(serviceRating)
		rv.Images = decodeStringList(images.String)
		out = append(out, rv)
	}
	return out, rows.Err()
}

// GetByUserID lists every review written by one user.
func (r *ReviewRepo) GetByUserID(ctx context.Context, userID string) ([]model.Review, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+reviewColumns+" FROM reviews WHERE user_id=?", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Review{}
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func scanReview(s scanner) (model.Review, error) {
	var rv model.Review
	var serviceType, serviceDate, images sql.NullString
	var pricePaid sql.NullFloat64
	var priceRating, qualityRating, serviceRating sql.NullInt64
	err := s.Scan(&rv.ID, &rv.UserID, &rv.MechanicID, &rv.Rating, &rv.Comment,
		&serviceType, &serviceDate, &pricePaid,
		&priceRating, &qualityRating, &serviceRating,
		&images, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		return model.Review{}, err
	}
	rv.ServiceType = strPtr(serviceType)
	rv.ServiceDate = strPtr(serviceDate)
	rv.PricePaid = floatPtr(pricePaid)
	rv.PriceRating = intPtr(priceRating)
	rv.QualityRating = intPtr(qualityRating)
	rv.ServiceRating = intPtr(serviceRating)
	rv.Images = decodeStringList(images.String)
	return rv, nil
}
