package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/openwrench/mechanic-review/internal/model"
	"github.com/openwrench/mechanic-review/internal/queue"
	"github.com/openwrench/mechanic-review/internal/repository"
	"github.com/openwrench/mechanic-review/internal/service"
	"github.com/openwrench/mechanic-review/internal/validation"
)

// ReviewHandler bundles dependencies for the review endpoints.
type ReviewHandler struct {
	Reviews *repository.ReviewRepo
}

func NewReviewHandler(reviews *repository.ReviewRepo) *ReviewHandler {
	return &ReviewHandler{Reviews: reviews}
}

// Create (protected): the authenticated identity must equal the
// review's declared userId; the review is validated before any row is
// written. A review.created event is published best effort afterwards.
func (h *ReviewHandler) Create(c echo.Context) error {
	var rv model.Review
	if err := c.Bind(&rv); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}

	uid, _ := c.Get("user_id").(string)
	if rv.UserID != uid {
		log.Warn().Str("token_user", uid).Str("review_user", rv.UserID).Msg("review user mismatch")
		return fail(c, http.StatusBadRequest, "User ID in token does not match the one in the review")
	}
	if errs := validation.ValidateCreateReview(rv); len(errs) > 0 {
		return fail(c, http.StatusUnprocessableEntity, validation.Join(errs))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSec*time.Second)
	defer cancel()

	created, err := h.Reviews.Create(ctx, rv)
	if err != nil {
		log.Error().Err(err).Msg("create review failed")
		return fail(c, http.StatusInternalServerError, "Internal Server Error")
	}

	// Failures here never fail the request.
	_ = service.PublishReviewCreated(ctx, queue.ReviewCreatedEvent{
		ReviewID:   created.ID,
		UserID:     created.UserID,
		MechanicID: created.MechanicID,
		Rating:     created.Rating,
		CreatedAt:  created.CreatedAt.Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, created)
}

// GetByID: one review, or 404. Orphaned reviews are still reachable
// here even when the mechanic-scoped listing hides them.
func (h *ReviewHandler) GetByID(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSec*time.Second)
	defer cancel()

	rv, err := h.Reviews.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Warn().Str("id", id).Msg("review not found")
			return fail(c, http.StatusNotFound, "Review not found")
		}
		log.Error().Err(err).Msg("get review failed")
		return fail(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return c.JSON(http.StatusOK, rv)
}

// ByMechanic: all reviews for one mechanic, each joined with the
// reviewer's username.
func (h *ReviewHandler) ByMechanic(c echo.Context) error {
	mechanicID := c.Param("mechanicId")

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSec*time.Second)
	defer cancel()

	reviews, err := h.Reviews.GetByMechanicID(ctx, mechanicID)
	if err != nil {
		log.Error().Err(err).Msg("list mechanic reviews failed")
		return fail(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return c.JSON(http.StatusOK, reviews)
}

// Mine (protected): all reviews written by the authenticated user.
func (h *ReviewHandler) Mine(c echo.Context) error {
	uid, _ := c.Get("user_id").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSec*time.Second)
	defer cancel()

	reviews, err := h.Reviews.GetByUserID(ctx, uid)
	if err != nil {
		log.Error().Err(err).Msg("list user reviews failed")
		return fail(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return c.JSON(http.StatusOK, reviews)
}
