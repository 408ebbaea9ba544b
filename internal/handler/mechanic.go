package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/openwrench/mechanic-review/internal/model"
	"github.com/openwrench/mechanic-review/internal/repository"
)

// MechanicHandler bundles dependencies for the mechanic endpoints.
type MechanicHandler struct {
	Mechanics *repository.MechanicRepo
}

func NewMechanicHandler(mechanics *repository.MechanicRepo) *MechanicHandler {
	return &MechanicHandler{Mechanics: mechanics}
}

// Create (protected): insert a mechanic listing and return it with
// id/timestamps filled in.
func (h *MechanicHandler) Create(c echo.Context) error {
	var m model.Mechanic
	if err := c.Bind(&m); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	for _, field := range []string{m.Name, m.Address, m.City, m.State, m.ZipCode, m.Phone} {
		if strings.TrimSpace(field) == "" {
			return fail(c, http.StatusBadRequest, "Name, address, city, state, zip code and phone are required")
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSec*time.Second)
	defer cancel()

	created, err := h.Mechanics.Create(ctx, m)
	if err != nil {
		log.Error().Err(err).Msg("create mechanic failed")
		return fail(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return c.JSON(http.StatusCreated, created)
}

// GetByID: one mechanic with its rating data, or 404.
func (h *MechanicHandler) GetByID(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSec*time.Second)
	defer cancel()

	m, err := h.Mechanics.GetWithRating(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Warn().Str("id", id).Msg("mechanic not found")
			return fail(c, http.StatusNotFound, "Mechanic not found")
		}
		log.Error().Err(err).Msg("get mechanic failed")
		return fail(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return c.JSON(http.StatusOK, m)
}

// Search: filtered mechanic listing with rating data. All filters are
// optional and conjunctive; no filters returns everything.
func (h *MechanicHandler) Search(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSec*time.Second)
	defer cancel()

	mechanics, err := h.Mechanics.Search(ctx,
		c.QueryParam("query"),
		c.QueryParam("city"),
		c.QueryParam("state"),
		c.QueryParam("specialty"))
	if err != nil {
		log.Error().Err(err).Msg("search mechanics failed")
		return fail(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return c.JSON(http.StatusOK, mechanics)
}
