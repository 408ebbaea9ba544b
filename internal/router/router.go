// Package router wires the HTTP routes onto an Echo instance.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/openwrench/mechanic-review/internal/config"
	"github.com/openwrench/mechanic-review/internal/handler"
	"github.com/openwrench/mechanic-review/internal/middleware"
)

// Register mounts every route under /api. CORS and rate limiting apply
// to the whole group; JWT auth only to the protected endpoints.
func Register(e *echo.Echo, cfg config.Config, rdb *redis.Client,
	auth *handler.AuthHandler, mechanics *handler.MechanicHandler, reviews *handler.ReviewHandler) {

	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderAuthorization, echo.HeaderContentType},
		AllowCredentials: true,
	}))

	api := e.Group("/api")
	api.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))

	api.GET("/health", handler.Health)

	// Auth endpoints; /validate does its own header handling so that a
	// missing header yields the documented 401 body.
	api.POST("/auth/register", auth.Register)
	api.POST("/auth/login", auth.Login)
	api.GET("/auth/validate", auth.Validate)

	jwt := middleware.JWTAuth(cfg)

	api.POST("/mechanics", mechanics.Create, jwt)
	api.GET("/mechanics", mechanics.Search)
	api.GET("/mechanics/:id", mechanics.GetByID)

	api.POST("/reviews", reviews.Create, jwt)
	api.GET("/reviews/user", reviews.Mine, jwt) // before /reviews/:id so "user" never binds as an id
	api.GET("/reviews/mechanic/:mechanicId", reviews.ByMechanic)
	api.GET("/reviews/:id", reviews.GetByID)
}
