package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/openwrench/mechanic-review/internal/model"
	"github.com/openwrench/mechanic-review/internal/repository"
	"github.com/openwrench/mechanic-review/internal/service"
	"github.com/openwrench/mechanic-review/internal/utils"
	"github.com/openwrench/mechanic-review/internal/validation"
)

// AuthHandler bundles dependencies for the auth endpoints.
type AuthHandler struct {
	Auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

// Register: validate, create the user and return 201 {token, user}.
func (h *AuthHandler) Register(c echo.Context) error {
	var dto model.RegisterUser
	if err := c.Bind(&dto); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if errs := validation.ValidateRegister(dto); len(errs) > 0 {
		return fail(c, http.StatusUnprocessableEntity, validation.Join(errs))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSec*time.Second)
	defer cancel()

	resp, err := h.Auth.Register(ctx, dto)
	if err != nil {
		if err == repository.ErrUsernameExists {
			log.Warn().Str("username", dto.Username).Msg("registration rejected: username taken")
			return fail(c, http.StatusBadRequest, "Username already exists")
		}
		log.Error().Err(err).Msg("register failed")
		return fail(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return c.JSON(http.StatusCreated, resp)
}

// Login: verify credentials and return 200 {token, user}. The failure
// message is identical for unknown-username and wrong-password.
func (h *AuthHandler) Login(c echo.Context) error {
	var creds model.Credentials
	if err := c.Bind(&creds); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if errs := validation.ValidateLogin(creds); len(errs) > 0 {
		return fail(c, http.StatusUnprocessableEntity, validation.Join(errs))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSec*time.Second)
	defer cancel()

	resp, err := h.Auth.Login(ctx, creds)
	if err != nil {
		if err == repository.ErrInvalidCredentials {
			log.Warn().Str("username", creds.Username).Msg("login rejected")
			return fail(c, http.StatusBadRequest, "Invalid username or password")
		}
		log.Error().Err(err).Msg("login failed")
		return fail(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return c.JSON(http.StatusOK, resp)
}

// Validate: resolve the bearer token to its user's public view.
func (h *AuthHandler) Validate(c echo.Context) error {
	auth := c.Request().Header.Get("Authorization")
	if auth == "" {
		return fail(c, http.StatusUnauthorized, "Missing Authorization header")
	}
	if !strings.HasPrefix(auth, "Bearer ") {
		return fail(c, http.StatusUnauthorized, "Invalid Authorization header format")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSec*time.Second)
	defer cancel()

	user, err := h.Auth.ValidateToken(ctx, strings.TrimPrefix(auth, "Bearer "))
	if err != nil {
		switch err {
		case utils.ErrInvalidToken:
			return fail(c, http.StatusUnauthorized, "Token is not valid or has expired")
		case service.ErrInvalidUserToken:
			log.Warn().Msg("token subject resolves to no user")
			return fail(c, http.StatusBadRequest, "Invalid user token")
		default:
			log.Error().Err(err).Msg("token validation failed")
			return fail(c, http.StatusInternalServerError, "Internal Server Error")
		}
	}
	return c.JSON(http.StatusOK, user)
}
