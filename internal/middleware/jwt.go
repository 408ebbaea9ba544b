// Package middleware contains reusable Echo middleware.
package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/openwrench/mechanic-review/internal/config"
	"github.com/openwrench/mechanic-review/internal/model"
	"github.com/openwrench/mechanic-review/internal/utils"
)

// JWTAuth returns middleware that validates a Bearer access token and
// injects the token's userId and username claims into the request
// context. Protected handlers read them via c.Get("user_id") and
// c.Get("username"). A missing, malformed or invalid token yields 401.
func JWTAuth(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, model.ErrorResponse{
					StatusCode: http.StatusUnauthorized,
					Message:    "Missing or malformed Authorization header",
				})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			claims, err := utils.ParseUserToken(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, model.ErrorResponse{
					StatusCode: http.StatusUnauthorized,
					Message:    "Token is not valid or has expired",
				})
			}

			c.Set("user_id", claims.UserID)
			c.Set("username", claims.Username)
			return next(c)
		}
	}
}
