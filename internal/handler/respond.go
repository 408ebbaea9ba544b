// Package handler maps HTTP requests onto the repositories and
// services and translates domain failures into status codes.
package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/openwrench/mechanic-review/internal/model"
)

// dbTimeoutSec bounds every database call made from a handler.
const dbTimeoutSec = 5

// fail writes the standard error body. Messages passed here are safe
// for clients; underlying causes are logged at the call site only.
func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, model.ErrorResponse{StatusCode: status, Message: msg})
}
