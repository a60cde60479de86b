package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"silage/pkg/apperr"
)

// ErrorHandler renders every error as {"error": message}, including echo's
// own 404/405 responses.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	status := apperr.Status(err)
	msg := err.Error()

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(he.Code)
		}
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, map[string]string{"error": msg})
}
