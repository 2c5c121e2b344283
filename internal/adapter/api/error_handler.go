package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "gamevault/pkg/errors"
	"gamevault/pkg/response"
)

// ErrorHandler sends framework errors (unknown routes, body limit, recovered
// panics) through the same error body as handler errors.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.Code {
		case http.StatusNotFound:
			err = apperrors.NotFound("Route", err)
		case http.StatusRequestEntityTooLarge:
			err = apperrors.BadRequest("Request body exceeds maximum allowed size", err)
		default:
			if httpErr.Code < http.StatusInternalServerError {
				err = apperrors.New(apperrors.CodeHTTP, http.StatusText(httpErr.Code), httpErr.Code, err)
			}
		}
	}

	if c.Request().Method == http.MethodHead {
		var appErr *apperrors.AppError
		status := http.StatusInternalServerError
		if errors.As(err, &appErr) {
			status = appErr.Status
		}
		_ = c.NoContent(status)
		return
	}

	_ = response.Error(c, err)
}
