package response

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "gamevault/pkg/errors"
	"gamevault/pkg/logger"
)

// ErrorResponse is the body of every non-2xx reply. Detail is safe to show
// to players; internal causes are only logged.
type ErrorResponse struct {
	Detail    string      `json:"detail"`
	Code      string      `json:"code"`
	Details   interface{} `json:"details,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// Success writes data as-is with 200. Game clients read the documented
// payload shapes directly, so success bodies carry no envelope.
func Success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func Error(c echo.Context, err error) error {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return handleValidationError(c, validationErr)
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Status >= http.StatusInternalServerError {
			logger.Error("%s %s: %v", c.Request().Method, c.Request().URL.Path, appErr)
		}
		return c.JSON(appErr.Status, ErrorResponse{
			Detail:    appErr.Message,
			Code:      appErr.Code,
			Timestamp: now(),
		})
	}

	logger.Error("Unhandled error on %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Detail:    "An unexpected error occurred",
		Code:      apperrors.CodeInternal,
		Timestamp: now(),
	})
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func handleValidationError(c echo.Context, validationErr validator.ValidationErrors) error {
	fields := make([]fieldError, 0, len(validationErr))
	for _, err := range validationErr {
		field := strings.ToLower(err.Field())
		fields = append(fields, fieldError{Field: field, Message: validationMessage(field, err.Tag(), err.Param())})
	}

	detail := "Invalid input data"
	if len(fields) > 0 {
		detail = fields[0].Message
	}

	return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Detail:    detail,
		Code:      apperrors.CodeValidation,
		Details:   fields,
		Timestamp: now(),
	})
}

func validationMessage(field, tag, param string) string {
	switch tag {
	case "required":
		return field + " is required"
	case "min":
		return field + " must be at least " + param + " characters"
	case "max":
		return field + " must be at most " + param + " characters"
	case "playername":
		return field + " may only contain letters, digits, spaces and underscores"
	default:
		return field + " is invalid"
	}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
