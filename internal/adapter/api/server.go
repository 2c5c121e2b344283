package api

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"gamevault/internal/adapter/api/router"
)

type ServerOptions struct {
	// MaxRequestBody is an echo body-limit size such as "8M". Empty disables it.
	MaxRequestBody string
	AccessLog      bool
}

// NewServer builds the echo instance with middleware and routes. The
// handler package must have been set up first.
func NewServer(opts ServerOptions) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler
	e.Validator = NewValidator()

	if opts.AccessLog {
		e.Use(middleware.Logger())
	}
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())
	if opts.MaxRequestBody != "" {
		e.Use(middleware.BodyLimit(opts.MaxRequestBody))
	}

	router.Setup(e)

	return e
}
