package router

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// routeWithAndWithoutSlash registers path as given and with the trailing
// slash toggled, so "/get_scores/" and "/get_scores" reach the same handler.
func routeWithAndWithoutSlash(e *echo.Echo, method, path string, h echo.HandlerFunc) {
	e.Add(method, path, h)

	alternate := strings.TrimSuffix(path, "/")
	if alternate == path {
		alternate = path + "/"
	}
	if alternate != "" {
		e.Add(method, alternate, h)
	}
}
