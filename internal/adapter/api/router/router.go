package router

import (
	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo) {
	SetupAssetRouter(e)
	SetupScoreRouter(e)
	SetupHealthRouter(e)
}
