package router

import (
	"net/http"

	"gamevault/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupScoreRouter(e *echo.Echo) {
	scoreHandler := handler.GetScoreHandler()

	routeWithAndWithoutSlash(e, http.MethodPost, "/upload_score/", scoreHandler.SubmitScore)
	routeWithAndWithoutSlash(e, http.MethodGet, "/get_scores/", scoreHandler.ListScores)
}
