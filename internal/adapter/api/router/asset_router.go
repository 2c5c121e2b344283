package router

import (
	"net/http"

	"gamevault/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupAssetRouter(e *echo.Echo) {
	assetHandler := handler.GetAssetHandler()

	routeWithAndWithoutSlash(e, http.MethodPost, "/upload_sprite/", assetHandler.UploadSprite)
	routeWithAndWithoutSlash(e, http.MethodPost, "/upload_audio/", assetHandler.UploadAudio)

	routeWithAndWithoutSlash(e, http.MethodGet, "/get_sprites/", assetHandler.ListSprites)
	routeWithAndWithoutSlash(e, http.MethodGet, "/get_audio/", assetHandler.ListAudio)
}
