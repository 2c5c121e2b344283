package handler

import (
	stderrors "errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"gamevault/internal/domain/entity"
	"gamevault/internal/usecase"
	"gamevault/pkg/errors"
	"gamevault/pkg/logger"
	"gamevault/pkg/response"
)

type AssetHandler struct {
	assetUseCase *usecase.AssetUseCase
}

func NewAssetHandler(assetUseCase *usecase.AssetUseCase) *AssetHandler {
	return &AssetHandler{
		assetUseCase: assetUseCase,
	}
}

type uploadResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// assetSummary is the listed view of an asset. It deliberately has no
// content field.
type assetSummary struct {
	Filename    string `json:"filename"`
	Description string `json:"description"`
}

func (h *AssetHandler) UploadSprite(c echo.Context) error {
	return h.upload(c, entity.AssetKindSprite, "Sprite uploaded")
}

func (h *AssetHandler) UploadAudio(c echo.Context) error {
	return h.upload(c, entity.AssetKindAudio, "Audio uploaded")
}

func (h *AssetHandler) ListSprites(c echo.Context) error {
	return h.list(c, entity.AssetKindSprite, "sprites")
}

func (h *AssetHandler) ListAudio(c echo.Context) error {
	return h.list(c, entity.AssetKindAudio, "audio")
}

func (h *AssetHandler) upload(c echo.Context, kind entity.AssetKind, message string) error {
	policy, err := h.assetUseCase.Policy(kind)
	if err != nil {
		return response.Error(c, err)
	}

	file, err := c.FormFile("file")
	if err != nil {
		if bodyTooLarge(err) {
			logger.Warn("Rejected %s upload: request body over limit: %v", kind, err)
			return response.Error(c, policy.TooLarge())
		}
		logger.Debug("Missing file in %s upload: %v", kind, err)
		return response.Error(c, errors.Validation("file is required", err))
	}

	contentType := file.Header.Get("Content-Type")
	logger.Debug("Received %s: %s, size: %d bytes, type: %s", kind, file.Filename, file.Size, contentType)

	// Reject on the declared header before reading anything.
	if err := policy.CheckDeclared(contentType, file.Size); err != nil {
		logger.Warn("Rejected %s upload %q: %v", kind, file.Filename, err)
		return response.Error(c, err)
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Unable to read file", err))
	}
	defer src.Close()

	// One byte past the ceiling is enough to know the file is too large.
	content, err := io.ReadAll(io.LimitReader(src, policy.MaxBytes+1))
	if err != nil {
		return response.Error(c, errors.BadRequest("Unable to read file", err))
	}

	asset, err := h.assetUseCase.Upload(c.Request().Context(), kind, usecase.UploadAssetInput{
		Filename:    file.Filename,
		ContentType: contentType,
		Content:     content,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, uploadResponse{
		Message: message,
		ID:      asset.ID,
	})
}

func (h *AssetHandler) list(c echo.Context, kind entity.AssetKind, key string) error {
	assets, err := h.assetUseCase.List(c.Request().Context(), kind)
	if err != nil {
		return response.Error(c, err)
	}

	items := make([]assetSummary, 0, len(assets))
	for _, asset := range assets {
		items = append(items, assetSummary{
			Filename:    asset.Filename,
			Description: asset.Description,
		})
	}

	return response.Success(c, map[string]interface{}{
		key: items,
	})
}

// bodyTooLarge reports whether err came from the body limit tripping while
// the form was being parsed. A chunked request has no Content-Length for the
// middleware to reject up front.
func bodyTooLarge(err error) bool {
	if stderrors.Is(err, echo.ErrStatusRequestEntityTooLarge) {
		return true
	}
	var maxErr *http.MaxBytesError
	return stderrors.As(err, &maxErr)
}
