package usecase

import (
	"context"
	"encoding/base64"

	"gamevault/internal/domain/entity"
	"gamevault/internal/domain/repository"
	"gamevault/internal/domain/service"
	"gamevault/pkg/errors"
	"gamevault/pkg/logger"
	"gamevault/pkg/utils"
)

type AssetUseCase struct {
	assetRepo       repository.AssetRepository
	verifySignature bool
}

func NewAssetUseCase(assetRepo repository.AssetRepository, verifySignature bool) *AssetUseCase {
	return &AssetUseCase{
		assetRepo:       assetRepo,
		verifySignature: verifySignature,
	}
}

type UploadAssetInput struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Policy returns the validation rules applied to uploads of kind.
func (uc *AssetUseCase) Policy(kind entity.AssetKind) (service.AssetPolicy, error) {
	return service.PolicyFor(kind, uc.verifySignature)
}

// Upload validates, sanitizes and encodes one file, then stores it as a
// single document. Nothing is written when validation fails.
func (uc *AssetUseCase) Upload(ctx context.Context, kind entity.AssetKind, input UploadAssetInput) (*entity.Asset, error) {
	policy, err := uc.Policy(kind)
	if err != nil {
		return nil, err
	}

	if err := policy.Check(input.ContentType, input.Content); err != nil {
		logger.Warn("Rejected %s upload %q: %v", kind, input.Filename, err)
		return nil, err
	}

	filename := utils.SanitizeName(input.Filename)
	if filename == "" {
		return nil, errors.BadRequest("Filename contains no usable characters", nil)
	}

	asset := &entity.Asset{
		Filename:    filename,
		Content:     base64.StdEncoding.EncodeToString(input.Content),
		Description: kind.Description(),
	}

	if err := uc.assetRepo.Create(ctx, kind, asset); err != nil {
		return nil, err
	}

	logger.Debug("Stored %s %s as %q (%d bytes)", kind, asset.ID, asset.Filename, len(input.Content))
	return asset, nil
}

func (uc *AssetUseCase) List(ctx context.Context, kind entity.AssetKind) ([]*entity.Asset, error) {
	if !kind.Valid() {
		return nil, errors.Internal("unknown asset kind", nil)
	}
	return uc.assetRepo.List(ctx, kind)
}
