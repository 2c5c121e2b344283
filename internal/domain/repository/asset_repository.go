package repository

import (
	"context"

	"gamevault/internal/domain/entity"
)

type AssetRepository interface {
	Create(ctx context.Context, kind entity.AssetKind, asset *entity.Asset) error
	List(ctx context.Context, kind entity.AssetKind) ([]*entity.Asset, error)
}
