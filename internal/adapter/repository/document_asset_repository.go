package repository

import (
	"context"
	"fmt"

	"gamevault/internal/domain/entity"
	"gamevault/internal/domain/repository"
	"gamevault/pkg/errors"
	"gamevault/pkg/logger"
)

type documentAssetRepository struct {
	store repository.DocumentStore
}

func NewDocumentAssetRepository(store repository.DocumentStore) repository.AssetRepository {
	return &documentAssetRepository{
		store: store,
	}
}

func (r *documentAssetRepository) Create(ctx context.Context, kind entity.AssetKind, asset *entity.Asset) error {
	collection := kind.Collection()
	if collection == "" {
		return errors.Internal(fmt.Sprintf("unknown asset kind %q", kind), nil)
	}

	id, err := r.store.Insert(ctx, collection, asset)
	if err != nil {
		logger.StoreError("insert", collection, err)
		return errors.Storage(fmt.Sprintf("Failed to store %s", kind), err)
	}

	asset.ID = id
	return nil
}

func (r *documentAssetRepository) List(ctx context.Context, kind entity.AssetKind) ([]*entity.Asset, error) {
	collection := kind.Collection()
	if collection == "" {
		return nil, errors.Internal(fmt.Sprintf("unknown asset kind %q", kind), nil)
	}

	records, err := r.store.FindAll(ctx, collection)
	if err != nil {
		logger.StoreError("find", collection, err)
		return nil, errors.Storage(fmt.Sprintf("Failed to list %s", kind), err)
	}

	assets := make([]*entity.Asset, 0, len(records))
	for _, record := range records {
		var asset entity.Asset
		if err := record.Decode(&asset); err != nil {
			logger.StoreError("decode", collection, err)
			return nil, errors.Storage(fmt.Sprintf("Failed to parse %s data", kind), err)
		}
		asset.ID = record.ID()
		assets = append(assets, &asset)
	}

	return assets, nil
}
