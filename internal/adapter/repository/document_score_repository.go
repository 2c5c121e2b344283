package repository

import (
	"context"

	"gamevault/internal/domain/entity"
	"gamevault/internal/domain/repository"
	"gamevault/pkg/errors"
	"gamevault/pkg/logger"
)

type documentScoreRepository struct {
	store repository.DocumentStore
}

func NewDocumentScoreRepository(store repository.DocumentStore) repository.ScoreRepository {
	return &documentScoreRepository{
		store: store,
	}
}

func (r *documentScoreRepository) Create(ctx context.Context, score *entity.ScoreEntry) error {
	id, err := r.store.Insert(ctx, entity.ScoreCollection, score)
	if err != nil {
		logger.StoreError("insert", entity.ScoreCollection, err)
		return errors.Storage("Failed to record score", err)
	}

	score.ID = id
	return nil
}

func (r *documentScoreRepository) List(ctx context.Context) ([]*entity.ScoreEntry, error) {
	records, err := r.store.FindAll(ctx, entity.ScoreCollection)
	if err != nil {
		logger.StoreError("find", entity.ScoreCollection, err)
		return nil, errors.Storage("Failed to list scores", err)
	}

	scores := make([]*entity.ScoreEntry, 0, len(records))
	for _, record := range records {
		var score entity.ScoreEntry
		if err := record.Decode(&score); err != nil {
			logger.StoreError("decode", entity.ScoreCollection, err)
			return nil, errors.Storage("Failed to parse score data", err)
		}
		score.ID = record.ID()
		scores = append(scores, &score)
	}

	return scores, nil
}
