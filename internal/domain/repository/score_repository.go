package repository

import (
	"context"

	"gamevault/internal/domain/entity"
)

type ScoreRepository interface {
	Create(ctx context.Context, score *entity.ScoreEntry) error
	List(ctx context.Context) ([]*entity.ScoreEntry, error)
}
