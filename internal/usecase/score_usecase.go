package usecase

import (
	"context"
	"strings"

	"gamevault/internal/domain/entity"
	"gamevault/internal/domain/repository"
	"gamevault/pkg/errors"
	"gamevault/pkg/utils"
)

type ScoreUseCase struct {
	scoreRepo repository.ScoreRepository
}

func NewScoreUseCase(scoreRepo repository.ScoreRepository) *ScoreUseCase {
	return &ScoreUseCase{
		scoreRepo: scoreRepo,
	}
}

type SubmitScoreInput struct {
	PlayerName string
	Score      int64
}

// Submit stores one score. The player name must already have passed request
// validation; it is trimmed and checked again so a caller bypassing the HTTP
// layer cannot write unsafe characters.
func (uc *ScoreUseCase) Submit(ctx context.Context, input SubmitScoreInput) (*entity.ScoreEntry, error) {
	name := strings.TrimSpace(input.PlayerName)
	if name == "" || len(name) > 50 || !utils.IsSafeName(name) {
		return nil, errors.Validation("player_name must be 1-50 letters, digits, spaces or underscores", nil)
	}

	score := &entity.ScoreEntry{
		PlayerName: name,
		Score:      input.Score,
	}

	if err := uc.scoreRepo.Create(ctx, score); err != nil {
		return nil, err
	}

	return score, nil
}

func (uc *ScoreUseCase) List(ctx context.Context) ([]*entity.ScoreEntry, error) {
	return uc.scoreRepo.List(ctx)
}
