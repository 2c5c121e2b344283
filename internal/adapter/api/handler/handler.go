package handler

import (
	"gamevault/internal/domain/repository"
	"gamevault/internal/usecase"
)

var (
	assetHandler  *AssetHandler
	scoreHandler  *ScoreHandler
	healthHandler *HealthHandler
)

func Setup(
	assetUseCase *usecase.AssetUseCase,
	scoreUseCase *usecase.ScoreUseCase,
	store repository.DocumentStore,
) {
	assetHandler = NewAssetHandler(assetUseCase)
	scoreHandler = NewScoreHandler(scoreUseCase)
	healthHandler = NewHealthHandler(store)
}

func GetAssetHandler() *AssetHandler {
	return assetHandler
}

func GetScoreHandler() *ScoreHandler {
	return scoreHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
