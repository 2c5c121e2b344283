package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gamevault/internal/adapter/api"
	"gamevault/internal/adapter/api/handler"
	"gamevault/internal/adapter/repository"
	"gamevault/internal/infrastructure/docstore"
	"gamevault/internal/usecase"
	"gamevault/pkg/config"
	"gamevault/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Configure(cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := docstore.Open(ctx, docstore.Options{
		URL:            cfg.DocumentStoreURL,
		Database:       cfg.StoreDatabase,
		Mode:           cfg.StoreConnectionMode,
		ConnectTimeout: cfg.StoreConnectTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to open document store: %v", err)
	}

	assetRepo := repository.NewDocumentAssetRepository(store)
	scoreRepo := repository.NewDocumentScoreRepository(store)

	assetUseCase := usecase.NewAssetUseCase(assetRepo, cfg.VerifyContentSignature)
	scoreUseCase := usecase.NewScoreUseCase(scoreRepo)

	handler.Setup(assetUseCase, scoreUseCase, store)

	e := api.NewServer(api.ServerOptions{
		MaxRequestBody: cfg.MaxRequestBody,
		AccessLog:      true,
	})

	go func() {
		logger.Info("Starting server on port %s (store: %s, mode: %s)", cfg.ServerPort, store.Backend(), store.Mode())
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down HTTP server: %v", err)
	}
	if err := store.Close(shutdownCtx); err != nil {
		logger.Error("Failed to close document store: %v", err)
	}
}
