package repository

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamevault/internal/domain/entity"
	domainrepo "gamevault/internal/domain/repository"
	"gamevault/internal/infrastructure/docstore"
	apperrors "gamevault/pkg/errors"
	"gamevault/pkg/logger"
)

type brokenStore struct{}

func (brokenStore) Insert(context.Context, string, interface{}) (string, error) {
	return "", errors.New("connection reset")
}

func (brokenStore) FindAll(context.Context, string) ([]domainrepo.Record, error) {
	return nil, errors.New("connection reset")
}

func (brokenStore) Ping(context.Context) error  { return errors.New("connection reset") }
func (brokenStore) Close(context.Context) error { return nil }

type undecodableRecord struct{}

func (undecodableRecord) ID() string               { return "x" }
func (undecodableRecord) Decode(interface{}) error { return errors.New("bad bson") }

type undecodableStore struct{ brokenStore }

func (undecodableStore) FindAll(context.Context, string) ([]domainrepo.Record, error) {
	return []domainrepo.Record{undecodableRecord{}}, nil
}

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	m.Run()
}

func TestAssetRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewDocumentAssetRepository(docstore.NewMemoryStore())

	sprite := &entity.Asset{Filename: "hero", Content: "aGVybw==", Description: entity.SpriteDescription}
	require.NoError(t, repo.Create(ctx, entity.AssetKindSprite, sprite))
	assert.NotEmpty(t, sprite.ID)

	sprites, err := repo.List(ctx, entity.AssetKindSprite)
	require.NoError(t, err)
	require.Len(t, sprites, 1)
	assert.Equal(t, sprite.ID, sprites[0].ID)
	assert.Equal(t, "hero", sprites[0].Filename)
	assert.Equal(t, "aGVybw==", sprites[0].Content)

	// Kinds are kept in separate collections.
	audio, err := repo.List(ctx, entity.AssetKindAudio)
	require.NoError(t, err)
	assert.Empty(t, audio)
}

func TestAssetRepositoryUnknownKind(t *testing.T) {
	repo := NewDocumentAssetRepository(docstore.NewMemoryStore())
	err := repo.Create(context.Background(), entity.AssetKind("video"), &entity.Asset{})
	assert.True(t, apperrors.Is(err, apperrors.CodeInternal))
}

func TestAssetRepositoryStorageFailure(t *testing.T) {
	repo := NewDocumentAssetRepository(brokenStore{})

	err := repo.Create(context.Background(), entity.AssetKindAudio, &entity.Asset{})
	assert.True(t, apperrors.IsStorage(err))

	_, err = repo.List(context.Background(), entity.AssetKindAudio)
	assert.True(t, apperrors.IsStorage(err))

	_, err = NewDocumentAssetRepository(undecodableStore{}).List(context.Background(), entity.AssetKindSprite)
	assert.True(t, apperrors.IsStorage(err))
}

func TestScoreRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewDocumentScoreRepository(docstore.NewMemoryStore())

	entry := &entity.ScoreEntry{PlayerName: "Bob", Score: 42}
	require.NoError(t, repo.Create(ctx, entry))
	require.NoError(t, repo.Create(ctx, &entity.ScoreEntry{PlayerName: "Bob", Score: -7}))

	scores, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Equal(t, entry.ID, scores[0].ID)
	assert.Equal(t, int64(42), scores[0].Score)
	assert.Equal(t, int64(-7), scores[1].Score)
}

func TestScoreRepositoryStorageFailure(t *testing.T) {
	repo := NewDocumentScoreRepository(brokenStore{})

	assert.True(t, apperrors.IsStorage(repo.Create(context.Background(), &entity.ScoreEntry{})))
	_, err := repo.List(context.Background())
	assert.True(t, apperrors.IsStorage(err))

	_, err = NewDocumentScoreRepository(undecodableStore{}).List(context.Background())
	assert.True(t, apperrors.IsStorage(err))
}
