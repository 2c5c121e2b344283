package docstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamevault/pkg/config"
)

func TestOpenMemory(t *testing.T) {
	store, err := Open(context.Background(), Options{URL: "memory://", Mode: config.ConnectionModePerRequest})
	require.NoError(t, err)
	assert.Equal(t, "memory", store.Backend())
	assert.Equal(t, config.ConnectionModePerRequest, store.Mode())

	// per_request sessions on the memory backend share one dataset.
	_, err = store.Insert(context.Background(), "Scores", scoreDoc{PlayerName: "Bob", Score: 1})
	require.NoError(t, err)
	records, err := store.FindAll(context.Background(), "Scores")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestOpenAcceptsEveryConfiguredMode(t *testing.T) {
	for _, mode := range []string{config.ConnectionModePooled, config.ConnectionModePerRequest} {
		cfg := &config.Config{DocumentStoreURL: "memory://", StoreConnectionMode: mode, StoreConnectTimeout: time.Second}
		require.NoError(t, cfg.Validate(), mode)

		store, err := Open(context.Background(), Options{URL: cfg.DocumentStoreURL, Mode: cfg.StoreConnectionMode})
		require.NoError(t, err, mode)
		assert.Equal(t, mode, store.Mode())
		assert.NoError(t, store.Close(context.Background()))
	}
}

func TestOpenRejectsBadURLs(t *testing.T) {
	for _, raw := range []string{"", "localhost:27017", "redis://localhost", "firestore://"} {
		_, err := Open(context.Background(), Options{URL: raw})
		assert.Error(t, err, "url %q", raw)
	}
}

func TestNewConnectorMongo(t *testing.T) {
	c, err := newConnector(Options{URL: "mongodb://user:pw@h1:27017,h2:27018/arcade?replicaSet=rs0", ConnectTimeout: time.Second})
	require.NoError(t, err)
	mc, ok := c.(*mongoConnector)
	require.True(t, ok)
	assert.Equal(t, "arcade", mc.database)

	c, err = newConnector(Options{URL: "mongodb+srv://cluster.example.net/?retryWrites=true", Database: "game_assets"})
	require.NoError(t, err)
	assert.Equal(t, "game_assets", c.(*mongoConnector).database)

	_, err = newConnector(Options{URL: "mongodb://localhost:27017"})
	assert.Error(t, err)
}

func TestNewConnectorFirestore(t *testing.T) {
	c, err := newConnector(Options{URL: "firestore://arcade-prod/leaderboards?credentials=/etc/sa.json"})
	require.NoError(t, err)
	fc, ok := c.(*firestoreConnector)
	require.True(t, ok)
	assert.Equal(t, "arcade-prod", fc.projectID)
	assert.Equal(t, "leaderboards", fc.databaseID)
	assert.Len(t, fc.options, 1)

	c, err = newConnector(Options{URL: "firestore://arcade-prod"})
	require.NoError(t, err)
	assert.Equal(t, defaultFirestoreDatabase, c.(*firestoreConnector).databaseID)
}

func TestDatabaseFromMongoURI(t *testing.T) {
	assert.Equal(t, "game", databaseFromMongoURI("mongodb://localhost/game"))
	assert.Equal(t, "", databaseFromMongoURI("mongodb://localhost"))
	assert.Equal(t, "", databaseFromMongoURI("mongodb://localhost/?w=majority"))
	assert.Equal(t, "my db", databaseFromMongoURI("mongodb://localhost/my%20db"))
}
