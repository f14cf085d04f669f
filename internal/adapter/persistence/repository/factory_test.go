package repository

import (
	"context"
	"path/filepath"
	"testing"

	"nexus_recycle/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStateRepositoryFromConfig(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		repo, err := NewStateRepositoryFromConfig(context.Background(), config.StoreConfig{Driver: "memory"})
		require.NoError(t, err)
		assert.IsType(t, &MemoryStateRepository{}, repo)
	})

	t.Run("sqlite file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nexus.db")
		repo, err := NewStateRepositoryFromConfig(context.Background(), config.StoreConfig{Driver: "sqlite", SQLitePath: path})
		require.NoError(t, err)
		defer repo.Close()
		assert.IsType(t, &SQLiteStateRepository{}, repo)
		require.NoError(t, repo.Migrate(context.Background()))
	})

	t.Run("dynamodb", func(t *testing.T) {
		repo, err := NewStateRepositoryFromConfig(context.Background(), config.StoreConfig{
			Driver:   "dynamodb",
			DynamoDB: config.DynamoDBConfig{Endpoint: "http://localhost:8000", AccessKeyID: "local", SecretAccessKey: "local"},
		})
		require.NoError(t, err)
		assert.IsType(t, &DynamoStateRepository{}, repo)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := NewStateRepositoryFromConfig(context.Background(), config.StoreConfig{Driver: "redis"})
		assert.Error(t, err)
	})
}
