package repository

import (
	"context"

	"nexus_recycle/internal/config"
	"nexus_recycle/internal/infrastructure/database"
	"nexus_recycle/internal/usecase/interfaces"

	"github.com/rotisserie/eris"
)

// NewStateRepositoryFromConfig opens the storage driver selected by cfg.Driver.
func NewStateRepositoryFromConfig(ctx context.Context, cfg config.StoreConfig) (interfaces.IStateRepository, error) {
	switch cfg.Driver {
	case "sqlite":
		path := cfg.SQLitePath
		if path == "" {
			path = "nexus.db"
		}
		db, err := database.OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return NewSQLiteStateRepository(db), nil
	case "postgres":
		pool, err := database.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return NewPostgresStateRepository(pool, pool.Close), nil
	case "dynamodb":
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, err
		}
		return NewDynamoStateRepository(ddb, cfg.DynamoDB.Table), nil
	case "memory":
		return NewMemoryStateRepository(), nil
	default:
		return nil, eris.Errorf("unknown store driver: %s", cfg.Driver)
	}
}
