package interfaces

import (
	"context"
	"nexus_recycle/internal/domain/entities"
)

type ITradeEventPublisher interface {
	PublishTradeCompleted(ctx context.Context, tx entities.Transaction) error
}
