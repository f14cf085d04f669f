package interfaces

import (
	"context"
	"nexus_recycle/internal/domain/entities"
)

// IBuyerDirectory lists recycling buyers near a position.
// An empty material means any material.
type IBuyerDirectory interface {
	FindBuyers(ctx context.Context, near entities.Coordinates, material string) ([]entities.BuyerListing, error)
}
