package interfaces

import (
	"context"
	"nexus_recycle/internal/domain/entities"
)

// IVisionAnalyzer identifies materials and per-material weights in a waste photo.
type IVisionAnalyzer interface {
	Analyze(ctx context.Context, image []byte, mimeType string) (entities.ScanResult, error)
}
