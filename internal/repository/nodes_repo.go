package repository

import (
	"context"

	"github.com/rutvik18Verticals/ally-xs-api-sub007/internal/domain"

	"github.com/google/uuid"
)

// NodesRepository resolves devices registered in node_master.
type NodesRepository interface {
	// GetNodeByAssetID returns the node bound to assetID, or an error wrapping ErrNotFound.
	GetNodeByAssetID(ctx context.Context, assetID uuid.UUID) (*domain.Node, error)
}
