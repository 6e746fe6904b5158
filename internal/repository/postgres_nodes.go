package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rutvik18Verticals/ally-xs-api-sub007/internal/domain"

	"github.com/google/uuid"
)

// PostgresNodesRepository reads node_master.
type PostgresNodesRepository struct {
	db *sql.DB
}

// NewPostgresNodesRepository creates a NodesRepository backed by db.
func NewPostgresNodesRepository(db *sql.DB) *PostgresNodesRepository {
	return &PostgresNodesRepository{db: db}
}

var _ NodesRepository = (*PostgresNodesRepository)(nil)

func (r *PostgresNodesRepository) GetNodeByAssetID(ctx context.Context, assetID uuid.UUID) (*domain.Node, error) {
	query := `
		SELECT
			node_id,
			asset_guid::text,
			poc_type,
			COALESCE(customer_guid::text, '')
		FROM node_master
		WHERE asset_guid = $1
		LIMIT 1
	`

	var node domain.Node
	var assetGUID string
	err := r.db.QueryRowContext(ctx, query, assetID.String()).Scan(
		&node.NodeID,
		&assetGUID,
		&node.PocType,
		&node.CustomerID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("node not found: asset_guid=%s: %w", assetID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get node: %w", err)
	}

	node.AssetID, err = uuid.Parse(assetGUID)
	if err != nil {
		return nil, fmt.Errorf("invalid asset_guid %q for node %s: %w", assetGUID, node.NodeID, err)
	}

	return &node, nil
}
