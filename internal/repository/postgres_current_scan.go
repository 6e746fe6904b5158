package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rutvik18Verticals/ally-xs-api-sub007/internal/domain"
)

// PostgresCurrentScanRepository reads current_raw_scan_data.
type PostgresCurrentScanRepository struct {
	db *sql.DB
}

// NewPostgresCurrentScanRepository creates a CurrentScanRepository backed by db.
func NewPostgresCurrentScanRepository(db *sql.DB) *PostgresCurrentScanRepository {
	return &PostgresCurrentScanRepository{db: db}
}

var _ CurrentScanRepository = (*PostgresCurrentScanRepository)(nil)

func (r *PostgresCurrentScanRepository) ListCurrentScanData(ctx context.Context, nodeID string) ([]domain.CurrentScanValue, error) {
	query := `
		SELECT
			node_id,
			address,
			value,
			string_value,
			date_time_updated
		FROM current_raw_scan_data
		WHERE node_id = $1
		ORDER BY address
	`

	rows, err := r.db.QueryContext(ctx, query, nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query current scan data: %w", err)
	}
	defer rows.Close()

	var out []domain.CurrentScanValue
	for rows.Next() {
		var v domain.CurrentScanValue
		var value sql.NullFloat64
		var stringValue sql.NullString
		var updated sql.NullTime
		if err := rows.Scan(&v.NodeID, &v.Address, &value, &stringValue, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan current scan data: %w", err)
		}
		v.Value = nullFloatPtr(value)
		v.StringValue = nullStringPtr(stringValue)
		v.UpdatedAt = nullTimePtr(updated)
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate current scan data: %w", err)
	}

	return out, nil
}
