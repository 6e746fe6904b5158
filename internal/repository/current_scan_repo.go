package repository

import (
	"context"

	"github.com/rutvik18Verticals/ally-xs-api-sub007/internal/domain"
)

// CurrentScanRepository reads the latest scanned register values (current_raw_scan_data).
type CurrentScanRepository interface {
	ListCurrentScanData(ctx context.Context, nodeID string) ([]domain.CurrentScanValue, error)
}
