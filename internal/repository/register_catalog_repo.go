package repository

import (
	"context"

	"github.com/rutvik18Verticals/ally-xs-api-sub007/internal/domain"
)

// RegisterCatalogRepository reads register definitions and their lookup tables.
// All methods are read-only.
type RegisterCatalogRepository interface {
	// ListStatusRegisters returns the status registers of a device type ordered by address.
	ListStatusRegisters(ctx context.Context, pocType int) ([]domain.StatusRegister, error)

	// ListFacilityTags returns the facility tags of a node ordered by address.
	ListFacilityTags(ctx context.Context, nodeID string) ([]domain.FacilityTag, error)

	// ListParameters returns the parameter catalog rows of pocType plus the
	// domain.PocTypeWildcard rows, ordered by address.
	ListParameters(ctx context.Context, pocType int) ([]domain.Parameter, error)

	// ListParamStandardTypes returns catalog entries keyed by code.
	ListParamStandardTypes(ctx context.Context, codes []int) (map[int]domain.ParamStandardType, error)

	// ListLocalePhrases returns phrase text keyed by phrase id.
	ListLocalePhrases(ctx context.Context, phraseIDs []int) (map[int]string, error)

	// ListStates returns state text keyed by (state id, value).
	ListStates(ctx context.Context, stateIDs []int) (map[domain.StateKey]string, error)
}
