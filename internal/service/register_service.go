package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rutvik18Verticals/ally-xs-api-sub007/internal/domain"
	"github.com/rutvik18Verticals/ally-xs-api-sub007/internal/metrics"
	"github.com/rutvik18Verticals/ally-xs-api-sub007/internal/repository"
	"github.com/rutvik18Verticals/ally-xs-api-sub007/internal/units"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RegisterService register data queries for one asset.
type RegisterService interface {
	// GetAssetStatusRegisterData returns the ordered display records of every status
	// register of the asset. A zero asset id returns nil; an unknown asset returns an
	// empty slice.
	GetAssetStatusRegisterData(ctx context.Context, assetID uuid.UUID) ([]domain.RegisterData, error)

	// GetParamStandardData returns the classified register values of the asset,
	// unordered and without de-duplication. Same zero/unknown asset rules.
	GetParamStandardData(ctx context.Context, assetID uuid.UUID) ([]domain.ParamStandardData, error)
}

type registerService struct {
	nodesRepo   repository.NodesRepository
	catalogRepo repository.RegisterCatalogRepository
	selector    *SourceSelector
	converter   units.Converter
	logger      *zap.Logger
}

// NewRegisterService creates the register service.
func NewRegisterService(
	nodesRepo repository.NodesRepository,
	catalogRepo repository.RegisterCatalogRepository,
	selector *SourceSelector,
	converter units.Converter,
	logger *zap.Logger,
) RegisterService {
	return &registerService{
		nodesRepo:   nodesRepo,
		catalogRepo: catalogRepo,
		selector:    selector,
		converter:   converter,
		logger:      logger,
	}
}

// resolveNode returns nil without error when the asset is unknown.
func (s *registerService) resolveNode(ctx context.Context, assetID uuid.UUID) (*domain.Node, error) {
	node, err := s.nodesRepo.GetNodeByAssetID(ctx, assetID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve node for asset %s: %w", assetID, err)
	}
	return node, nil
}

func (s *registerService) GetAssetStatusRegisterData(ctx context.Context, assetID uuid.UUID) (out []domain.RegisterData, err error) {
	if assetID == uuid.Nil {
		return nil, nil
	}

	start := time.Now()
	source := ""
	result := metrics.ResultSuccess
	defer func() {
		if err != nil {
			result = metrics.ResultError
		}
		metrics.ObserveQuery(metrics.QueryStatusRegisters, source, result, len(out), time.Since(start))
	}()

	// 1. device
	node, err := s.resolveNode(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if node == nil {
		result = metrics.ResultNotFound
		return []domain.RegisterData{}, nil
	}

	// 2. definitions and current values
	registers, err := s.catalogRepo.ListStatusRegisters(ctx, node.PocType)
	if err != nil {
		return nil, fmt.Errorf("failed to list status registers: %w", err)
	}
	tags, err := s.catalogRepo.ListFacilityTags(ctx, node.NodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list facility tags: %w", err)
	}
	params, err := s.catalogRepo.ListParameters(ctx, node.PocType)
	if err != nil {
		return nil, fmt.Errorf("failed to list parameters: %w", err)
	}

	provider := s.selector.Select(ctx)
	source = provider.Name()
	values, err := provider.CurrentValues(ctx, *node)
	if err != nil {
		return nil, err
	}

	// 3. lookup tables
	selected := selectParameters(params, node.PocType)
	lookups, err := s.loadLookups(ctx, registers, tags, selected)
	if err != nil {
		return nil, err
	}

	// 4. join, merge, convert
	resolver := &registerResolver{lookups: lookups, converter: s.converter}
	facility := buildFacilityCandidates(tags, lookups)
	candidates := buildParameterCandidates(registers, selected, valuesByAddress(values), lookups)
	rows := mergeByAddress(candidates, facility)

	records := make([]domain.RegisterData, 0, len(rows))
	for _, row := range rows {
		records = append(records, resolver.record(row, node.NodeID))
	}
	records = dedupeRecords(records)
	sortRecords(records)

	s.logger.Debug("Resolved status register data",
		zap.String("asset_id", assetID.String()),
		zap.String("node_id", node.NodeID),
		zap.Int("poc_type", node.PocType),
		zap.String("source", source),
		zap.Int("count", len(records)),
	)
	return records, nil
}

func (s *registerService) GetParamStandardData(ctx context.Context, assetID uuid.UUID) (out []domain.ParamStandardData, err error) {
	if assetID == uuid.Nil {
		return nil, nil
	}

	start := time.Now()
	source := ""
	result := metrics.ResultSuccess
	defer func() {
		if err != nil {
			result = metrics.ResultError
		}
		metrics.ObserveQuery(metrics.QueryParamStandard, source, result, len(out), time.Since(start))
	}()

	node, err := s.resolveNode(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if node == nil {
		result = metrics.ResultNotFound
		return []domain.ParamStandardData{}, nil
	}

	tags, err := s.catalogRepo.ListFacilityTags(ctx, node.NodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list facility tags: %w", err)
	}
	params, err := s.catalogRepo.ListParameters(ctx, node.PocType)
	if err != nil {
		return nil, fmt.Errorf("failed to list parameters: %w", err)
	}

	provider := s.selector.Select(ctx)
	source = provider.Name()
	values, err := provider.CurrentValues(ctx, *node)
	if err != nil {
		return nil, err
	}

	var codes, phraseIDs []int
	for _, tag := range tags {
		codes = appendID(codes, tag.ParamStandardType)
		phraseIDs = appendID(phraseIDs, tag.PhraseID)
	}
	for _, p := range params {
		codes = appendID(codes, p.ParamStandardType)
		phraseIDs = appendID(phraseIDs, p.PhraseID)
	}
	lookups, err := s.loadCatalogAndPhrases(ctx, codes, phraseIDs)
	if err != nil {
		return nil, err
	}

	resolver := &registerResolver{lookups: lookups, converter: s.converter}
	records := make([]domain.ParamStandardData, 0, len(tags)+len(params))

	// (a) every facility tag with its own metadata
	for _, tag := range tags {
		c := FacilityCandidate{Tag: tag, Catalog: lookups.catalogEntry(tag.ParamStandardType)}
		records = append(records, resolver.facilityStandardRecord(*node, c))
	}

	// (b) parameters of the device type or the wildcard type, inner joined to current
	// values
	current := valuesByAddress(values)
	for _, p := range params {
		if p.PocType != node.PocType && p.PocType != domain.PocTypeWildcard {
			continue
		}
		v, ok := current[p.Address]
		if !ok {
			continue
		}
		records = append(records, resolver.parameterStandardRecord(*node, p, v))
	}

	s.logger.Debug("Resolved param standard data",
		zap.String("asset_id", assetID.String()),
		zap.String("node_id", node.NodeID),
		zap.String("source", source),
		zap.Int("count", len(records)),
	)
	return records, nil
}

// loadLookups loads the catalog, phrase and state tables referenced by the request.
func (s *registerService) loadLookups(ctx context.Context, registers []domain.StatusRegister, tags []domain.FacilityTag, params map[int]domain.Parameter) (catalogLookups, error) {
	var codes, phraseIDs, stateIDs []int
	for _, reg := range registers {
		codes = appendID(codes, reg.ParamStandardType)
	}
	for _, tag := range tags {
		codes = appendID(codes, tag.ParamStandardType)
		phraseIDs = appendID(phraseIDs, tag.PhraseID)
		stateIDs = appendID(stateIDs, tag.StateID)
	}
	for _, p := range params {
		codes = appendID(codes, p.ParamStandardType)
		phraseIDs = appendID(phraseIDs, p.PhraseID)
		stateIDs = appendID(stateIDs, p.StateID)
	}

	lookups, err := s.loadCatalogAndPhrases(ctx, codes, phraseIDs)
	if err != nil {
		return catalogLookups{}, err
	}

	lookups.states, err = s.catalogRepo.ListStates(ctx, dedupeIDs(stateIDs))
	if err != nil {
		return catalogLookups{}, fmt.Errorf("failed to list states: %w", err)
	}
	return lookups, nil
}

// loadCatalogAndPhrases loads catalog entries for codes, then every phrase referenced
// by the registers or by those catalog entries.
func (s *registerService) loadCatalogAndPhrases(ctx context.Context, codes, phraseIDs []int) (catalogLookups, error) {
	standardTypes, err := s.catalogRepo.ListParamStandardTypes(ctx, dedupeIDs(codes))
	if err != nil {
		return catalogLookups{}, fmt.Errorf("failed to list param standard types: %w", err)
	}
	for _, e := range standardTypes {
		phraseIDs = appendID(phraseIDs, e.PhraseID)
	}

	phrases, err := s.catalogRepo.ListLocalePhrases(ctx, dedupeIDs(phraseIDs))
	if err != nil {
		return catalogLookups{}, fmt.Errorf("failed to list locale phrases: %w", err)
	}

	return catalogLookups{
		standardTypes: standardTypes,
		phrases:       phrases,
		states:        map[domain.StateKey]string{},
	}, nil
}

func appendID(ids []int, id *int) []int {
	if id == nil {
		return ids
	}
	return append(ids, *id)
}

// dedupeIDs removes repeats and sorts ids.
func dedupeIDs(ids []int) []int {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
