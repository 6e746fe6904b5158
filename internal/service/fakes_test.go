package service

import (
	"context"

	"github.com/rutvik18Verticals/ally-xs-api-sub007/internal/domain"
	"github.com/rutvik18Verticals/ally-xs-api-sub007/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockNodesRepository NodesRepository mock.
type MockNodesRepository struct {
	mock.Mock
}

func (m *MockNodesRepository) GetNodeByAssetID(ctx context.Context, assetID uuid.UUID) (*domain.Node, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Node), args.Error(1)
}

// MockTimeSeriesReader TimeSeriesReader mock.
type MockTimeSeriesReader struct {
	mock.Mock
}

func (m *MockTimeSeriesReader) GetCurrentRawScanData(ctx context.Context, nodeID string, assetID uuid.UUID, customerID string) ([]domain.CurrentScanValue, error) {
	args := m.Called(ctx, nodeID, assetID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrentScanValue), args.Error(1)
}

// fakeCatalog in-memory RegisterCatalogRepository filtering like the SQL queries.
type fakeCatalog struct {
	registers     []domain.StatusRegister
	tags          []domain.FacilityTag
	params        []domain.Parameter
	standardTypes []domain.ParamStandardType
	phrases       map[int]string
	states        map[domain.StateKey]string

	// failOn names the method that returns err
	failOn string
	err    error
}

var _ repository.RegisterCatalogRepository = (*fakeCatalog)(nil)

func (f *fakeCatalog) fail(method string) error {
	if f.failOn == method {
		return f.err
	}
	return nil
}

func (f *fakeCatalog) ListStatusRegisters(ctx context.Context, pocType int) ([]domain.StatusRegister, error) {
	if err := f.fail("ListStatusRegisters"); err != nil {
		return nil, err
	}
	var out []domain.StatusRegister
	for _, r := range f.registers {
		if r.PocType == pocType {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeCatalog) ListFacilityTags(ctx context.Context, nodeID string) ([]domain.FacilityTag, error) {
	if err := f.fail("ListFacilityTags"); err != nil {
		return nil, err
	}
	var out []domain.FacilityTag
	for _, t := range f.tags {
		if t.NodeID == nodeID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeCatalog) ListParameters(ctx context.Context, pocType int) ([]domain.Parameter, error) {
	if err := f.fail("ListParameters"); err != nil {
		return nil, err
	}
	var out []domain.Parameter
	for _, p := range f.params {
		if p.PocType == pocType || p.PocType == domain.PocTypeWildcard {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeCatalog) ListParamStandardTypes(ctx context.Context, codes []int) (map[int]domain.ParamStandardType, error) {
	if err := f.fail("ListParamStandardTypes"); err != nil {
		return nil, err
	}
	out := make(map[int]domain.ParamStandardType)
	for _, code := range codes {
		for _, e := range f.standardTypes {
			if e.Code == code {
				out[code] = e
			}
		}
	}
	return out, nil
}

func (f *fakeCatalog) ListLocalePhrases(ctx context.Context, phraseIDs []int) (map[int]string, error) {
	if err := f.fail("ListLocalePhrases"); err != nil {
		return nil, err
	}
	out := make(map[int]string)
	for _, id := range phraseIDs {
		if text, ok := f.phrases[id]; ok {
			out[id] = text
		}
	}
	return out, nil
}

func (f *fakeCatalog) ListStates(ctx context.Context, stateIDs []int) (map[domain.StateKey]string, error) {
	if err := f.fail("ListStates"); err != nil {
		return nil, err
	}
	wanted := make(map[int]bool, len(stateIDs))
	for _, id := range stateIDs {
		wanted[id] = true
	}
	out := make(map[domain.StateKey]string)
	for k, v := range f.states {
		if wanted[k.StateID] {
			out[k] = v
		}
	}
	return out, nil
}

// fakeCurrentScan in-memory CurrentScanRepository.
type fakeCurrentScan struct {
	values map[string][]domain.CurrentScanValue
	err    error
	calls  int
}

func (f *fakeCurrentScan) ListCurrentScanData(ctx context.Context, nodeID string) ([]domain.CurrentScanValue, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.values[nodeID], nil
}

// toggleFlags Flags whose value the test flips.
type toggleFlags struct {
	influx bool
}

func (f *toggleFlags) EnableInflux(context.Context) bool { return f.influx }

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }
