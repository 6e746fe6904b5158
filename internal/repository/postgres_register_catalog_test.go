package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rutvik18Verticals/ally-xs-api-sub007/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCatalogMock(t *testing.T) (sqlmock.Sqlmock, *PostgresRegisterCatalogRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return mock, NewPostgresRegisterCatalogRepository(db)
}

func TestListStatusRegisters_Success(t *testing.T) {
	mock, repo := setupCatalogMock(t)

	rows := sqlmock.NewRows([]string{
		"poc_type", "register_address", "format", "display_order", "units", "unit_type", "param_standard_type",
	}).
		AddRow(3, 10, "0.0", 1, "psi", 1, nil).
		AddRow(3, 12, "", nil, "", nil, 9)
	mock.ExpectQuery(`FROM status_registers`).
		WithArgs(3).
		WillReturnRows(rows)

	regs, err := repo.ListStatusRegisters(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, regs, 2)
	assert.Equal(t, 10, regs[0].Address)
	assert.Equal(t, "0.0", regs[0].Format)
	require.NotNil(t, regs[0].Order)
	assert.Equal(t, 1, *regs[0].Order)
	require.NotNil(t, regs[0].UnitType)
	assert.Equal(t, 1, *regs[0].UnitType)
	assert.Nil(t, regs[0].ParamStandardType)

	assert.Nil(t, regs[1].Order)
	require.NotNil(t, regs[1].ParamStandardType)
	assert.Equal(t, 9, *regs[1].ParamStandardType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListFacilityTags_Success(t *testing.T) {
	mock, repo := setupCatalogMock(t)
	updated := time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"node_id", "address", "description", "phrase_id", "param_standard_type", "unit_type",
		"eng_units", "state_id", "data_type", "decimals", "value", "string_value", "last_update",
	}).
		AddRow("Well 12-7", 10, "Header Pressure", nil, 1, 1, "psi", nil, 2, 1, 98.6, nil, updated).
		AddRow("Well 12-7", 40, "Lease Name", 5001, nil, nil, "", nil, 3, nil, nil, nil, nil)
	mock.ExpectQuery(`FROM facility_tags`).
		WithArgs("Well 12-7").
		WillReturnRows(rows)

	tags, err := repo.ListFacilityTags(context.Background(), "Well 12-7")

	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "Header Pressure", tags[0].Description)
	require.NotNil(t, tags[0].Value)
	assert.Equal(t, 98.6, *tags[0].Value)
	require.NotNil(t, tags[0].LastUpdate)
	assert.Equal(t, "psi", tags[0].EngUnits)

	require.NotNil(t, tags[1].PhraseID)
	assert.Equal(t, 5001, *tags[1].PhraseID)
	assert.Nil(t, tags[1].Value)
	assert.Nil(t, tags[1].StringValue)
	require.NotNil(t, tags[1].DataType)
	assert.Equal(t, domain.DataTypeString, *tags[1].DataType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListParameters_IncludesWildcard(t *testing.T) {
	mock, repo := setupCatalogMock(t)

	rows := sqlmock.NewRows([]string{
		"poc_type", "address", "description", "phrase_id", "param_standard_type", "state_id", "data_type", "decimals",
	}).
		AddRow(3, 10, "Tubing Pressure", nil, 1, nil, 2, 1).
		AddRow(99, 20, "Run Status", 7001, 22, 4, 1, nil)
	mock.ExpectQuery(`FROM parameters`).
		WithArgs(3, domain.PocTypeWildcard).
		WillReturnRows(rows)

	params, err := repo.ListParameters(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, params, 2)
	assert.Equal(t, 3, params[0].PocType)
	assert.Equal(t, domain.PocTypeWildcard, params[1].PocType)
	require.NotNil(t, params[1].StateID)
	assert.Equal(t, 4, *params[1].StateID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListParamStandardTypes(t *testing.T) {
	mock, repo := setupCatalogMock(t)

	rows := sqlmock.NewRows([]string{"param_standard_type", "description", "phrase_id", "unit_type_id"}).
		AddRow(1, "Tubing Pressure", 300, 1).
		AddRow(22, "Run Status", nil, nil)
	mock.ExpectQuery(`FROM param_standard_types`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(rows)

	catalog, err := repo.ListParamStandardTypes(context.Background(), []int{1, 22})

	require.NoError(t, err)
	require.Len(t, catalog, 2)
	require.NotNil(t, catalog[1].UnitTypeID)
	assert.Equal(t, 1, *catalog[1].UnitTypeID)
	assert.Nil(t, catalog[22].PhraseID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListLookups_EmptyIDsSkipQuery(t *testing.T) {
	mock, repo := setupCatalogMock(t)
	ctx := context.Background()

	catalog, err := repo.ListParamStandardTypes(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, catalog)

	phrases, err := repo.ListLocalePhrases(ctx, []int{})
	require.NoError(t, err)
	assert.Empty(t, phrases)

	states, err := repo.ListStates(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, states)

	// no query may have been issued
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListLocalePhrases(t *testing.T) {
	mock, repo := setupCatalogMock(t)

	rows := sqlmock.NewRows([]string{"phrase_id", "english"}).
		AddRow(300, "Tubing Pressure").
		AddRow(5001, "Lease")
	mock.ExpectQuery(`FROM locale_phrases`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(rows)

	phrases, err := repo.ListLocalePhrases(context.Background(), []int{300, 5001})

	require.NoError(t, err)
	assert.Equal(t, map[int]string{300: "Tubing Pressure", 5001: "Lease"}, phrases)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListStates(t *testing.T) {
	mock, repo := setupCatalogMock(t)

	rows := sqlmock.NewRows([]string{"state_id", "value", "text"}).
		AddRow(4, 0, "Stopped").
		AddRow(4, 1, "Running")
	mock.ExpectQuery(`FROM states`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(rows)

	states, err := repo.ListStates(context.Background(), []int{4})

	require.NoError(t, err)
	assert.Equal(t, "Running", states[domain.StateKey{StateID: 4, Value: 1}])
	assert.Equal(t, "Stopped", states[domain.StateKey{StateID: 4, Value: 0}])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListStatusRegisters_ScanError(t *testing.T) {
	mock, repo := setupCatalogMock(t)

	rows := sqlmock.NewRows([]string{
		"poc_type", "register_address", "format", "display_order", "units", "unit_type", "param_standard_type",
	}).
		AddRow(3, "not-an-address", "", nil, "", nil, nil)
	mock.ExpectQuery(`FROM status_registers`).
		WithArgs(3).
		WillReturnRows(rows)

	_, err := repo.ListStatusRegisters(context.Background(), 3)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to scan status register")
}

func TestListFacilityTags_QueryError(t *testing.T) {
	mock, repo := setupCatalogMock(t)

	mock.ExpectQuery(`FROM facility_tags`).
		WithArgs("Well 12-7").
		WillReturnError(errors.New("relation \"facility_tags\" does not exist"))

	_, err := repo.ListFacilityTags(context.Background(), "Well 12-7")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query facility tags")
	assert.NoError(t, mock.ExpectationsWereMet())
}
