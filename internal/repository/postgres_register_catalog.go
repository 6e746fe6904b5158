package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rutvik18Verticals/ally-xs-api-sub007/internal/domain"

	"github.com/lib/pq"
)

// PostgresRegisterCatalogRepository reads status_registers, facility_tags, parameters,
// param_standard_types, locale_phrases and states.
type PostgresRegisterCatalogRepository struct {
	db *sql.DB
}

// NewPostgresRegisterCatalogRepository creates a RegisterCatalogRepository backed by db.
func NewPostgresRegisterCatalogRepository(db *sql.DB) *PostgresRegisterCatalogRepository {
	return &PostgresRegisterCatalogRepository{db: db}
}

var _ RegisterCatalogRepository = (*PostgresRegisterCatalogRepository)(nil)

func (r *PostgresRegisterCatalogRepository) ListStatusRegisters(ctx context.Context, pocType int) ([]domain.StatusRegister, error) {
	query := `
		SELECT
			poc_type,
			register_address,
			COALESCE(format, ''),
			display_order,
			COALESCE(units, ''),
			unit_type,
			param_standard_type
		FROM status_registers
		WHERE poc_type = $1
		ORDER BY register_address
	`

	rows, err := r.db.QueryContext(ctx, query, pocType)
	if err != nil {
		return nil, fmt.Errorf("failed to query status registers: %w", err)
	}
	defer rows.Close()

	var out []domain.StatusRegister
	for rows.Next() {
		var sr domain.StatusRegister
		var order, unitType, pst sql.NullInt64
		if err := rows.Scan(&sr.PocType, &sr.Address, &sr.Format, &order, &sr.Units, &unitType, &pst); err != nil {
			return nil, fmt.Errorf("failed to scan status register: %w", err)
		}
		sr.Order = nullIntPtr(order)
		sr.UnitType = nullIntPtr(unitType)
		sr.ParamStandardType = nullIntPtr(pst)
		out = append(out, sr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate status registers: %w", err)
	}
	return out, nil
}

func (r *PostgresRegisterCatalogRepository) ListFacilityTags(ctx context.Context, nodeID string) ([]domain.FacilityTag, error) {
	query := `
		SELECT
			node_id,
			address,
			COALESCE(description, ''),
			phrase_id,
			param_standard_type,
			unit_type,
			COALESCE(eng_units, ''),
			state_id,
			data_type,
			decimals,
			value,
			string_value,
			last_update
		FROM facility_tags
		WHERE node_id = $1
		ORDER BY address
	`

	rows, err := r.db.QueryContext(ctx, query, nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query facility tags: %w", err)
	}
	defer rows.Close()

	var out []domain.FacilityTag
	for rows.Next() {
		var ft domain.FacilityTag
		var phraseID, pst, unitType, stateID, dataType, decimals sql.NullInt64
		var value sql.NullFloat64
		var stringValue sql.NullString
		var lastUpdate sql.NullTime
		err := rows.Scan(
			&ft.NodeID,
			&ft.Address,
			&ft.Description,
			&phraseID,
			&pst,
			&unitType,
			&ft.EngUnits,
			&stateID,
			&dataType,
			&decimals,
			&value,
			&stringValue,
			&lastUpdate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan facility tag: %w", err)
		}
		ft.PhraseID = nullIntPtr(phraseID)
		ft.ParamStandardType = nullIntPtr(pst)
		ft.UnitType = nullIntPtr(unitType)
		ft.StateID = nullIntPtr(stateID)
		ft.DataType = nullIntPtr(dataType)
		ft.Decimals = nullIntPtr(decimals)
		ft.Value = nullFloatPtr(value)
		ft.StringValue = nullStringPtr(stringValue)
		ft.LastUpdate = nullTimePtr(lastUpdate)
		out = append(out, ft)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate facility tags: %w", err)
	}
	return out, nil
}

func (r *PostgresRegisterCatalogRepository) ListParameters(ctx context.Context, pocType int) ([]domain.Parameter, error) {
	query := `
		SELECT
			poc_type,
			address,
			COALESCE(description, ''),
			phrase_id,
			param_standard_type,
			state_id,
			data_type,
			decimals
		FROM parameters
		WHERE poc_type = $1 OR poc_type = $2
		ORDER BY address, poc_type
	`

	rows, err := r.db.QueryContext(ctx, query, pocType, domain.PocTypeWildcard)
	if err != nil {
		return nil, fmt.Errorf("failed to query parameters: %w", err)
	}
	defer rows.Close()

	var out []domain.Parameter
	for rows.Next() {
		var p domain.Parameter
		var phraseID, pst, stateID, dataType, decimals sql.NullInt64
		if err := rows.Scan(&p.PocType, &p.Address, &p.Description, &phraseID, &pst, &stateID, &dataType, &decimals); err != nil {
			return nil, fmt.Errorf("failed to scan parameter: %w", err)
		}
		p.PhraseID = nullIntPtr(phraseID)
		p.ParamStandardType = nullIntPtr(pst)
		p.StateID = nullIntPtr(stateID)
		p.DataType = nullIntPtr(dataType)
		p.Decimals = nullIntPtr(decimals)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate parameters: %w", err)
	}
	return out, nil
}

func (r *PostgresRegisterCatalogRepository) ListParamStandardTypes(ctx context.Context, codes []int) (map[int]domain.ParamStandardType, error) {
	out := make(map[int]domain.ParamStandardType)
	if len(codes) == 0 {
		return out, nil
	}

	query := `
		SELECT
			param_standard_type,
			COALESCE(description, ''),
			phrase_id,
			unit_type_id
		FROM param_standard_types
		WHERE param_standard_type = ANY($1)
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(toInt64s(codes)))
	if err != nil {
		return nil, fmt.Errorf("failed to query param standard types: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var pst domain.ParamStandardType
		var phraseID, unitTypeID sql.NullInt64
		if err := rows.Scan(&pst.Code, &pst.Description, &phraseID, &unitTypeID); err != nil {
			return nil, fmt.Errorf("failed to scan param standard type: %w", err)
		}
		pst.PhraseID = nullIntPtr(phraseID)
		pst.UnitTypeID = nullIntPtr(unitTypeID)
		out[pst.Code] = pst
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate param standard types: %w", err)
	}
	return out, nil
}

func (r *PostgresRegisterCatalogRepository) ListLocalePhrases(ctx context.Context, phraseIDs []int) (map[int]string, error) {
	out := make(map[int]string)
	if len(phraseIDs) == 0 {
		return out, nil
	}

	query := `
		SELECT phrase_id, COALESCE(english, '')
		FROM locale_phrases
		WHERE phrase_id = ANY($1)
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(toInt64s(phraseIDs)))
	if err != nil {
		return nil, fmt.Errorf("failed to query locale phrases: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		var text string
		if err := rows.Scan(&id, &text); err != nil {
			return nil, fmt.Errorf("failed to scan locale phrase: %w", err)
		}
		out[id] = text
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate locale phrases: %w", err)
	}
	return out, nil
}

func (r *PostgresRegisterCatalogRepository) ListStates(ctx context.Context, stateIDs []int) (map[domain.StateKey]string, error) {
	out := make(map[domain.StateKey]string)
	if len(stateIDs) == 0 {
		return out, nil
	}

	query := `
		SELECT state_id, value, COALESCE(text, '')
		FROM states
		WHERE state_id = ANY($1)
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(toInt64s(stateIDs)))
	if err != nil {
		return nil, fmt.Errorf("failed to query states: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key domain.StateKey
		var text string
		if err := rows.Scan(&key.StateID, &key.Value, &text); err != nil {
			return nil, fmt.Errorf("failed to scan state: %w", err)
		}
		out[key] = text
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate states: %w", err)
	}
	return out, nil
}
