package domain

import "time"

// Data type codes shared by facility tags and parameters.
const (
	DataTypeInteger = 1
	DataTypeFloat   = 2
	DataTypeString  = 3
	DataTypeBoolean = 4
)

// StatusRegister display definition of a register for one device type (status_registers table).
type StatusRegister struct {
	PocType           int    `db:"poc_type"`            // SMALLINT, NOT NULL
	Address           int    `db:"register_address"`    // INTEGER, NOT NULL
	Format            string `db:"format"`              // VARCHAR, nullable
	Order             *int   `db:"display_order"`       // INTEGER, nullable
	Units             string `db:"units"`               // VARCHAR, nullable
	UnitType          *int   `db:"unit_type"`           // INTEGER, nullable
	ParamStandardType *int   `db:"param_standard_type"` // INTEGER, nullable
}

// FacilityTag site specific tag of one node (facility_tags table).
// A tag carries its own live value; no scan lookup is needed.
type FacilityTag struct {
	NodeID            string     `db:"node_id"`
	Address           int        `db:"address"`
	Description       string     `db:"description"`
	PhraseID          *int       `db:"phrase_id"`
	ParamStandardType *int       `db:"param_standard_type"`
	UnitType          *int       `db:"unit_type"`
	EngUnits          string     `db:"eng_units"`
	StateID           *int       `db:"state_id"`
	DataType          *int       `db:"data_type"`
	Decimals          *int       `db:"decimals"`
	Value             *float64   `db:"value"`
	StringValue       *string    `db:"string_value"`
	LastUpdate        *time.Time `db:"last_update"`
}

// Parameter generic register catalog entry for a device type (parameters table).
// PocType may be PocTypeWildcard.
type Parameter struct {
	PocType           int    `db:"poc_type"`
	Address           int    `db:"address"`
	Description       string `db:"description"`
	PhraseID          *int   `db:"phrase_id"`
	ParamStandardType *int   `db:"param_standard_type"`
	StateID           *int   `db:"state_id"`
	DataType          *int   `db:"data_type"`
	Decimals          *int   `db:"decimals"`
}

// ParamStandardType classification catalog entry (param_standard_types table).
type ParamStandardType struct {
	Code        int    `db:"param_standard_type"`
	Description string `db:"description"`
	PhraseID    *int   `db:"phrase_id"`
	UnitTypeID  *int   `db:"unit_type_id"`
}

// StateKey identifies a discrete state text (states table).
type StateKey struct {
	StateID int
	Value   int
}
