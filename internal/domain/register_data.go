package domain

import (
	"time"

	"github.com/rutvik18Verticals/ally-xs-api-sub007/internal/units"
)

// RecordSource tells which definition produced a record.
type RecordSource string

const (
	SourceFacilityTag RecordSource = "facility_tag"
	SourceParameter   RecordSource = "parameter"
)

// RegisterData display-ready register record returned by the status register query.
type RegisterData struct {
	NodeID            string             `json:"node_id"`
	Address           int                `json:"address"`
	Description       string             `json:"description"`
	Value             *float64           `json:"value"`
	StringValue       *string            `json:"string_value"`
	StateText         string             `json:"state_text,omitempty"`
	DataType          *int               `json:"data_type,omitempty"`
	Decimals          *int               `json:"decimals,omitempty"`
	Units             string             `json:"units"`
	Format            string             `json:"format,omitempty"`
	Order             *int               `json:"order"`
	UnitType          *int               `json:"unit_type,omitempty"`
	ParamStandardType *int               `json:"param_standard_type,omitempty"`
	LastUpdate        *time.Time         `json:"last_update,omitempty"`
	Source            RecordSource       `json:"source"`
	Measurement       *units.Measurement `json:"measurement"`
}

// ParamStandardData classified register value returned by the parameter standard query.
type ParamStandardData struct {
	NodeID            string             `json:"node_id"`
	PocType           int                `json:"poc_type"`
	Address           int                `json:"address"`
	ParamStandardType *int               `json:"param_standard_type,omitempty"`
	Description       string             `json:"description"`
	Value             *float64           `json:"value"`
	StringValue       *string            `json:"string_value"`
	UnitType          *int               `json:"unit_type,omitempty"`
	LastUpdate        *time.Time         `json:"last_update,omitempty"`
	Source            RecordSource       `json:"source"`
	Measurement       *units.Measurement `json:"measurement"`
}
