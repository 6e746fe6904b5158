package service

import (
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/rutvik18Verticals/ally-xs-api-sub007/internal/domain"
	"github.com/rutvik18Verticals/ally-xs-api-sub007/internal/units"
)

// FacilityCandidate facility tag left-joined to its catalog entry and to the status
// register at the same address.
type FacilityCandidate struct {
	Tag      domain.FacilityTag
	Catalog  *domain.ParamStandardType
	Register *domain.StatusRegister
}

// ParameterCandidate status register left-joined to its parameter row, catalog entry
// and current scan value.
type ParameterCandidate struct {
	Register  domain.StatusRegister
	Parameter *domain.Parameter
	Catalog   *domain.ParamStandardType
	Current   *domain.CurrentScanValue
}

// code effective classification: parameter first, then status register.
func (c ParameterCandidate) code() *int {
	if c.Parameter != nil && c.Parameter.ParamStandardType != nil {
		return c.Parameter.ParamStandardType
	}
	return c.Register.ParamStandardType
}

// MergedRegisterRow the single winning candidate for one address. Exactly one of
// Facility and Parameter is set.
type MergedRegisterRow struct {
	Address   int
	Facility  *FacilityCandidate
	Parameter *ParameterCandidate
}

// catalogLookups lookup tables loaded once per request.
type catalogLookups struct {
	standardTypes map[int]domain.ParamStandardType
	phrases       map[int]string
	states        map[domain.StateKey]string
}

func (l catalogLookups) catalogEntry(code *int) *domain.ParamStandardType {
	if code == nil {
		return nil
	}
	e, ok := l.standardTypes[*code]
	if !ok {
		return nil
	}
	return &e
}

func (l catalogLookups) phrase(id *int) string {
	if id == nil {
		return ""
	}
	return l.phrases[*id]
}

// describe resolves a description in order: own phrase, own description, catalog
// phrase, catalog description, built-in standard measurement name.
func (l catalogLookups) describe(ownPhrase *int, ownDesc string, catalog *domain.ParamStandardType, code *int) string {
	if s := l.phrase(ownPhrase); s != "" {
		return s
	}
	if ownDesc != "" {
		return ownDesc
	}
	if catalog != nil {
		if s := l.phrase(catalog.PhraseID); s != "" {
			return s
		}
		if catalog.Description != "" {
			return catalog.Description
		}
	}
	if code != nil {
		if sm, ok := units.LookupStandardMeasurement(*code); ok {
			return sm.Name
		}
	}
	return ""
}

func (l catalogLookups) stateText(stateID *int, value *float64) string {
	if stateID == nil || value == nil {
		return ""
	}
	return l.states[domain.StateKey{StateID: *stateID, Value: int(*value)}]
}

// resolveUnit picks the unit type and units text of a record. A catalog unit type
// wins over the own one; the built-in standard measurement table applies only when
// there is neither a catalog row nor an own unit type. Units follows the unit type
// whenever the own unit type is replaced.
func resolveUnit(ownType *int, ownUnits string, catalog *domain.ParamStandardType, code *int) (*int, string) {
	unitType, replaced := ownType, false
	switch {
	case catalog != nil && catalog.UnitTypeID != nil:
		unitType, replaced = catalog.UnitTypeID, true
	case catalog == nil && ownType == nil:
		if std := standardUnitType(code); std != nil {
			unitType, replaced = std, true
		}
	}

	if unitType == nil {
		return nil, ownUnits
	}
	if replaced || ownUnits == "" {
		return unitType, unitSymbol(unitType)
	}
	return unitType, ownUnits
}

// standardUnitType storage unit type of a classification code from the built-in table.
func standardUnitType(code *int) *int {
	if code == nil {
		return nil
	}
	sm, ok := units.LookupStandardMeasurement(*code)
	if !ok || sm.Category == units.CategoryNone {
		return nil
	}
	id := units.UnitTypeIDFor(sm.Category)
	return &id
}

func unitSymbol(unitType *int) string {
	if unitType == nil {
		return ""
	}
	ut, ok := units.LookupUnitType(*unitType)
	if !ok {
		return ""
	}
	return ut.Unit
}

// numericValue returns value, or stringValue parsed as a number. Unparseable text
// yields nil.
func numericValue(value *float64, stringValue *string) *float64 {
	if value != nil {
		return value
	}
	if stringValue == nil {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(*stringValue), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// registerResolver turns joined candidates into output records.
type registerResolver struct {
	lookups   catalogLookups
	converter units.Converter
}

func (r *registerResolver) measure(unitType *int, value *float64) *units.Measurement {
	if unitType == nil || value == nil {
		return nil
	}
	m := r.converter.Convert(*unitType, *value)
	return &m
}

func (r *registerResolver) facilityRecord(c FacilityCandidate) domain.RegisterData {
	tag := c.Tag
	code := tag.ParamStandardType

	rec := domain.RegisterData{
		NodeID:            tag.NodeID,
		Address:           tag.Address,
		Description:       r.lookups.describe(tag.PhraseID, tag.Description, c.Catalog, code),
		Value:             tag.Value,
		StringValue:       tag.StringValue,
		DataType:          tag.DataType,
		Decimals:          tag.Decimals,
		ParamStandardType: code,
		LastUpdate:        tag.LastUpdate,
		Source:            domain.SourceFacilityTag,
	}
	if tag.DataType != nil && *tag.DataType == domain.DataTypeString && rec.StringValue == nil {
		empty := ""
		rec.StringValue = &empty
	}
	if c.Register != nil {
		rec.Format = c.Register.Format
		rec.Order = c.Register.Order
	}
	rec.UnitType, rec.Units = resolveUnit(tag.UnitType, tag.EngUnits, c.Catalog, code)

	num := numericValue(rec.Value, rec.StringValue)
	rec.StateText = r.lookups.stateText(tag.StateID, num)
	rec.Measurement = r.measure(rec.UnitType, num)
	return rec
}

func (r *registerResolver) parameterRecord(nodeID string, c ParameterCandidate) domain.RegisterData {
	reg := c.Register
	code := c.code()

	rec := domain.RegisterData{
		NodeID:            nodeID,
		Address:           reg.Address,
		Format:            reg.Format,
		Order:             reg.Order,
		ParamStandardType: code,
		Source:            domain.SourceParameter,
	}

	var phraseID, stateID *int
	var ownDesc string
	if p := c.Parameter; p != nil {
		phraseID, stateID, ownDesc = p.PhraseID, p.StateID, p.Description
		rec.DataType = p.DataType
		rec.Decimals = p.Decimals
	}
	rec.Description = r.lookups.describe(phraseID, ownDesc, c.Catalog, code)

	rec.UnitType, rec.Units = resolveUnit(reg.UnitType, reg.Units, c.Catalog, code)

	if cur := c.Current; cur != nil {
		rec.Value = cur.Value
		rec.StringValue = cur.StringValue
		rec.LastUpdate = cur.UpdatedAt
	}

	num := numericValue(rec.Value, rec.StringValue)
	rec.StateText = r.lookups.stateText(stateID, num)
	rec.Measurement = r.measure(rec.UnitType, num)
	return rec
}

func (r *registerResolver) record(row MergedRegisterRow, nodeID string) domain.RegisterData {
	if row.Facility != nil {
		return r.facilityRecord(*row.Facility)
	}
	return r.parameterRecord(nodeID, *row.Parameter)
}

// selectParameters keeps one parameter per address; a row of the device's own type
// wins over a wildcard row.
func selectParameters(params []domain.Parameter, pocType int) map[int]domain.Parameter {
	out := make(map[int]domain.Parameter, len(params))
	for _, p := range params {
		if p.PocType != pocType && p.PocType != domain.PocTypeWildcard {
			continue
		}
		existing, ok := out[p.Address]
		if !ok || (existing.PocType != pocType && p.PocType == pocType) {
			out[p.Address] = p
		}
	}
	return out
}

func valuesByAddress(values []domain.CurrentScanValue) map[int]domain.CurrentScanValue {
	out := make(map[int]domain.CurrentScanValue, len(values))
	for _, v := range values {
		if _, ok := out[v.Address]; !ok {
			out[v.Address] = v
		}
	}
	return out
}

func buildFacilityCandidates(tags []domain.FacilityTag, lookups catalogLookups) map[int]FacilityCandidate {
	out := make(map[int]FacilityCandidate, len(tags))
	for _, tag := range tags {
		if _, ok := out[tag.Address]; ok {
			continue
		}
		out[tag.Address] = FacilityCandidate{
			Tag:     tag,
			Catalog: lookups.catalogEntry(tag.ParamStandardType),
		}
	}
	return out
}

func buildParameterCandidates(registers []domain.StatusRegister, params map[int]domain.Parameter, values map[int]domain.CurrentScanValue, lookups catalogLookups) []ParameterCandidate {
	out := make([]ParameterCandidate, 0, len(registers))
	for _, reg := range registers {
		c := ParameterCandidate{Register: reg}
		if p, ok := params[reg.Address]; ok {
			c.Parameter = &p
		}
		if v, ok := values[reg.Address]; ok {
			c.Current = &v
		}
		c.Catalog = lookups.catalogEntry(c.code())
		out = append(out, c)
	}
	return out
}

// mergeByAddress walks the status register addresses and lets a facility tag at the
// same address replace the parameter candidate.
func mergeByAddress(params []ParameterCandidate, facility map[int]FacilityCandidate) []MergedRegisterRow {
	out := make([]MergedRegisterRow, 0, len(params))
	for i := range params {
		pc := params[i]
		row := MergedRegisterRow{Address: pc.Register.Address}
		if fc, ok := facility[pc.Register.Address]; ok {
			reg := pc.Register
			fc.Register = &reg
			row.Facility = &fc
		} else {
			row.Parameter = &pc
		}
		out = append(out, row)
	}
	return out
}

// dedupeRecords drops records identical to an earlier record.
func dedupeRecords(records []domain.RegisterData) []domain.RegisterData {
	seen := make(map[int][]int, len(records))
	out := make([]domain.RegisterData, 0, len(records))
	for _, rec := range records {
		dup := false
		for _, idx := range seen[rec.Address] {
			if reflect.DeepEqual(out[idx], rec) {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		seen[rec.Address] = append(seen[rec.Address], len(out))
		out = append(out, rec)
	}
	return out
}

// sortRecords orders by display order ascending, unset order last, then by address.
func sortRecords(records []domain.RegisterData) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i].Order, records[j].Order
		switch {
		case a != nil && b != nil && *a != *b:
			return *a < *b
		case a != nil && b == nil:
			return true
		case a == nil && b != nil:
			return false
		}
		return records[i].Address < records[j].Address
	})
}

func (r *registerResolver) facilityStandardRecord(node domain.Node, c FacilityCandidate) domain.ParamStandardData {
	tag := c.Tag
	rec := domain.ParamStandardData{
		NodeID:            tag.NodeID,
		PocType:           node.PocType,
		Address:           tag.Address,
		ParamStandardType: tag.ParamStandardType,
		Description:       r.lookups.describe(tag.PhraseID, tag.Description, c.Catalog, tag.ParamStandardType),
		Value:             tag.Value,
		StringValue:       tag.StringValue,
		LastUpdate:        tag.LastUpdate,
		Source:            domain.SourceFacilityTag,
	}
	rec.UnitType, _ = resolveUnit(tag.UnitType, tag.EngUnits, c.Catalog, tag.ParamStandardType)
	rec.Measurement = r.measure(rec.UnitType, numericValue(rec.Value, rec.StringValue))
	return rec
}

func (r *registerResolver) parameterStandardRecord(node domain.Node, p domain.Parameter, current domain.CurrentScanValue) domain.ParamStandardData {
	catalog := r.lookups.catalogEntry(p.ParamStandardType)
	rec := domain.ParamStandardData{
		NodeID:            node.NodeID,
		PocType:           node.PocType,
		Address:           p.Address,
		ParamStandardType: p.ParamStandardType,
		Description:       r.lookups.describe(p.PhraseID, p.Description, catalog, p.ParamStandardType),
		Value:             current.Value,
		StringValue:       current.StringValue,
		LastUpdate:        current.UpdatedAt,
		Source:            domain.SourceParameter,
	}
	rec.UnitType, _ = resolveUnit(nil, "", catalog, p.ParamStandardType)
	rec.Measurement = r.measure(rec.UnitType, numericValue(rec.Value, rec.StringValue))
	return rec
}
