package units

// Converter turns a raw register value into a unit-tagged measurement.
type Converter interface {
	Convert(unitTypeID int, raw float64) Measurement
}

// StandardConverter uses the built-in unit type catalog.
type StandardConverter struct{}

// NewStandardConverter returns the default converter.
func NewStandardConverter() StandardConverter {
	return StandardConverter{}
}

// Convert tags raw with the storage unit of unitTypeID. Unknown unit types produce a
// dimensionless measurement instead of an error.
func (StandardConverter) Convert(unitTypeID int, raw float64) Measurement {
	ut, ok := LookupUnitType(unitTypeID)
	if !ok {
		return Measurement{Amount: raw, Category: CategoryNone}
	}
	return Measurement{Amount: raw, Unit: ut.Unit, Category: ut.Category}
}
