package units

// StandardMeasurement describes a parameter standard type code.
type StandardMeasurement struct {
	Code     int
	Name     string
	Category UnitCategory
}

// standardMeasurements is the built-in parameter standard type table. It is never
// mutated after package initialisation.
var standardMeasurements = map[int]StandardMeasurement{
	1:  {Code: 1, Name: "Tubing Pressure", Category: CategoryPressure},
	2:  {Code: 2, Name: "Casing Pressure", Category: CategoryPressure},
	3:  {Code: 3, Name: "Flowline Pressure", Category: CategoryPressure},
	4:  {Code: 4, Name: "Pump Intake Pressure", Category: CategoryPressure},
	5:  {Code: 5, Name: "Pump Discharge Pressure", Category: CategoryPressure},
	6:  {Code: 6, Name: "Motor Temperature", Category: CategoryTemperature},
	7:  {Code: 7, Name: "Pump Intake Temperature", Category: CategoryTemperature},
	8:  {Code: 8, Name: "Fluid Level", Category: CategoryLength},
	9:  {Code: 9, Name: "Pump Fillage", Category: CategoryPercent},
	10: {Code: 10, Name: "Strokes Per Minute", Category: CategoryStrokesPerMinute},
	11: {Code: 11, Name: "Peak Polished Rod Load", Category: CategoryLoad},
	12: {Code: 12, Name: "Minimum Polished Rod Load", Category: CategoryLoad},
	13: {Code: 13, Name: "Motor Current", Category: CategoryCurrent},
	14: {Code: 14, Name: "Motor Voltage", Category: CategoryVoltage},
	15: {Code: 15, Name: "Drive Frequency", Category: CategoryFrequency},
	16: {Code: 16, Name: "Oil Rate", Category: CategoryLiquidFlowRate},
	17: {Code: 17, Name: "Water Rate", Category: CategoryLiquidFlowRate},
	18: {Code: 18, Name: "Gas Rate", Category: CategoryGasFlowRate},
	19: {Code: 19, Name: "Injection Gas Rate", Category: CategoryGasFlowRate},
	20: {Code: 20, Name: "Runtime Today", Category: CategoryTime},
	21: {Code: 21, Name: "Motor Power", Category: CategoryPower},
	22: {Code: 22, Name: "Run Status", Category: CategoryNone},
	23: {Code: 23, Name: "Tank Level", Category: CategoryLength},
	24: {Code: 24, Name: "Cumulative Oil Volume", Category: CategoryLiquidVolume},
}

// LookupStandardMeasurement returns the built-in entry for a parameter standard type code.
func LookupStandardMeasurement(code int) (StandardMeasurement, bool) {
	sm, ok := standardMeasurements[code]
	return sm, ok
}
