package units

// UnitType is a row of the unit type catalog: the unit a raw register value is stored in.
type UnitType struct {
	ID       int
	Name     string
	Category UnitCategory
	Unit     string
}

// Unit type ids mirror the category values; every category has one storage unit.
var unitTypes = map[int]UnitType{
	int(CategoryNone):             {ID: int(CategoryNone), Name: "None", Category: CategoryNone, Unit: ""},
	int(CategoryPressure):         {ID: int(CategoryPressure), Name: "Pressure", Category: CategoryPressure, Unit: "psi"},
	int(CategoryLength):           {ID: int(CategoryLength), Name: "Length", Category: CategoryLength, Unit: "ft"},
	int(CategoryTemperature):      {ID: int(CategoryTemperature), Name: "Temperature", Category: CategoryTemperature, Unit: "degF"},
	int(CategoryLiquidVolume):     {ID: int(CategoryLiquidVolume), Name: "Liquid Volume", Category: CategoryLiquidVolume, Unit: "bbl"},
	int(CategoryLiquidFlowRate):   {ID: int(CategoryLiquidFlowRate), Name: "Liquid Flow Rate", Category: CategoryLiquidFlowRate, Unit: "bbl/d"},
	int(CategoryGasFlowRate):      {ID: int(CategoryGasFlowRate), Name: "Gas Flow Rate", Category: CategoryGasFlowRate, Unit: "Mscf/d"},
	int(CategoryPercent):          {ID: int(CategoryPercent), Name: "Percent", Category: CategoryPercent, Unit: "%"},
	int(CategoryStrokesPerMinute): {ID: int(CategoryStrokesPerMinute), Name: "Strokes Per Minute", Category: CategoryStrokesPerMinute, Unit: "spm"},
	int(CategoryLoad):             {ID: int(CategoryLoad), Name: "Load", Category: CategoryLoad, Unit: "lb"},
	int(CategoryCurrent):          {ID: int(CategoryCurrent), Name: "Current", Category: CategoryCurrent, Unit: "A"},
	int(CategoryVoltage):          {ID: int(CategoryVoltage), Name: "Voltage", Category: CategoryVoltage, Unit: "V"},
	int(CategoryFrequency):        {ID: int(CategoryFrequency), Name: "Frequency", Category: CategoryFrequency, Unit: "Hz"},
	int(CategoryPower):            {ID: int(CategoryPower), Name: "Power", Category: CategoryPower, Unit: "hp"},
	int(CategoryTime):             {ID: int(CategoryTime), Name: "Time", Category: CategoryTime, Unit: "h"},
}

// LookupUnitType returns the unit type registered under id.
func LookupUnitType(id int) (UnitType, bool) {
	ut, ok := unitTypes[id]
	return ut, ok
}

// UnitTypeIDFor returns the storage unit type id of a category.
func UnitTypeIDFor(category UnitCategory) int {
	return int(category)
}
