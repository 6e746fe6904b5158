package units

import "fmt"

// UnitCategory groups units that convert into each other.
type UnitCategory int

const (
	CategoryNone UnitCategory = iota
	CategoryPressure
	CategoryLength
	CategoryTemperature
	CategoryLiquidVolume
	CategoryLiquidFlowRate
	CategoryGasFlowRate
	CategoryPercent
	CategoryStrokesPerMinute
	CategoryLoad
	CategoryCurrent
	CategoryVoltage
	CategoryFrequency
	CategoryPower
	CategoryTime
)

var categoryNames = map[UnitCategory]string{
	CategoryNone:             "None",
	CategoryPressure:         "Pressure",
	CategoryLength:           "Length",
	CategoryTemperature:      "Temperature",
	CategoryLiquidVolume:     "LiquidVolume",
	CategoryLiquidFlowRate:   "LiquidFlowRate",
	CategoryGasFlowRate:      "GasFlowRate",
	CategoryPercent:          "Percent",
	CategoryStrokesPerMinute: "StrokesPerMinute",
	CategoryLoad:             "Load",
	CategoryCurrent:          "Current",
	CategoryVoltage:          "Voltage",
	CategoryFrequency:        "Frequency",
	CategoryPower:            "Power",
	CategoryTime:             "Time",
}

func (c UnitCategory) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("UnitCategory(%d)", int(c))
}

// MarshalText encodes the category by name so JSON output stays readable.
func (c UnitCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (c *UnitCategory) UnmarshalText(text []byte) error {
	for cat, name := range categoryNames {
		if name == string(text) {
			*c = cat
			return nil
		}
	}
	return fmt.Errorf("unknown unit category %q", string(text))
}
