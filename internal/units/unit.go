package units

import "fmt"

// unitDef converts a unit into its category's base unit: base = v*factor + offset.
type unitDef struct {
	symbol   string
	category UnitCategory
	factor   float64
	offset   float64
}

var unitDefs = map[string]unitDef{
	"":       {symbol: "", category: CategoryNone, factor: 1},
	"psi":    {symbol: "psi", category: CategoryPressure, factor: 1},
	"kPa":    {symbol: "kPa", category: CategoryPressure, factor: 0.1450377377},
	"bar":    {symbol: "bar", category: CategoryPressure, factor: 14.503773773},
	"ft":     {symbol: "ft", category: CategoryLength, factor: 1},
	"m":      {symbol: "m", category: CategoryLength, factor: 3.280839895},
	"in":     {symbol: "in", category: CategoryLength, factor: 1.0 / 12.0},
	"degF":   {symbol: "degF", category: CategoryTemperature, factor: 1},
	"degC":   {symbol: "degC", category: CategoryTemperature, factor: 1.8, offset: 32},
	"bbl":    {symbol: "bbl", category: CategoryLiquidVolume, factor: 1},
	"m3":     {symbol: "m3", category: CategoryLiquidVolume, factor: 6.289810770},
	"bbl/d":  {symbol: "bbl/d", category: CategoryLiquidFlowRate, factor: 1},
	"m3/d":   {symbol: "m3/d", category: CategoryLiquidFlowRate, factor: 6.289810770},
	"Mscf/d": {symbol: "Mscf/d", category: CategoryGasFlowRate, factor: 1},
	"e3m3/d": {symbol: "e3m3/d", category: CategoryGasFlowRate, factor: 35.314666721},
	"%":      {symbol: "%", category: CategoryPercent, factor: 1},
	"spm":    {symbol: "spm", category: CategoryStrokesPerMinute, factor: 1},
	"lb":     {symbol: "lb", category: CategoryLoad, factor: 1},
	"kN":     {symbol: "kN", category: CategoryLoad, factor: 224.808943},
	"A":      {symbol: "A", category: CategoryCurrent, factor: 1},
	"V":      {symbol: "V", category: CategoryVoltage, factor: 1},
	"Hz":     {symbol: "Hz", category: CategoryFrequency, factor: 1},
	"hp":     {symbol: "hp", category: CategoryPower, factor: 1},
	"kW":     {symbol: "kW", category: CategoryPower, factor: 1.341022090},
	"h":      {symbol: "h", category: CategoryTime, factor: 1},
	"min":    {symbol: "min", category: CategoryTime, factor: 1.0 / 60.0},
	"s":      {symbol: "s", category: CategoryTime, factor: 1.0 / 3600.0},
}

// CategoryOf returns the category of a unit symbol.
func CategoryOf(symbol string) (UnitCategory, bool) {
	def, ok := unitDefs[symbol]
	if !ok || symbol == "" {
		return CategoryNone, false
	}
	return def.category, true
}

// Measurement is a magnitude tagged with its unit.
type Measurement struct {
	Amount   float64      `json:"amount"`
	Unit     string       `json:"unit"`
	Category UnitCategory `json:"category"`
}

// To converts m into the unit identified by symbol. Both units must share a category.
func (m Measurement) To(symbol string) (Measurement, error) {
	from, ok := unitDefs[m.Unit]
	if !ok {
		return Measurement{}, fmt.Errorf("unknown unit %q", m.Unit)
	}
	to, ok := unitDefs[symbol]
	if !ok {
		return Measurement{}, fmt.Errorf("unknown unit %q", symbol)
	}
	if from.category != to.category {
		return Measurement{}, fmt.Errorf("cannot convert %s (%s) to %s (%s)", from.symbol, from.category, to.symbol, to.category)
	}

	base := m.Amount*from.factor + from.offset
	return Measurement{
		Amount:   (base - to.offset) / to.factor,
		Unit:     to.symbol,
		Category: to.category,
	}, nil
}

func (m Measurement) String() string {
	if m.Unit == "" {
		return fmt.Sprintf("%g", m.Amount)
	}
	return fmt.Sprintf("%g %s", m.Amount, m.Unit)
}
