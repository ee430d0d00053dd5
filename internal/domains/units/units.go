// Package units converts values between units of one category. Linear
// categories use ratio tables against a base unit; temperature goes through
// Celsius.
package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"toolbox/go-backend/internal/domains/contracts"
	"toolbox/go-backend/pkg/models"
)

const CategoryTemperature = "Temperature"

type ratioTable struct {
	name  string
	units []string
	ratio map[string]float64
}

func newTable(name string, pairs ...any) ratioTable {
	t := ratioTable{name: name, ratio: make(map[string]float64, len(pairs)/2)}
	for i := 0; i+1 < len(pairs); i += 2 {
		unit := pairs[i].(string)
		t.units = append(t.units, unit)
		t.ratio[unit] = pairs[i+1].(float64)
	}
	return t
}

// Value of one unit expressed in the category base unit.
var linearTables = []ratioTable{
	newTable("Length", "m", 1.0, "km", 1000.0, "cm", 0.01, "mm", 0.001, "inch", 0.0254, "ft", 0.3048),
	newTable("Weight", "kg", 1.0, "g", 0.001, "lb", 0.45359237, "oz", 0.0283495231),
	newTable("Speed", "m/s", 1.0, "km/h", 1000.0/3600.0, "mph", 0.44704),
	newTable("Area", "m2", 1.0, "km2", 1e6, "cm2", 1e-4, "ha", 1e4, "acre", 4046.8564224, "ft2", 0.09290304),
	newTable("Data", "B", 1.0, "KB", 1000.0, "MB", 1e6, "GB", 1e9, "KiB", 1024.0, "MiB", 1048576.0, "GiB", 1073741824.0),
}

var temperatureUnits = []string{"C", "F", "K"}

// Categories lists every category with its units in display order.
func Categories() []models.UnitCategory {
	out := make([]models.UnitCategory, 0, len(linearTables)+1)
	for _, t := range linearTables {
		out = append(out, models.UnitCategory{Name: t.name, Units: append([]string(nil), t.units...)})
	}
	return append(out, models.UnitCategory{Name: CategoryTemperature, Units: append([]string(nil), temperatureUnits...)})
}

func lookupTable(category string) (ratioTable, bool) {
	for _, t := range linearTables {
		if strings.EqualFold(t.name, strings.TrimSpace(category)) {
			return t, true
		}
	}
	return ratioTable{}, false
}

// Convert applies v * ratio[from] / ratio[to]. Temperature is routed to
// ConvertTemperature so callers can use one entry point.
func Convert(category string, v float64, from, to string) (models.Conversion, error) {
	if strings.EqualFold(strings.TrimSpace(category), CategoryTemperature) {
		return ConvertTemperature(v, from, to)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return models.Conversion{}, contracts.InvalidInput("value must be a finite number")
	}
	table, ok := lookupTable(category)
	if !ok {
		return models.Conversion{}, contracts.InvalidInputf("unknown category %q", category)
	}
	fromRatio, ok := table.ratio[from]
	if !ok {
		return models.Conversion{}, contracts.InvalidInputf("unknown %s unit %q", table.name, from)
	}
	toRatio, ok := table.ratio[to]
	if !ok {
		return models.Conversion{}, contracts.InvalidInputf("unknown %s unit %q", table.name, to)
	}
	result := v * fromRatio / toRatio
	return models.Conversion{
		Category: table.name,
		From:     from,
		To:       to,
		Value:    v,
		Result:   result,
		Text:     fmt.Sprintf("%s %s = %s %s", FormatNumber(v), from, FormatNumber(result), to),
	}, nil
}

// ConvertTemperature converts between C, F and K through Celsius.
func ConvertTemperature(v float64, from, to string) (models.Conversion, error) {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))
	if !isTemperatureUnit(from) {
		return models.Conversion{}, contracts.InvalidInputf("unknown temperature unit %q", from)
	}
	if !isTemperatureUnit(to) {
		return models.Conversion{}, contracts.InvalidInputf("unknown temperature unit %q", to)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return models.Conversion{}, contracts.InvalidInput("value must be a finite number")
	}
	result := temperature(v, from, to)
	return models.Conversion{
		Category: CategoryTemperature,
		From:     from,
		To:       to,
		Value:    v,
		Result:   result,
		Text:     fmt.Sprintf("%s %s = %s %s", FormatNumber(v), from, FormatNumber(result), to),
	}, nil
}

func isTemperatureUnit(unit string) bool {
	return unit == "C" || unit == "F" || unit == "K"
}

func temperature(v float64, from, to string) float64 {
	if from == to {
		return v
	}
	var c float64
	switch from {
	case "C":
		c = v
	case "F":
		c = (v - 32) * 5 / 9
	default:
		c = v - 273.15
	}
	switch to {
	case "C":
		return c
	case "F":
		return c*9/5 + 32
	default:
		return c + 273.15
	}
}

// FormatNumber prints shortest round-trip digits and keeps a ".0" on whole values.
func FormatNumber(f float64) string {
	abs := math.Abs(f)
	if abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}
