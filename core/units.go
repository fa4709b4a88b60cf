package core

// Conversion factors from meters to feet.
const (
	feetPerMeter             = 3.28084
	squareFeetPerSquareMeter = 10.7639
)

// UnitKind selects the measurement unit applied to lengths and areas in a
// response. The zero value is meters.
type UnitKind string

const (
	UnitMeters UnitKind = "meters"
	UnitFeet   UnitKind = "feet"
	UnitCustom UnitKind = "custom"
)

// Unit is a tagged union over measurement units. For UnitCustom, Factor is
// the linear scalar applied to lengths; areas apply Factor squared. Factor
// is ignored for the fixed kinds.
type Unit struct {
	Kind   UnitKind
	Factor float64
}

// Meters is the identity unit.
var Meters = Unit{Kind: UnitMeters}

// Feet converts meter-denominated values to feet.
var Feet = Unit{Kind: UnitFeet}

// CustomUnit builds a unit that scales lengths by factor.
func CustomUnit(factor float64) Unit {
	return Unit{Kind: UnitCustom, Factor: factor}
}

// ConvertDistance converts a length from the shape's native unit.
// Unrecognised kinds behave as meters.
func (u Unit) ConvertDistance(v float64) float64 {
	switch u.Kind {
	case UnitFeet:
		return v * feetPerMeter
	case UnitCustom:
		return v * u.Factor
	default:
		return v
	}
}

// ConvertArea converts an area from the shape's native unit. Custom units
// apply the square of the linear factor.
func (u Unit) ConvertArea(v float64) float64 {
	switch u.Kind {
	case UnitFeet:
		return v * squareFeetPerSquareMeter
	case UnitCustom:
		return v * u.Factor * u.Factor
	default:
		return v
	}
}
