package product

import "marketplace/internal/pkg/errs"

// Unit is the measurement unit a product is sold in.
type Unit int

const (
	UnitUnknown Unit = iota
	UnitKg
	UnitPieces
	UnitLiters
	UnitGrams
)

func getUnitStrings() map[Unit]string {
	return map[Unit]string{
		UnitUnknown: "unknown",
		UnitKg:      "kg",
		UnitPieces:  "pieces",
		UnitLiters:  "liters",
		UnitGrams:   "grams",
	}
}

func getValidUnitStrings() map[string]Unit {
	return map[string]Unit{
		"kg":     UnitKg,
		"pieces": UnitPieces,
		"liters": UnitLiters,
		"grams":  UnitGrams,
	}
}

// UnitFromString parses a wire representation of a unit.
func UnitFromString(value string) (Unit, error) {
	unit, ok := getValidUnitStrings()[value]
	if !ok {
		return UnitUnknown, errs.NewValueIsInvalidError("unit")
	}
	return unit, nil
}

// Validate checks that the unit is one of the defined values.
func (u Unit) Validate() error {
	if _, ok := getUnitStrings()[u]; !ok || u == UnitUnknown {
		return errs.NewValueIsInvalidError("unit")
	}
	return nil
}

// String returns the wire representation of the unit.
func (u Unit) String() string {
	name, ok := getUnitStrings()[u]
	if !ok {
		return "unknown"
	}
	return name
}
