package metadata

import (
	"fmt"
	"strings"
)

type Unit string

const (
	UnitKilogram Unit = "kg"
	UnitPiece    Unit = "unit"
	UnitBox      Unit = "box"
	UnitBottle   Unit = "bottle"
	UnitLiter    Unit = "liter"
	UnitDozen    Unit = "dozen"
)

func (u Unit) IsValid() bool {
	switch u {
	case UnitKilogram, UnitPiece, UnitBox, UnitBottle, UnitLiter, UnitDozen:
		return true
	default:
		return false
	}
}

func NewUnit(value string) (Unit, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "kilogram" {
		normalized = string(UnitKilogram)
	}
	unit := Unit(normalized)
	if !unit.IsValid() {
		return unit, fmt.Errorf(
			"value not valid, only valid values are: %s, %s, %s, %s, %s, %s",
			UnitKilogram, UnitPiece, UnitBox, UnitBottle, UnitLiter, UnitDozen,
		)
	}

	return unit, nil
}

func (u Unit) String() string {
	return string(u)
}
