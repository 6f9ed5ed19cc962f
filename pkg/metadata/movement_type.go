package metadata

import (
	"fmt"
	"strings"
)

type MovementType string

const (
	MovementIn       MovementType = "IN"
	MovementOut      MovementType = "OUT"
	MovementTransfer MovementType = "TRANSFER"
)

func (m MovementType) IsValid() bool {
	switch m {
	case MovementIn, MovementOut, MovementTransfer:
		return true
	default:
		return false
	}
}

func NewMovementType(value string) (MovementType, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	movementType := MovementType(normalized)
	if !movementType.IsValid() {
		return movementType, fmt.Errorf(
			"value not valid, only valid values are: %s, %s, %s",
			MovementIn, MovementOut, MovementTransfer,
		)
	}

	return movementType, nil
}

func (m MovementType) String() string {
	return string(m)
}
