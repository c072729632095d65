package enums

import "fmt"

// MovementReason maps to the movement_reason enum in Postgres.
type MovementReason string

const (
	MovementReasonOrder       MovementReason = "order"
	MovementReasonReturn      MovementReason = "return"
	MovementReasonAdjustment  MovementReason = "adjustment"
	MovementReasonReservation MovementReason = "reservation"
)

var validMovementReasons = []MovementReason{
	MovementReasonOrder,
	MovementReasonReturn,
	MovementReasonAdjustment,
	MovementReasonReservation,
}

// IsValid reports whether the value matches the canonical movement_reason enum.
func (m MovementReason) IsValid() bool {
	for _, candidate := range validMovementReasons {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMovementReason converts raw input into MovementReason.
func ParseMovementReason(value string) (MovementReason, error) {
	for _, candidate := range validMovementReasons {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid movement reason %q", value)
}
