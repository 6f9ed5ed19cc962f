package metadata

import (
	"fmt"
	"strings"
)

// CapacityPolicy decides what happens when a capacity adjustment would leave a
// location outside its [0, capacity] bounds: clamp truncates the adjustment at
// the bound, reject fails the whole operation.
type CapacityPolicy string

const (
	PolicyClamp  CapacityPolicy = "clamp"
	PolicyReject CapacityPolicy = "reject"
)

func (p CapacityPolicy) IsValid() bool {
	switch p {
	case PolicyClamp, PolicyReject:
		return true
	default:
		return false
	}
}

// NewCapacityPolicy parses a policy value, an empty string selects clamp.
func NewCapacityPolicy(value string) (CapacityPolicy, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return PolicyClamp, nil
	}
	policy := CapacityPolicy(normalized)
	if !policy.IsValid() {
		return policy, fmt.Errorf("value not valid, only valid values are: %s, %s", PolicyClamp, PolicyReject)
	}

	return policy, nil
}

func (p CapacityPolicy) String() string {
	return string(p)
}
