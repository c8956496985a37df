package shipment

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Mode represents the carrier service tier for a shipment.
type Mode int

const (
	// ModeUnknown represents an invalid or undefined shipping mode.
	ModeUnknown Mode = iota

	// Surface is the standard ground service tier.
	Surface

	// Express is the expedited service tier.
	Express
)

// getModeStrings returns a map of Mode values to their string representations.
func getModeStrings() map[Mode]string {
	return map[Mode]string{
		ModeUnknown: "Unknown",
		Surface:     "Surface",
		Express:     "Express",
	}
}

// ModeFromString parses a shipping mode from its string representation.
func ModeFromString(s string) (Mode, error) {
	switch s {
	case "Surface":
		return Surface, nil
	case "Express":
		return Express, nil
	default:
		return ModeUnknown, errs.NewValueIsInvalidErrorWithCause("shippingMode",
			fmt.Errorf("%q is not a valid shipping mode", s))
	}
}

// Validate checks if the Mode value is valid.
// Valid modes are Surface and Express; ModeUnknown and any other values are invalid.
func (m Mode) Validate() error {
	if m != Surface && m != Express {
		return errs.NewValueIsInvalidErrorWithCause("shippingMode",
			fmt.Errorf("%d is not a valid shipping mode", m))
	}
	return nil
}

// String returns the human-readable name of the mode.
// Returns "Unknown" for invalid mode values. Implements fmt.Stringer.
func (m Mode) String() string {
	if str, ok := getModeStrings()[m]; ok {
		return str
	}
	return "Unknown"
}
