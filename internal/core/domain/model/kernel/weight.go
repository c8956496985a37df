package kernel

import (
	"fmt"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// Grams represents a parcel weight value in grams.
type Grams int

const (
	// WeightMinGrams is the minimum valid parcel weight.
	WeightMinGrams Grams = 1
	// WeightMaxGrams is the maximum valid parcel weight (100 kg).
	WeightMaxGrams Grams = 100000
)

// ErrWeightIsNotConstructed is returned when attempting to use an improperly initialized Weight.
// Weights must be created using the NewWeight constructor to ensure validity.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError(
	"weight must be created via NewWeight constructor")

// Weight represents the validated weight of a parcel in grams.
// Weight is an immutable value object; the zero value is invalid and will fail
// validation - use the constructor to create instances.
//
// Example:
//
//	w, err := kernel.NewWeight(500)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Weight: %s", w) // Output: 500g
type Weight struct { //nolint:recvcheck //using for validation
	grams Grams
	guard guard.ConstructorGuard
}

// NewWeight creates a new Weight with the specified value in grams.
// The value must be within [WeightMinGrams..WeightMaxGrams].
// Returns a ValueIsOutOfRangeError if the value is outside the valid bounds.
func NewWeight(grams Grams) (Weight, error) {
	if grams < WeightMinGrams || grams > WeightMaxGrams {
		return Weight{}, errs.NewValueIsOutOfRangeError("weight", grams, WeightMinGrams, WeightMaxGrams)
	}

	return Weight{
		grams: grams,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Weight was properly constructed using the constructor.
// The zero value of Weight is invalid and will fail this validation.
func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}

// Grams returns the weight value in grams.
func (w Weight) Grams() Grams {
	return w.grams
}

// IsEqual compares two weights by value.
func (w Weight) IsEqual(other Weight) bool {
	return w.grams == other.grams
}

// String returns the human-readable representation, e.g. "500g".
func (w Weight) String() string {
	return fmt.Sprintf("%dg", w.grams)
}
