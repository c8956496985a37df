package kernel

import (
	"errors"
	"fmt"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// Centimeters represents a parcel dimension value in centimeters.
type Centimeters int

const (
	// DimensionMinCm is the minimum valid parcel dimension.
	DimensionMinCm Centimeters = 1
	// DimensionMaxCm is the maximum valid parcel dimension (5 m).
	DimensionMaxCm Centimeters = 500
)

// ErrDimensionsAreNotConstructed is returned when attempting to use improperly initialized Dimensions.
// Dimensions must be created using the NewDimensions constructor to ensure validity.
var ErrDimensionsAreNotConstructed = errs.NewValueIsRequiredError(
	"dimensions must be created via NewDimensions constructor")

// Dimensions represents the validated length, width, and height of a parcel
// in centimeters. Dimensions is an immutable value object; the zero value is
// invalid and will fail validation - use the constructor to create instances.
//
// Example:
//
//	dims, err := kernel.NewDimensions(10, 10, 10)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Parcel: %s", dims) // Output: 10x10x10cm
type Dimensions struct { //nolint:recvcheck //using for validation
	length Centimeters
	width  Centimeters
	height Centimeters
	guard  guard.ConstructorGuard
}

// NewDimensions creates new Dimensions with the specified sides in centimeters.
// Each side must be within [DimensionMinCm..DimensionMaxCm].
// Returns a joined ValueIsOutOfRangeError for every side outside the valid bounds.
func NewDimensions(length, width, height Centimeters) (Dimensions, error) {
	dims := Dimensions{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		dims.setLength(length),
		dims.setWidth(width),
		dims.setHeight(height),
	); err != nil {
		return Dimensions{}, err
	}

	return dims, nil
}

// Validate checks if the Dimensions were properly constructed using the constructor.
// The zero value of Dimensions is invalid and will fail this validation.
func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}

// Length returns the parcel length in centimeters.
func (d Dimensions) Length() Centimeters {
	return d.length
}

// Width returns the parcel width in centimeters.
func (d Dimensions) Width() Centimeters {
	return d.width
}

// Height returns the parcel height in centimeters.
func (d Dimensions) Height() Centimeters {
	return d.height
}

// IsEqual compares two dimension sets by value.
func (d Dimensions) IsEqual(other Dimensions) bool {
	return d.length == other.length && d.width == other.width && d.height == other.height
}

// String returns the human-readable representation, e.g. "10x10x10cm".
func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%dx%dcm", d.length, d.width, d.height)
}

func (d *Dimensions) setLength(length Centimeters) error {
	if length < DimensionMinCm || length > DimensionMaxCm {
		return errs.NewValueIsOutOfRangeError("length", length, DimensionMinCm, DimensionMaxCm)
	}
	d.length = length
	return nil
}

func (d *Dimensions) setWidth(width Centimeters) error {
	if width < DimensionMinCm || width > DimensionMaxCm {
		return errs.NewValueIsOutOfRangeError("width", width, DimensionMinCm, DimensionMaxCm)
	}
	d.width = width
	return nil
}

func (d *Dimensions) setHeight(height Centimeters) error {
	if height < DimensionMinCm || height > DimensionMaxCm {
		return errs.NewValueIsOutOfRangeError("height", height, DimensionMinCm, DimensionMaxCm)
	}
	d.height = height
	return nil
}
