package garden

import "errors"

// Sentinel errors returned by Garden operations.
var (
	// ErrInvalidSize is returned for negative garden dimensions.
	ErrInvalidSize = errors.New("garden: invalid dimensions")

	// ErrInvalidPlant is returned for a plant without a positive radius.
	ErrInvalidPlant = errors.New("garden: invalid plant")

	// ErrPlantNotFound is returned when a plant id is unknown.
	ErrPlantNotFound = errors.New("garden: plant not found")

	// ErrIDSpaceExhausted is returned when no more plant ids fit in the
	// 24-bit identity color space.
	ErrIDSpaceExhausted = errors.New("garden: plant id space exhausted")

	// ErrDuplicateLayer is returned when adding a layer whose name is taken.
	ErrDuplicateLayer = errors.New("garden: duplicate layer name")

	// ErrLayerNotFound is returned when a layer name is unknown.
	ErrLayerNotFound = errors.New("garden: layer not found")

	// ErrReservedLayer is returned when removing a built-in layer.
	ErrReservedLayer = errors.New("garden: built-in layer cannot be removed")
)
