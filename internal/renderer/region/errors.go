package region

import "errors"

var (
	// ErrOutOfBounds indicates a region or coordinate outside the
	// available area.
	ErrOutOfBounds = errors.New("region out of bounds")

	// ErrInvalidParent indicates a derive request against a missing or
	// deleted parent region.
	ErrInvalidParent = errors.New("invalid parent region")

	// ErrDerivedMove indicates an attempt to move a derived region, whose
	// position is fixed relative to its parent.
	ErrDerivedMove = errors.New("derived region cannot be moved")

	// ErrDeleted indicates an operation on a deleted region.
	ErrDeleted = errors.New("region deleted")
)
