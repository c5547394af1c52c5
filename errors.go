package phys2d

import (
	"errors"
	"fmt"
)

var (
	// ErrConstruction is the parent of every collider validation error.
	ErrConstruction = errors.New("phys2d: invalid collider")

	ErrInvalidMass      = fmt.Errorf("%w: mass must be positive unless fixed", ErrConstruction)
	ErrInvalidRadius    = fmt.Errorf("%w: radius must be positive", ErrConstruction)
	ErrInvalidDirection = fmt.Errorf("%w: direction vector cannot be zero", ErrConstruction)

	// ErrUnsupportedCollision is returned for shape pairs that have no contact routine (line vs line).
	ErrUnsupportedCollision = errors.New("phys2d: unsupported collision pair")

	// ErrMembership reports inconsistent world bookkeeping, such as removing a collider that is not a member.
	ErrMembership = errors.New("phys2d: collider membership")

	// ErrDivision is returned by Div for a zero or non-finite divisor.
	ErrDivision = errors.New("phys2d: division by zero or non-finite scalar")
)
