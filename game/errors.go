package game

import "github.com/pkg/errors"

var (
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	ErrOutOfBounds       = errors.New("cell out of bounds")
	ErrInvalidSnapshot   = errors.New("invalid board snapshot")
)
