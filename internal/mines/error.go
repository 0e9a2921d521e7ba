package mines

import "errors"

var (
	ErrOutOfBounds       = errors.New("cell position out of bounds")
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	ErrInvalidDensity    = errors.New("mine density must be in [0, 1)")
	ErrInvalidMineCount  = errors.New("invalid mine count")
)
