package tileflip

import "errors"

var (
	// ErrInvalidCoordinate is returned when a flip addresses a cell outside the grid.
	ErrInvalidCoordinate = errors.New("tileflip: coordinate out of range")

	// ErrInvalidSize is returned when a grid size is below MinGridSize or
	// above the configured maximum. No grid is allocated in that case.
	ErrInvalidSize = errors.New("tileflip: invalid grid size")

	// ErrStorageUnavailable wraps any failure of the persistence backend.
	// Hosts check for it with errors.Is to warn that a win was not recorded.
	ErrStorageUnavailable = errors.New("tileflip: storage unavailable")
)
