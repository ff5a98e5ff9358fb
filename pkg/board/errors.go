package board

import "errors"

// Errors returned by New and Arrange. Compare with errors.Is.
var (
	ErrInvalidSize      = errors.New("board: rows and columns must be at least 1")
	ErrInvalidMineCount = errors.New("board: mine count must be in [0, rows*cols)")
	ErrNilRNG           = errors.New("board: random source is required")
	ErrOutOfRange       = errors.New("board: position out of range")
	ErrDuplicateMine    = errors.New("board: duplicate mine position")
)
