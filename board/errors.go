package board

import "errors"

var (
	// ErrOutOfRange is returned for a coordinate, linear index or bit index
	// that falls outside the board.
	ErrOutOfRange = errors.New("out of range")
	// ErrInvalidFormat is returned for text that is not a letter followed by
	// digits, or a board encoding that can't be decoded.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrStateInvariant is returned when the two colour masks of a board
	// overlap.
	ErrStateInvariant = errors.New("state invariant violation")
	// ErrUnsupportedDimension is returned for board sizes the 64-bit
	// representation can't hold, and for odd sizes.
	ErrUnsupportedDimension = errors.New("unsupported board dimension")
)
