package tour

import "errors"

var (
	// ErrIndexOutOfRange is returned when a position lies outside [0, n-1].
	ErrIndexOutOfRange = errors.New("tour: index out of range")

	// ErrSameIndex is returned by Swap when both positions are equal.
	ErrSameIndex = errors.New("tour: swap requires two distinct positions")
)
