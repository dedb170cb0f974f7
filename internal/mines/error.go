package mines

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid game configuration")
	ErrOutOfBounds          = errors.New("position out of bounds")
	ErrIllegalTransition    = errors.New("illegal transition")
)

// transitionError explains why a move was ignored. It matches
// [ErrIllegalTransition].
type transitionError struct {
	message string
}

// [transitionError] implements [error]
func (e transitionError) Error() string {
	return e.message
}

func (e transitionError) Is(target error) bool {
	return target == ErrIllegalTransition
}
