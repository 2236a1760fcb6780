package choreo

import "errors"

var (
	ErrNoItems          = errors.New("menu needs at least one item")
	ErrNilTarget        = errors.New("item has no icon or label target")
	ErrInvalidGravity   = errors.New("invalid gravity")
	ErrInvalidDirection = errors.New("invalid text direction")
	ErrInvalidSize      = errors.New("item size must be positive")
	ErrIndexOutOfRange  = errors.New("item index out of range")
)
