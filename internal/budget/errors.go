package budget

import "errors"

var (
	ErrInvalidField  = errors.New("invalid budget field")
	ErrInvalidState  = errors.New("invalid budget state")
	ErrInvalidSource = errors.New("invalid budget source")
)
