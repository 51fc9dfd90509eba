package service

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrUnknownCategory   = errors.New("unknown category")
	ErrUnprocessable     = errors.New("result is not computable")
)
