package domain

import "errors"

// Domain errors
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidAmounts    = errors.New("income and expenses must be greater than zero")
	ErrAdviceUnavailable = errors.New("could not generate investment strategy")
	ErrEmptyCompletion   = errors.New("completion returned no content")
	ErrRequestInFlight   = errors.New("an advice request is already pending for this session")
)
