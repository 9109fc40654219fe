package simulation

import "errors"

var (
	// ErrInvalidInstance is returned when instance parameters cannot produce an instance.
	ErrInvalidInstance = errors.New("invalid instance parameter")
	// ErrInvalidParameter is returned when a sampler or evaluator is misconfigured.
	ErrInvalidParameter = errors.New("invalid parameter")
)
