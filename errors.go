package cashflow

import "errors"

// Errors returned by the engine. Returned errors wrap one of them, use errors.Is to test.
var (
	ErrEmptySeries    = errors.New("empty cash flow series")
	ErrDivisionByZero = errors.New("division by zero")
	ErrShapeMismatch  = errors.New("shape mismatch")
	ErrTypeMismatch   = errors.New("type mismatch")
	ErrInvalidConfig  = errors.New("invalid configuration")
)
