package common

import "errors"

var (
	ErrorInvalidValue = errors.New("invalid value")

	// ErrorSingularData is returned when the sample spread is zero or
	// non-finite, so the kernel bandwidth cannot be estimated.
	ErrorSingularData = errors.New("singular sample data")
)
